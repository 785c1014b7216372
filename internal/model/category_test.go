package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aaaarruuu/communitydesk/internal/model"
)

func TestSpecialtyFor(t *testing.T) {
	cases := []struct {
		category string
		want     string
	}{
		{model.CategoryWaterLeakage, model.SpecialtyPlumber},
		{model.CategoryElectrical, model.SpecialtyElectrician},
		{model.CategoryRoadDamage, model.SpecialtyMechanic},
		{model.CategoryStructural, model.SpecialtyMechanic},
		{model.CategoryGarbage, model.SpecialtyCleaner},
		{model.CategoryOther, model.SpecialtyOther},
	}
	for _, tc := range cases {
		t.Run(tc.category, func(t *testing.T) {
			assert.Equal(t, tc.want, model.SpecialtyFor(tc.category))
		})
	}
}

func TestSpecialtyForUnknownCategory(t *testing.T) {
	assert.Equal(t, model.SpecialtyOther, model.SpecialtyFor("Noise Complaint"))
	assert.Equal(t, model.SpecialtyOther, model.SpecialtyFor(""))
}

func TestEveryCategoryRoutes(t *testing.T) {
	for _, c := range model.IssueCategories {
		assert.Contains(t, model.RepSpecialties, model.SpecialtyFor(c),
			"category %q must route to a known specialty", c)
	}
}
