package model

// Issue category constants.
const (
	CategoryWaterLeakage    = "Water Leakage"
	CategoryElectrical      = "Electrical Problem"
	CategoryRoadDamage      = "Road Damage"
	CategoryGarbage         = "Garbage/Bins"
	CategoryStructural      = "Structural Issue"
	CategoryOther           = "Other"
)

// IssueCategories lists the reportable issue categories in display order.
var IssueCategories = []string{
	CategoryWaterLeakage,
	CategoryElectrical,
	CategoryRoadDamage,
	CategoryGarbage,
	CategoryStructural,
	CategoryOther,
}

// specialtyByCategory routes an issue category to the representative
// specialty qualified to handle it.
var specialtyByCategory = map[string]string{
	CategoryWaterLeakage: SpecialtyPlumber,
	CategoryElectrical:   SpecialtyElectrician,
	CategoryRoadDamage:   SpecialtyMechanic,
	CategoryStructural:   SpecialtyMechanic,
	CategoryGarbage:      SpecialtyCleaner,
	CategoryOther:        SpecialtyOther,
}

// SpecialtyFor returns the representative specialty for an issue category.
// Unknown categories fall back to "Other" rather than failing.
func SpecialtyFor(category string) string {
	if s, ok := specialtyByCategory[category]; ok {
		return s
	}
	return SpecialtyOther
}
