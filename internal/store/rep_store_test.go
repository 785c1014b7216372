package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaaarruuu/communitydesk/internal/model"
	"github.com/aaaarruuu/communitydesk/internal/store"
	"github.com/aaaarruuu/communitydesk/tests/testutil"
)

func TestCreateRepresentativeDefaults(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	rep := model.Representative{ID: "r1", Name: "Pat Pipes", Contact: "0123456789"}
	require.NoError(t, s.CreateRepresentative(ctx, rep))

	got, err := s.GetRepresentativeByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, model.SpecialtyOther, got.Category)
	assert.Equal(t, model.RepStatusAvailable, got.Status)
}

func TestCreateRepresentativeValidation(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	err := s.CreateRepresentative(ctx, model.Representative{Contact: "0123456789"})
	assert.ErrorContains(t, err, "name")

	err = s.CreateRepresentative(ctx, model.Representative{Name: "Pat"})
	assert.ErrorContains(t, err, "contact")
}

func TestGetRepresentativesCategoryFilter(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	testutil.CreateTestRep(t, s, "Pat Pipes", model.SpecialtyPlumber)
	testutil.CreateTestRep(t, s, "Erin Volt", model.SpecialtyElectrician)

	plumber := model.SpecialtyPlumber
	reps, err := s.GetRepresentatives(ctx, store.RepFilter{Category: &plumber})
	require.NoError(t, err)
	require.Len(t, reps, 1)
	assert.Equal(t, "Pat Pipes", reps[0].Name)
}

// Available reps sort before busy ones, ties broken by name.
func TestGetRepresentativesOrdering(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	busy := testutil.CreateTestRep(t, s, "Alice", model.SpecialtyPlumber)
	busy.Status = model.RepStatusBusy
	require.NoError(t, s.UpdateRepresentative(ctx, busy))

	testutil.CreateTestRep(t, s, "Zoe", model.SpecialtyPlumber)
	testutil.CreateTestRep(t, s, "Bob", model.SpecialtyPlumber)

	reps, err := s.GetRepresentatives(ctx, store.RepFilter{})
	require.NoError(t, err)
	require.Len(t, reps, 3)
	assert.Equal(t, "Bob", reps[0].Name)
	assert.Equal(t, "Zoe", reps[1].Name)
	assert.Equal(t, "Alice", reps[2].Name)
}

func TestDeleteRepresentative(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	rep := testutil.CreateTestRep(t, s, "Pat Pipes", model.SpecialtyPlumber)
	require.NoError(t, s.DeleteRepresentative(ctx, rep.ID))

	got, err := s.GetRepresentativeByID(ctx, rep.ID)
	assert.Error(t, err)
	assert.Nil(t, got)

	assert.Error(t, s.DeleteRepresentative(ctx, rep.ID))
}
