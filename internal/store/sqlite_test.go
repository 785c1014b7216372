package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaaarruuu/communitydesk/internal/model"
	"github.com/aaaarruuu/communitydesk/tests/testutil"
)

func TestGetDashboardStatsEmpty(t *testing.T) {
	s := testutil.NewTestStore(t)

	stats, err := s.GetDashboardStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.PendingIssues)
	assert.Zero(t, stats.InProgressIssues)
	assert.Zero(t, stats.CompletedIssues)
	assert.Zero(t, stats.UpcomingEvents)
	assert.Zero(t, stats.PastEvents)
	assert.Zero(t, stats.AvailableReps)
}

func TestGetDashboardStats(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	u := testutil.CreateTestUser(t, s, "reporter", model.RoleMember)

	// Two pending issues, one of which gets assigned (In-Progress),
	// and one completed.
	first := testutil.CreateTestIssue(t, s, u.ID, model.CategoryWaterLeakage)
	testutil.CreateTestIssue(t, s, u.ID, model.CategoryElectrical)
	completed := testutil.CreateTestIssue(t, s, u.ID, model.CategoryGarbage)
	require.NoError(t, s.UpdateIssueStatus(ctx, completed.ID, model.IssueStatusCompleted))

	plumber := testutil.CreateTestRep(t, s, "Pat Pipes", model.SpecialtyPlumber)
	require.NoError(t, s.AssignRepresentative(ctx, first.ID, plumber.ID, ""))

	busy := testutil.CreateTestRep(t, s, "Erin Volt", model.SpecialtyElectrician)
	busy.Status = model.RepStatusBusy
	require.NoError(t, s.UpdateRepresentative(ctx, busy))

	createTestEvent(t, s, u.ID, "Future Fair", "2999-01-01")
	createTestEvent(t, s, u.ID, "Past Picnic", "2020-06-01")

	stats, err := s.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.PendingIssues)
	assert.Equal(t, 1, stats.InProgressIssues)
	assert.Equal(t, 1, stats.CompletedIssues)
	assert.Equal(t, 1, stats.UpcomingEvents)
	assert.Equal(t, 1, stats.PastEvents)
	assert.Equal(t, 1, stats.AvailableReps)
}
