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

func TestCreateIssueDefaults(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	u := testutil.CreateTestUser(t, s, "reporter", model.RoleMember)

	issue := model.Issue{
		ID:          "i1",
		Description: "streetlight out",
		Location:    "5th Avenue",
		ReporterID:  u.ID,
	}
	require.NoError(t, s.CreateIssue(ctx, issue))

	got, err := s.GetIssueByID(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, model.CategoryOther, got.Category)
	assert.Equal(t, model.IssueStatusPending, got.Status)
	assert.Equal(t, model.PriorityMedium, got.Priority)
	assert.False(t, got.DateReported.IsZero())
	assert.Equal(t, "reporter", got.ReporterName)
}

func TestCreateIssueValidation(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	err := s.CreateIssue(ctx, model.Issue{Description: "no location"})
	assert.ErrorContains(t, err, "location")

	err = s.CreateIssue(ctx, model.Issue{Location: "no description"})
	assert.ErrorContains(t, err, "description")
}

func TestGetIssuesStatusFilter(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	u := testutil.CreateTestUser(t, s, "reporter", model.RoleMember)
	pending := testutil.CreateTestIssue(t, s, u.ID, model.CategoryWaterLeakage)
	done := testutil.CreateTestIssue(t, s, u.ID, model.CategoryElectrical)
	require.NoError(t, s.UpdateIssueStatus(ctx, done.ID, model.IssueStatusCompleted))

	status := model.IssueStatusPending
	issues, err := s.GetIssues(ctx, store.IssueFilter{Status: &status})
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, pending.ID, issues[0].ID)

	issues, err = s.GetIssues(ctx, store.IssueFilter{})
	require.NoError(t, err)
	assert.Len(t, issues, 2)
}

func TestUpdateIssuePreservesReporter(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	u := testutil.CreateTestUser(t, s, "reporter", model.RoleMember)
	issue := testutil.CreateTestIssue(t, s, u.ID, model.CategoryWaterLeakage)

	issue.Description = "worse than reported"
	issue.Priority = model.PriorityHigh
	issue.ReporterID = "someone-else"
	require.NoError(t, s.UpdateIssue(ctx, issue))

	got, err := s.GetIssueByID(ctx, issue.ID)
	require.NoError(t, err)
	assert.Equal(t, "worse than reported", got.Description)
	assert.Equal(t, model.PriorityHigh, got.Priority)
	assert.Equal(t, u.ID, got.ReporterID)
	assert.Equal(t, issue.DateReported.Unix(), got.DateReported.Unix())
}

func TestUpdateIssueStatusNotFound(t *testing.T) {
	s := testutil.NewTestStore(t)

	err := s.UpdateIssueStatus(context.Background(), "missing", model.IssueStatusCompleted)
	assert.ErrorContains(t, err, "not found")
}

func TestGetIssuesSearch(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	u := testutil.CreateTestUser(t, s, "reporter", model.RoleMember)
	require.NoError(t, s.CreateIssue(ctx, model.Issue{
		ID: "i1", Description: "burst pipe", Location: "Block A", ReporterID: u.ID,
	}))
	require.NoError(t, s.CreateIssue(ctx, model.Issue{
		ID: "i2", Description: "pothole", Location: "Main Street", ReporterID: u.ID,
	}))

	q := "pipe"
	issues, err := s.GetIssues(ctx, store.IssueFilter{Query: &q})
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "i1", issues[0].ID)
}
