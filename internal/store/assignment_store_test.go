package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaaarruuu/communitydesk/internal/model"
	"github.com/aaaarruuu/communitydesk/tests/testutil"
)

func TestAssignRepresentative(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	user := testutil.CreateTestUser(t, s, "reporter", model.RoleMember)
	issue := testutil.CreateTestIssue(t, s, user.ID, model.CategoryWaterLeakage)
	plumber := testutil.CreateTestRep(t, s, "Pat Pipes", model.SpecialtyPlumber)

	require.NoError(t, s.AssignRepresentative(ctx, issue.ID, plumber.ID, "leaking main"))

	a, err := s.GetAssignmentByIssue(ctx, issue.ID)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, plumber.ID, a.RepID)
	assert.Equal(t, model.AssignmentStatusAssigned, a.Status)
	assert.Equal(t, "leaking main", a.Notes)

	got, err := s.GetIssueByID(ctx, issue.ID)
	require.NoError(t, err)
	assert.Equal(t, model.IssueStatusInProgress, got.Status)
}

func TestAssignRepresentativeUpsert(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	user := testutil.CreateTestUser(t, s, "reporter", model.RoleMember)
	issue := testutil.CreateTestIssue(t, s, user.ID, model.CategoryElectrical)
	first := testutil.CreateTestRep(t, s, "Erin Volt", model.SpecialtyElectrician)
	second := testutil.CreateTestRep(t, s, "Sam Spark", model.SpecialtyElectrician)

	require.NoError(t, s.AssignRepresentative(ctx, issue.ID, first.ID, "first pass"))
	require.NoError(t, s.AssignRepresentative(ctx, issue.ID, second.ID, "handed over"))

	// Still exactly one assignment row, now pointing at the second rep.
	a, err := s.GetAssignmentByIssue(ctx, issue.ID)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, second.ID, a.RepID)
	assert.Equal(t, "handed over", a.Notes)

	firstList, err := s.GetAssignmentsForRep(ctx, first.ID)
	require.NoError(t, err)
	assert.Empty(t, firstList)

	secondList, err := s.GetAssignmentsForRep(ctx, second.ID)
	require.NoError(t, err)
	require.Len(t, secondList, 1)
	assert.Equal(t, issue.ID, secondList[0].IssueID)
	assert.Equal(t, model.IssueStatusInProgress, secondList[0].IssueStatus)
}

func TestAssignRepresentativeMissingIssue(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	rep := testutil.CreateTestRep(t, s, "Pat Pipes", model.SpecialtyPlumber)

	err := s.AssignRepresentative(ctx, "no-such-issue", rep.ID, "")
	require.Error(t, err)

	// The failed transaction must not leave a dangling assignment.
	a, getErr := s.GetAssignmentByIssue(ctx, "no-such-issue")
	require.NoError(t, getErr)
	assert.Nil(t, a)
}

func TestGetAssignmentByIssueUnassigned(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	user := testutil.CreateTestUser(t, s, "reporter", model.RoleMember)
	issue := testutil.CreateTestIssue(t, s, user.ID, model.CategoryGarbage)

	a, err := s.GetAssignmentByIssue(ctx, issue.ID)
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestDeleteIssueCascadesAssignment(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	user := testutil.CreateTestUser(t, s, "reporter", model.RoleMember)
	issue := testutil.CreateTestIssue(t, s, user.ID, model.CategoryStructural)
	rep := testutil.CreateTestRep(t, s, "Mo Wrench", model.SpecialtyMechanic)

	require.NoError(t, s.AssignRepresentative(ctx, issue.ID, rep.ID, ""))
	require.NoError(t, s.DeleteIssue(ctx, issue.ID))

	a, err := s.GetAssignmentByIssue(ctx, issue.ID)
	require.NoError(t, err)
	assert.Nil(t, a)

	list, err := s.GetAssignmentsForRep(ctx, rep.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
