package store_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaaarruuu/communitydesk/internal/model"
	"github.com/aaaarruuu/communitydesk/internal/store"
	"github.com/aaaarruuu/communitydesk/tests/testutil"
)

func createTestEvent(t *testing.T, s *store.SQLiteStore, createdBy, title, date string) model.Event {
	t.Helper()
	ev := model.Event{
		ID:        uuid.NewString(),
		Title:     title,
		EventDate: date,
		EventTime: "18:00",
		Venue:     "Community Hall",
		CreatedBy: createdBy,
	}
	require.NoError(t, s.CreateEvent(context.Background(), ev))
	return ev
}

func TestCreateEventValidation(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	err := s.CreateEvent(ctx, model.Event{Venue: "Hall", EventDate: "2026-09-01"})
	assert.ErrorContains(t, err, "title")

	err = s.CreateEvent(ctx, model.Event{Title: "Cleanup", EventDate: "2026-09-01"})
	assert.ErrorContains(t, err, "venue")
}

func TestGetEventsJoinsCreatorName(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	u := testutil.CreateTestUser(t, s, "organizer1", model.RoleMember)
	createTestEvent(t, s, u.ID, "Street Cleanup", "2026-09-01")
	createTestEvent(t, s, "gone-user", "Orphan Event", "2026-09-02")

	events, err := s.GetEvents(ctx, store.EventFilter{})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "organizer1", events[0].CreatorName)
	assert.Equal(t, "Unknown", events[1].CreatorName)
}

func TestGetEventsUpcomingFilter(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	u := testutil.CreateTestUser(t, s, "organizer1", model.RoleMember)
	createTestEvent(t, s, u.ID, "Past Picnic", "2020-06-01")
	future := createTestEvent(t, s, u.ID, "Future Fair", "2999-01-01")

	upcoming := true
	events, err := s.GetEvents(ctx, store.EventFilter{Upcoming: &upcoming})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, future.ID, events[0].ID)

	past := false
	events, err = s.GetEvents(ctx, store.EventFilter{Upcoming: &past})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Past Picnic", events[0].Title)
}

func TestGetEventsSearch(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	u := testutil.CreateTestUser(t, s, "organizer1", model.RoleMember)
	createTestEvent(t, s, u.ID, "Street Cleanup", "2026-09-01")
	createTestEvent(t, s, u.ID, "Blood Drive", "2026-09-02")

	q := "cleanup"
	events, err := s.GetEvents(ctx, store.EventFilter{Query: &q})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Street Cleanup", events[0].Title)
}

func TestUpdateEvent(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	u := testutil.CreateTestUser(t, s, "organizer1", model.RoleMember)
	ev := createTestEvent(t, s, u.ID, "Street Cleanup", "2026-09-01")

	ev.Title = "Park Cleanup"
	ev.Venue = "Central Park"
	require.NoError(t, s.UpdateEvent(ctx, ev))

	got, err := s.GetEventByID(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, "Park Cleanup", got.Title)
	assert.Equal(t, "Central Park", got.Venue)
	assert.Equal(t, u.ID, got.CreatedBy)
}

func TestUpdateEventNotFound(t *testing.T) {
	s := testutil.NewTestStore(t)

	err := s.UpdateEvent(context.Background(), model.Event{
		ID: "missing", Title: "X", Venue: "Y", EventDate: "2026-09-01",
	})
	assert.ErrorContains(t, err, "not found")
}

func TestDeleteEvent(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	u := testutil.CreateTestUser(t, s, "organizer1", model.RoleMember)
	ev := createTestEvent(t, s, u.ID, "Street Cleanup", "2026-09-01")

	require.NoError(t, s.DeleteEvent(ctx, ev.ID))

	got, err := s.GetEventByID(ctx, ev.ID)
	assert.Error(t, err)
	assert.Nil(t, got)

	assert.Error(t, s.DeleteEvent(ctx, ev.ID))
}
