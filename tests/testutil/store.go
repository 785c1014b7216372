package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/aaaarruuu/communitydesk/internal/auth"
	"github.com/aaaarruuu/communitydesk/internal/model"
	"github.com/aaaarruuu/communitydesk/internal/store"
)

// NewTestStore creates an in-memory SQLiteStore with all migrations applied.
// It automatically closes the store when the test completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}

// CreateTestUser inserts a user with the given role and returns it.
// The password is "secret123".
func CreateTestUser(t *testing.T, s *store.SQLiteStore, username, role string) model.User {
	t.Helper()

	hash, err := auth.HashPassword("secret123")
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	u := model.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		Contact:      "0123456789",
		Email:        username + "@example.com",
	}
	if err := s.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("creating test user %s: %v", username, err)
	}
	return u
}

// CreateTestIssue inserts an issue reported by the given user and
// returns it with generated fields filled in.
func CreateTestIssue(t *testing.T, s *store.SQLiteStore, reporterID, category string) model.Issue {
	t.Helper()

	issue := model.Issue{
		ID:          uuid.NewString(),
		Category:    category,
		Description: "test issue",
		Location:    "Block A",
		ReporterID:  reporterID,
		Status:      model.IssueStatusPending,
		Priority:    model.PriorityMedium,
	}
	if err := s.CreateIssue(context.Background(), issue); err != nil {
		t.Fatalf("creating test issue: %v", err)
	}
	got, err := s.GetIssueByID(context.Background(), issue.ID)
	if err != nil {
		t.Fatalf("reloading test issue: %v", err)
	}
	return *got
}

// CreateTestRep inserts an available representative with the given
// specialty and returns it.
func CreateTestRep(t *testing.T, s *store.SQLiteStore, name, specialty string) model.Representative {
	t.Helper()

	rep := model.Representative{
		ID:       uuid.NewString(),
		Name:     name,
		Category: specialty,
		Contact:  "0987654321",
		Status:   model.RepStatusAvailable,
	}
	if err := s.CreateRepresentative(context.Background(), rep); err != nil {
		t.Fatalf("creating test representative: %v", err)
	}
	return rep
}
