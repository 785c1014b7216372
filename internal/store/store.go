package store

import (
	"context"

	"github.com/aaaarruuu/communitydesk/internal/model"
)

// EventFilter controls filtering and sorting for event queries.
type EventFilter struct {
	Query    *string // search title + venue + organizer
	Upcoming *bool   // true: event_date >= today, false: event_date < today
	SortBy   string  // "event_date", "title", "created_at"
	SortDesc bool
}

// IssueFilter controls filtering and sorting for issue queries.
type IssueFilter struct {
	Status   *string // one of model.IssueStatuses, or nil (all)
	Category *string // one of model.IssueCategories, or nil (all)
	Priority *string // one of model.IssuePriorities, or nil (all)
	Query    *string // search description + location
	SortBy   string  // "date_reported", "priority", "status", "category"
	SortDesc bool
}

// RepFilter controls filtering for representative queries.
type RepFilter struct {
	Category *string // one of model.RepSpecialties, or nil (all)
	Status   *string // one of model.RepStatuses, or nil (all)
}

// Store defines the persistence interface for users, events, issues,
// representatives, and assignments.
type Store interface {
	// === Users ===

	CreateUser(ctx context.Context, user model.User) error
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)

	// === Events ===

	CreateEvent(ctx context.Context, event model.Event) error
	UpdateEvent(ctx context.Context, event model.Event) error
	DeleteEvent(ctx context.Context, id string) error
	GetEventByID(ctx context.Context, id string) (*model.Event, error)
	GetEvents(ctx context.Context, filter EventFilter) ([]model.Event, error)

	// === Issues ===

	CreateIssue(ctx context.Context, issue model.Issue) error
	UpdateIssue(ctx context.Context, issue model.Issue) error
	UpdateIssueStatus(ctx context.Context, id string, status string) error
	DeleteIssue(ctx context.Context, id string) error
	GetIssueByID(ctx context.Context, id string) (*model.Issue, error)
	GetIssues(ctx context.Context, filter IssueFilter) ([]model.Issue, error)

	// === Representatives ===

	CreateRepresentative(ctx context.Context, rep model.Representative) error
	UpdateRepresentative(ctx context.Context, rep model.Representative) error
	DeleteRepresentative(ctx context.Context, id string) error
	GetRepresentativeByID(ctx context.Context, id string) (*model.Representative, error)
	GetRepresentatives(ctx context.Context, filter RepFilter) ([]model.Representative, error)

	// === Assignments ===

	AssignRepresentative(ctx context.Context, issueID, repID, notes string) error
	GetAssignmentByIssue(ctx context.Context, issueID string) (*model.Assignment, error)
	GetAssignmentsForRep(ctx context.Context, repID string) ([]model.RepAssignment, error)

	// === Dashboard ===

	GetDashboardStats(ctx context.Context) (model.DashboardStats, error)
}
