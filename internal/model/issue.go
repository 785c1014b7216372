package model

import "time"

// Issue status constants.
const (
	IssueStatusPending    = "Pending"
	IssueStatusInProgress = "In-Progress"
	IssueStatusCompleted  = "Completed"
	IssueStatusCancelled  = "Cancelled"
)

// Issue priority constants.
const (
	PriorityLow      = "Low"
	PriorityMedium   = "Medium"
	PriorityHigh     = "High"
	PriorityCritical = "Critical"
)

// IssueStatuses lists the valid issue lifecycle states in display order.
var IssueStatuses = []string{
	IssueStatusPending,
	IssueStatusInProgress,
	IssueStatusCompleted,
	IssueStatusCancelled,
}

// IssuePriorities lists the valid priorities in ascending severity.
var IssuePriorities = []string{
	PriorityLow,
	PriorityMedium,
	PriorityHigh,
	PriorityCritical,
}

// Issue is a citizen-reported community problem.
type Issue struct {
	ID           string    `json:"id" db:"id"`
	Category     string    `json:"category" db:"category"`
	Description  string    `json:"description" db:"description"`
	Location     string    `json:"location" db:"location"`
	ReporterID   string    `json:"reporter_id" db:"reporter_id"`
	Status       string    `json:"status" db:"status"`
	Priority     string    `json:"priority" db:"priority"`
	DateReported time.Time `json:"date_reported" db:"date_reported"`

	// ReporterName is populated by list queries that join with users.
	ReporterName string `json:"reporter_name,omitempty" db:"-"`
}

// OwnerID returns the id of the user who reported the issue.
// Implements auth.Ownable.
func (i Issue) OwnerID() string {
	return i.ReporterID
}
