package model

import "time"

// AssignmentStatusAssigned is the status written on every (re)assignment.
const AssignmentStatusAssigned = "Assigned"

// Assignment links one issue to the representative currently responsible
// for it. At most one assignment exists per issue; re-assigning overwrites
// the existing row.
type Assignment struct {
	ID           string    `json:"id" db:"id"`
	IssueID      string    `json:"issue_id" db:"issue_id"`
	RepID        string    `json:"rep_id" db:"rep_id"`
	Status       string    `json:"status" db:"status"`
	Notes        string    `json:"notes" db:"notes"`
	AssignedDate time.Time `json:"assigned_date" db:"assigned_date"`
}

// RepAssignment is a joined view of an assignment with its issue details,
// used when listing a representative's workload.
type RepAssignment struct {
	IssueID          string    `json:"issue_id" db:"issue_id"`
	Category         string    `json:"category" db:"category"`
	Location         string    `json:"location" db:"location"`
	IssueStatus      string    `json:"issue_status" db:"issue_status"`
	AssignmentStatus string    `json:"assignment_status" db:"assignment_status"`
	AssignedDate     time.Time `json:"assigned_date" db:"assigned_date"`
}
