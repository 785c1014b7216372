package model

// DashboardStats holds the aggregate counts exposed by the dashboard_stats
// view: issue counts by lifecycle state, event counts relative to today,
// and the number of available representatives.
type DashboardStats struct {
	PendingIssues    int `db:"pending_issues"`
	InProgressIssues int `db:"inprogress_issues"`
	CompletedIssues  int `db:"completed_issues"`
	UpcomingEvents   int `db:"upcoming_events"`
	PastEvents       int `db:"past_events"`
	AvailableReps    int `db:"available_reps"`
}
