package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aaaarruuu/communitydesk/internal/model"
)

// CreateIssue inserts a new issue. Generates a UUID if ID is empty and
// defaults status to Pending and priority to Medium.
func (s *SQLiteStore) CreateIssue(ctx context.Context, issue model.Issue) error {
	if strings.TrimSpace(issue.Location) == "" {
		return fmt.Errorf("issue location must not be empty")
	}
	if strings.TrimSpace(issue.Description) == "" {
		return fmt.Errorf("issue description must not be empty")
	}
	if issue.ID == "" {
		issue.ID = uuid.New().String()
	}
	if issue.Category == "" {
		issue.Category = model.CategoryOther
	}
	if issue.Status == "" {
		issue.Status = model.IssueStatusPending
	}
	if issue.Priority == "" {
		issue.Priority = model.PriorityMedium
	}
	issue.DateReported = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO issues (
			id, category, description, location, reporter_id,
			status, priority, date_reported
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		issue.ID, issue.Category, issue.Description, issue.Location, issue.ReporterID,
		issue.Status, issue.Priority, issue.DateReported,
	)
	if err != nil {
		return fmt.Errorf("creating issue: %w", err)
	}
	return nil
}

// UpdateIssue updates an existing issue by ID. The reporter and reported
// timestamp are never changed.
func (s *SQLiteStore) UpdateIssue(ctx context.Context, issue model.Issue) error {
	if strings.TrimSpace(issue.Location) == "" {
		return fmt.Errorf("issue location must not be empty")
	}
	if strings.TrimSpace(issue.Description) == "" {
		return fmt.Errorf("issue description must not be empty")
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE issues SET
			category = ?, description = ?, location = ?, status = ?, priority = ?
		WHERE id = ?`,
		issue.Category, issue.Description, issue.Location, issue.Status, issue.Priority,
		issue.ID,
	)
	if err != nil {
		return fmt.Errorf("updating issue %s: %w", issue.ID, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("issue %s not found", issue.ID)
	}
	return nil
}

// UpdateIssueStatus sets the lifecycle status of an issue.
func (s *SQLiteStore) UpdateIssueStatus(
	ctx context.Context,
	id string,
	status string,
) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE issues SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return fmt.Errorf("updating status of issue %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("issue %s not found", id)
	}
	return nil
}

// DeleteIssue removes an issue by ID. Cascades to its assignment row.
func (s *SQLiteStore) DeleteIssue(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM issues WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting issue %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("issue %s not found", id)
	}
	return nil
}

// GetIssueByID retrieves a single issue by ID with the reporter's
// username joined in.
func (s *SQLiteStore) GetIssueByID(
	ctx context.Context,
	id string,
) (*model.Issue, error) {
	row := s.db.QueryRowxContext(ctx, `
		SELECT i.*, COALESCE(u.username, 'Unknown') AS reporter_name
		FROM issues i
		LEFT JOIN users u ON i.reporter_id = u.id
		WHERE i.id = ?`, id)

	issue, err := scanIssue(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("issue %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("getting issue %s: %w", id, err)
	}
	return &issue, nil
}

// GetIssues retrieves issues matching the filter, newest first by default,
// with the reporter's username joined in.
func (s *SQLiteStore) GetIssues(
	ctx context.Context,
	filter IssueFilter,
) ([]model.Issue, error) {
	var conditions []string
	var args []interface{}

	if filter.Status != nil {
		conditions = append(conditions, "i.status = ?")
		args = append(args, *filter.Status)
	}
	if filter.Category != nil {
		conditions = append(conditions, "i.category = ?")
		args = append(args, *filter.Category)
	}
	if filter.Priority != nil {
		conditions = append(conditions, "i.priority = ?")
		args = append(args, *filter.Priority)
	}
	if filter.Query != nil && *filter.Query != "" {
		conditions = append(conditions, "(i.description LIKE ? OR i.location LIKE ?)")
		q := "%" + *filter.Query + "%"
		args = append(args, q, q)
	}

	query := `
		SELECT i.*, COALESCE(u.username, 'Unknown') AS reporter_name
		FROM issues i
		LEFT JOIN users u ON i.reporter_id = u.id`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	sortBy := "i.date_reported"
	direction := "DESC"
	if filter.SortBy != "" {
		allowed := map[string]string{
			"date_reported": "i.date_reported",
			"priority":      "i.priority",
			"status":        "i.status",
			"category":      "i.category",
		}
		if col, ok := allowed[filter.SortBy]; ok {
			sortBy = col
			direction = "ASC"
			if filter.SortDesc {
				direction = "DESC"
			}
		}
	}
	query += fmt.Sprintf(" ORDER BY %s %s", sortBy, direction)

	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying issues: %w", err)
	}
	defer rows.Close()

	var issues []model.Issue
	for rows.Next() {
		issue, err := scanIssue(rows)
		if err != nil {
			return nil, err
		}
		issues = append(issues, issue)
	}
	return issues, rows.Err()
}

// scanIssue scans an issue row (with joined reporter_name) from a scanner.
func scanIssue(row interface{ Scan(dest ...interface{}) error }) (model.Issue, error) {
	var i model.Issue
	err := row.Scan(
		&i.ID, &i.Category, &i.Description, &i.Location, &i.ReporterID,
		&i.Status, &i.Priority, &i.DateReported,
		&i.ReporterName,
	)
	if err != nil {
		return model.Issue{}, fmt.Errorf("scanning issue row: %w", err)
	}
	return i, nil
}
