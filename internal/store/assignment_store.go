package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aaaarruuu/communitydesk/internal/model"
)

// AssignRepresentative records the representative responsible for an issue.
// The assignment row is upserted atomically: assigning an already-assigned
// issue overwrites the representative and notes instead of creating a
// second row. The parent issue's status is forced to In-Progress in the
// same transaction, so both changes commit or neither does.
func (s *SQLiteStore) AssignRepresentative(
	ctx context.Context,
	issueID, repID, notes string,
) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning assignment transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO assignments (id, issue_id, rep_id, status, notes, assigned_date)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(issue_id) DO UPDATE SET
			rep_id = excluded.rep_id,
			status = excluded.status,
			notes = excluded.notes,
			assigned_date = excluded.assigned_date`,
		uuid.New().String(), issueID, repID,
		model.AssignmentStatusAssigned, notes, now,
	)
	if err != nil {
		return fmt.Errorf("upserting assignment for issue %s: %w", issueID, err)
	}

	result, err := tx.ExecContext(ctx,
		"UPDATE issues SET status = ? WHERE id = ?",
		model.IssueStatusInProgress, issueID,
	)
	if err != nil {
		return fmt.Errorf("marking issue %s in progress: %w", issueID, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("issue %s not found", issueID)
	}

	return tx.Commit()
}

// GetAssignmentByIssue retrieves the assignment for an issue.
// Returns (nil, nil) when the issue is unassigned.
func (s *SQLiteStore) GetAssignmentByIssue(
	ctx context.Context,
	issueID string,
) (*model.Assignment, error) {
	var a model.Assignment
	err := s.db.GetContext(ctx, &a,
		"SELECT * FROM assignments WHERE issue_id = ?", issueID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting assignment for issue %s: %w", issueID, err)
	}
	return &a, nil
}

// GetAssignmentsForRep lists a representative's assignments joined with
// their issue details, most recently assigned first.
func (s *SQLiteStore) GetAssignmentsForRep(
	ctx context.Context,
	repID string,
) ([]model.RepAssignment, error) {
	var assignments []model.RepAssignment
	err := s.db.SelectContext(ctx, &assignments, `
		SELECT i.id AS issue_id, i.category, i.location,
			i.status AS issue_status, a.status AS assignment_status,
			a.assigned_date
		FROM assignments a
		JOIN issues i ON a.issue_id = i.id
		WHERE a.rep_id = ?
		ORDER BY a.assigned_date DESC`, repID)
	if err != nil {
		return nil, fmt.Errorf("querying assignments for rep %s: %w", repID, err)
	}
	return assignments, nil
}
