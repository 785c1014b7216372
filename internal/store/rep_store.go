package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/aaaarruuu/communitydesk/internal/model"
)

// CreateRepresentative inserts a new representative. Generates a UUID if
// ID is empty and defaults status to Available.
func (s *SQLiteStore) CreateRepresentative(
	ctx context.Context,
	rep model.Representative,
) error {
	if strings.TrimSpace(rep.Name) == "" {
		return fmt.Errorf("representative name must not be empty")
	}
	if strings.TrimSpace(rep.Contact) == "" {
		return fmt.Errorf("representative contact must not be empty")
	}
	if rep.ID == "" {
		rep.ID = uuid.New().String()
	}
	if rep.Category == "" {
		rep.Category = model.SpecialtyOther
	}
	if rep.Status == "" {
		rep.Status = model.RepStatusAvailable
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO representatives (id, name, category, contact, email, status)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rep.ID, rep.Name, rep.Category, rep.Contact, rep.Email, rep.Status,
	)
	if err != nil {
		return fmt.Errorf("creating representative: %w", err)
	}
	return nil
}

// UpdateRepresentative updates an existing representative by ID.
func (s *SQLiteStore) UpdateRepresentative(
	ctx context.Context,
	rep model.Representative,
) error {
	if strings.TrimSpace(rep.Name) == "" {
		return fmt.Errorf("representative name must not be empty")
	}
	if strings.TrimSpace(rep.Contact) == "" {
		return fmt.Errorf("representative contact must not be empty")
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE representatives SET
			name = ?, category = ?, contact = ?, email = ?, status = ?
		WHERE id = ?`,
		rep.Name, rep.Category, rep.Contact, rep.Email, rep.Status,
		rep.ID,
	)
	if err != nil {
		return fmt.Errorf("updating representative %s: %w", rep.ID, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("representative %s not found", rep.ID)
	}
	return nil
}

// DeleteRepresentative removes a representative by ID.
func (s *SQLiteStore) DeleteRepresentative(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM representatives WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting representative %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("representative %s not found", id)
	}
	return nil
}

// GetRepresentativeByID retrieves a single representative by ID.
func (s *SQLiteStore) GetRepresentativeByID(
	ctx context.Context,
	id string,
) (*model.Representative, error) {
	var rep model.Representative
	err := s.db.GetContext(ctx, &rep,
		"SELECT * FROM representatives WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("representative %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("getting representative %s: %w", id, err)
	}
	return &rep, nil
}

// GetRepresentatives retrieves representatives matching the filter,
// ordered by status then name so available ones list first.
func (s *SQLiteStore) GetRepresentatives(
	ctx context.Context,
	filter RepFilter,
) ([]model.Representative, error) {
	var conditions []string
	var args []interface{}

	if filter.Category != nil {
		conditions = append(conditions, "category = ?")
		args = append(args, *filter.Category)
	}
	if filter.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, *filter.Status)
	}

	query := "SELECT * FROM representatives"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY status, name"

	var reps []model.Representative
	if err := s.db.SelectContext(ctx, &reps, query, args...); err != nil {
		return nil, fmt.Errorf("querying representatives: %w", err)
	}
	return reps, nil
}
