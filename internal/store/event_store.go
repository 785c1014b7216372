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

// CreateEvent inserts a new event. Generates a UUID if ID is empty.
func (s *SQLiteStore) CreateEvent(ctx context.Context, event model.Event) error {
	if strings.TrimSpace(event.Title) == "" {
		return fmt.Errorf("event title must not be empty")
	}
	if strings.TrimSpace(event.Venue) == "" {
		return fmt.Errorf("event venue must not be empty")
	}
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO events (
			id, title, event_date, event_time, description,
			venue, organizer, created_by, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		event.ID, event.Title, event.EventDate, event.EventTime, event.Description,
		event.Venue, event.Organizer, event.CreatedBy, event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating event: %w", err)
	}
	return nil
}

// UpdateEvent updates an existing event by ID. The creator is never changed.
func (s *SQLiteStore) UpdateEvent(ctx context.Context, event model.Event) error {
	if strings.TrimSpace(event.Title) == "" {
		return fmt.Errorf("event title must not be empty")
	}
	if strings.TrimSpace(event.Venue) == "" {
		return fmt.Errorf("event venue must not be empty")
	}
	event.UpdatedAt = time.Now().UTC()

	result, err := s.db.ExecContext(ctx, `
		UPDATE events SET
			title = ?, event_date = ?, event_time = ?, description = ?,
			venue = ?, organizer = ?, updated_at = ?
		WHERE id = ?`,
		event.Title, event.EventDate, event.EventTime, event.Description,
		event.Venue, event.Organizer, event.UpdatedAt,
		event.ID,
	)
	if err != nil {
		return fmt.Errorf("updating event %s: %w", event.ID, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("event %s not found", event.ID)
	}
	return nil
}

// DeleteEvent removes an event by ID.
func (s *SQLiteStore) DeleteEvent(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM events WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting event %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("event %s not found", id)
	}
	return nil
}

// GetEventByID retrieves a single event by ID.
func (s *SQLiteStore) GetEventByID(
	ctx context.Context,
	id string,
) (*model.Event, error) {
	row := s.db.QueryRowxContext(ctx, `
		SELECT e.*, COALESCE(u.username, 'Unknown') AS creator_name
		FROM events e
		LEFT JOIN users u ON e.created_by = u.id
		WHERE e.id = ?`, id)

	event, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("event %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("getting event %s: %w", id, err)
	}
	return &event, nil
}

// GetEvents retrieves events matching the filter, with the creator's
// username joined in.
func (s *SQLiteStore) GetEvents(
	ctx context.Context,
	filter EventFilter,
) ([]model.Event, error) {
	var conditions []string
	var args []interface{}

	if filter.Query != nil && *filter.Query != "" {
		conditions = append(conditions,
			"(e.title LIKE ? OR e.venue LIKE ? OR e.organizer LIKE ?)")
		q := "%" + *filter.Query + "%"
		args = append(args, q, q, q)
	}
	if filter.Upcoming != nil {
		if *filter.Upcoming {
			conditions = append(conditions, "e.event_date >= date('now')")
		} else {
			conditions = append(conditions, "e.event_date < date('now')")
		}
	}

	query := `
		SELECT e.*, COALESCE(u.username, 'Unknown') AS creator_name
		FROM events e
		LEFT JOIN users u ON e.created_by = u.id`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	sortBy := "e.event_date"
	if filter.SortBy != "" {
		allowed := map[string]string{
			"event_date": "e.event_date",
			"title":      "e.title",
			"created_at": "e.created_at",
		}
		if col, ok := allowed[filter.SortBy]; ok {
			sortBy = col
		}
	}
	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s", sortBy, direction)

	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

// scanEvent scans an event row (with joined creator_name) from a scanner.
func scanEvent(row interface{ Scan(dest ...interface{}) error }) (model.Event, error) {
	var e model.Event
	err := row.Scan(
		&e.ID, &e.Title, &e.EventDate, &e.EventTime, &e.Description,
		&e.Venue, &e.Organizer, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
		&e.CreatorName,
	)
	if err != nil {
		return model.Event{}, fmt.Errorf("scanning event row: %w", err)
	}
	return e, nil
}
