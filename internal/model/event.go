package model

import "time"

// Event is a scheduled community event.
type Event struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	EventDate   string    `json:"event_date" db:"event_date"` // YYYY-MM-DD
	EventTime   string    `json:"event_time" db:"event_time"` // HH:MM
	Description string    `json:"description" db:"description"`
	Venue       string    `json:"venue" db:"venue"`
	Organizer   string    `json:"organizer" db:"organizer"`
	CreatedBy   string    `json:"created_by" db:"created_by"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	// CreatorName is populated by list queries that join with users.
	CreatorName string `json:"creator_name,omitempty" db:"-"`
}

// OwnerID returns the id of the user who created the event.
// Implements auth.Ownable.
func (e Event) OwnerID() string {
	return e.CreatedBy
}

// IsUpcoming reports whether the event date is today or later.
func (e Event) IsUpcoming() bool {
	d, err := time.Parse("2006-01-02", e.EventDate)
	if err != nil {
		return false
	}
	today, _ := time.Parse("2006-01-02", time.Now().Format("2006-01-02"))
	return !d.Before(today)
}
