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

// ErrUsernameTaken is returned by CreateUser when the username is already
// registered. The existing row is left unmodified.
var ErrUsernameTaken = errors.New("username already exists")

// CreateUser inserts a new user. The PasswordHash field must already hold
// a bcrypt hash. Generates a UUID if ID is empty.
func (s *SQLiteStore) CreateUser(ctx context.Context, user model.User) error {
	if strings.TrimSpace(user.Username) == "" {
		return fmt.Errorf("username must not be empty")
	}
	if user.PasswordHash == "" {
		return fmt.Errorf("password hash must not be empty")
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Role == "" {
		user.Role = model.RoleMember
	}
	user.CreatedAt = time.Now().UTC()

	taken, err := s.UsernameExists(ctx, user.Username)
	if err != nil {
		return err
	}
	if taken {
		return ErrUsernameTaken
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO users (id, username, password_hash, role, contact, email, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		user.ID, user.Username, user.PasswordHash, user.Role,
		user.Contact, user.Email, user.CreatedAt,
	)
	if err != nil {
		// The UNIQUE constraint backs the pre-check against races.
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrUsernameTaken
		}
		return fmt.Errorf("creating user %s: %w", user.Username, err)
	}
	return nil
}

// GetUserByUsername retrieves a user by username. Returns (nil, nil) when
// no such user exists.
func (s *SQLiteStore) GetUserByUsername(
	ctx context.Context,
	username string,
) (*model.User, error) {
	var user model.User
	err := s.db.GetContext(ctx, &user,
		"SELECT * FROM users WHERE username = ?", username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user %s: %w", username, err)
	}
	return &user, nil
}

// UsernameExists reports whether a user with the given username exists.
func (s *SQLiteStore) UsernameExists(
	ctx context.Context,
	username string,
) (bool, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM users WHERE username = ?", username)
	if err != nil {
		return false, fmt.Errorf("checking username %s: %w", username, err)
	}
	return count > 0, nil
}
