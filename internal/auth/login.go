package auth

import (
	"context"
	"errors"

	"github.com/aaaarruuu/communitydesk/internal/model"
)

// ErrInvalidCredentials is returned when the username is unknown or the
// password does not match. Callers should not distinguish the two cases.
var ErrInvalidCredentials = errors.New("invalid username or password")

// UserLookup is the slice of the store needed to authenticate.
type UserLookup interface {
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
}

// Login verifies the credentials against the store and returns a session
// identity on success.
func Login(
	ctx context.Context,
	users UserLookup,
	username, password string,
) (Session, error) {
	if username == "" || password == "" {
		return Session{}, ErrInvalidCredentials
	}

	user, err := users.GetUserByUsername(ctx, username)
	if err != nil {
		return Session{}, err
	}
	if user == nil || !CheckPassword(user.PasswordHash, password) {
		return Session{}, ErrInvalidCredentials
	}

	return NewSession(*user), nil
}
