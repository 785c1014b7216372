package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaaarruuu/communitydesk/internal/auth"
	"github.com/aaaarruuu/communitydesk/internal/model"
)

type fakeUserLookup struct {
	users map[string]model.User
}

func (f *fakeUserLookup) GetUserByUsername(
	_ context.Context,
	username string,
) (*model.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	lookup := &fakeUserLookup{users: map[string]model.User{
		"resident1": {
			ID:           "u1",
			Username:     "resident1",
			PasswordHash: hash,
			Role:         model.RoleMember,
			Contact:      "0123456789",
			Email:        "resident1@example.com",
		},
	}}

	t.Run("valid credentials", func(t *testing.T) {
		session, err := auth.Login(context.Background(), lookup, "resident1", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "u1", session.UserID)
		assert.Equal(t, "resident1", session.Username)
		assert.Equal(t, model.RoleMember, session.Role)
		assert.False(t, session.IsAdmin())
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := auth.Login(context.Background(), lookup, "resident1", "nope")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := auth.Login(context.Background(), lookup, "ghost", "secret123")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("empty credentials", func(t *testing.T) {
		_, err := auth.Login(context.Background(), lookup, "", "")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}
