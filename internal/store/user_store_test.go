package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaaarruuu/communitydesk/internal/model"
	"github.com/aaaarruuu/communitydesk/internal/store"
	"github.com/aaaarruuu/communitydesk/tests/testutil"
)

func TestCreateAndGetUser(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	u := testutil.CreateTestUser(t, s, "resident1", model.RoleMember)

	got, err := s.GetUserByUsername(ctx, "resident1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, model.RoleMember, got.Role)
	assert.Equal(t, "0123456789", got.Contact)
	assert.NotEmpty(t, got.PasswordHash)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestGetUserByUsernameMissing(t *testing.T) {
	s := testutil.NewTestStore(t)

	got, err := s.GetUserByUsername(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	first := testutil.CreateTestUser(t, s, "resident1", model.RoleMember)

	err := s.CreateUser(ctx, model.User{
		Username:     "resident1",
		PasswordHash: "hash",
		Role:         model.RoleAdmin,
		Contact:      "1111111111",
		Email:        "dup@example.com",
	})
	assert.ErrorIs(t, err, store.ErrUsernameTaken)

	// The existing account is untouched.
	got, getErr := s.GetUserByUsername(ctx, "resident1")
	require.NoError(t, getErr)
	require.NotNil(t, got)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, model.RoleMember, got.Role)
}

func TestUsernameExists(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	testutil.CreateTestUser(t, s, "resident1", model.RoleMember)

	exists, err := s.UsernameExists(ctx, "resident1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.UsernameExists(ctx, "ghost")
	require.NoError(t, err)
	assert.False(t, exists)
}
