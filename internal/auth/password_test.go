package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaaarruuu/communitydesk/internal/auth"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"), "expected a bcrypt hash")

	assert.True(t, auth.CheckPassword(hash, "secret123"))
	assert.False(t, auth.CheckPassword(hash, "wrong"))
	assert.False(t, auth.CheckPassword(hash, ""))
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	h1, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	h2, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestCheckPasswordInvalidHash(t *testing.T) {
	assert.False(t, auth.CheckPassword("plaintext", "plaintext"))
}
