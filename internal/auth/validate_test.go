package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaaarruuu/communitydesk/internal/auth"
)

func validRegistration() auth.Registration {
	return auth.Registration{
		Username:        "resident1",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Contact:         "0123456789",
		Email:           "resident1@example.com",
		Role:            "Member",
	}
}

func TestValidateRegistrationOK(t *testing.T) {
	assert.NoError(t, auth.ValidateRegistration(validRegistration()))
}

func TestValidateRegistrationOrder(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*auth.Registration)
		wantErr string
	}{
		{
			"empty username",
			func(r *auth.Registration) { r.Username = "   " },
			"username is required",
		},
		{
			"short username",
			func(r *auth.Registration) { r.Username = "abc" },
			"username must be at least 4 characters long",
		},
		{
			"empty password",
			func(r *auth.Registration) { r.Password = "" },
			"password is required",
		},
		{
			"short password",
			func(r *auth.Registration) { r.Password = "abc12"; r.ConfirmPassword = "abc12" },
			"password must be at least 6 characters long",
		},
		{
			"password mismatch",
			func(r *auth.Registration) { r.ConfirmPassword = "different" },
			"passwords do not match",
		},
		{
			"empty contact",
			func(r *auth.Registration) { r.Contact = "" },
			"contact number is required",
		},
		{
			"short contact",
			func(r *auth.Registration) { r.Contact = "12345" },
			"contact number must be 10 digits",
		},
		{
			"contact with letters",
			func(r *auth.Registration) { r.Contact = "01234abcde" },
			"contact number must be 10 digits",
		},
		{
			"empty email",
			func(r *auth.Registration) { r.Email = "" },
			"email address is required",
		},
		{
			"email without at sign",
			func(r *auth.Registration) { r.Email = "not-an-email" },
			"email address is not valid",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validRegistration()
			tc.mutate(&r)
			err := auth.ValidateRegistration(r)
			require.Error(t, err)
			assert.EqualError(t, err, tc.wantErr)
		})
	}
}

// The first failing check wins even when several fields are invalid.
func TestValidateRegistrationFirstFailureWins(t *testing.T) {
	r := auth.Registration{
		Username: "ab",
		Password: "",
		Contact:  "bad",
		Email:    "bad",
	}
	err := auth.ValidateRegistration(r)
	require.Error(t, err)
	assert.EqualError(t, err, "username must be at least 4 characters long")
}
