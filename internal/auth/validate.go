package auth

import (
	"errors"
	"regexp"
	"strings"
)

var (
	contactPattern = regexp.MustCompile(`^\d{10}$`)
	emailPattern   = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)
)

// Registration holds the raw form input for a new account.
type Registration struct {
	Username        string
	Password        string
	ConfirmPassword string
	Contact         string
	Email           string
	Role            string
}

// ValidateRegistration runs the input-shape checks in order and returns the
// first failure. It does not touch the store; duplicate-username rejection
// happens at user creation.
func ValidateRegistration(r Registration) error {
	username := strings.TrimSpace(r.Username)
	if username == "" {
		return errors.New("username is required")
	}
	if len(username) < 4 {
		return errors.New("username must be at least 4 characters long")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	if len(r.Password) < 6 {
		return errors.New("password must be at least 6 characters long")
	}
	if r.Password != r.ConfirmPassword {
		return errors.New("passwords do not match")
	}
	contact := strings.TrimSpace(r.Contact)
	if contact == "" {
		return errors.New("contact number is required")
	}
	if !contactPattern.MatchString(contact) {
		return errors.New("contact number must be 10 digits")
	}
	email := strings.TrimSpace(r.Email)
	if email == "" {
		return errors.New("email address is required")
	}
	if !emailPattern.MatchString(email) {
		return errors.New("email address is not valid")
	}
	return nil
}
