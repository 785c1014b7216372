// Package auth holds the session identity, ownership-gated authorization,
// password hashing, and registration validation shared by all screens.
package auth

import "github.com/aaaarruuu/communitydesk/internal/model"

// Session is the authenticated user's identity, held by the application
// root for the process lifetime.
type Session struct {
	UserID   string
	Username string
	Role     string
	Contact  string
	Email    string
}

// NewSession builds a session from an authenticated user record.
func NewSession(u model.User) Session {
	return Session{
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role,
		Contact:  u.Contact,
		Email:    u.Email,
	}
}

// IsAdmin reports whether the session user holds the Admin role.
func (s Session) IsAdmin() bool {
	return s.Role == model.RoleAdmin
}
