package model

import "time"

// User role constants.
const (
	RoleAdmin  = "Admin"
	RoleMember = "Member"
)

// User is a registered account. PasswordHash holds a bcrypt hash; the
// cleartext password never touches the database.
type User struct {
	ID           string    `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	Contact      string    `json:"contact" db:"contact"`
	Email        string    `json:"email" db:"email"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// IsAdmin reports whether the user holds the Admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
