package models

import "time"

// User represents a staff account used for authentication and authorization.
// Credential material never leaves trusted boundaries; the rest of the
// application only ever consumes the resolved Principal.
type User struct {
	// ID is the opaque unique identifier of the account.
	ID string `json:"id"`

	// Name is the display name of the staff member.
	Name string `json:"name"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the account password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// Role determines which staff operations the account may perform.
	Role Role `json:"role"`

	// LastLogin records the most recent successful authentication.
	LastLogin *time.Time `json:"lastLogin,omitempty"`

	// CreatedAt is the account creation timestamp.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Principal is the resolved identity attached to an authenticated request.
// Downstream code authorizes against it and never touches the User record.
type Principal struct {
	UserID string
	Role   Role
}
