// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account that can submit proposals and reports.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username     string    // Unique login name.
	Email        string    // Unique contact email.
	PasswordHash string    // bcrypt hash of the user's password.
	UserType     UserType  // Either "user" or "admin"; fixed at registration.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// IsAdmin reports whether the user may review proposals.
func (u *User) IsAdmin() bool {
	return u != nil && u.UserType == UserTypeAdmin
}
