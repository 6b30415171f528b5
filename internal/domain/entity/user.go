package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account. PasswordHash and ResetTokenHash only ever hold digests.
type User struct {
	ID               uuid.UUID
	FirstName        string
	LastName         string
	Username         string
	Email            string
	Phone            string
	Avatar           string
	Role             Role
	PasswordHash     string
	IsEmailConfirmed bool
	ResetTokenHash   string
	ResetTokenExpiry *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// FullName joins first and last name for greetings.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// HasActiveReset reports whether a reset token was issued and has not yet expired at now.
func (u *User) HasActiveReset(now time.Time) bool {
	return u.ResetTokenHash != "" && u.ResetTokenExpiry != nil && u.ResetTokenExpiry.After(now)
}
