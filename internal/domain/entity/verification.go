package entity

import "time"

// EmailVerification is the pending confirmation issued for an email address.
// Code identifies the latest issuance; older confirmation links carry a stale code.
type EmailVerification struct {
	Email    string
	Code     string
	IssuedAt time.Time
}

// IssuedWithin reports whether the record was issued less than window before now.
func (v *EmailVerification) IssuedWithin(window time.Duration, now time.Time) bool {
	return now.Sub(v.IssuedAt) < window
}
