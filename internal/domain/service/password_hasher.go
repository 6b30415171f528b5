// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted digest of a password or reset token.
	Hash(secret string) (string, error)

	// Check reports whether secret matches digest. It returns false when either is empty.
	Check(secret, digest string) bool

	// ValidatePasswordStrength checks a plaintext password against the configured policy.
	ValidatePasswordStrength(password string) error
}

// SecretGenerator produces random material for reset tokens and verification codes.
type SecretGenerator interface {
	// RandomToken returns hex-encoded random bytes suitable for a reset token.
	RandomToken() (string, error)

	// RandomDigits returns n random decimal digits.
	RandomDigits(n int) (string, error)
}
