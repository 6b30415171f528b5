// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"accounts/config"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/service"
	"accounts/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

const defaultBcryptCost = 12

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher builds the hasher from the auth and passwordStrength config sections.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := defaultBcryptCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	var policy config.PasswordStrengthConfig
	if cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// Hash generates a salted bcrypt digest. bcrypt generates the salt itself.
func (h *bcryptHasher) Hash(secret string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt hash failed")
	}

	return string(digest), nil
}

// Check compares secret with a bcrypt digest. Empty input on either side never matches.
func (h *bcryptHasher) Check(secret, digest string) bool {
	if secret == "" || digest == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}

// ValidatePasswordStrength applies the configured policy and reports the first violation.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	length := utf8.RuneCountInString(password)

	if h.policy.MinLength > 0 && length < h.policy.MinLength {
		return h.violation("must be at least %d characters long", h.policy.MinLength)
	}
	// bcrypt reads at most 72 bytes
	if h.policy.MaxLength > 0 && len(password) > h.policy.MaxLength {
		return h.violation("must be at most %d bytes long", h.policy.MaxLength)
	}
	if h.policy.RequireLowercase && !hasRune(password, unicode.IsLower) {
		return h.violation("must contain at least one lowercase letter")
	}
	if h.policy.RequireUppercase && !hasRune(password, unicode.IsUpper) {
		return h.violation("must contain at least one uppercase letter")
	}
	if h.policy.RequireNumbers && !hasRune(password, unicode.IsDigit) {
		return h.violation("must contain at least one number")
	}
	if h.policy.RequireSpecial && !hasRune(password, isSpecial) {
		return h.violation("must contain at least one special character")
	}

	return nil
}

func (h *bcryptHasher) violation(format string, args ...any) error {
	detail := "password " + fmt.Sprintf(format, args...)

	return errors.WithStack(domainerrors.ErrPasswordStrength.WithDetails(detail))
}

func hasRune(s string, pred func(rune) bool) bool {
	return strings.IndexFunc(s, pred) >= 0
}

func isSpecial(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
