package repository

import (
	"context"

	"accounts/internal/domain/entity"
	"accounts/internal/errors"
)

// ErrVerificationNotFound is returned when no pending confirmation exists for an email.
var ErrVerificationNotFound = errors.New("email verification not found")

// VerificationRepository stores the latest confirmation issuance per email.
type VerificationRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.EmailVerification, error)

	// Upsert replaces code and issue time for the email, inserting the row if needed.
	Upsert(ctx context.Context, verification *entity.EmailVerification) error

	DeleteByEmail(ctx context.Context, email string) error
}
