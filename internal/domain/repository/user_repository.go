// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"accounts/internal/domain/entity"
	"accounts/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrStaleUpdate is returned by conditional updates whose precondition no longer holds.
	ErrStaleUpdate = errors.New("record changed since it was read")
)

// UserRepository defines the persistence operations on user accounts.
// Implementations never hash: every hash field arrives already digested.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByEmailWithActiveReset retrieves the user only when a reset token is stored
	// and its expiry is after now. Both conditions are part of the same query.
	FindByEmailWithActiveReset(ctx context.Context, email string, now time.Time) (*entity.User, error)

	// Create persists a new user. A uniqueness violation on email or username
	// is reported as domainerrors.ErrDuplicateAccount.
	Create(ctx context.Context, user *entity.User) error

	// SetResetToken stores a reset token digest and its absolute expiry.
	SetResetToken(ctx context.Context, id uuid.UUID, tokenHash string, expiresAt time.Time) error

	// ConsumeResetToken sets the new password digest and clears the reset fields, provided the
	// stored digest still equals tokenHash and has not expired at now. Otherwise ErrStaleUpdate.
	ConsumeResetToken(ctx context.Context, id uuid.UUID, tokenHash, passwordHash string, now time.Time) error

	// MarkEmailConfirmed flips the confirmed flag. ErrStaleUpdate when it was already set.
	MarkEmailConfirmed(ctx context.Context, id uuid.UUID) error
}
