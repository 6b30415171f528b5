package usecase

import (
	"context"

	"accounts/internal/domain/entity"

	"github.com/google/uuid"
)

// SeedAccountInput describes an account created out of band, already confirmed.
type SeedAccountInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Phone     string
	Password  string
	Role      entity.Role
}

// UserUsecase defines account lookups and administrative account creation.
type UserUsecase interface {
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// SeedAccount creates the account unless one with the same email exists.
	// created is false when the existing account was returned.
	SeedAccount(ctx context.Context, input SeedAccountInput) (user *entity.User, created bool, err error)
}
