// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"accounts/internal/domain/entity"
	"accounts/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RegisterInput defines the data required to register a new account.
// Avatar holds the raw uploaded image and may be empty.
type RegisterInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Phone     string
	Password  string
	Avatar    []byte
}

// ResetPasswordInput carries the reset token received by email.
type ResetPasswordInput struct {
	Email       string
	NewPassword string
	Token       string
}

// --- Output DTOs ---

// LoginOutput returns the authenticated user and the session token.
type LoginOutput struct {
	User  *entity.User
	Token service.SessionToken
}

// AuthUsecase covers the credential lifecycle: login, registration,
// password reset and email confirmation.
type AuthUsecase interface {
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)

	// ForgotPassword reports true for unknown emails too; false only when the mail could not be sent.
	ForgotPassword(ctx context.Context, email string) (bool, error)
	ResetPassword(ctx context.Context, input ResetPasswordInput) (bool, error)

	ConfirmEmail(ctx context.Context, token string) (bool, error)
	ResendConfirmation(ctx context.Context, userID uuid.UUID) (bool, error)

	// Me returns the account of the authenticated caller.
	Me(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
