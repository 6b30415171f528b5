package service

import "context"

// ConfirmationMail carries what is needed to render an email confirmation message.
type ConfirmationMail struct {
	To   string
	Name string
	Link string
}

// PasswordResetMail carries what is needed to render a password reset message.
type PasswordResetMail struct {
	To   string
	Name string
	Link string
}

// Notifier sends account emails. Retries, if any, happen inside the implementation.
type Notifier interface {
	SendConfirmation(ctx context.Context, mail ConfirmationMail) error
	SendPasswordReset(ctx context.Context, mail PasswordResetMail) error
}
