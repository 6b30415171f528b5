package service

import (
	"context"
	"time"
)

// AuthEventType names an account lifecycle transition.
type AuthEventType string

const (
	EventUserRegistered         AuthEventType = "user.registered"
	EventEmailConfirmed         AuthEventType = "user.email_confirmed"
	EventPasswordResetRequested AuthEventType = "user.password_reset_requested"
	EventPasswordReset          AuthEventType = "user.password_reset"
)

// AuthEvent is published after a successful account state transition.
type AuthEvent struct {
	RequestID  string        `json:"request_id,omitempty"` // For distributed tracing
	Type       AuthEventType `json:"type"`
	UserID     string        `json:"user_id"`
	Email      string        `json:"email"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends the event; callers treat failures as non-fatal.
	Publish(ctx context.Context, event *AuthEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
