package service

import (
	"accounts/internal/domain/entity"
	"accounts/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenType distinguishes session tokens from confirmation tokens.
type TokenType string

const (
	TokenTypeAccess  TokenType = "ACCESS"
	TokenTypeConfirm TokenType = "CONFIRM"
)

var (
	// ErrTokenExpired is returned when a token is well formed but past its expiry.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenMalformed is returned for bad signatures, bad shapes or a wrong token type.
	ErrTokenMalformed = errors.New("token malformed")
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID   `json:"userId,omitzero"`
	Role   entity.Role `json:"role,omitempty"`
	Email  string      `json:"email,omitempty"`
	Code   string      `json:"code,omitempty"`
	Type   TokenType   `json:"type"`
	jwt.RegisteredClaims
}

// SessionToken is returned to clients after login.
type SessionToken struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// TokenIssuer creates and verifies signed tokens.
type TokenIssuer interface {
	// IssueSession signs {userId, role, type: ACCESS}.
	IssueSession(userID uuid.UUID, role entity.Role) (SessionToken, error)

	// IssueConfirmation signs {email, code, type: CONFIRM}.
	IssueConfirmation(email, code string) (string, error)

	// Verify checks signature and expiry of either token type.
	// It returns ErrTokenExpired or ErrTokenMalformed.
	Verify(token string) (*Claims, error)

	// VerifySession is Verify restricted to ACCESS tokens.
	VerifySession(token string) (*Claims, error)

	// VerifyConfirmation is Verify restricted to CONFIRM tokens.
	VerifyConfirmation(token string) (*Claims, error)
}
