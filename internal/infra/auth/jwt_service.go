package auth

import (
	"time"

	"accounts/config"
	"accounts/internal/domain/entity"
	"accounts/internal/domain/service"
	"accounts/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtIssuer signs session and confirmation tokens with HS256, one secret per token type.
type jwtIssuer struct {
	accessSecret  []byte
	confirmSecret []byte
	accessTTL     time.Duration
	confirmTTL    time.Duration
	now           func() time.Time
}

// NewJWTIssuer is the constructor for the TokenIssuer.
func NewJWTIssuer(cfg *config.Config) (service.TokenIssuer, error) {
	return newJWTIssuer(cfg, time.Now)
}

func newJWTIssuer(cfg *config.Config, now func() time.Time) (*jwtIssuer, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Confirm == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.Auth == nil || cfg.Auth.AccessTokenTTL <= 0 || cfg.Auth.ConfirmTokenTTL <= 0 {
		return nil, errors.New("token TTLs must be positive")
	}

	return &jwtIssuer{
		accessSecret:  []byte(cfg.SecretKey.Access),
		confirmSecret: []byte(cfg.SecretKey.Confirm),
		accessTTL:     cfg.Auth.AccessTokenTTL,
		confirmTTL:    cfg.Auth.ConfirmTokenTTL,
		now:           now,
	}, nil
}

// IssueSession signs an ACCESS token for the user.
func (s *jwtIssuer) IssueSession(userID uuid.UUID, role entity.Role) (service.SessionToken, error) {
	claims := &service.Claims{
		UserID:           userID,
		Role:             role,
		Type:             service.TokenTypeAccess,
		RegisteredClaims: s.registered(userID.String(), s.accessTTL),
	}

	signed, err := s.sign(claims, s.accessSecret)
	if err != nil {
		return service.SessionToken{}, err
	}

	return service.SessionToken{
		AccessToken: signed,
		ExpiresIn:   int64(s.accessTTL / time.Second),
	}, nil
}

// IssueConfirmation signs a CONFIRM token bound to the email and the current verification code.
func (s *jwtIssuer) IssueConfirmation(email, code string) (string, error) {
	claims := &service.Claims{
		Email:            email,
		Code:             code,
		Type:             service.TokenTypeConfirm,
		RegisteredClaims: s.registered(email, s.confirmTTL),
	}

	return s.sign(claims, s.confirmSecret)
}

// Verify parses either token type, picking the secret from the type claim.
func (s *jwtIssuer) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, s.keyFor,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Wrap(service.ErrTokenExpired, err.Error())
		}

		return nil, errors.Wrap(service.ErrTokenMalformed, err.Error())
	}

	return claims, nil
}

// VerifySession accepts ACCESS tokens only.
func (s *jwtIssuer) VerifySession(tokenString string) (*service.Claims, error) {
	return s.verifyType(tokenString, service.TokenTypeAccess)
}

// VerifyConfirmation accepts CONFIRM tokens only.
func (s *jwtIssuer) VerifyConfirmation(tokenString string) (*service.Claims, error) {
	return s.verifyType(tokenString, service.TokenTypeConfirm)
}

func (s *jwtIssuer) verifyType(tokenString string, want service.TokenType) (*service.Claims, error) {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Type != want {
		return nil, errors.Wrapf(service.ErrTokenMalformed, "unexpected token type %q", claims.Type)
	}

	return claims, nil
}

func (s *jwtIssuer) keyFor(token *jwt.Token) (any, error) {
	claims, ok := token.Claims.(*service.Claims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	switch claims.Type {
	case service.TokenTypeAccess:
		return s.accessSecret, nil
	case service.TokenTypeConfirm:
		return s.confirmSecret, nil
	default:
		return nil, errors.Errorf("unknown token type %q", claims.Type)
	}
}

func (s *jwtIssuer) registered(subject string, ttl time.Duration) jwt.RegisteredClaims {
	now := s.now()

	return jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

func (s *jwtIssuer) sign(claims *service.Claims, secret []byte) (string, error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}
