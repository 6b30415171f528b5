package middleware

import (
	"log/slog"
	"strings"

	"accounts/internal/delivery/api/response"
	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Tokens service.TokenIssuer
	Logger *slog.Logger
}

// AuthMiddleware authenticates bearer session tokens and guards routes by role.
type AuthMiddleware struct {
	tokens service.TokenIssuer
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: params.Tokens,
		logger: params.Logger,
	}
}

// Authenticate rejects requests without a valid ACCESS token and stores the caller otherwise.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, bearerPrefix)
		if !ok || strings.TrimSpace(token) == "" {
			return unauthorized(c)
		}

		claims, err := m.tokens.VerifySession(strings.TrimSpace(token))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected session token", slog.Any("error", err))

			return unauthorized(c)
		}

		deliverycontext.SetPrincipal(c, deliverycontext.Principal{
			UserID: claims.UserID,
			Role:   claims.Role,
		})

		return next(c)
	}
}

// RequireRole admits only callers whose role is in roles. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := deliverycontext.GetPrincipal(c)
			if !ok || !allowed.Contains(p.Role) {
				return unauthorized(c)
			}

			return next(c)
		}
	}
}

func unauthorized(c echo.Context) error {
	return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
}
