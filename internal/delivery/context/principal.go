package context

import (
	"context"

	"accounts/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Principal is the caller identified by a verified session token.
type Principal struct {
	UserID uuid.UUID
	Role   entity.Role
}

// SetPrincipal stores p on c and on the request context.
func SetPrincipal(c echo.Context, p Principal) {
	c.Set(string(KeyPrincipal), p)
	c.SetRequest(c.Request().WithContext(WithPrincipal(c.Request().Context(), p)))
}

// GetPrincipal returns the authenticated caller of c.
func GetPrincipal(c echo.Context) (Principal, bool) {
	p, ok := c.Get(string(KeyPrincipal)).(Principal)

	return p, ok && p.UserID != uuid.Nil
}

// WithPrincipal returns a new context carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, KeyPrincipal, p)
}

// PrincipalFromContext returns the caller stored by WithPrincipal.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(KeyPrincipal).(Principal)

	return p, ok && p.UserID != uuid.Nil
}
