package context_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return e.NewContext(req, httptest.NewRecorder())
}

func TestGetRequestID_EmptyWithoutMiddleware(t *testing.T) {
	c := newEchoContext()
	assert.Empty(t, deliverycontext.GetRequestID(c))

	deliverycontext.SetRequestID(c, "req-42")
	assert.Equal(t, "req-42", deliverycontext.GetRequestID(c))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.DiscardHandler)
	scoped := fallback.With(slog.String("request_id", "r"))

	assert.Same(t, fallback, deliverycontext.GetLoggerOrDefault(context.Background(), fallback))

	ctx := deliverycontext.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, deliverycontext.GetLoggerOrDefault(ctx, fallback))
}

func TestPrincipal_RoundTrip(t *testing.T) {
	c := newEchoContext()

	_, ok := deliverycontext.GetPrincipal(c)
	assert.False(t, ok)

	want := deliverycontext.Principal{UserID: uuid.Must(uuid.NewV7()), Role: entity.RoleAdmin}
	deliverycontext.SetPrincipal(c, want)

	got, ok := deliverycontext.GetPrincipal(c)
	require.True(t, ok)
	assert.Equal(t, want, got)

	fromCtx, ok := deliverycontext.PrincipalFromContext(c.Request().Context())
	require.True(t, ok)
	assert.Equal(t, want, fromCtx)
}

func TestPrincipal_NilUserIsAnonymous(t *testing.T) {
	ctx := deliverycontext.WithPrincipal(context.Background(), deliverycontext.Principal{Role: entity.RoleUser})

	_, ok := deliverycontext.PrincipalFromContext(ctx)
	assert.False(t, ok)
}
