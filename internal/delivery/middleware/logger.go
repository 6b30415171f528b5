// Package middleware holds the transport-agnostic echo middleware shared by every HTTP delivery.
package middleware

import (
	"log/slog"
	"time"

	"accounts/config"
	deliverycontext "accounts/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access-log line per request.
// Successful requests are only logged in debug mode; 4xx and 5xx are always logged.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			// Render now so the logged status matches what the client gets.
			c.Error(err)
		}

		m.logRequest(c, start, err)

		return nil
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	level := slog.LevelInfo
	switch {
	case res.Status >= 500:
		level = slog.LevelError
	case res.Status >= 400:
		level = slog.LevelWarn
	case !m.debug:
		return
	}

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	// Query strings carry confirmation tokens, so they are only logged in debug mode.
	if m.debug && req.URL.RawQuery != "" {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}

	if p, ok := deliverycontext.GetPrincipal(c); ok {
		fields = append(fields, slog.String("user_id", p.UserID.String()))
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	m.logger.LogAttrs(req.Context(), level, "HTTP Request", fields...)
}
