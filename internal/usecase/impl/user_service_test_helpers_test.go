package impl

import (
	"io"
	"log/slog"
	"time"

	"accounts/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:           12,
			ResetTokenTTL:        time.Hour,
			ConfirmationCooldown: 15 * time.Minute,
			PublicBaseURL:        "https://app.example.com",
		},
	}
}
