// Package persistencetest opens throwaway in-memory databases for tests.
package persistencetest

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"accounts/config"
	"accounts/internal/infra/persistence/model"
	"accounts/internal/infra/persistence/postgres"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB returns a migrated in-memory SQLite database configured like the production pool.
// A single connection keeps the memory database alive and serializes transactions.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return postgres.Configure(db, logger, &config.Config{})
}
