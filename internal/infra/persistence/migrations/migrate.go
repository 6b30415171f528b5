// Package migrations applies the embedded SQL schema with golang-migrate.
package migrations

import (
	"context"
	"embed"
	"log/slog"
	"strings"

	"accounts/config"
	"accounts/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	// Register pgx/v5 database driver for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/fx"
)

//go:embed sql/*.sql
var sqlFS embed.FS

// runner is the subset of *migrate.Migrate the Migrator needs.
type runner interface {
	Up() error
	Down() error
	Version() (version uint, dirty bool, err error)
	Close() (source error, database error)
}

// Migrator wraps golang-migrate for schema management.
type Migrator struct {
	m runner
}

// NewMigrator opens the embedded source against databaseURL.
// postgres:// and postgresql:// URLs are rewritten to the pgx5:// scheme.
func NewMigrator(databaseURL string) (*Migrator, error) {
	if databaseURL == "" {
		return nil, errors.New("migration database URL is empty")
	}

	source, err := iofs.New(sqlFS, "sql")
	if err != nil {
		return nil, errors.Wrap(err, "create migration source")
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, pgx5URL(databaseURL))
	if err != nil {
		_ = source.Close()

		return nil, errors.Wrap(err, "initialize migrator")
	}

	return &Migrator{m: m}, nil
}

func pgx5URL(databaseURL string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if rest, found := strings.CutPrefix(databaseURL, prefix); found {
			return "pgx5://" + rest
		}
	}

	return databaseURL
}

// Up applies all pending migrations.
func (m *Migrator) Up() error {
	if err := m.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "migrate up")
	}

	return nil
}

// Down rolls back every migration.
func (m *Migrator) Down() error {
	if err := m.m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "migrate down")
	}

	return nil
}

// Version returns the applied version; 0 when nothing has been applied.
func (m *Migrator) Version() (uint, bool, error) {
	version, dirty, err := m.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrap(err, "migrate version")
	}

	return version, dirty, nil
}

// Close releases the source and database handles.
func (m *Migrator) Close() error {
	srcErr, dbErr := m.m.Close()

	return errors.Join(srcErr, dbErr)
}

// AutoApplyParams holds dependencies for AutoApply, injected by Fx.
type AutoApplyParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// AutoApply registers a start hook that migrates up when migration.autoApply is set.
func AutoApply(params AutoApplyParams) {
	cfg := params.Config.Migration
	if cfg == nil || !cfg.AutoApply {
		return
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			migrator, err := NewMigrator(cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := migrator.Close(); closeErr != nil {
					params.Logger.Warn("Failed to close migrator", slog.Any("error", closeErr))
				}
			}()

			if err := migrator.Up(); err != nil {
				return err
			}

			version, dirty, err := migrator.Version()
			if err != nil {
				return err
			}
			params.Logger.Info("Database schema migrated", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))

			return nil
		},
	})
}
