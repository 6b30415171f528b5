package main

import (
	"accounts/config"
	"accounts/internal/errors"
	"accounts/internal/infra/persistence/migrations"

	"github.com/spf13/cobra"
)

// migrator is the subset of *migrations.Migrator the migrate subcommands use.
type migrator interface {
	Up() error
	Down() error
	Version() (uint, bool, error)
	Close() error
}

// openMigrator is swapped in tests.
var openMigrator = func(databaseURL string) (migrator, error) {
	return migrations.NewMigrator(databaseURL)
}

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd() *cobra.Command {
	var databaseURL string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	cmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "database URL (defaults to migration.databaseURL from config)")

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(databaseURL, func(m migrator) error {
				if err := m.Up(); err != nil {
					return err
				}

				return printVersion(cmd, m)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back every migration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(databaseURL, func(m migrator) error {
				if err := m.Down(); err != nil {
					return err
				}
				cmd.Println("All migrations rolled back")

				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(databaseURL, func(m migrator) error {
				return printVersion(cmd, m)
			})
		},
	})

	return cmd
}

func withMigrator(databaseURL string, fn func(migrator) error) (err error) {
	if databaseURL == "" {
		cfg, cfgErr := config.New()
		if cfgErr != nil {
			return cfgErr
		}
		if cfg.Migration != nil {
			databaseURL = cfg.Migration.DatabaseURL
		}
	}
	if databaseURL == "" {
		return errors.New("no database URL: pass --database-url or set migration.databaseURL")
	}

	m, err := openMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, m.Close())
	}()

	return fn(m)
}

func printVersion(cmd *cobra.Command, m migrator) error {
	version, dirty, err := m.Version()
	if err != nil {
		return err
	}

	if dirty {
		cmd.Printf("Schema version %d (dirty)\n", version)
	} else {
		cmd.Printf("Schema version %d\n", version)
	}

	return nil
}
