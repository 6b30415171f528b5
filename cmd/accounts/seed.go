package main

import (
	"context"
	"time"

	"accounts/internal/domain/constants"
	"accounts/internal/domain/entity"
	"accounts/internal/errors"
	"accounts/internal/infra/auth"
	"accounts/internal/infra/persistence/postgres"
	"accounts/internal/usecase"
	"accounts/internal/usecase/impl"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

const defaultSeedTimeout = 30 * time.Second

// seedConfig holds configuration for the seed command.
type seedConfig struct {
	adminEmail string
	userEmail  string
	password   string
	phone      string
	timeout    time.Duration
}

// NewSeedCmd creates the seed subcommand.
func NewSeedCmd() *cobra.Command {
	cfg := &seedConfig{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the default admin and user accounts",
		Long: `Creates one ADMIN and one USER account with confirmed emails.
Existing accounts are left untouched, so the command can be re-run.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.adminEmail, "admin-email", constants.DefaultAdminEmail, "email of the ADMIN account")
	cmd.Flags().StringVar(&cfg.userEmail, "user-email", constants.DefaultUserEmail, "email of the USER account")
	cmd.Flags().StringVar(&cfg.password, "password", "", "password for both accounts")
	cmd.Flags().StringVar(&cfg.phone, "phone", "", "phone number stored on both accounts")
	cmd.Flags().DurationVar(&cfg.timeout, "timeout", defaultSeedTimeout, "timeout for database operations")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func runSeed(cmd *cobra.Command, cfg *seedConfig) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.timeout)
	defer cancel()

	var userUC usecase.UserUsecase
	app := fx.New(
		fx.NopLogger,
		injectInfra(),
		fx.Provide(
			postgres.NewRepositories,
			auth.NewBcryptHasher,
			impl.NewUserService,
		),
		fx.Populate(&userUC),
	)
	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "start seed dependencies")
	}
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.WithoutCancel(ctx), defaultSeedTimeout)
		defer stopCancel()
		_ = app.Stop(stopCtx)
	}()

	return seedAccounts(ctx, cmd, userUC, cfg)
}

func seedAccounts(ctx context.Context, cmd *cobra.Command, userUC usecase.UserUsecase, cfg *seedConfig) error {
	accounts := []usecase.SeedAccountInput{
		{FirstName: "Admin", LastName: "Admin", Email: cfg.adminEmail, Role: entity.RoleAdmin},
		{FirstName: "User", LastName: "User", Email: cfg.userEmail, Role: entity.RoleUser},
	}

	for _, input := range accounts {
		input.Password = cfg.password
		input.Phone = cfg.phone

		user, created, err := userUC.SeedAccount(ctx, input)
		if err != nil {
			return errors.Wrapf(err, "seed %s account", input.Role)
		}

		if created {
			cmd.Printf("Created %s account %s\n", user.Role, user.Email)
		} else {
			cmd.Printf("%s account %s already exists\n", user.Role, user.Email)
		}
	}

	return nil
}
