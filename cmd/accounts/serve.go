package main

import (
	"context"
	"log/slog"
	"os"

	"accounts/config"
	"accounts/internal/delivery"
	"accounts/internal/delivery/api"
	"accounts/internal/delivery/api/middleware"
	"accounts/internal/delivery/api/router/handler"
	"accounts/internal/infra/auth"
	logs "accounts/internal/infra/log"
	"accounts/internal/infra/mail"
	"accounts/internal/infra/persistence/migrations"
	"accounts/internal/infra/persistence/postgres"
	"accounts/internal/infra/pubsub"
	"accounts/internal/infra/storage"
	"accounts/internal/usecase/impl"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(_ *cobra.Command, _ []string) error {
			app := fx.New(
				injectInfra(),
				injectRepo(),
				injectService(),
				injectUsecase(),
				injectDelivery(),
				injectMiddleware(),
				injectHandler(),
				fx.Invoke(
					migrations.AutoApply,
					startServer,
				),
			)
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()

			return nil
		},
	}
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewRepositories,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTIssuer,
			auth.NewSecretGenerator,
			storage.NewAvatarStore,
		),
		mail.Module,
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startServer launches every delivery once the earlier start hooks, migrations included, have run.
func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.StartHook(func() {
		for _, delivery := range params.Deliveries {
			go func() {
				if err := delivery.Serve(ctx); err != nil {
					slog.Error("Failed to start server", slog.Any("error", err))
					os.Exit(1)
				}
			}()
		}
	}))
}
