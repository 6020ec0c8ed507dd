package main

import (
	"sapphire/config"
	"sapphire/internal/delivery/api"
	apimiddleware "sapphire/internal/delivery/api/middleware"
	"sapphire/internal/delivery/api/router/handler"
	"sapphire/internal/delivery/feed"
	"sapphire/internal/delivery/scheduler"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the REST API, the change feed and the cleanup scheduler",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.New()
			if err != nil {
				return errors.Wrap(err, "load config")
			}

			app := fx.New(serveOptions(cfg))
			app.Run()

			return errors.WithStack(app.Err())
		},
	}
}

func serveOptions(cfg *config.Config) fx.Option {
	return fx.Options(
		injectInfra(cfg),
		serveModules(cfg),
	)
}

func serveModules(cfg *config.Config) fx.Option {
	return fx.Options(
		injectMetrics(),
		injectStorage(cfg),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			apimiddleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewGroupHandler,
			handler.NewProjectHandler,
			handler.NewHostHandler,
			handler.NewDeviceHandler,
			handler.NewNotificationHandler,
			handler.NewChangeFeedHandler,
			feed.ProvideHub,
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
			fx.Annotate(
				feed.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}
