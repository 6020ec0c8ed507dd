package main

import (
	"sapphire/config"
	"sapphire/internal/delivery/worker"
	"sapphire/internal/delivery/worker/handler"
	"sapphire/internal/infra/mailer"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newWorkerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Consume admin events pushed by Pub/Sub",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.New()
			if err != nil {
				return errors.Wrap(err, "load config")
			}

			app := fx.New(workerOptions(cfg))
			app.Run()

			return errors.WithStack(app.Err())
		},
	}
}

func workerOptions(cfg *config.Config) fx.Option {
	return fx.Options(
		injectInfra(cfg),
		workerModules(),
	)
}

func workerModules() fx.Option {
	return fx.Options(
		fx.Provide(
			mailer.NewLogMailer,
			handler.NewPushHandler,
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(
			startServer,
		),
	)
}
