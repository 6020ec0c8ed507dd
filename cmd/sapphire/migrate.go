package main

import (
	"context"
	"log/slog"
	"time"

	"sapphire/config"
	"sapphire/internal/infra/persistence/mongodb"
	"sapphire/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const migrateTimeout = 2 * time.Minute

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply Postgres migrations or create MongoDB indexes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New()
			if err != nil {
				return errors.Wrap(err, "load config")
			}

			app := fx.New(
				injectInfra(cfg),
				injectStorage(cfg),
				fx.StartTimeout(migrateTimeout),
				migrateInvoke(cfg),
			)

			return runOnce(cmd.Context(), app)
		},
	}
}

// migrateInvoke appends the migration after the connection's own start hook so it runs against a pinged database.
func migrateInvoke(cfg *config.Config) fx.Option {
	if cfg.Storage.Driver == config.StoragePostgres {
		return fx.Invoke(func(lc fx.Lifecycle, db *gorm.DB, logger *slog.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					return postgres.Migrate(ctx, db, logger)
				},
			})
		})
	}

	return fx.Invoke(func(lc fx.Lifecycle, db *mongo.Database, logger *slog.Logger) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := mongodb.EnsureIndexes(ctx, db); err != nil {
					return err
				}
				logger.InfoContext(ctx, "MongoDB indexes are up to date", slog.String("database", db.Name()))

				return nil
			},
		})
	})
}

// runOnce starts the app, which performs the work in its start hooks, then stops it.
func runOnce(ctx context.Context, app *fx.App) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if err := app.Start(ctx); err != nil {
		return errors.WithStack(err)
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()

	return errors.WithStack(app.Stop(stopCtx))
}
