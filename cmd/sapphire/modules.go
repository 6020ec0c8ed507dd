package main

import (
	"context"
	"log/slog"
	"os"

	"sapphire/config"
	"sapphire/internal/delivery"
	"sapphire/internal/domain/service"
	"sapphire/internal/infra/auth"
	logs "sapphire/internal/infra/log"
	"sapphire/internal/infra/metrics"
	"sapphire/internal/infra/persistence/mongodb"
	"sapphire/internal/infra/persistence/postgres"
	"sapphire/internal/infra/pubsub"
	"sapphire/internal/infra/qrcode"
	"sapphire/internal/infra/ratelimit"
	"sapphire/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

// injectInfra supplies the already loaded configuration so the storage module can be chosen up front.
func injectInfra(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(
			logs.New,
			context.Background,
		),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger.With(slog.String("component", "fx"))}
		}),
	)
}

func injectStorage(cfg *config.Config) fx.Option {
	if cfg.Storage.Driver == config.StoragePostgres {
		return postgres.Module
	}

	return mongodb.Module
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewCodeGenerator,
			newQRCodeService,
			ratelimit.New,
		),
		pubsub.Module,
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewSessionService,
			impl.NewGroupService,
			impl.NewProjectService,
			impl.NewHostService,
			impl.NewDeviceService,
			impl.NewNotificationService,
			impl.NewMaintenanceService,
		),
	)
}

func injectMetrics() fx.Option {
	return fx.Provide(metrics.New)
}

// startServer runs every delivery; a failing one shuts the whole app down so OnStop hooks still run.
func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
