package ratelimit

import (
	"context"
	"log/slog"

	"sapphire/config"
	"sapphire/internal/domain/lifecycle"
	"sapphire/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the rate limiter, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New selects the limiter implementation from configuration
func New(params Params) service.RateLimiter {
	cfg := params.Config.RateLimit
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Rate limiting disabled")

		return NewAllowAll()
	}

	if cfg.Redis == nil || cfg.Redis.Addr == "" {
		params.Logger.Info("Using in-memory rate limiter",
			slog.Int("requests", cfg.Requests),
			slog.Duration("window", cfg.Window),
		)

		return NewMemoryLimiter(cfg.Requests, cfg.Window)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	params.Logger.Info("Using Redis rate limiter",
		slog.String("addr", cfg.Redis.Addr),
		slog.Int("requests", cfg.Requests),
		slog.Duration("window", cfg.Window),
	)

	return NewRedisLimiter(client, cfg.Requests, cfg.Window, params.Logger)
}
