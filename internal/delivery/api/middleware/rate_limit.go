package middleware

import (
	"log/slog"

	deliverycontext "sapphire/internal/delivery/context"
	domainerrors "sapphire/internal/domain/errors"
	"sapphire/internal/domain/service"
	"sapphire/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RateLimitMiddlewareParams holds dependencies for RateLimitMiddleware, injected by Fx.
type RateLimitMiddlewareParams struct {
	fx.In

	Limiter service.RateLimiter
	Metrics *metrics.Metrics `optional:"true"`
	Logger  *slog.Logger
}

// RateLimitMiddleware throttles the public auth endpoints per client IP and route.
type RateLimitMiddleware struct {
	limiter service.RateLimiter
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(params RateLimitMiddlewareParams) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: params.Limiter,
		metrics: params.Metrics,
		logger:  params.Logger,
	}
}

// Limit rejects the request with 429 once the window is used up.
// A limiter failure lets the request through.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		route := c.Path()
		key := route + "|" + c.RealIP()

		allowed, err := m.limiter.Allow(c.Request().Context(), key)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Warn("Rate limiter unavailable", slog.Any("error", err))

			return next(c)
		}
		if !allowed {
			if m.metrics != nil {
				m.metrics.RateLimitHit(route)
			}

			return errors.WithStack(domainerrors.ErrRateLimited)
		}

		return next(c)
	}
}
