// Package worker serves the Pub/Sub push endpoint that turns admin events into mail.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"sapphire/config"
	"sapphire/internal/delivery"
	"sapphire/internal/delivery/middleware"
	"sapphire/internal/delivery/worker/handler"
	"sapphire/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// pushBodyLimit is well above the largest admin event; Pub/Sub caps messages at 10MB anyway.
const pushBodyLimit = "1M"

type workerServer struct {
	addr   string
	logger *slog.Logger
	echo   *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer builds the worker's echo instance: GET /health and POST /push.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle,
		echomiddleware.BodyLimit(pushBodyLimit),
	)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "component": "worker"})
	})
	e.POST("/push", params.PushHandler.HandlePush)

	srv := &workerServer{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.Worker.Port)),
		logger: params.Logger,
		echo:   e,
	}
	params.Lc.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

func (s *workerServer) Serve(context.Context) error {
	s.logger.Info("Worker listening", slog.String("addr", s.addr))
	if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "worker server")
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Worker shutting down")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
