package feed

import (
	"context"
	"log/slog"

	"sapphire/config"
	"sapphire/internal/delivery"
	"sapphire/internal/domain/entity"
	"sapphire/internal/domain/service"
	"sapphire/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// HubParams holds dependencies for the hub, injected by Fx.
type HubParams struct {
	fx.In

	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// ProvideHub builds the hub shared by the watcher and the WebSocket handler.
func ProvideHub(params HubParams) *Hub {
	return NewHub(params.Logger, params.Metrics)
}

// ServerParams holds dependencies for the change feed relay, injected by Fx.
type ServerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	Hub    *Hub
	Feed   service.ChangeFeed
}

type feedServer struct {
	enabled bool
	logger  *slog.Logger
	hub     *Hub
	feed    service.ChangeFeed
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewServer relays the database change feed into the hub for the lifetime of the app.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	ctx, cancel := context.WithCancel(context.Background())
	srv := &feedServer{
		enabled: params.Cfg.WebSocket != nil && params.Cfg.WebSocket.Enabled,
		logger:  params.Logger,
		hub:     params.Hub,
		feed:    params.Feed,
		ctx:     ctx,
		cancel:  cancel,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			srv.cancel()

			return nil
		},
	})

	return srv, nil
}

// Serve runs the hub and blocks on the watcher. A watcher failure is logged and not retried.
func (s *feedServer) Serve(_ context.Context) error {
	if !s.enabled {
		s.logger.Info("Change feed disabled")

		return nil
	}

	go s.hub.Run(s.ctx)

	s.logger.Info("Starting change feed relay")
	err := s.feed.Watch(s.ctx, func(event *entity.ChangeEvent) {
		s.hub.Publish(event)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Error("Change feed stopped", slog.Any("error", err))
	}

	return nil
}
