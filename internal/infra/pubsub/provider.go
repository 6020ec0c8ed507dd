// Package pubsub publishes admin events to a message broker for the worker.
package pubsub

import (
	"context"
	"log/slog"

	"sapphire/config"
	deliverycontext "sapphire/internal/delivery/context"
	"sapphire/internal/domain/constants"
	"sapphire/internal/domain/service"
	"sapphire/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc      fx.Lifecycle
	Ctx     context.Context
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// NewEventPublisher picks the broker from pubsub.provider. Missing or "noop"
// config disables publishing; events are then only logged.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil {
		cfg = &config.PubSubConfig{}
	}

	inner, err := newBrokerPublisher(params.Ctx, cfg, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return inner.Close()
		},
	})

	return &instrumentedPublisher{
		provider: providerName(cfg),
		inner:    inner,
		metrics:  params.Metrics,
		logger:   params.Logger,
	}, nil
}

func providerName(cfg *config.PubSubConfig) string {
	if cfg.Provider == "" {
		return constants.PubSubProviderNoop
	}

	return cfg.Provider
}

func newBrokerPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch providerName(cfg) {
	case constants.PubSubProviderNoop:
		logger.Info("Admin event publishing disabled")

		return noopPublisher{}, nil
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Publishing admin events over HTTP", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
		logger.Info("Publishing admin events to Cloud Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePublisher(ctx, cfg, logger)
	default:
		return nil, errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}
}

type noopPublisher struct{}

func (noopPublisher) PublishAdminEvent(context.Context, *service.AdminEvent) error { return nil }
func (noopPublisher) Close() error                                                { return nil }

// instrumentedPublisher logs and counts every publish attempt.
type instrumentedPublisher struct {
	provider string
	inner    service.EventPublisher
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func (p *instrumentedPublisher) PublishAdminEvent(ctx context.Context, event *service.AdminEvent) error {
	err := p.inner.PublishAdminEvent(ctx, event)
	if p.metrics != nil {
		p.metrics.EventPublished(event.Type, err != nil)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, p.logger).With(
		slog.String("provider", p.provider),
		slog.String("event_id", event.EventID),
		slog.String("type", event.Type),
	)
	if err != nil {
		logger.Error("Admin event publish failed", slog.Any("error", err))

		return err
	}
	if p.provider == constants.PubSubProviderNoop {
		logger.Debug("Admin event dropped, publishing disabled")

		return nil
	}
	logger.Info("Admin event published")

	return nil
}

// Close is owned by the lifecycle hook registered in NewEventPublisher.
func (p *instrumentedPublisher) Close() error { return nil }

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
