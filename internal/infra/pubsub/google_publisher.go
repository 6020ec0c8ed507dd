package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"sapphire/config"
	deliverycontext "sapphire/internal/delivery/context"
	"sapphire/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type googlePublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topic     string
	logger    *slog.Logger
}

// NewGooglePublisher connects to Cloud Pub/Sub and fails fast when the topic is missing.
// Without CredentialsPath application default credentials are used.
func NewGooglePublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	client, err := pubsub.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topic := "projects/" + cfg.ProjectID + "/topics/" + cfg.TopicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "lookup topic %s", topic)
	}

	return &googlePublisher{
		client:    client,
		publisher: client.Publisher(cfg.TopicID),
		topic:     topic,
		logger:    logger,
	}, nil
}

func (p *googlePublisher) PublishAdminEvent(ctx context.Context, event *service.AdminEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish %s to %s", event.Type, p.topic)
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("Admin event published",
		slog.String("event_id", event.EventID),
		slog.String("type", event.Type),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages before releasing the client.
func (p *googlePublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
