package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "sapphire/internal/delivery/context"
	"sapphire/internal/domain/service"

	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/admin-events-push"

// localHTTPPublisher POSTs push envelopes straight at the worker so
// development runs the same HandlePush path as production.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewLocalHTTPPublisher returns a publisher that pushes to endpoint.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
	}
}

func (p *localHTTPPublisher) PublishAdminEvent(ctx context.Context, event *service.AdminEvent) error {
	envelope, err := NewPushEnvelope(event, localSubscription, time.Now())
	if err != nil {
		return err
	}
	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push %s to %s", event.Type, p.endpoint)
	}
	defer resp.Body.Close()

	// The worker answers 503 for retryable failures; anything non-2xx is a failed delivery here.
	if resp.StatusCode/100 != 2 {
		return errors.Errorf("push endpoint answered %d", resp.StatusCode)
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("Admin event pushed locally",
		slog.String("event_id", event.EventID),
		slog.String("type", event.Type),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error { return nil }
