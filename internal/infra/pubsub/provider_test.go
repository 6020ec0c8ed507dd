package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sapphire/config"
	"sapphire/internal/domain/service"
	"sapphire/internal/infra/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewEventPublisher_DefaultsToNoop(t *testing.T) {
	publisher, err := NewEventPublisher(PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: newDiscardLogger(),
	})
	require.NoError(t, err)

	instrumented, ok := publisher.(*instrumentedPublisher)
	require.True(t, ok)
	assert.Equal(t, "noop", instrumented.provider)
	assert.IsType(t, noopPublisher{}, instrumented.inner)
	assert.NoError(t, publisher.PublishAdminEvent(context.Background(), &service.AdminEvent{EventID: "e1"}))
}

func TestNewEventPublisher_RejectsIncompleteConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.PubSubConfig
	}{
		{"local without endpoint", &config.PubSubConfig{Provider: "local"}},
		{"google without project", &config.PubSubConfig{Provider: "google", TopicID: "t"}},
		{"google without topic", &config.PubSubConfig{Provider: "google", ProjectID: "p"}},
		{"unknown provider", &config.PubSubConfig{Provider: "kafka"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: newDiscardLogger(),
			})
			assert.Error(t, err)
		})
	}
}

func TestNewEventPublisher_CountsPublishes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	m := metrics.New(&config.Config{})
	publisher, err := NewEventPublisher(PublisherParams{
		Lc:      fxtest.NewLifecycle(t),
		Ctx:     context.Background(),
		Config:  &config.Config{PubSub: &config.PubSubConfig{Provider: "local", LocalEndpoint: server.URL}},
		Logger:  newDiscardLogger(),
		Metrics: m,
	})
	require.NoError(t, err)

	err = publisher.PublishAdminEvent(context.Background(), &service.AdminEvent{EventID: "e1", Type: service.EventOTPIssued})
	assert.Error(t, err)

	body := scrape(t, m)
	assert.Contains(t, body, `admin_events_published_total{result="error",type="otp.issued"} 1`)
}

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	return rec.Body.String()
}

func TestLocalHTTPPublisher_PushesEnvelope(t *testing.T) {
	var received PushEnvelope
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := &service.AdminEvent{
		EventID:    "evt-1",
		Type:       service.EventOTPIssued,
		RequestID:  "req-1",
		UserID:     "user-1",
		Email:      "a@example.com",
		OTP:        "123456",
		OccurredAt: time.Now().UTC(),
	}

	require.NoError(t, publisher.PublishAdminEvent(context.Background(), event))

	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, service.EventOTPIssued, received.Message.Attributes["type"])
	assert.Equal(t, "req-1", received.Message.Attributes[AttrRequestID])

	decoded, err := received.DecodeEvent()
	require.NoError(t, err)
	assert.Equal(t, "123456", decoded.OTP)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	err := publisher.PublishAdminEvent(context.Background(), &service.AdminEvent{EventID: "evt-2"})
	assert.Error(t, err)
}

func TestPushEnvelope_DecodeEventRejectsGarbage(t *testing.T) {
	env := &PushEnvelope{Message: PushMessage{Data: "%%%"}}
	_, err := env.DecodeEvent()
	assert.Error(t, err)
}
