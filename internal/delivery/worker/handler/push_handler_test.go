package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sapphire/config"
	"sapphire/internal/domain/constants"
	"sapphire/internal/domain/service"
	"sapphire/internal/infra/pubsub"
	mockservice "sapphire/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*PushHandler, *mockservice.MockMailer) {
	t.Helper()
	mailer := mockservice.NewMockMailer(t)
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvLocal

	return NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Mailer: mailer,
	}), mailer
}

func pushRequest(t *testing.T, event *service.AdminEvent) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	event.RequestID = "req-1"
	envelope, err := pubsub.NewPushEnvelope(event, "projects/test/subscriptions/admin-events", time.Now())
	require.NoError(t, err)
	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestPushHandler_DeliversOTP(t *testing.T) {
	h, mailer := newTestHandler(t)
	expires := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	mailer.EXPECT().SendOTP(mock.Anything, "ada@example.com", "123456", expires).Return(nil)

	c, rec := pushRequest(t, &service.AdminEvent{
		EventID:   "evt-1",
		Type:      service.EventOTPIssued,
		Email:     "ada@example.com",
		OTP:       "123456",
		ExpiresAt: &expires,
	})

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MailerFailureIsRetried(t *testing.T) {
	h, mailer := newTestHandler(t)
	mailer.EXPECT().SendDeviceDecision(mock.Anything, "user-1", "device-1", "Approved").Return(errors.New("smtp down"))

	c, rec := pushRequest(t, &service.AdminEvent{
		EventID:  "evt-2",
		Type:     service.EventDeviceRequestDecided,
		UserID:   "user-1",
		DeviceID: "device-1",
		Status:   "Approved",
	})

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_AcknowledgesPermanentFailures(t *testing.T) {
	tests := []struct {
		name  string
		event *service.AdminEvent
	}{
		{name: "unknown type", event: &service.AdminEvent{EventID: "evt-3", Type: "user.renamed"}},
		{name: "otp without address", event: &service.AdminEvent{EventID: "evt-4", Type: service.EventOTPIssued, OTP: "123456"}},
		{name: "decision without requester", event: &service.AdminEvent{EventID: "evt-5", Type: service.EventDeviceRequestDecided}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)
			c, rec := pushRequest(t, tt.event)

			require.NoError(t, h.HandlePush(c))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestPushHandler_RejectsMalformedData(t *testing.T) {
	h, _ := newTestHandler(t)
	body := `{"message":{"data":"%%%","messageId":"1"}}`
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader([]byte(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(echo.New().NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_VerifiesTokenForGoogle(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = "production"
	h := NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Mailer: mockservice.NewMockMailer(t),
	})
	require.NotNil(t, h.verify)

	c, rec := pushRequest(t, &service.AdminEvent{EventID: "evt-6", Type: service.EventOTPIssued})

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
