// Package handler contains the Pub/Sub push handlers of the worker.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"sapphire/config"
	deliverycontext "sapphire/internal/delivery/context"
	"sapphire/internal/domain/constants"
	"sapphire/internal/domain/service"
	"sapphire/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenVerifier validates the OIDC token attached to a push request.
type tokenVerifier func(req *http.Request) error

// PushHandler consumes admin events pushed by Pub/Sub and hands them to the mailer
type PushHandler struct {
	verify tokenVerifier
	logger *slog.Logger
	mailer service.Mailer
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Mailer service.Mailer
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger: params.Logger,
		mailer: params.Mailer,
	}

	// Google signs push requests; local and develop pushes come unsigned from the local publisher
	env := params.Config.Env.Env
	if params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		env != constants.EnvLocal && env != constants.EnvDevelop {
		h.verify = verifyPubSubToken
	}

	return h
}

// HandlePush handles incoming Pub/Sub push messages.
// 503 asks Pub/Sub to redeliver; any other status acknowledges the message.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := envelope.DecodeEvent()
	if err != nil {
		h.logger.Error("[Worker] Malformed admin event",
			slog.String("message_id", envelope.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &envelope, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing admin event",
		slog.String("event_id", event.EventID),
		slog.String("type", event.Type),
	)

	if err := h.processEvent(ctx, event); err != nil {
		reqLogger.Error("[Worker] Failed to process admin event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the inbound header
func (h *PushHandler) extractRequestID(ctx context.Context, envelope *pubsub.PushEnvelope, event *service.AdminEvent) string {
	if requestID := envelope.Message.Attributes[pubsub.AttrRequestID]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) processEvent(ctx context.Context, event *service.AdminEvent) error {
	switch event.Type {
	case service.EventOTPIssued:
		if event.Email == "" || event.OTP == "" || event.ExpiresAt == nil {
			return errors.Errorf("otp event %s is incomplete", event.EventID)
		}
		if err := h.mailer.SendOTP(ctx, event.Email, event.OTP, *event.ExpiresAt); err != nil {
			return newRetryableError(errors.Wrap(err, "send otp"))
		}
	case service.EventDeviceRequestDecided:
		if event.UserID == "" {
			// Nobody asked for this device; there is no one to tell.
			return nil
		}
		if err := h.mailer.SendDeviceDecision(ctx, event.UserID, event.DeviceID, event.Status); err != nil {
			return newRetryableError(errors.Wrap(err, "send device decision"))
		}
	default:
		return errors.Errorf("unknown event type %q", event.Type)
	}

	return nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the push endpoint URL
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
