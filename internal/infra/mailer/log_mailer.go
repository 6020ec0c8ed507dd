// Package mailer provides Mailer implementations.
package mailer

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "sapphire/internal/delivery/context"
	"sapphire/internal/domain/service"
)

// logMailer writes messages to the structured log instead of sending them.
// It is the only transport until an SMTP relay is configured.
type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a Mailer that logs each message.
func NewLogMailer(logger *slog.Logger) service.Mailer {
	return &logMailer{logger: logger.With(slog.String("component", "mailer"))}
}

func (m *logMailer) SendOTP(ctx context.Context, email, otp string, expiresAt time.Time) error {
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).Info("OTP mail queued",
		slog.String("to", email),
		slog.Int("otp_length", len(otp)),
		slog.Time("expires_at", expiresAt),
	)

	return nil
}

func (m *logMailer) SendDeviceDecision(ctx context.Context, userID, deviceID, status string) error {
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).Info("Device decision mail queued",
		slog.String("user_id", userID),
		slog.String("device_id", deviceID),
		slog.String("status", status),
	)

	return nil
}
