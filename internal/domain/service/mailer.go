package service

import (
	"context"
	"time"
)

// Mailer delivers out-of-band messages to users.
type Mailer interface {
	// SendOTP delivers a one-time password to the given address.
	SendOTP(ctx context.Context, email, otp string, expiresAt time.Time) error

	// SendDeviceDecision tells the requester whether their device request was approved.
	SendDeviceDecision(ctx context.Context, userID, deviceID, status string) error
}
