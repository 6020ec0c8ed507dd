package service

import (
	"context"
	"time"
)

const (
	// EventOTPIssued is published when an approved user receives a one-time password.
	EventOTPIssued = "otp.issued"
	// EventDeviceRequestDecided is published when an admin approves or rejects a device request.
	EventDeviceRequestDecided = "device.request.decided"
)

// AdminEvent is a message for downstream consumers such as the mailer.
type AdminEvent struct {
	EventID    string     `json:"event_id"`
	Type       string     `json:"type"`
	RequestID  string     `json:"request_id,omitempty"` // For distributed tracing
	UserID     string     `json:"user_id"`
	Email      string     `json:"email,omitempty"`
	OTP        string     `json:"otp,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	DeviceID   string     `json:"device_id,omitempty"`
	Status     string     `json:"status,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAdminEvent publishes an event for async processing
	PublishAdminEvent(ctx context.Context, event *AdminEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
