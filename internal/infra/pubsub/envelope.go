package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"sapphire/internal/domain/service"

	"github.com/pkg/errors"
)

// AttrRequestID carries the originating request id across the broker.
const AttrRequestID = "request_id"

// PushEnvelope is the body a push subscription POSTs to the worker.
type PushEnvelope struct {
	Message      PushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

// PushMessage is the message part of a PushEnvelope. Data is base64 JSON.
type PushMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// NewPushEnvelope wraps an event the way a push subscription delivers it.
func NewPushEnvelope(event *service.AdminEvent, subscription string, publishedAt time.Time) (*PushEnvelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode admin event")
	}

	return &PushEnvelope{
		Subscription: subscription,
		Message: PushMessage{
			Data:        base64.StdEncoding.EncodeToString(data),
			Attributes:  eventAttributes(event),
			MessageID:   event.EventID,
			PublishTime: publishedAt.UTC().Format(time.RFC3339),
		},
	}, nil
}

// DecodeEvent unpacks the admin event carried in Message.Data.
func (e *PushEnvelope) DecodeEvent() (*service.AdminEvent, error) {
	raw, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.AdminEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, errors.Wrap(err, "parse admin event")
	}

	return &event, nil
}

// eventAttributes lets subscriptions filter on type without decoding Data.
func eventAttributes(event *service.AdminEvent) map[string]string {
	attrs := map[string]string{
		"event_id": event.EventID,
		"type":     event.Type,
	}
	if event.UserID != "" {
		attrs["user_id"] = event.UserID
	}
	if event.RequestID != "" {
		attrs[AttrRequestID] = event.RequestID
	}

	return attrs
}
