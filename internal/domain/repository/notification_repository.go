package repository

import (
	"context"
	"errors"

	"sapphire/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines persistence operations for in-app notifications.
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error

	// ListByUser returns the user's notifications newest first and the total count.
	ListByUser(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*entity.Notification, int64, error)

	// MarkRead flags the notification as read.
	MarkRead(ctx context.Context, id uuid.UUID) error
}
