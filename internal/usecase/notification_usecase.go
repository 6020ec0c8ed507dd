package usecase

import (
	"context"

	"sapphire/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase exposes a user's in-app notifications.
type NotificationUsecase interface {
	ListNotifications(ctx context.Context, userID uuid.UUID, page entity.Page) (*PageResult[*entity.Notification], error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}
