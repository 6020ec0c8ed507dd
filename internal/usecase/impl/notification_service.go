package impl

import (
	"context"
	"log/slog"

	"sapphire/internal/domain/entity"
	"sapphire/internal/domain/repository"
	"sapphire/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type notificationService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewNotificationService creates a new notification service.
func NewNotificationService(txManager repository.TransactionManager, logger *slog.Logger) usecase.NotificationUsecase {
	return &notificationService{
		txManager: txManager,
		logger:    logger,
	}
}

// ListNotifications returns the user's notifications, newest first.
func (s *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID, page entity.Page) (*usecase.PageResult[*entity.Notification], error) {
	page = page.Normalize()

	var result *usecase.PageResult[*entity.Notification]
	err := s.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		items, total, err := repos.NotificationRepo().ListByUser(txCtx, userID, page)
		if err != nil {
			return errors.Wrap(err, "failed to list notifications")
		}
		result = usecase.NewPageResult(items, total, page)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "list notifications")
	}

	return result, nil
}

// MarkRead flags a notification as read.
func (s *notificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	err := s.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		return translate(repos.NotificationRepo().MarkRead(txCtx, id), "failed to mark notification read")
	})
	if err != nil {
		s.logger.Warn("Failed to mark notification read", slog.String("notificationID", id.String()), slog.Any("error", err))

		return errors.Wrap(err, "mark notification read")
	}

	return nil
}
