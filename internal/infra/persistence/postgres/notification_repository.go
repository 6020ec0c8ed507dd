package postgres

import (
	"context"

	"sapphire/internal/domain/entity"
	domainerrors "sapphire/internal/domain/errors"
	"sapphire/internal/domain/repository"
	"sapphire/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = newID()
	}
	notificationM := &model.NotificationModel{
		ID:        notification.ID,
		UserID:    notification.UserID,
		Message:   notification.Message,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// ListByUser returns the user's notifications newest first.
func (repo *notificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*entity.Notification, int64, error) {
	var total int64
	err := repo.db.WithContext(ctx).Model(&model.NotificationModel{}).Where("user_id = ?", userID).Count(&total).Error
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count notifications")
	}

	var rows []*model.NotificationModel
	err = repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Scopes(paginate(page)).
		Find(&rows).Error
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list notifications")
	}

	notifications := make([]*entity.Notification, 0, len(rows))
	for _, row := range rows {
		notifications = append(notifications, &entity.Notification{
			ID:        row.ID,
			UserID:    row.UserID,
			Message:   row.Message,
			IsRead:    row.IsRead,
			CreatedAt: row.CreatedAt,
		})
	}

	return notifications, total, nil
}

func (repo *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Model(&model.NotificationModel{}).Where("id = ?", id).Update("is_read", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark notification as read")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}
