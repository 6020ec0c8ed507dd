package mongodb

import (
	"context"

	"sapphire/internal/domain/entity"
	domainerrors "sapphire/internal/domain/errors"
	"sapphire/internal/domain/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type notificationRepository struct {
	coll *mongo.Collection
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *mongo.Database) repository.NotificationRepository {
	return &notificationRepository{coll: db.Collection(collNotifications)}
}

func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = newID()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = utcNow()
	}

	doc := &notificationDocument{
		ID:        idString(notification.ID),
		UserID:    idString(notification.UserID),
		Message:   notification.Message,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}
	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	return nil
}

func (repo *notificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*entity.Notification, int64, error) {
	query := bson.M{"user_id": idString(userID)}

	total, err := repo.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count notifications")
	}

	docs, err := findAll[notificationDocument](ctx, repo.coll, query, pageOptions(page, "created_at", -1))
	if err != nil {
		return nil, 0, err
	}

	notifications := make([]*entity.Notification, 0, len(docs))
	for _, doc := range docs {
		notifications = append(notifications, &entity.Notification{
			ID:        parseID(doc.ID),
			UserID:    parseID(doc.UserID),
			Message:   doc.Message,
			IsRead:    doc.IsRead,
			CreatedAt: doc.CreatedAt,
		})
	}

	return notifications, total, nil
}

func (repo *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result, err := repo.coll.UpdateOne(ctx, bson.M{"_id": idString(id)}, bson.M{"$set": bson.M{"is_read": true}})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark notification read")
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}
