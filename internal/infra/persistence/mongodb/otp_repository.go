package mongodb

import (
	"context"
	"time"

	"sapphire/internal/domain/entity"
	domainerrors "sapphire/internal/domain/errors"
	"sapphire/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type otpRepository struct {
	coll *mongo.Collection
}

// NewOTPRepository is the constructor for otpRepository.
func NewOTPRepository(db *mongo.Database) repository.OTPRepository {
	return &otpRepository{coll: db.Collection(collOTPs)}
}

func (repo *otpRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.UserOTP, error) {
	var doc otpDocument
	if err := repo.coll.FindOne(ctx, bson.M{"user_id": idString(userID)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrOTPNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find otp")
	}

	return &entity.UserOTP{
		ID:        parseID(doc.ID),
		UserID:    parseID(doc.UserID),
		OTP:       doc.OTP,
		ExpiresAt: doc.ExpiresAt,
		CreatedAt: doc.CreatedAt,
	}, nil
}

// Upsert keeps the existing _id when the user already has a code.
func (repo *otpRepository) Upsert(ctx context.Context, otp *entity.UserOTP) error {
	if otp.ID == uuid.Nil {
		otp.ID = newID()
	}
	if otp.CreatedAt.IsZero() {
		otp.CreatedAt = utcNow()
	}

	update := bson.M{
		"$set": bson.M{
			"otp":             otp.OTP,
			"expiration_time": otp.ExpiresAt,
			"created_at":      otp.CreatedAt,
		},
		"$setOnInsert": bson.M{"_id": idString(otp.ID)},
	}
	_, err := repo.coll.UpdateOne(ctx, bson.M{"user_id": idString(otp.UserID)}, update, options.Update().SetUpsert(true))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store otp")
	}

	return nil
}

func (repo *otpRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := repo.coll.DeleteMany(ctx, bson.M{"user_id": idString(userID)}); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete otp")
	}

	return nil
}

func (repo *otpRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result, err := repo.coll.DeleteMany(ctx, bson.M{"expiration_time": bson.M{"$lt": before}})
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to delete expired otps")
	}

	return result.DeletedCount, nil
}
