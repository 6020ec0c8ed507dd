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
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type tokenRepository struct {
	coll *mongo.Collection
}

// NewTokenRepository is the constructor for tokenRepository.
// Reads go to the primary so a token is visible right after login.
func NewTokenRepository(db *mongo.Database) repository.TokenRepository {
	opts := options.Collection().SetReadPreference(readpref.Primary())

	return &tokenRepository{coll: db.Collection(collTokens, opts)}
}

func (repo *tokenRepository) Create(ctx context.Context, token *entity.UserToken) error {
	if token.ID == uuid.Nil {
		token.ID = newID()
	}
	if token.CreatedAt.IsZero() {
		token.CreatedAt = utcNow()
	}

	doc := &tokenDocument{
		ID:        idString(token.ID),
		UserID:    idString(token.UserID),
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
		CreatedAt: token.CreatedAt,
	}
	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store token")
	}

	return nil
}

func (repo *tokenRepository) FindByTokenAndUser(ctx context.Context, token string, userID uuid.UUID) (*entity.UserToken, error) {
	return repo.findOne(ctx, bson.M{"token": token, "user_id": idString(userID)})
}

func (repo *tokenRepository) FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.UserToken, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	return repo.findOne(ctx, bson.M{"user_id": idString(userID)}, opts)
}

func (repo *tokenRepository) findOne(ctx context.Context, filter bson.M, opts ...*options.FindOneOptions) (*entity.UserToken, error) {
	var doc tokenDocument
	if err := repo.coll.FindOne(ctx, filter, opts...).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find token")
	}

	return &entity.UserToken{
		ID:        parseID(doc.ID),
		UserID:    parseID(doc.UserID),
		Token:     doc.Token,
		ExpiresAt: doc.ExpiresAt,
		CreatedAt: doc.CreatedAt,
	}, nil
}

func (repo *tokenRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result, err := repo.coll.DeleteMany(ctx, bson.M{"user_id": idString(userID)})
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to delete tokens")
	}

	return result.DeletedCount, nil
}

func (repo *tokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result, err := repo.coll.DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lt": before}})
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to delete expired tokens")
	}

	return result.DeletedCount, nil
}
