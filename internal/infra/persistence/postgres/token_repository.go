package postgres

import (
	"context"
	"time"

	"sapphire/internal/domain/entity"
	domainerrors "sapphire/internal/domain/errors"
	"sapphire/internal/domain/repository"
	"sapphire/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// tokenRepository reads from the primary so a token is usable right after login.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{db: db}
}

func (repo *tokenRepository) Create(ctx context.Context, token *entity.UserToken) error {
	if token.ID == uuid.Nil {
		token.ID = newID()
	}
	tokenM := fromTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store token")
	}

	token.CreatedAt = tokenM.CreatedAt

	return nil
}

func (repo *tokenRepository) FindByTokenAndUser(ctx context.Context, token string, userID uuid.UUID) (*entity.UserToken, error) {
	var tokenM model.UserTokenModel
	err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).
		Where("token = ? AND user_id = ?", token, userID).
		Take(&tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find token")
	}

	return toTokenDomain(&tokenM), nil
}

func (repo *tokenRepository) FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.UserToken, error) {
	var tokenM model.UserTokenModel
	err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Take(&tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find latest token")
	}

	return toTokenDomain(&tokenM), nil
}

func (repo *tokenRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.UserTokenModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete tokens")
	}

	return result.RowsAffected, nil
}

func (repo *tokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).Where("expires_at < ?", before).Delete(&model.UserTokenModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired tokens")
	}

	return result.RowsAffected, nil
}

func toTokenDomain(data *model.UserTokenModel) *entity.UserToken {
	return &entity.UserToken{
		ID:        data.ID,
		UserID:    data.UserID,
		Token:     data.Token,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromTokenDomain(data *entity.UserToken) *model.UserTokenModel {
	return &model.UserTokenModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Token:     data.Token,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
