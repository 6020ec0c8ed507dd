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
	"gorm.io/gorm/clause"
)

type otpRepository struct {
	db *gorm.DB
}

// NewOTPRepository is the constructor for otpRepository.
func NewOTPRepository(db *gorm.DB) repository.OTPRepository {
	return &otpRepository{db: db}
}

func (repo *otpRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.UserOTP, error) {
	var otpM model.UserOTPModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Take(&otpM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOTPNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find otp")
	}

	return &entity.UserOTP{
		ID:        otpM.ID,
		UserID:    otpM.UserID,
		OTP:       otpM.OTP,
		ExpiresAt: otpM.ExpiresAt,
		CreatedAt: otpM.CreatedAt,
	}, nil
}

// Upsert replaces the code and expiry of the user's single OTP row.
func (repo *otpRepository) Upsert(ctx context.Context, otp *entity.UserOTP) error {
	if otp.ID == uuid.Nil {
		otp.ID = newID()
	}
	if otp.CreatedAt.IsZero() {
		otp.CreatedAt = time.Now().UTC()
	}
	otpM := &model.UserOTPModel{
		ID:        otp.ID,
		UserID:    otp.UserID,
		OTP:       otp.OTP,
		ExpiresAt: otp.ExpiresAt,
		CreatedAt: otp.CreatedAt,
	}

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"otp", "expires_at", "created_at"}),
	}).Create(otpM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store otp")
	}

	return nil
}

func (repo *otpRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.UserOTPModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete otp")
	}

	return nil
}

func (repo *otpRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).Where("expires_at < ?", before).Delete(&model.UserOTPModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired otps")
	}

	return result.RowsAffected, nil
}
