package impl

import (
	"context"
	"log/slog"
	"time"

	"sapphire/internal/domain/repository"
	"sapphire/internal/usecase"

	"github.com/pkg/errors"
)

type maintenanceService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
	now       func() time.Time
}

// NewMaintenanceService creates the service behind the cleanup job.
func NewMaintenanceService(txManager repository.TransactionManager, logger *slog.Logger) usecase.MaintenanceUsecase {
	return &maintenanceService{
		txManager: txManager,
		logger:    logger,
		now:       time.Now,
	}
}

// PurgeExpired deletes access tokens and OTPs that are past their expiry.
func (s *maintenanceService) PurgeExpired(ctx context.Context) (*usecase.PurgeResult, error) {
	now := s.now().UTC()
	result := &usecase.PurgeResult{}

	err := s.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		tokens, err := repos.TokenRepo().DeleteExpired(txCtx, now)
		if err != nil {
			return errors.Wrap(err, "failed to purge tokens")
		}
		otps, err := repos.OTPRepo().DeleteExpired(txCtx, now)
		if err != nil {
			return errors.Wrap(err, "failed to purge otps")
		}
		result.Tokens, result.OTPs = tokens, otps

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "purge expired credentials")
	}

	s.logger.Info("Purged expired credentials", slog.Int64("tokens", result.Tokens), slog.Int64("otps", result.OTPs))

	return result, nil
}
