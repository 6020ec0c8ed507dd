package usecase

import "context"

// PurgeResult counts the records removed by one cleanup run.
type PurgeResult struct {
	Tokens int64
	OTPs   int64
}

// MaintenanceUsecase removes expired credentials.
type MaintenanceUsecase interface {
	PurgeExpired(ctx context.Context) (*PurgeResult, error)
}
