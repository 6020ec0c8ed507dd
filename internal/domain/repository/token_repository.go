package repository

import (
	"context"
	"errors"
	"time"

	"sapphire/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTokenNotFound is returned when no token record matches.
var ErrTokenNotFound = errors.New("token not found")

// TokenRepository persists issued access tokens so they can be revoked.
type TokenRepository interface {
	Create(ctx context.Context, token *entity.UserToken) error

	// FindByTokenAndUser returns the record for exactly this token string and owner.
	FindByTokenAndUser(ctx context.Context, token string, userID uuid.UUID) (*entity.UserToken, error)

	// FindLatestByUser returns the most recently issued token of the user.
	FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.UserToken, error)

	// DeleteByUser removes every token of the user and reports how many were removed.
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// DeleteExpired removes tokens whose expiry is before the given instant.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
