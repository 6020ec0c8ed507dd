package repository

import (
	"context"
	"errors"
	"time"

	"sapphire/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOTPNotFound is returned when the user has no OTP record.
var ErrOTPNotFound = errors.New("otp not found")

// OTPRepository stores one-time codes, one per user.
type OTPRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.UserOTP, error)

	// Upsert creates or replaces the user's OTP.
	Upsert(ctx context.Context, otp *entity.UserOTP) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
