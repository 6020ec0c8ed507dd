package model

import (
	"time"

	"github.com/google/uuid"
)

// UserTokenModel mirrors the 'user_tokens' table.
type UserTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Token     string    `gorm:"type:text;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserTokenModel) TableName() string {
	return "user_tokens"
}

// UserOTPModel mirrors the 'user_otps' table, one row per user.
type UserOTPModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	OTP       string    `gorm:"column:otp;type:varchar(6);not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserOTPModel) TableName() string {
	return "user_otps"
}
