// Package model holds the GORM persistence structs of the relational backend.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Group and project membership live in join tables.
type UserModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName       string    `gorm:"type:varchar(100)"`
	LastName        string    `gorm:"type:varchar(100)"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone           string    `gorm:"type:varchar(50)"`
	Username        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash    string    `gorm:"type:varchar(255)"`
	Role            string    `gorm:"type:varchar(20);not null"`
	BusinessPurpose string    `gorm:"type:text"`
	IsActive        bool      `gorm:"not null"`
	IsApproved      bool      `gorm:"not null"`
	Status          string    `gorm:"type:varchar(20);not null"`
	Reason          string    `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
