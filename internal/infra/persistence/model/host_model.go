package model

import (
	"time"

	"github.com/google/uuid"
)

// HostModel mirrors the 'hosts' table.
type HostModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text"`
	IPAddress   string     `gorm:"column:ip_address;type:varchar(64);index"`
	Location    string     `gorm:"type:text"`
	Latitude    *float64   `gorm:"type:decimal(10,8)"`
	Longitude   *float64   `gorm:"type:decimal(11,8)"`
	GroupID     *uuid.UUID `gorm:"type:uuid;index"`
	ProjectID   *uuid.UUID `gorm:"type:uuid"`
	IsActive    bool       `gorm:"not null"`
	Reason      string     `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (HostModel) TableName() string {
	return "hosts"
}
