package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel mirrors the 'devices' table.
type DeviceModel struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UDID                 string     `gorm:"column:udid;type:varchar(255);uniqueIndex;not null"`
	LastUpdate           *time.Time `gorm:"column:last_update"`
	State                string     `gorm:"type:varchar(50)"`
	CPU                  string     `gorm:"column:cpu;type:varchar(100)"`
	Manufacturer         string     `gorm:"type:varchar(100)"`
	Model                string     `gorm:"type:varchar(100)"`
	OSVersion            string     `gorm:"column:os_version;type:varchar(50)"`
	SDKVersion           string     `gorm:"column:sdk_version;type:varchar(50)"`
	SecurityID           *int       `gorm:"column:security_id"`
	RegisteredTo         *uuid.UUID `gorm:"type:uuid;index"`
	Status               string     `gorm:"type:varchar(20);not null"`
	RequestedBy          *uuid.UUID `gorm:"type:uuid"`
	RequestedAt          *time.Time
	ApprovedOrRejectedAt *time.Time
	HostIP               string `gorm:"column:host_ip;type:varchar(64);index"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
