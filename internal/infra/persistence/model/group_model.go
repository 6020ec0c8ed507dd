package model

import (
	"time"

	"github.com/google/uuid"
)

// GroupModel mirrors the 'groups' table.
// Members come from user_groups and projects from projects.group_id.
type GroupModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string     `gorm:"type:text"`
	CreatedBy   uuid.UUID  `gorm:"type:uuid"`
	GroupAdmin  *uuid.UUID `gorm:"type:uuid"`
	IsActive    bool       `gorm:"not null"`
	Reason      string     `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (GroupModel) TableName() string {
	return "groups"
}

// UserGroupModel mirrors the 'user_groups' join table.
type UserGroupModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	GroupID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserGroupModel) TableName() string {
	return "user_groups"
}
