package model

import (
	"time"

	"github.com/google/uuid"
)

// ProjectModel mirrors the 'projects' table. Assignees come from user_projects.
type ProjectModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text"`
	Status      string     `gorm:"type:varchar(20);not null"`
	GroupID     *uuid.UUID `gorm:"type:uuid;index"`
	CreatedBy   uuid.UUID  `gorm:"type:uuid"`
	IsActive    bool       `gorm:"not null"`
	Reason      string     `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProjectModel) TableName() string {
	return "projects"
}

// UserProjectModel mirrors the 'user_projects' join table.
type UserProjectModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProjectID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserProjectModel) TableName() string {
	return "user_projects"
}
