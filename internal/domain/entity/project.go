package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatus is the progress state of a project.
type ProjectStatus string

const (
	ProjectNotStarted ProjectStatus = "Not Started"
	ProjectInProgress ProjectStatus = "In Progress"
	ProjectCompleted  ProjectStatus = "Completed"
)

// IsValid checks if the status is one of the known values.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectNotStarted, ProjectInProgress, ProjectCompleted:
		return true
	default:
		return false
	}
}

// Project is a unit of work owned by at most one group.
// AssignedUserIDs mirrors User.ProjectIDs.
type Project struct {
	ID              uuid.UUID     `json:"id"`
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	Status          ProjectStatus `json:"status"`
	GroupID         *uuid.UUID    `json:"groupId,omitempty"`
	AssignedUserIDs []uuid.UUID   `json:"assignedUsers"`
	CreatedBy       uuid.UUID     `json:"createdBy"`
	IsActive        bool          `json:"isActive"`
	Reason          string        `json:"reason"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}
