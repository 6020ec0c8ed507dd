package usecase

import (
	"context"

	"sapphire/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProjectInput defines a new project.
type CreateProjectInput struct {
	ActorID         uuid.UUID
	Name            string
	Description     string
	Status          entity.ProjectStatus
	GroupID         *uuid.UUID
	AssignedUserIDs []uuid.UUID
}

// UpdateProjectInput is a partial update.
type UpdateProjectInput struct {
	ID          uuid.UUID
	Name        *string
	Description *string
	Status      *entity.ProjectStatus

	// GroupID moves the project when non-nil; ClearGroup detaches it.
	GroupID    *uuid.UUID
	ClearGroup bool

	// AssignedUserIDs replaces the assignees when non-nil.
	AssignedUserIDs []uuid.UUID
}

// ProjectView is a project with its assignees and group resolved.
type ProjectView struct {
	*entity.Project
	Group         *GroupRef `json:"group,omitempty"`
	AssignedUsers []UserRef `json:"assignedUsers"`
}

// ProjectUsecase manages projects and keeps assignee and group references consistent.
type ProjectUsecase interface {
	CreateProject(ctx context.Context, input *CreateProjectInput) (*entity.Project, error)
	ListProjects(ctx context.Context, input *ListInput) (*PageResult[*ProjectView], error)
	GetProject(ctx context.Context, id uuid.UUID) (*ProjectView, error)
	UpdateProject(ctx context.Context, input *UpdateProjectInput) (*entity.Project, error)
	InactivateProject(ctx context.Context, id uuid.UUID, reason string) error
	DeleteProject(ctx context.Context, id uuid.UUID) error
}
