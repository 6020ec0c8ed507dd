package repository

import (
	"context"
	"errors"

	"sapphire/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProjectNotFound is returned when a project is not found.
var ErrProjectNotFound = errors.New("project not found")

// ProjectFilter narrows a project listing.
type ProjectFilter struct {
	ActiveOnly bool
	// VisibleTo limits the result to projects assigned to the user or owned by one of GroupIDs.
	VisibleTo *uuid.UUID
	GroupIDs  []uuid.UUID
}

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Project, error)

	// FindByGroup returns the projects whose GroupID is groupID.
	FindByGroup(ctx context.Context, groupID uuid.UUID) ([]*entity.Project, error)
	List(ctx context.Context, filter ProjectFilter, page entity.Page) ([]*entity.Project, int64, error)

	// Update modifies the scalar fields including GroupID.
	Update(ctx context.Context, project *entity.Project) error
	Delete(ctx context.Context, id uuid.UUID) error

	// SetGroup points the project at groupID, or detaches it when groupID is nil.
	SetGroup(ctx context.Context, projectID uuid.UUID, groupID *uuid.UUID) error

	// ClearGroup detaches every project from groupID.
	ClearGroup(ctx context.Context, groupID uuid.UUID) error

	AddAssignee(ctx context.Context, projectID uuid.UUID, userID uuid.UUID) error
	RemoveAssignee(ctx context.Context, projectID uuid.UUID, userID uuid.UUID) error
	RemoveAssigneeFromAll(ctx context.Context, userID uuid.UUID) error
}
