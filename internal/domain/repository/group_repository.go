package repository

import (
	"context"
	"errors"

	"sapphire/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrGroupNotFound is returned when a group is not found.
	ErrGroupNotFound = errors.New("group not found")
	// ErrDuplicateGroup is returned when the group name is taken.
	ErrDuplicateGroup = errors.New("duplicate group")
)

// GroupFilter narrows a group listing.
type GroupFilter struct {
	ActiveOnly bool
	// VisibleTo limits the result to groups the user is a member or creator of. Nil means all.
	VisibleTo *uuid.UUID
}

// GroupRepository defines persistence operations for groups.
type GroupRepository interface {
	Create(ctx context.Context, group *entity.Group) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Group, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Group, error)
	FindByName(ctx context.Context, name string) (*entity.Group, error)
	List(ctx context.Context, filter GroupFilter, page entity.Page) ([]*entity.Group, int64, error)

	// Update modifies name, description, admin, active flag and reason.
	Update(ctx context.Context, group *entity.Group) error
	Delete(ctx context.Context, id uuid.UUID) error

	AddMember(ctx context.Context, groupID uuid.UUID, userID uuid.UUID) error
	RemoveMember(ctx context.Context, groupID uuid.UUID, userID uuid.UUID) error
	RemoveMemberFromAll(ctx context.Context, userID uuid.UUID) error

	AddProject(ctx context.Context, groupID uuid.UUID, projectID uuid.UUID) error
	RemoveProject(ctx context.Context, groupID uuid.UUID, projectID uuid.UUID) error
	RemoveProjectFromAll(ctx context.Context, projectID uuid.UUID) error
}
