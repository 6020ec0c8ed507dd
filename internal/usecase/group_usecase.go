package usecase

import (
	"context"

	"sapphire/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateGroupInput defines a new group. CreatedBy defaults to ActorID.
type CreateGroupInput struct {
	ActorID     uuid.UUID
	Name        string
	Description string
	CreatedBy   *uuid.UUID
	GroupAdmin  *uuid.UUID
	MemberIDs   []uuid.UUID
	ProjectIDs  []uuid.UUID
}

// UpdateGroupInput is a partial update. Nil member or project lists are left unchanged.
type UpdateGroupInput struct {
	ID          uuid.UUID
	Name        *string
	Description *string
	GroupAdmin  *uuid.UUID
	MemberIDs   []uuid.UUID
	ProjectIDs  []uuid.UUID
}

// GroupView is a group with its members and projects resolved.
type GroupView struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	CreatedBy   uuid.UUID    `json:"createdBy"`
	GroupAdmin  *uuid.UUID   `json:"groupAdmin"`
	Members     []UserRef    `json:"members"`
	Projects    []ProjectRef `json:"projects"`
	IsActive    bool         `json:"isActive"`
	Reason      string       `json:"reason,omitempty"`
}

// GroupUsecase manages groups and keeps member and project references consistent.
type GroupUsecase interface {
	CreateGroup(ctx context.Context, input *CreateGroupInput) (*entity.Group, error)
	ListGroups(ctx context.Context, input *ListInput) (*PageResult[*GroupView], error)
	GetGroup(ctx context.Context, id uuid.UUID) (*GroupView, error)
	UpdateGroup(ctx context.Context, input *UpdateGroupInput) (*entity.Group, error)

	// InactivateGroup also pulls the group from every user.
	InactivateGroup(ctx context.Context, id uuid.UUID, reason string) error
	DeleteGroup(ctx context.Context, id uuid.UUID) error
}
