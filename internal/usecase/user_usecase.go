package usecase

import (
	"context"

	"sapphire/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput is a self-service account request. The account starts inactive and pending.
type SignUpInput struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Username        string
	Password        string
	BusinessPurpose string
}

// CreateUserInput is an admin-created account.
type CreateUserInput struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Username        string
	Password        string
	Role            entity.Role
	BusinessPurpose string
	GroupIDs        []uuid.UUID
	ProjectIDs      []uuid.UUID
}

// UpdateUserInput is a partial update. Nil fields are left unchanged.
type UpdateUserInput struct {
	ID              uuid.UUID
	FirstName       *string
	LastName        *string
	Email           *string
	Phone           *string
	Username        *string
	Password        *string
	Role            *entity.Role
	BusinessPurpose *string
	IsActive        *bool

	// GroupIDs replaces the memberships when non-nil.
	GroupIDs []uuid.UUID
	// ProjectIDs replaces the assignments when non-nil.
	ProjectIDs []uuid.UUID
}

// ApproveUserInput activates a pending account.
type ApproveUserInput struct {
	UserID     uuid.UUID
	ApproverID uuid.UUID
	GroupIDs   []uuid.UUID
	ProjectIDs []uuid.UUID
	Role       entity.Role
}

// RejectUserInput declines a pending account.
type RejectUserInput struct {
	UserID uuid.UUID
	Reason string
}

// VerifyOTPInput sets a new password with a one-time code.
type VerifyOTPInput struct {
	Email       string
	OTP         string
	NewPassword string
}

// SuperUserInput bootstraps the first SuperAdmin.
type SuperUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Username  string
	Password  string
}

// --- Output DTOs ---

// UserSummary is a user with the names of its groups and projects.
type UserSummary struct {
	*entity.User
	Groups   []GroupRef   `json:"groups"`
	Projects []ProjectRef `json:"projects"`
}

// UserGroupDetail is a group of a user with its members.
type UserGroupDetail struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Members []UserRef `json:"members"`
}

// UserProjectDetail is a project of a user with its assignees.
type UserProjectDetail struct {
	ID            uuid.UUID            `json:"id"`
	Name          string               `json:"name"`
	Status        entity.ProjectStatus `json:"status"`
	AssignedUsers []UserRef            `json:"assignedUsers"`
}

// UserDetail is the single-user view.
type UserDetail struct {
	*entity.User
	Groups   []UserGroupDetail   `json:"groups"`
	Projects []UserProjectDetail `json:"projects"`
}

// UserUsecase defines the user administration and account lifecycle operations.
type UserUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*entity.User, error)
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	ListUsers(ctx context.Context, page entity.Page) (*PageResult[*UserSummary], error)
	GetUser(ctx context.Context, id uuid.UUID) (*UserDetail, error)
	UpdateUser(ctx context.Context, input *UpdateUserInput) (*entity.User, error)
	InactivateUser(ctx context.Context, id uuid.UUID, reason string) error

	// DeleteUser removes the user, its memberships, tokens and OTP.
	DeleteUser(ctx context.Context, id uuid.UUID) error

	// ApproveUser activates the account, replaces memberships and issues an OTP.
	ApproveUser(ctx context.Context, input *ApproveUserInput) (*entity.User, error)
	RejectUser(ctx context.Context, input *RejectUserInput) error
	VerifyOTP(ctx context.Context, input *VerifyOTPInput) error

	// CreateSuperUser fails with ErrSuperUserExists once any SuperAdmin exists.
	CreateSuperUser(ctx context.Context, input *SuperUserInput) (*entity.User, error)
}
