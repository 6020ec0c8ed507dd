// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"sapphire/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateUser is returned when username or email collides with an existing user.
var ErrDuplicateUser = errors.New("duplicate user")

// UserRepository defines the standard operations for user persistence.
// Membership methods only touch the user side of a relation; the use case writes the other side.
type UserRepository interface {
	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByIDs retrieves the users that exist among the given IDs.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error)

	// FindByUsername retrieves a single user by login name.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns one page of users and the total count.
	List(ctx context.Context, page entity.Page) ([]*entity.User, int64, error)

	// ExistsWithRole reports whether at least one user holds the role.
	ExistsWithRole(ctx context.Context, role entity.Role) (bool, error)

	// Update modifies the scalar fields of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddGroup adds groupID to the user's group list. Adding twice is a no-op.
	AddGroup(ctx context.Context, userID uuid.UUID, groupID uuid.UUID) error

	// RemoveGroup removes groupID from the user's group list.
	RemoveGroup(ctx context.Context, userID uuid.UUID, groupID uuid.UUID) error

	// RemoveGroupFromAll removes groupID from every user.
	RemoveGroupFromAll(ctx context.Context, groupID uuid.UUID) error

	// AddProject adds projectID to the user's project list. Adding twice is a no-op.
	AddProject(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) error

	// RemoveProject removes projectID from the user's project list.
	RemoveProject(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) error

	// RemoveProjectFromAll removes projectID from every user.
	RemoveProjectFromAll(ctx context.Context, projectID uuid.UUID) error
}
