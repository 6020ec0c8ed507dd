package repository

import (
	"context"
	"errors"

	"sapphire/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrHostNotFound is returned when a host is not found.
var ErrHostNotFound = errors.New("host not found")

// HostFilter narrows a host listing.
type HostFilter struct {
	ActiveOnly bool
	// GroupIDs limits the result to hosts of these groups. Nil means all groups.
	GroupIDs []uuid.UUID
}

// HostRepository defines persistence operations for hosts.
type HostRepository interface {
	Create(ctx context.Context, host *entity.Host) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Host, error)
	List(ctx context.Context, filter HostFilter, page entity.Page) ([]*entity.Host, int64, error)

	// FindAll returns every host matching the filter without paging.
	FindAll(ctx context.Context, filter HostFilter) ([]*entity.Host, error)
	Update(ctx context.Context, host *entity.Host) error
	Delete(ctx context.Context, id uuid.UUID) error
}
