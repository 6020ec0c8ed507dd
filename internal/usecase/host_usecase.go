package usecase

import (
	"context"

	"sapphire/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

// HostInput carries the writable fields of a host. Nil pointers are unchanged on update.
type HostInput struct {
	Name        *string
	Description *string
	IPAddress   *string
	Location    *string
	Latitude    *float64
	Longitude   *float64
	GroupID     *uuid.UUID
	ProjectID   *uuid.UUID
}

// HostUsecase manages hosts.
type HostUsecase interface {
	CreateHost(ctx context.Context, input *HostInput) (*entity.Host, error)
	ListHosts(ctx context.Context, input *ListInput) (*PageResult[*entity.Host], error)
	GetHost(ctx context.Context, id uuid.UUID) (*entity.Host, error)
	UpdateHost(ctx context.Context, id uuid.UUID, input *HostInput) (*entity.Host, error)
	InactivateHost(ctx context.Context, id uuid.UUID, reason string) error
	DeleteHost(ctx context.Context, id uuid.UUID) error

	// HostsGeoJSON returns active hosts that have coordinates as point features.
	HostsGeoJSON(ctx context.Context, userID uuid.UUID) (*geojson.FeatureCollection, error)
}
