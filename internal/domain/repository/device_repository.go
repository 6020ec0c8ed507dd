package repository

import (
	"context"
	"errors"

	"sapphire/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when the UDID is already registered.
	ErrDuplicateDevice = errors.New("duplicate device")
)

// DeviceFilter narrows a device listing.
type DeviceFilter struct {
	// HostIPs limits the result to devices attached to these hosts. Nil means all hosts.
	HostIPs      []string
	RegisteredTo *uuid.UUID
	Status       *entity.DeviceStatus
}

// DeviceRepository defines persistence operations for devices.
type DeviceRepository interface {
	Create(ctx context.Context, device *entity.Device) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)
	FindByUDID(ctx context.Context, udid string) (*entity.Device, error)
	List(ctx context.Context, filter DeviceFilter, page entity.Page) ([]*entity.Device, int64, error)

	// Update overwrites every mutable field, including nil registration fields.
	Update(ctx context.Context, device *entity.Device) error
	Delete(ctx context.Context, id uuid.UUID) error
}
