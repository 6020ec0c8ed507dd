package usecase

import (
	"context"
	"time"

	"sapphire/internal/domain/entity"

	"github.com/google/uuid"
)

// Admin decisions on a device request
const (
	DeviceActionApprove = "registered"
	DeviceActionReject  = "reject"
)

// CreateDeviceInput is an inventory record reported for a host.
type CreateDeviceInput struct {
	UDID         string
	State        string
	CPU          string
	Manufacturer string
	Model        string
	OSVersion    string
	SDKVersion   string
	HostIP       string
}

// DeviceSummary is the short device listing entry.
type DeviceSummary struct {
	ID    uuid.UUID `json:"id"`
	Model string    `json:"model"`
}

// DeviceRequestView is a pending device request as shown to admins.
type DeviceRequestView struct {
	DeviceID    uuid.UUID           `json:"device_id"`
	DeviceName  string              `json:"device_name"`
	RequestedBy string              `json:"requested_by"`
	Status      entity.DeviceStatus `json:"status"`
	RequestedAt *time.Time          `json:"requested_at"`
}

// DeviceUsecase manages device inventory, registration and the request workflow.
type DeviceUsecase interface {
	CreateDevice(ctx context.Context, input *CreateDeviceInput) (*entity.Device, error)
	ListDevices(ctx context.Context, input *ListInput) (*PageResult[*entity.Device], error)
	ListDeviceSummaries(ctx context.Context, page entity.Page) (*PageResult[*DeviceSummary], error)
	GetDevice(ctx context.Context, id uuid.UUID) (*entity.Device, error)
	DeleteDevice(ctx context.Context, id uuid.UUID) error

	// RegisterDevice assigns the device to userID and returns its security code.
	RegisterDevice(ctx context.Context, udid string, userID uuid.UUID) (int, error)
	RequestDevice(ctx context.Context, deviceID uuid.UUID, requesterID uuid.UUID) (*entity.Device, error)
	ListPendingRequests(ctx context.Context) ([]*DeviceRequestView, error)

	// DecideRequest applies DeviceActionApprove or DeviceActionReject and notifies the requester.
	DecideRequest(ctx context.Context, deviceID uuid.UUID, action string) (*entity.Device, error)
	DeregisterDevice(ctx context.Context, udid string) error

	// DeviceQRCode renders the registration code for the owner or a SuperAdmin.
	DeviceQRCode(ctx context.Context, udid string, viewer *Principal) ([]byte, error)
}
