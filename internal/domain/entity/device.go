package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceStatus is the registration state of a device.
type DeviceStatus string

const (
	DeviceAvailable    DeviceStatus = "Available"
	DeviceRegistered   DeviceStatus = "Registered"
	DevicePending      DeviceStatus = "Pending"
	DeviceRejected     DeviceStatus = "Rejected"
	DeviceDeregistered DeviceStatus = "Deregistered"
)

// Device is a piece of managed hardware attached to a host.
type Device struct {
	ID                   uuid.UUID    `json:"id"`
	UDID                 string       `json:"udid"`                 // Hardware identity, unique.
	LastUpdate           *time.Time   `json:"lastUpdate,omitempty"` // Last report from the host agent.
	State                string       `json:"state"`
	CPU                  string       `json:"cpu"`
	Manufacturer         string       `json:"manufacturer"`
	Model                string       `json:"model"`
	OSVersion            string       `json:"osVersion"`
	SDKVersion           string       `json:"sdkVersion"`
	SecurityID           *int         `json:"securityId,omitempty"` // Five digit registration code.
	RegisteredTo         *uuid.UUID   `json:"registeredTo,omitempty"`
	Status               DeviceStatus `json:"status"`
	RequestedBy          *uuid.UUID   `json:"requestedBy,omitempty"`
	RequestedAt          *time.Time   `json:"requestedAt,omitempty"`
	ApprovedOrRejectedAt *time.Time   `json:"approvedOrRejectedAt,omitempty"`
	HostIP               string       `json:"hostIp"`
	CreatedAt            time.Time    `json:"createdAt"`
	UpdatedAt            time.Time    `json:"updatedAt"`
}

// ClearRegistration drops the owner, the security code and any pending request.
func (d *Device) ClearRegistration() {
	d.SecurityID = nil
	d.RegisteredTo = nil
	d.RequestedBy = nil
	d.RequestedAt = nil
}
