package entity

import (
	"time"

	"github.com/google/uuid"
)

// Host is a machine that devices are attached to. Devices point at it through Device.HostIP.
type Host struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	IPAddress   string     `json:"ipAddress"`
	Location    string     `json:"location"`
	Latitude    *float64   `json:"latitude,omitempty"`
	Longitude   *float64   `json:"longitude,omitempty"`
	GroupID     *uuid.UUID `json:"groupId,omitempty"`
	ProjectID   *uuid.UUID `json:"projectId,omitempty"`
	IsActive    bool       `json:"isActive"`
	Reason      string     `json:"reason"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// HasCoordinates reports whether the host can be placed on a map.
func (h *Host) HasCoordinates() bool {
	return h.Latitude != nil && h.Longitude != nil
}
