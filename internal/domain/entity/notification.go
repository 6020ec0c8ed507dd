// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app message addressed to a single user.
type Notification struct {
	ID        uuid.UUID `json:"id"`        // The Global Unique Identifier (GUID) for the notification.
	UserID    uuid.UUID `json:"userId"`    // Recipient.
	Message   string    `json:"message"`   // Human readable text.
	IsRead    bool      `json:"isRead"`    // Set once the recipient has seen it.
	CreatedAt time.Time `json:"createdAt"` // When the notification was created.
}
