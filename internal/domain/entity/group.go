package entity

import (
	"time"

	"github.com/google/uuid"
)

// Group bundles users and projects.
// MemberIDs mirrors User.GroupIDs and ProjectIDs mirrors Project.GroupID.
type Group struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	CreatedBy   uuid.UUID   `json:"createdBy"`
	GroupAdmin  *uuid.UUID  `json:"groupAdmin,omitempty"`
	MemberIDs   []uuid.UUID `json:"members"`
	ProjectIDs  []uuid.UUID `json:"projects"`
	IsActive    bool        `json:"isActive"`
	Reason      string      `json:"reason"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// HasMember reports whether the user is in the member list.
func (g *Group) HasMember(userID uuid.UUID) bool {
	for _, id := range g.MemberIDs {
		if id == userID {
			return true
		}
	}

	return false
}
