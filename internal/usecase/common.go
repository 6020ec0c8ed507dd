// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"sapphire/internal/domain/entity"

	"github.com/google/uuid"
)

// PageResult is one page of a listing.
type PageResult[T any] struct {
	Total int64 `json:"total"`
	Skip  int   `json:"skip"`
	Limit int   `json:"limit"`
	Items []T   `json:"items"`
}

// NewPageResult echoes the normalized page back to the caller.
func NewPageResult[T any](items []T, total int64, page entity.Page) *PageResult[T] {
	p := page.Normalize()
	if items == nil {
		items = []T{}
	}

	return &PageResult[T]{Total: total, Skip: p.Skip, Limit: p.Limit, Items: items}
}

// ListInput scopes a listing to what UserID may see.
type ListInput struct {
	UserID uuid.UUID
	Page   entity.Page
}

// Principal is the authenticated caller.
type Principal struct {
	UserID   uuid.UUID
	Username string
	Role     entity.Role
}

// IsAdmin reports whether the caller may use the admin-only endpoints.
func (p *Principal) IsAdmin() bool {
	return p.Role.IsAdmin()
}

// UserRef is the short form of a user embedded in other views.
type UserRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// GroupRef is the short form of a group embedded in other views.
type GroupRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ProjectRef is the short form of a project embedded in other views.
type ProjectRef struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Status      entity.ProjectStatus `json:"status"`
}

// DisplayName is "First Last", falling back to the username.
func DisplayName(u *entity.User) string {
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	if name == "" {
		return u.Username
	}

	return name
}
