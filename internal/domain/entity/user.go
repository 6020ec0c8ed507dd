// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ApprovalStatus tracks where a user is in the admin approval workflow.
type ApprovalStatus string

const (
	// StatusPending is the initial state of every sign-up.
	StatusPending ApprovalStatus = "Pending"
	// StatusApproved is set by an admin through the approval flow.
	StatusApproved ApprovalStatus = "Approved"
	// StatusRejected is set by an admin through the rejection flow.
	StatusRejected ApprovalStatus = "Rejected"
)

// User is an account of the admin dashboard.
// GroupIDs and ProjectIDs mirror Group.MemberIDs and Project.AssignedUserIDs.
type User struct {
	ID              uuid.UUID      `json:"id"`              // The Global Unique Identifier (GUID) for the user.
	FirstName       string         `json:"firstName"`       // Given name.
	LastName        string         `json:"lastName"`        // Family name.
	Email           string         `json:"email"`           // Unique contact email, used for OTP delivery.
	Phone           string         `json:"phone"`           // Contact phone number.
	Username        string         `json:"username"`        // Unique login name.
	PasswordHash    string         `json:"-"`               // bcrypt hash, empty until a password is set.
	Role            Role           `json:"role"`            // Authorization role.
	GroupIDs        []uuid.UUID    `json:"groupIds"`        // Groups the user is a member of.
	ProjectIDs      []uuid.UUID    `json:"projectIds"`      // Projects the user is assigned to.
	BusinessPurpose string         `json:"businessPurpose"` // Free text supplied at sign-up.
	IsActive        bool           `json:"isActive"`        // Inactive users cannot log in.
	IsApproved      bool           `json:"isApproved"`      // Unapproved users cannot log in.
	Status          ApprovalStatus `json:"status"`          // Approval workflow state.
	Reason          string         `json:"reason"`          // Reason recorded on rejection or inactivation.
	CreatedAt       time.Time      `json:"createdAt"`       // Timestamp of when this user account was created.
	UpdatedAt       time.Time      `json:"updatedAt"`       // Timestamp of the last modification to this user's data.
}

// IsAdmin reports whether the user may approve accounts and device requests.
func (u *User) IsAdmin() bool {
	return u.Role == RoleSuperAdmin || u.Role == RoleGroupAdmin
}

// CanLogin reports whether the account is allowed to start a session.
func (u *User) CanLogin() bool {
	return u.IsActive && u.IsApproved
}
