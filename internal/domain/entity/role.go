// Package entity contains the core business objects of the project.
package entity

// Role decides what a user sees. SuperAdmin sees everything; the other roles
// only see rows tied to their own memberships.
type Role string

const (
	RoleSuperAdmin Role = "SuperAdmin"
	// RoleGroupAdmin may approve sign-ups and device requests.
	RoleGroupAdmin Role = "GroupAdmin"
	RoleUser       Role = "User"
)

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleGroupAdmin, RoleUser:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether r may use the admin endpoints.
func (r Role) IsAdmin() bool {
	return r == RoleSuperAdmin || r == RoleGroupAdmin
}

// RoleOrDefault returns RoleUser for an empty role, r otherwise.
func RoleOrDefault(r Role) Role {
	if r == "" {
		return RoleUser
	}

	return r
}
