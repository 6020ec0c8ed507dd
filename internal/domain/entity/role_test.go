package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole(t *testing.T) {
	tests := []struct {
		role    Role
		valid   bool
		isAdmin bool
	}{
		{RoleSuperAdmin, true, true},
		{RoleGroupAdmin, true, true},
		{RoleUser, true, false},
		{Role("Owner"), false, false},
		{Role(""), false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.role.IsValid())
			assert.Equal(t, tt.isAdmin, tt.role.IsAdmin())
		})
	}
}

func TestRoleOrDefault(t *testing.T) {
	assert.Equal(t, RoleUser, RoleOrDefault(""))
	assert.Equal(t, RoleGroupAdmin, RoleOrDefault(RoleGroupAdmin))
}
