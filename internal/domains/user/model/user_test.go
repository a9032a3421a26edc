package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleHasPermission(t *testing.T) {
	tests := []struct {
		name       string
		role       Role
		permission string
		want       bool
	}{
		{name: "librarian can mark returned", role: RoleLibrarian, permission: PermCanMarkReturned, want: true},
		{name: "librarian manages catalog", role: RoleLibrarian, permission: PermManageCatalog, want: true},
		{name: "patron cannot mark returned", role: RolePatron, permission: PermCanMarkReturned, want: false},
		{name: "patron cannot manage catalog", role: RolePatron, permission: PermManageCatalog, want: false},
		{name: "unknown role has nothing", role: Role("admin"), permission: PermCanMarkReturned, want: false},
		{name: "unknown permission", role: RoleLibrarian, permission: "catalog.delete_everything", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoleHasPermission(tt.role, tt.permission))
		})
	}
}
