package model

import (
	"time"

	"github.com/google/uuid"
)

// Role is the coarse authorization level of an account.
type Role string

const (
	RolePatron    Role = "patron"
	RoleLibrarian Role = "librarian"
)

func (r Role) IsValid() bool {
	switch r {
	case RolePatron, RoleLibrarian:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// Named capabilities. Routes are gated on these rather than on raw roles
// so the permission model stays a boolean predicate per capability.
const (
	// PermCanMarkReturned lets staff renew loans and see every copy on loan.
	PermCanMarkReturned = "catalog.can_mark_returned"
	// PermManageCatalog lets staff create and edit catalog records.
	PermManageCatalog = "catalog.manage"
)

var rolePermissions = map[Role]map[string]bool{
	RolePatron: {},
	RoleLibrarian: {
		PermCanMarkReturned: true,
		PermManageCatalog:   true,
	},
}

// RoleHasPermission reports whether a role carries a named capability.
func RoleHasPermission(role Role, permission string) bool {
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}
	return perms[permission]
}

// User represents a library account, patron or librarian.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     string    `json:"full_name" db:"full_name"`
	Role         Role      `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Role     Role      `json:"role"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,
	}
}
