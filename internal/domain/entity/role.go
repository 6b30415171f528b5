// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
)

// Role is the authorization level carried by a session token.
type Role string

const (
	// RoleUser is the default role for self-registered accounts.
	RoleUser Role = "USER"
	// RoleAdmin grants access to administrative endpoints.
	RoleAdmin Role = "ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole normalises s and reports whether it names a known role.
func ParseRole(s string) (Role, bool) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))

	return role, role.IsValid()
}

// Roles is a required-role set for a protected route.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
