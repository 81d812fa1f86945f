// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the kind of staff member taking part in messaging.
type Role string

const (
	// RoleAdmin is the shop owner account; it is reachable at shop level.
	RoleAdmin Role = "admin"
	// RoleManager runs a single branch.
	RoleManager Role = "manager"
	// RoleCashier works the till of a single branch.
	RoleCashier Role = "cashier"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleCashier:
		return true
	default:
		return false
	}
}

// IsBranchLevel reports whether the role is always bound to a branch.
func (r Role) IsBranchLevel() bool {
	return r == RoleManager || r == RoleCashier
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ManagementRoles may post branch broadcasts.
//
//nolint:gochecknoglobals
var ManagementRoles = Roles{RoleAdmin, RoleManager}
