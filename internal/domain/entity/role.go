package entity

import "slices"

// Role represents the fixed set of roles an account can hold.
type Role string

const (
	// RoleAdmin manages the catalog.
	RoleAdmin Role = "ADMIN"
	// RoleStaff maintains media and its own profile.
	RoleStaff Role = "STAFF"
	// RoleMember is the role given to every self-registered account.
	RoleMember Role = "MEMBER"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleMember:
		return true
	default:
		return false
	}
}

// RoleSet is a flat allow-list of roles. Membership is exact: no role implies another.
type RoleSet []Role

// NewRoleSet builds a RoleSet, dropping invalid and duplicate roles.
func NewRoleSet(roles ...Role) RoleSet {
	set := make(RoleSet, 0, len(roles))
	for _, r := range roles {
		if r.IsValid() && !set.Contains(r) {
			set = append(set, r)
		}
	}

	return set
}

// Contains checks if the set admits a specific role.
func (rs RoleSet) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts the set to []string for logging and error details.
func (rs RoleSet) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}
