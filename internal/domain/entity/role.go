// Package entity contains the core business objects of the storefront.
package entity

import "slices"

// Role is a permission group carried in the session token.
type Role string

const (
	RoleCustomer Role = "customer"
	// RoleStaff unlocks the admin API: catalog edits and order statuses.
	RoleStaff Role = "staff"
)

// Roles is the ordered set of roles attached to a session.
type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Strings is the claim form of the set.
func (rs Roles) Strings() []string {
	out := make([]string, 0, len(rs))
	for _, role := range rs {
		out = append(out, string(role))
	}

	return out
}

// RolesFromStrings parses token claims. Unknown or repeated names are skipped
// so a forged claim can never add a role the server does not define.
func RolesFromStrings(names []string) Roles {
	roles := make(Roles, 0, len(names))
	for _, name := range names {
		role := Role(name)
		if role != RoleCustomer && role != RoleStaff {
			continue
		}
		if !roles.Contains(role) {
			roles = append(roles, role)
		}
	}

	return roles
}
