package entity

import (
	"strings"
	"time"
)

// User is a storefront account. Username is unique; Email and Phone double as
// alternate login identifiers without a uniqueness guarantee.
type User struct {
	ID           uint
	Username     string
	Email        string
	Phone        string
	FirstName    string
	LastName     string
	Address      string
	City         string
	Country      string
	Avatar       string // storage key inside the media bucket, empty when unset
	PasswordHash string
	IsStaff      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins first and last name.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// DisplayName falls back to the username when no name is set.
func (u *User) DisplayName() string {
	if name := u.FullName(); name != "" {
		return name
	}

	return u.Username
}

// Roles derives the session roles for the account.
func (u *User) Roles() Roles {
	roles := Roles{RoleCustomer}
	if u.IsStaff {
		roles = append(roles, RoleStaff)
	}

	return roles
}
