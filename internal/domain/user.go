package domain

import "time"

// UserRole represents the role of a platform user
type UserRole string

const (
	RoleUser       UserRole = "user"
	RoleSuperAdmin UserRole = "super_admin"
)

// User is the read model of a platform user.
// Accounts, sessions and credentials are owned by the upstream auth service;
// the scheduling core only needs identity, alias and timezone.
type User struct {
	ID       int64
	Name     string
	Email    string
	Alias    *string
	Role     UserRole
	Timezone string

	CreatedAt time.Time
}

// IsSuperAdmin returns true for platform administrators
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// Location resolves the user's stored timezone.
// All interval arithmetic for a user is done in this location.
func (u *User) Location() (*time.Location, error) {
	return time.LoadLocation(u.Timezone)
}
