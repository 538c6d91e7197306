package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("role must be one of: student, staff, admin")
	ErrSelfDelete         = errors.New("you cannot delete your own account")
)

// Role is the campus-wide role a user holds.
type Role string

const (
	RoleStudent Role = "student"
	RoleStaff   Role = "staff"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// CanModerate reports whether the role may approve or reject bookings
// regardless of resource ownership.
func (r Role) CanModerate() bool {
	return r == RoleStaff || r == RoleAdmin
}

// User represents a registered user.
type User struct {
	ID           string // UUID
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Department   *string
	ProfileImage *string
	CreatedAt    time.Time
}
