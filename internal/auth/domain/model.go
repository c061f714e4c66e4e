package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role is the closed set of roles an account can hold. An actor with no
// session at all is represented as a nil *Actor, not as a Role value.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
	RoleGuest Role = "GUEST"
)

// AllRoles returns all valid role values.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleUser, RoleGuest}
}

// ParseRole parses a string into a Role, case-insensitive.
func ParseRole(s string) (Role, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ADMIN":
		return RoleAdmin, nil
	case "USER":
		return RoleUser, nil
	case "GUEST":
		return RoleGuest, nil
	default:
		return "", fmt.Errorf("invalid role: %q", s)
	}
}

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// User is an account that can sign in. PasswordHash is a bcrypt hash and is
// never serialized.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Actor is the identity resolved from a session for the current request.
type Actor struct {
	ID   string
	Role Role
}
