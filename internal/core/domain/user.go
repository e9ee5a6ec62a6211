package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
)

// ParseRole accepts the role in any casing ("Manager", "EMPLOYEE", ...).
func ParseRole(value string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(value))) {
	case RoleEmployee:
		return RoleEmployee, true
	case RoleManager:
		return RoleManager, true
	}
	return "", false
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// UserSummary is the public view of a user. It never carries the
// password hash, so it is safe to embed in API responses.
type UserSummary struct {
	ID    string
	Name  string
	Email string
	Role  Role
}

func (u User) Summary() UserSummary {
	return UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     Role
}

// Identity is the authenticated principal resolved from a session token.
type Identity struct {
	UserID string
	Role   Role
}
