package domain

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotAnEmployee      = errors.New("assignee is not an employee")
	// ErrTaskNotFound covers both a missing task and a task owned by
	// someone else; callers must not be able to tell the two apart.
	ErrTaskNotFound  = errors.New("task not found")
	ErrInvalidStatus = errors.New("invalid task status")
	ErrTokenInvalid  = errors.New("invalid or expired token")
	ErrTokenRevoked  = errors.New("token revoked")
)
