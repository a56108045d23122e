package user

import "errors"

// Repository-level errors
var (
	ErrUserNotFound = errors.New("user not found")

	// Conflict
	ErrDuplicateUser = errors.New("user with this email already exists")
)

// Service-level (Business logic) errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAuthenticated   = errors.New("authentication required")
	ErrInvalidSession     = errors.New("invalid or expired session")
)
