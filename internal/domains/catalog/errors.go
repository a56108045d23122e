package catalog

import "errors"

// Repository-level errors
var (
	ErrBookNotFound = errors.New("book not found")

	// ErrUnavailable means the backend could not be reached at all.
	// The application falls back to the embedded demonstration dataset.
	ErrUnavailable = errors.New("catalog source unavailable")
)
