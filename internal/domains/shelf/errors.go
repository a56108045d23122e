package shelf

import "errors"

var (
	// ErrEntryNotFound is internal to the repositories: the service maps
	// it to "not read" instead of surfacing it.
	ErrEntryNotFound = errors.New("shelf entry not found")
)
