package shelf

import "context"

// Repository persists the (user, book) → read relation. Absent entries
// mean "not read", so lookups never fail on missing rows.
type Repository interface {
	// Status reports whether the user marked the book as read.
	Status(ctx context.Context, userID string, bookID int) (bool, error)

	// Statuses bulk-loads all read marks of one user, keyed by book id.
	Statuses(ctx context.Context, userID string) (map[int]bool, error)

	// SetStatus stores the relation, creating it when missing.
	SetStatus(ctx context.Context, userID string, bookID int, read bool) error
}
