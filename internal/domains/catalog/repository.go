package catalog

import "context"

// Repository is the single data-source contract the rest of the
// application depends on. Two implementations exist: the REST-backed
// one and the local JSON store.
type Repository interface {
	// LoadCatalog fetches the full book list with authors, genres and
	// comment threads already resolved. Returns ErrUnavailable when the
	// source cannot be reached at all.
	LoadCatalog(ctx context.Context) ([]Book, error)

	// AddComment persists one comment and returns it as stored, with
	// id and timestamp assigned.
	AddComment(ctx context.Context, bookID int, userID, userName, text string) (Comment, error)
}
