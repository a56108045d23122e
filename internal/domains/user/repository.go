package user

import "context"

// Repository is the user-records contract shared by the REST backend
// and the local store.
type Repository interface {
	// Register creates a new unique account. Returns ErrDuplicateUser
	// when the email is taken; the existing record is left untouched.
	Register(ctx context.Context, req RegisterRequest) (*User, error)

	// Login matches credentials against stored records. Returns
	// ErrInvalidCredentials on no match or password mismatch.
	Login(ctx context.Context, email, password string) (*User, error)

	// GetUser resolves an identity by id, e.g. when restoring a session.
	GetUser(ctx context.Context, id string) (*User, error)

	// ListRoles returns the options for the registration form.
	ListRoles(ctx context.Context) ([]Role, error)
}
