package user

// User is the authenticated identity. The guest state is a nil *User,
// never a zero-valued struct.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Role is one entry of the registration form's role selector.
type Role struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
