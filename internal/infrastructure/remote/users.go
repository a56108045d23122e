package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/user"
)

// Register creates a backend account. The backend replies 400 when the
// email is already taken.
func (c *Client) Register(ctx context.Context, req user.RegisterRequest) (*user.User, error) {
	body := userCreateDTO{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		RoleID:   req.RoleID,
	}

	var created userDTO
	if err := c.post(ctx, "/users/", body, &created); err != nil {
		switch statusCode(err) {
		case http.StatusBadRequest, http.StatusConflict:
			return nil, user.ErrDuplicateUser
		}
		return nil, fmt.Errorf("register: %w", err)
	}
	return created.toUser(), nil
}

// Login checks credentials. Credentials travel as query parameters, the
// way the backend's login route is defined.
func (c *Client) Login(ctx context.Context, email, password string) (*user.User, error) {
	q := url.Values{"email": {email}, "password": {password}}

	var resp loginResponseDTO
	if err := c.post(ctx, "/users/login?"+q.Encode(), nil, &resp); err != nil {
		if statusCode(err) == http.StatusUnauthorized {
			return nil, user.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	// The login reply only carries id and email; fetch the record for
	// the display name.
	u, err := c.GetUser(ctx, strconv.Itoa(resp.UserID))
	if err != nil {
		return &user.User{ID: strconv.Itoa(resp.UserID), Name: resp.Email, Email: resp.Email}, nil
	}
	return u, nil
}

// GetUser resolves one account by id.
func (c *Client) GetUser(ctx context.Context, id string) (*user.User, error) {
	var d userDTO
	if err := c.get(ctx, "/users/"+url.PathEscape(id), &d); err != nil {
		if statusCode(err) == http.StatusNotFound {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return d.toUser(), nil
}

// ListRoles returns the options for the registration form.
func (c *Client) ListRoles(ctx context.Context) ([]user.Role, error) {
	var roles []roleDTO
	if err := c.get(ctx, "/roles/?skip=0&limit=100", &roles); err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}

	out := make([]user.Role, len(roles))
	for i, r := range roles {
		out[i] = user.Role{ID: r.ID, Name: r.Name}
	}
	return out, nil
}
