package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/user"
	"github.com/Dan4i4ek31/Final-Project-2.0/pkg/logger"
	"github.com/Dan4i4ek31/Final-Project-2.0/pkg/token"
)

// Session is the auth overlay state machine. Two states: Guest
// (Current() == nil) and Authenticated. Transitions happen only through
// Login, Register, Logout and Restore.
type Session struct {
	repo    user.Repository
	tokens  *token.Manager
	path    string // session file; empty disables persistence
	current *user.User
}

// NewSession creates a session in the Guest state.
func NewSession(repo user.Repository, tokens *token.Manager, path string) *Session {
	return &Session{
		repo:   repo,
		tokens: tokens,
		path:   path,
	}
}

// Current returns the authenticated identity, or nil for a guest.
func (s *Session) Current() *user.User {
	return s.current
}

// Authenticate checks credentials against stored records without
// touching the session. Callers on a background goroutine use this and
// Install the result from the event loop.
func (s *Session) Authenticate(ctx context.Context, req user.LoginRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Login(ctx, req.Email, req.Password)
}

// CreateAccount registers a new unique account without touching the
// session.
func (s *Session) CreateAccount(ctx context.Context, req user.RegisterRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Register(ctx, req)
}

// Install makes u the current identity and persists the session.
func (s *Session) Install(u *user.User) {
	s.current = u
	s.persist(u)
}

// Login authenticates and installs the identity in one step, for
// single-threaded callers.
func (s *Session) Login(ctx context.Context, req user.LoginRequest) (*user.User, error) {
	u, err := s.Authenticate(ctx, req)
	if err != nil {
		return nil, err
	}
	s.Install(u)
	return u, nil
}

// Register creates a new account and authenticates it right away,
// mirroring the registration flow of the web UI.
func (s *Session) Register(ctx context.Context, req user.RegisterRequest) (*user.User, error) {
	u, err := s.CreateAccount(ctx, req)
	if err != nil {
		return nil, err
	}
	s.Install(u)
	return u, nil
}

// Roles lists the role options for the registration form.
func (s *Session) Roles(ctx context.Context) ([]user.Role, error) {
	return s.repo.ListRoles(ctx)
}

// Logout drops the identity and clears the persisted session.
func (s *Session) Logout() {
	s.current = nil
	if s.path != "" {
		_ = os.Remove(s.path)
	}
}

// Restore rebuilds the session from the token file written by a
// previous run. Any failure leaves the session in the Guest state.
func (s *Session) Restore(ctx context.Context) (*user.User, error) {
	u, err := s.Resume(ctx)
	if err != nil || u == nil {
		return nil, err
	}
	s.current = u
	return u, nil
}

// Resume resolves the identity behind the persisted token without
// installing it. Returns (nil, nil) when no session is stored.
func (s *Session) Resume(ctx context.Context) (*user.User, error) {
	if s.path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}

	claims, err := s.tokens.Validate(string(raw))
	if err != nil {
		_ = os.Remove(s.path)
		return nil, user.ErrInvalidSession
	}

	// Refresh the display name from the source of record; fall back to
	// the claims when the lookup fails so a dead backend does not log
	// the user out.
	u, err := s.repo.GetUser(ctx, claims.UserID)
	if err != nil {
		u = &user.User{ID: claims.UserID, Name: claims.Name, Email: claims.Email}
	}
	return u, nil
}

func (s *Session) persist(u *user.User) {
	if s.path == "" {
		return
	}

	t, err := s.tokens.Generate(u.ID, u.Email, u.Name)
	if err != nil {
		logger.Error("generate session token", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		logger.Error("create session dir", err)
		return
	}
	if err := os.WriteFile(s.path, []byte(t), 0o600); err != nil {
		logger.Error("write session file", err)
	}
}
