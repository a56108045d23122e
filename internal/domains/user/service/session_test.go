package service_test

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/user"
	"github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/user/service"
	"github.com/Dan4i4ek31/Final-Project-2.0/pkg/token"
)

// fakeUsers is an in-memory user.Repository for session tests.
type fakeUsers struct {
	users   map[string]*user.User // by id
	byEmail map[string]string     // email -> password
	nextID  int
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{
		users:   make(map[string]*user.User),
		byEmail: make(map[string]string),
	}
}

func (f *fakeUsers) Register(_ context.Context, req user.RegisterRequest) (*user.User, error) {
	if _, ok := f.byEmail[req.Email]; ok {
		return nil, user.ErrDuplicateUser
	}
	f.nextID++
	u := &user.User{ID: "u-" + strconv.Itoa(f.nextID), Name: req.Name, Email: req.Email}
	f.users[u.ID] = u
	f.byEmail[req.Email] = req.Password
	return u, nil
}

func (f *fakeUsers) Login(_ context.Context, email, password string) (*user.User, error) {
	pw, ok := f.byEmail[email]
	if !ok || pw != password {
		return nil, user.ErrInvalidCredentials
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeUsers) GetUser(_ context.Context, id string) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUsers) ListRoles(context.Context) ([]user.Role, error) {
	return []user.Role{{ID: 1, Name: "Читатель"}}, nil
}

func newSession(t *testing.T, repo user.Repository) (*service.Session, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.token")
	tokens := token.NewManager("test-secret", time.Hour)
	return service.NewSession(repo, tokens, path), path
}

func registerReq() user.RegisterRequest {
	return user.RegisterRequest{
		Name:            "Анна",
		Email:           "anna@example.com",
		Password:        "secret1",
		PasswordConfirm: "secret1",
		RoleID:          1,
	}
}

func TestSession_StartsAsGuest(t *testing.T) {
	s, _ := newSession(t, newFakeUsers())
	assert.Nil(t, s.Current())
}

func TestSession_RegisterAuthenticates(t *testing.T) {
	s, path := newSession(t, newFakeUsers())

	u, err := s.Register(context.Background(), registerReq())
	require.NoError(t, err)
	require.NotNil(t, s.Current())
	assert.Equal(t, u.ID, s.Current().ID)

	// The session token landed on disk.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
}

func TestSession_RegisterValidation(t *testing.T) {
	s, _ := newSession(t, newFakeUsers())

	req := registerReq()
	req.PasswordConfirm = "different"
	_, err := s.Register(context.Background(), req)

	var verr validation.Errors
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr, "PasswordConfirm")
	assert.Nil(t, s.Current())
}

func TestSession_LoginAndLogout(t *testing.T) {
	repo := newFakeUsers()
	s, path := newSession(t, repo)

	_, err := s.Register(context.Background(), registerReq())
	require.NoError(t, err)
	s.Logout()
	require.Nil(t, s.Current())

	u, err := s.Login(context.Background(), user.LoginRequest{Email: "anna@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "Анна", u.Name)
	require.NotNil(t, s.Current())

	s.Logout()
	assert.Nil(t, s.Current())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestSession_LoginBadPassword(t *testing.T) {
	repo := newFakeUsers()
	s, _ := newSession(t, repo)
	_, err := s.Register(context.Background(), registerReq())
	require.NoError(t, err)
	s.Logout()

	_, err = s.Login(context.Background(), user.LoginRequest{Email: "anna@example.com", Password: "wrong1"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	assert.Nil(t, s.Current())
}

func TestSession_Restore(t *testing.T) {
	repo := newFakeUsers()
	first, path := newSession(t, repo)
	u, err := first.Register(context.Background(), registerReq())
	require.NoError(t, err)

	// A fresh session over the same file picks the identity back up.
	tokens := token.NewManager("test-secret", time.Hour)
	second := service.NewSession(repo, tokens, path)

	restored, err := second.Restore(context.Background())
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, u.ID, restored.ID)
	assert.Equal(t, u.ID, second.Current().ID)
}

func TestSession_RestoreFallsBackToClaims(t *testing.T) {
	repo := newFakeUsers()
	first, path := newSession(t, repo)
	u, err := first.Register(context.Background(), registerReq())
	require.NoError(t, err)

	// Lookup failure must not log the user out.
	tokens := token.NewManager("test-secret", time.Hour)
	second := service.NewSession(newFakeUsers(), tokens, path)

	restored, err := second.Restore(context.Background())
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, u.ID, restored.ID)
	assert.Equal(t, "Анна", restored.Name)
}

func TestSession_RestoreNoFile(t *testing.T) {
	s, _ := newSession(t, newFakeUsers())

	restored, err := s.Restore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, restored)
	assert.Nil(t, s.Current())
}

func TestSession_RestoreBadToken(t *testing.T) {
	repo := newFakeUsers()
	s, path := newSession(t, repo)
	require.NoError(t, os.WriteFile(path, []byte("not-a-token"), 0o600))

	_, err := s.Restore(context.Background())
	assert.ErrorIs(t, err, user.ErrInvalidSession)
	assert.Nil(t, s.Current())

	// The unreadable file is gone so the next start is clean.
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestSession_Roles(t *testing.T) {
	s, _ := newSession(t, newFakeUsers())

	roles, err := s.Roles(context.Background())
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, "Читатель", roles[0].Name)
}
