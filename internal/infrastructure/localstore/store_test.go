package localstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/shelf"
	"github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/user"
	"github.com/Dan4i4ek31/Final-Project-2.0/internal/infrastructure/localstore"
)

func openStore(t *testing.T) (*localstore.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := localstore.Open(path)
	require.NoError(t, err)
	return s, path
}

func registerRequest(email string) user.RegisterRequest {
	return user.RegisterRequest{
		Name:            "Анна",
		Email:           email,
		Password:        "secret1",
		PasswordConfirm: "secret1",
		RoleID:          1,
	}
}

func TestOpen_MissingFile(t *testing.T) {
	s, err := localstore.Open(filepath.Join(t.TempDir(), "does", "not", "exist.json"))
	require.NoError(t, err)

	books, err := s.LoadCatalog(context.Background())
	require.NoError(t, err)
	assert.Len(t, books, 52)
}

func TestRegisterAndLogin(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()

	u, err := s.Register(ctx, registerRequest("anna@example.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Анна", u.Name)

	got, err := s.Login(ctx, "anna@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = s.Login(ctx, "anna@example.com", "wrong")
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)

	_, err = s.Login(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestRegister_DuplicateEmailKeepsOriginal(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()

	first, err := s.Register(ctx, registerRequest("anna@example.com"))
	require.NoError(t, err)

	dup := registerRequest("anna@example.com")
	dup.Name = "Самозванец"
	_, err = s.Register(ctx, dup)
	assert.ErrorIs(t, err, user.ErrDuplicateUser)

	// The original record is untouched, including its password.
	got, err := s.Login(ctx, "anna@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "Анна", got.Name)
}

func TestGetUser(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()

	u, err := s.Register(ctx, registerRequest("anna@example.com"))
	require.NoError(t, err)

	got, err := s.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, got.Email)

	_, err = s.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestListRoles(t *testing.T) {
	s, _ := openStore(t)

	roles, err := s.ListRoles(context.Background())
	require.NoError(t, err)
	require.Len(t, roles, 3)
	assert.Equal(t, "Читатель", roles[0].Name)
}

func TestAddComment_PersistsAcrossReopen(t *testing.T) {
	s, path := openStore(t)
	ctx := context.Background()

	c, err := s.AddComment(ctx, 1, "u-1", "Анна", "Отличная книга")
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Анна", c.Author)
	assert.False(t, c.CreatedAt.IsZero())

	reopened, err := localstore.Open(path)
	require.NoError(t, err)

	books, err := reopened.LoadCatalog(ctx)
	require.NoError(t, err)
	for _, b := range books {
		if b.ID == 1 {
			require.Len(t, b.Comments, 1)
			assert.Equal(t, "Отличная книга", b.Comments[0].Text)
			return
		}
	}
	t.Fatal("book 1 not found in catalog")
}

func TestAddComment_AppendOrder(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()

	_, err := s.AddComment(ctx, 2, "u-1", "Анна", "первый")
	require.NoError(t, err)
	_, err = s.AddComment(ctx, 2, "u-2", "Пётр", "второй")
	require.NoError(t, err)

	books, err := s.LoadCatalog(ctx)
	require.NoError(t, err)
	for _, b := range books {
		if b.ID == 2 {
			require.Len(t, b.Comments, 2)
			assert.Equal(t, "первый", b.Comments[0].Text)
			assert.Equal(t, "второй", b.Comments[1].Text)
			return
		}
	}
	t.Fatal("book 2 not found in catalog")
}

func TestShelfStatus(t *testing.T) {
	s, path := openStore(t)
	ctx := context.Background()

	// No entry yet: not-found, distinct from read=false.
	_, err := s.Status(ctx, "u-1", 5)
	assert.ErrorIs(t, err, shelf.ErrEntryNotFound)

	require.NoError(t, s.SetStatus(ctx, "u-1", 5, true))
	read, err := s.Status(ctx, "u-1", 5)
	require.NoError(t, err)
	assert.True(t, read)

	// Toggle back keeps the entry with read=false.
	require.NoError(t, s.SetStatus(ctx, "u-1", 5, false))
	read, err = s.Status(ctx, "u-1", 5)
	require.NoError(t, err)
	assert.False(t, read)

	reopened, err := localstore.Open(path)
	require.NoError(t, err)
	read, err = reopened.Status(ctx, "u-1", 5)
	require.NoError(t, err)
	assert.False(t, read)
}

func TestShelfStatuses_PerUser(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetStatus(ctx, "u-1", 1, true))
	require.NoError(t, s.SetStatus(ctx, "u-1", 2, false))
	require.NoError(t, s.SetStatus(ctx, "u-2", 3, true))

	marks, err := s.Statuses(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{1: true, 2: false}, marks)

	marks, err = s.Statuses(ctx, "u-2")
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{3: true}, marks)

	marks, err = s.Statuses(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, marks)
}
