package app_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan4i4ek31/Final-Project-2.0/internal/app"
	"github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/catalog"
	shelfsvc "github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/shelf/service"
	"github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/user"
	usersvc "github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/user/service"
	"github.com/Dan4i4ek31/Final-Project-2.0/internal/infrastructure/localstore"
	"github.com/Dan4i4ek31/Final-Project-2.0/internal/notify"
	"github.com/Dan4i4ek31/Final-Project-2.0/pkg/token"
)

// newApp wires the facade over a file-backed store, the way the local
// source runs in production.
func newApp(t *testing.T) *app.App {
	t.Helper()
	dir := t.TempDir()

	store, err := localstore.Open(filepath.Join(dir, "state.json"))
	require.NoError(t, err)

	tokens := token.NewManager("test-secret", time.Hour)
	session := usersvc.NewSession(store, tokens, filepath.Join(dir, "session.token"))

	a := app.New(12, store, session, shelfsvc.NewService(store), notify.NewSink())
	a.Load(context.Background())
	return a
}

func login(t *testing.T, a *app.App) *user.User {
	t.Helper()
	u, err := a.Register(context.Background(), user.RegisterRequest{
		Name:            "Анна",
		Email:           "anna@example.com",
		Password:        "secret1",
		PasswordConfirm: "secret1",
		RoleID:          1,
	})
	require.NoError(t, err)
	return u
}

func TestLoad_SeedCatalog(t *testing.T) {
	a := newApp(t)

	info := a.PageInfo()
	assert.Equal(t, 52, info.Total)
	assert.Equal(t, 5, info.PageCount)
	assert.False(t, a.UsingSampleData())
	assert.Len(t, a.Cards(), 12)
}

// failingCatalog simulates an unreachable source.
type failingCatalog struct{}

func (failingCatalog) LoadCatalog(context.Context) ([]catalog.Book, error) {
	return nil, errors.New("dial tcp: connection refused")
}

func (failingCatalog) AddComment(context.Context, int, string, string, string) (catalog.Comment, error) {
	return catalog.Comment{}, errors.New("dial tcp: connection refused")
}

func TestLoad_FallsBackToSampleData(t *testing.T) {
	dir := t.TempDir()
	store, err := localstore.Open(filepath.Join(dir, "state.json"))
	require.NoError(t, err)

	tokens := token.NewManager("test-secret", time.Hour)
	session := usersvc.NewSession(store, tokens, "")

	a := app.New(12, failingCatalog{}, session, shelfsvc.NewService(store), notify.NewSink())
	a.Load(context.Background())

	assert.True(t, a.UsingSampleData())
	assert.Equal(t, 52, a.PageInfo().Total)

	// The fallback is announced, not silent.
	live := a.Notifications()
	require.NotEmpty(t, live)
	assert.Equal(t, notify.Warning, live[0].Severity)
	assert.Contains(t, live[0].Message, "демонстрационные")
}

func TestSearchAndClear(t *testing.T) {
	a := newApp(t)

	a.NextPage()
	require.Equal(t, 2, a.PageInfo().Page)

	a.Search("роман")
	info := a.PageInfo()
	assert.Equal(t, 1, info.Page)
	assert.Less(t, info.Filtered, info.Total)

	for _, c := range a.Cards() {
		haystack := strings.ToLower(c.Title + " " + c.Author + " " + c.Badge)
		assert.Contains(t, haystack, "роман")
	}

	a.ClearFilters()
	info = a.PageInfo()
	assert.Equal(t, info.Total, info.Filtered)
}

func TestSetYears(t *testing.T) {
	a := newApp(t)

	from, to := 1800, 1900
	a.SetYears(&from, &to)

	for _, c := range a.Cards() {
		assert.NotEqual(t, "Год: —", c.YearLine)
	}
	assert.Less(t, a.PageInfo().Filtered, a.PageInfo().Total)
}

func TestAddSampleBook(t *testing.T) {
	a := newApp(t)
	before := a.PageInfo().Total

	b := a.AddSampleBook()
	assert.Equal(t, before+1, a.PageInfo().Total)
	assert.NotZero(t, b.ID)

	_, ok := a.Card(b.ID)
	assert.True(t, ok)
}

func TestToggleRead_GuestGated(t *testing.T) {
	a := newApp(t)

	_, err := a.ToggleRead(context.Background(), 1)
	assert.ErrorIs(t, err, user.ErrNotAuthenticated)

	live := a.Notifications()
	require.NotEmpty(t, live)
	assert.Equal(t, notify.Warning, live[0].Severity)

	// Guest cards carry no read toggle at all.
	for _, c := range a.Cards() {
		assert.False(t, c.ReadShown)
	}
}

func TestToggleRead_FlipsAndRenders(t *testing.T) {
	a := newApp(t)
	login(t, a)
	ctx := context.Background()

	read, err := a.ToggleRead(ctx, 1)
	require.NoError(t, err)
	assert.True(t, read)

	c, ok := a.Card(1)
	require.True(t, ok)
	assert.True(t, c.Read)
	assert.Equal(t, "Прочитано", c.ReadLabel)

	read, err = a.ToggleRead(ctx, 1)
	require.NoError(t, err)
	assert.False(t, read)

	c, _ = a.Card(1)
	assert.False(t, c.Read)
	assert.Equal(t, "Читать", c.ReadLabel)
}

func TestAddComment_GuestGated(t *testing.T) {
	a := newApp(t)

	_, err := a.AddComment(context.Background(), 1, "отличная книга")
	assert.ErrorIs(t, err, user.ErrNotAuthenticated)
}

func TestAddComment_Validation(t *testing.T) {
	a := newApp(t)
	login(t, a)
	ctx := context.Background()

	_, err := a.AddComment(ctx, 1, "   ")
	var verr validation.Errors
	assert.ErrorAs(t, err, &verr)

	_, err = a.AddComment(ctx, 1, strings.Repeat("ё", 201))
	assert.ErrorAs(t, err, &verr)

	// Exactly 200 runes is still fine.
	_, err = a.AddComment(ctx, 1, strings.Repeat("ё", 200))
	assert.NoError(t, err)
}

func TestAddComment_AppendsExactlyOnce(t *testing.T) {
	a := newApp(t)
	u := login(t, a)
	ctx := context.Background()

	before, ok := a.Card(1)
	require.True(t, ok)

	c, err := a.AddComment(ctx, 1, "отличная книга")
	require.NoError(t, err)
	assert.Equal(t, u.ID, c.AuthorID)
	assert.Equal(t, "Анна", c.Author)

	after, _ := a.Card(1)
	assert.Equal(t, before.CommentCount+1, after.CommentCount)
	require.NotEmpty(t, after.Comments)
	assert.Equal(t, "Анна: отличная книга", after.Comments[len(after.Comments)-1])

	// Only the one card changed.
	other, _ := a.Card(2)
	assert.Zero(t, other.CommentCount)
}

func TestAuthLifecycle(t *testing.T) {
	a := newApp(t)
	ctx := context.Background()

	require.Nil(t, a.CurrentUser())
	u := login(t, a)
	require.NotNil(t, a.CurrentUser())

	_, err := a.ToggleRead(ctx, 3)
	require.NoError(t, err)

	a.Logout()
	assert.Nil(t, a.CurrentUser())
	for _, c := range a.Cards() {
		assert.False(t, c.ReadShown)
		assert.False(t, c.ComposerShown)
	}

	// Logging back in restores the persisted read marks.
	_, err = a.Login(ctx, user.LoginRequest{Email: u.Email, Password: "secret1"})
	require.NoError(t, err)

	c, ok := a.Card(3)
	require.True(t, ok)
	assert.True(t, c.Read)
}

func TestLogin_BadCredentials(t *testing.T) {
	a := newApp(t)
	login(t, a)
	a.Logout()

	_, err := a.Login(context.Background(), user.LoginRequest{Email: "anna@example.com", Password: "wrong1"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	assert.Nil(t, a.CurrentUser())
}

func TestNotificationsDismiss(t *testing.T) {
	a := newApp(t)
	login(t, a)

	live := a.Notifications()
	require.NotEmpty(t, live)

	for _, n := range live {
		a.DismissNotification(n.ID)
	}
	assert.Empty(t, a.Notifications())
}

func TestBeginLogin_InstallsOnlyOnComplete(t *testing.T) {
	a := newApp(t)
	login(t, a)
	a.Logout()

	res, err := a.BeginLogin(context.Background(), user.LoginRequest{
		Email:    "anna@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	require.NotNil(t, res.User)
	assert.Nil(t, a.CurrentUser())

	a.CompleteLogin(res)
	require.NotNil(t, a.CurrentUser())
	assert.Equal(t, "Анна", a.CurrentUser().Name)
}

func TestPersistReadToggle_AppliesSeparately(t *testing.T) {
	a := newApp(t)
	u := login(t, a)
	id := a.Cards()[0].ID

	read, err := a.PersistReadToggle(context.Background(), u.ID, id)
	require.NoError(t, err)
	assert.True(t, read)
	assert.False(t, a.Cards()[0].Read)

	a.ApplyReadToggle(id, read)
	assert.True(t, a.Cards()[0].Read)
}
