package ui

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan4i4ek31/Final-Project-2.0/internal/app"
	shelfsvc "github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/shelf/service"
	"github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/user"
	usersvc "github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/user/service"
	"github.com/Dan4i4ek31/Final-Project-2.0/internal/infrastructure/localstore"
	"github.com/Dan4i4ek31/Final-Project-2.0/internal/notify"
	"github.com/Dan4i4ek31/Final-Project-2.0/pkg/token"
)

// newTestModel builds the root model over a file-backed store with the
// catalog loaded, the way the program starts against the local source.
func newTestModel(t *testing.T) Model {
	t.Helper()
	dir := t.TempDir()

	store, err := localstore.Open(filepath.Join(dir, "state.json"))
	require.NoError(t, err)

	tokens := token.NewManager("test-secret", time.Hour)
	session := usersvc.NewSession(store, tokens, filepath.Join(dir, "session.token"))

	a := app.New(12, store, session, shelfsvc.NewService(store), notify.NewSink())
	a.Load(context.Background())

	m := New(a)
	m.loaded = true
	return m
}

func signIn(t *testing.T, m Model) Model {
	t.Helper()
	_, err := m.app.Register(context.Background(), user.RegisterRequest{
		Name:            "Анна",
		Email:           "anna@example.com",
		Password:        "secret1",
		PasswordConfirm: "secret1",
		RoleID:          1,
	})
	require.NoError(t, err)
	return m
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// A read toggle runs its repository write on a command goroutine and
// must not touch the render state until the reply reaches Update.
func TestUpdate_ToggleReadAppliesOnReply(t *testing.T) {
	m := signIn(t, newTestModel(t))

	cards := m.app.Cards()
	require.NotEmpty(t, cards)
	require.False(t, cards[0].Read)

	m, run := step(t, m, keyMsg("r"))
	require.NotNil(t, run)
	assert.True(t, m.pending)

	// second press while the write is outstanding is a no-op
	m, again := step(t, m, keyMsg("r"))
	assert.Nil(t, again)

	msg := run()
	tm, ok := msg.(toggledMsg)
	require.True(t, ok)
	require.NoError(t, tm.err)
	assert.True(t, tm.read)

	// the write landed in the repository, not in the render cache
	assert.False(t, m.app.Cards()[0].Read)

	m, _ = step(t, m, msg)
	assert.False(t, m.pending)
	assert.True(t, m.app.Cards()[0].Read)
}

func TestUpdate_CommentAppliesOnReply(t *testing.T) {
	m := signIn(t, newTestModel(t))

	cards := m.app.Cards()
	require.NotEmpty(t, cards)
	m.mode = modeDetail
	m.detailID = cards[0].ID
	m.composer.Focus()
	m.composer.SetValue("Отличная книга")

	before, ok := m.app.Card(m.detailID)
	require.True(t, ok)

	m, run := step(t, m, keyMsg("enter"))
	require.NotNil(t, run)
	assert.True(t, m.pending)

	m, again := step(t, m, keyMsg("enter"))
	assert.Nil(t, again)

	msg := run()
	cm, ok := msg.(commentMsg)
	require.True(t, ok)
	require.NoError(t, cm.err)
	assert.Equal(t, "Отличная книга", cm.comment.Text)

	mid, _ := m.app.Card(m.detailID)
	assert.Equal(t, before.CommentCount, mid.CommentCount)

	m, _ = step(t, m, msg)
	assert.False(t, m.pending)
	assert.Empty(t, m.composer.Value())
	after, _ := m.app.Card(m.detailID)
	assert.Equal(t, before.CommentCount+1, after.CommentCount)
}

func TestUpdate_LoginInstallsOnReply(t *testing.T) {
	m := signIn(t, newTestModel(t))
	m.app.Logout()

	m, _ = step(t, m, keyMsg("l"))
	require.Equal(t, modeAuth, m.mode)

	m.auth.inputs[fieldEmail].SetValue("anna@example.com")
	m.auth.inputs[fieldPassword].SetValue("secret1")

	m, run := step(t, m, keyMsg("enter"))
	require.NotNil(t, run)
	assert.True(t, m.pending)

	m, again := step(t, m, keyMsg("enter"))
	assert.Nil(t, again)

	msg := run()
	am, ok := msg.(authDoneMsg)
	require.True(t, ok)
	require.NoError(t, am.err)
	require.NotNil(t, am.res.User)

	// the identity installs from the event loop, not from the command
	assert.Nil(t, m.app.CurrentUser())

	m, _ = step(t, m, msg)
	assert.False(t, m.pending)
	assert.Equal(t, modeBrowse, m.mode)
	require.NotNil(t, m.app.CurrentUser())
	assert.Equal(t, "Анна", m.app.CurrentUser().Name)
}

func TestUpdate_LoginFailureKeepsOverlay(t *testing.T) {
	m := signIn(t, newTestModel(t))
	m.app.Logout()

	m, _ = step(t, m, keyMsg("l"))
	m.auth.inputs[fieldEmail].SetValue("anna@example.com")
	m.auth.inputs[fieldPassword].SetValue("wrong-1")

	m, run := step(t, m, keyMsg("enter"))
	require.NotNil(t, run)

	msg := run()
	am, ok := msg.(authDoneMsg)
	require.True(t, ok)
	require.Error(t, am.err)

	m, _ = step(t, m, msg)
	assert.False(t, m.pending)
	assert.Equal(t, modeAuth, m.mode)
	assert.Equal(t, "Неверный email или пароль", m.auth.errMsg)
	assert.Nil(t, m.app.CurrentUser())
}

func TestUpdate_CatalogLoadAppliesOnReply(t *testing.T) {
	dir := t.TempDir()
	store, err := localstore.Open(filepath.Join(dir, "state.json"))
	require.NoError(t, err)

	tokens := token.NewManager("test-secret", time.Hour)
	session := usersvc.NewSession(store, tokens, filepath.Join(dir, "session.token"))
	a := app.New(12, store, session, shelfsvc.NewService(store), notify.NewSink())

	m := New(a)
	msg := m.loadCmd()()
	lm, ok := msg.(loadedMsg)
	require.True(t, ok)
	require.NoError(t, lm.err)

	assert.Equal(t, 0, m.app.PageInfo().Total)

	next, _ := m.Update(msg)
	m = next.(Model)
	assert.True(t, m.loaded)
	assert.Equal(t, 52, m.app.PageInfo().Total)
}
