// Package app wires the catalog state, the auth overlay and the
// repositories behind one facade. Every user action of the UI maps to
// exactly one method here, so state is never mutated from two paths.
package app

import (
	"context"
	"strings"

	"github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/catalog"
	shelfsvc "github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/shelf/service"
	"github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/user"
	usersvc "github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/user/service"
	"github.com/Dan4i4ek31/Final-Project-2.0/internal/notify"
	"github.com/Dan4i4ek31/Final-Project-2.0/internal/view"
	"github.com/Dan4i4ek31/Final-Project-2.0/pkg/logger"
)

// App is the owned application state object. State-mutating methods
// belong to the UI event loop; only the Fetch*/Begin*/Persist* phases
// may be called from other goroutines.
type App struct {
	state   *catalog.State
	books   catalog.Repository
	session *usersvc.Session
	shelves *shelfsvc.ShelfService
	sink    *notify.Sink

	// reads caches ReadStatus(currentUser, *) so cards render without a
	// lookup per book. Rebuilt on every auth change.
	reads map[int]bool

	usingSample bool
}

// New assembles the facade.
func New(pageSize int, books catalog.Repository, session *usersvc.Session, shelves *shelfsvc.ShelfService, sink *notify.Sink) *App {
	return &App{
		state:   catalog.NewState(pageSize),
		books:   books,
		session: session,
		shelves: shelves,
		sink:    sink,
		reads:   map[int]bool{},
	}
}

// The facade state mutates only from the UI event loop. Operations
// with repository I/O therefore come in two phases: a Fetch/Begin/
// Persist method that only talks to the repositories (safe on a
// background goroutine) and an Apply/Complete method that mutates the
// state (event loop only). The one-step forms compose the two for
// single-threaded callers.

// FetchCatalog loads the book list without touching any state.
func (a *App) FetchCatalog(ctx context.Context) ([]catalog.Book, error) {
	return a.books.LoadCatalog(ctx)
}

// ApplyCatalog installs a fetch result. When the source was
// unreachable the embedded demonstration dataset takes its place and
// the user is told about it.
func (a *App) ApplyCatalog(books []catalog.Book, err error) {
	if err != nil {
		logger.Error("load catalog", err)
		a.usingSample = true
		a.state.SetBooks(catalog.Seed())
		a.sink.Push("Сервер недоступен, используются демонстрационные данные", notify.Warning, 0)
		return
	}
	a.usingSample = false
	a.state.SetBooks(books)
}

// Load populates the catalog in one step.
func (a *App) Load(ctx context.Context) {
	books, err := a.FetchCatalog(ctx)
	a.ApplyCatalog(books, err)
}

// UsingSampleData reports whether the fallback dataset is active.
func (a *App) UsingSampleData() bool { return a.usingSample }

// ────────────────────────────────────────────────
// Query / pagination
// ────────────────────────────────────────────────

// Search installs a new search text; the cursor resets to page 1.
func (a *App) Search(q string) {
	s := a.state.Settings()
	s.Search = q
	a.state.Apply(s)
}

// SetSort installs a new sort key; the cursor resets to page 1.
func (a *App) SetSort(key catalog.SortKey) {
	s := a.state.Settings()
	s.Sort = key
	a.state.Apply(s)
}

// SetYears installs inclusive year bounds; nil means open-ended.
func (a *App) SetYears(from, to *int) {
	s := a.state.Settings()
	s.YearFrom, s.YearTo = from, to
	a.state.Apply(s)
}

// ClearFilters resets all settings to defaults.
func (a *App) ClearFilters() { a.state.ClearFilters() }

// Settings returns the active filter/sort settings.
func (a *App) Settings() catalog.Settings { return a.state.Settings() }

// NextPage / PrevPage move the cursor; no-ops beyond bounds.
func (a *App) NextPage() { a.state.NextPage() }
func (a *App) PrevPage() { a.state.PrevPage() }

// PageInfo describes the cursor for the footer.
func (a *App) PageInfo() catalog.PageInfo { return a.state.PageInfo() }

// AddSampleBook prepends a generated book, as the demo control of the
// web UI did.
func (a *App) AddSampleBook() catalog.Book {
	b := catalog.SampleBook(a.state.NextID())
	a.state.AddBook(b)
	return b
}

// ────────────────────────────────────────────────
// Rendering
// ────────────────────────────────────────────────

// Cards renders the visible page for the current user.
func (a *App) Cards() []view.CardModel {
	u := a.session.Current()
	page := a.state.Page()
	out := make([]view.CardModel, len(page))
	for i, b := range page {
		out[i] = view.Card(b, view.Context{User: u, Read: a.reads[b.ID]})
	}
	return out
}

// Card renders a single book, e.g. for the detail panel.
func (a *App) Card(bookID int) (view.CardModel, bool) {
	b, ok := a.state.Book(bookID)
	if !ok {
		return view.CardModel{}, false
	}
	return view.Card(b, view.Context{User: a.session.Current(), Read: a.reads[b.ID]}), true
}

// ────────────────────────────────────────────────
// Auth-gated actions
// ────────────────────────────────────────────────

// PersistReadToggle flips the read mark in the repository for one
// user. It touches no state, so it may run on a background goroutine;
// the sink is safe to push to from there.
func (a *App) PersistReadToggle(ctx context.Context, userID string, bookID int) (bool, error) {
	read, err := a.shelves.Toggle(ctx, userID, bookID)
	if err != nil {
		logger.Error("toggle read", err)
		a.sink.Push("Не удалось сохранить отметку о прочтении", notify.Error, notify.DefaultDuration)
		return false, err
	}
	return read, nil
}

// ApplyReadToggle records a persisted read mark in the render cache.
func (a *App) ApplyReadToggle(bookID int, read bool) {
	a.reads[bookID] = read
	if read {
		a.sink.Push("Отмечено как прочитанное", notify.Success, 0)
	} else {
		a.sink.Push("Отметка о прочтении снята", notify.Success, 0)
	}
}

// ToggleRead flips the read mark for the current user in one step.
// Guests get a warning notification and user.ErrNotAuthenticated.
func (a *App) ToggleRead(ctx context.Context, bookID int) (bool, error) {
	u := a.session.Current()
	if u == nil {
		a.sink.Push("Войдите чтобы отмечать прочитанное", notify.Warning, 0)
		return false, user.ErrNotAuthenticated
	}
	read, err := a.PersistReadToggle(ctx, u.ID, bookID)
	if err != nil {
		return a.reads[bookID], err
	}
	a.ApplyReadToggle(bookID, read)
	return read, nil
}

// PersistComment validates and stores one comment for the given
// author. No state is touched, so it may run on a background goroutine.
func (a *App) PersistComment(ctx context.Context, bookID int, userID, userName, text string) (catalog.Comment, error) {
	text = strings.TrimSpace(text)
	req := catalog.AddCommentRequest{BookID: bookID, Text: text}
	if err := req.Validate(); err != nil {
		return catalog.Comment{}, err
	}

	c, err := a.books.AddComment(ctx, bookID, userID, userName, text)
	if err != nil {
		logger.Error("add comment", err)
		a.sink.Push("Не удалось отправить комментарий", notify.Error, notify.DefaultDuration)
		return catalog.Comment{}, err
	}
	return c, nil
}

// ApplyComment patches the in-memory thread with a persisted comment.
// The caller appends the returned comment to the open card instead of
// re-rendering the list.
func (a *App) ApplyComment(bookID int, c catalog.Comment) error {
	if !a.state.AppendComment(bookID, c) {
		return catalog.ErrBookNotFound
	}
	a.sink.Push("Комментарий добавлен", notify.Success, 0)
	return nil
}

// AddComment persists and applies one comment in one step. Guests get
// a warning notification and user.ErrNotAuthenticated.
func (a *App) AddComment(ctx context.Context, bookID int, text string) (catalog.Comment, error) {
	u := a.session.Current()
	if u == nil {
		a.sink.Push("Пожалуйста, войдите чтобы оставить комментарий", notify.Warning, 0)
		return catalog.Comment{}, user.ErrNotAuthenticated
	}
	c, err := a.PersistComment(ctx, bookID, u.ID, u.Name, text)
	if err != nil {
		return catalog.Comment{}, err
	}
	if err := a.ApplyComment(bookID, c); err != nil {
		return catalog.Comment{}, err
	}
	return c, nil
}

// ────────────────────────────────────────────────
// Auth overlay
// ────────────────────────────────────────────────

// CurrentUser returns the identity, or nil for a guest.
func (a *App) CurrentUser() *user.User { return a.session.Current() }

// AuthResult carries everything an auth round trip resolved, ready to
// be installed from the event loop.
type AuthResult struct {
	User  *user.User
	Marks map[int]bool
}

// BeginLogin authenticates and loads the per-user read marks without
// installing either.
func (a *App) BeginLogin(ctx context.Context, req user.LoginRequest) (AuthResult, error) {
	u, err := a.session.Authenticate(ctx, req)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: u, Marks: a.fetchMarks(ctx, u.ID)}, nil
}

// CompleteLogin installs an authenticated identity and its read marks.
func (a *App) CompleteLogin(res AuthResult) {
	a.session.Install(res.User)
	a.reads = res.Marks
	a.sink.Push("Вход выполнен успешно", notify.Success, 0)
}

// Login authenticates and installs in one step.
func (a *App) Login(ctx context.Context, req user.LoginRequest) (*user.User, error) {
	res, err := a.BeginLogin(ctx, req)
	if err != nil {
		return nil, err
	}
	a.CompleteLogin(res)
	return res.User, nil
}

// BeginRegistration creates an account without installing it.
func (a *App) BeginRegistration(ctx context.Context, req user.RegisterRequest) (AuthResult, error) {
	u, err := a.session.CreateAccount(ctx, req)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: u, Marks: a.fetchMarks(ctx, u.ID)}, nil
}

// CompleteRegistration installs a freshly created identity.
func (a *App) CompleteRegistration(res AuthResult) {
	a.session.Install(res.User)
	a.reads = res.Marks
	a.sink.Push("Регистрация выполнена успешно", notify.Success, 0)
}

// Register creates an account and installs it in one step.
func (a *App) Register(ctx context.Context, req user.RegisterRequest) (*user.User, error) {
	res, err := a.BeginRegistration(ctx, req)
	if err != nil {
		return nil, err
	}
	a.CompleteRegistration(res)
	return res.User, nil
}

// Logout returns to the guest state; read marks are dropped so cards
// re-render without the gated controls.
func (a *App) Logout() {
	a.session.Logout()
	a.reads = map[int]bool{}
	a.sink.Push("Вы вышли из системы", notify.Info, 0)
}

// BeginRestore resolves a persisted session without installing it.
// The zero result means no session is stored; failures silently leave
// the guest state.
func (a *App) BeginRestore(ctx context.Context) AuthResult {
	u, err := a.session.Resume(ctx)
	if err != nil || u == nil {
		return AuthResult{}
	}
	return AuthResult{User: u, Marks: a.fetchMarks(ctx, u.ID)}
}

// CompleteRestore installs a resumed session; no-op for the zero
// result.
func (a *App) CompleteRestore(res AuthResult) {
	if res.User == nil {
		return
	}
	a.session.Install(res.User)
	a.reads = res.Marks
}

// Restore rebuilds a persisted session at startup in one step.
func (a *App) Restore(ctx context.Context) {
	a.CompleteRestore(a.BeginRestore(ctx))
}

// Roles lists the options for the registration form.
func (a *App) Roles(ctx context.Context) ([]user.Role, error) {
	return a.session.Roles(ctx)
}

// Notifications returns the live notification stack.
func (a *App) Notifications() []notify.Notification { return a.sink.Active() }

// DismissNotification removes one notification.
func (a *App) DismissNotification(id int) { a.sink.Dismiss(id) }

// fetchMarks loads the read statuses of one user; an error degrades to
// no marks rather than failing the auth round trip.
func (a *App) fetchMarks(ctx context.Context, userID string) map[int]bool {
	marks, err := a.shelves.Statuses(ctx, userID)
	if err != nil {
		logger.Error("load read statuses", err)
		return map[int]bool{}
	}
	return marks
}
