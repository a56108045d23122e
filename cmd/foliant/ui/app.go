package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dan4i4ek31/Final-Project-2.0/internal/app"
	"github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/catalog"
	"github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/user"
)

// uiMode is the exclusive top-level screen state: at most one overlay
// (detail panel or auth modal) is open at a time.
type uiMode int

const (
	modeBrowse uiMode = iota
	modeDetail
	modeAuth
)

var sortOrder = []catalog.SortKey{
	catalog.SortByTitle,
	catalog.SortByAuthor,
	catalog.SortByGenre,
	catalog.SortByYearDesc,
	catalog.SortByYearAsc,
}

var sortTitles = map[catalog.SortKey]string{
	catalog.SortByTitle:    "по названию",
	catalog.SortByAuthor:   "по автору",
	catalog.SortByGenre:    "по жанру",
	catalog.SortByYearDesc: "по году ↓",
	catalog.SortByYearAsc:  "по году ↑",
}

// Messages produced by asynchronous commands. Commands run on their
// own goroutines, so they carry the repository result here and Update
// applies it to the facade on the event loop.
type (
	tickMsg   time.Time
	loadedMsg struct {
		books []catalog.Book
		err   error
	}
	restoredMsg struct{ res app.AuthResult }
	toggledMsg  struct {
		bookID int
		read   bool
		err    error
	}
	commentMsg struct {
		bookID  int
		comment catalog.Comment
		err     error
	}
	authDoneMsg struct {
		res      app.AuthResult
		register bool
		err      error
	}
	rolesMsg struct{ roles []user.Role }
)

// Model is the root bubbletea model.
type Model struct {
	app    *app.App
	styles Styles

	width  int
	height int

	mode     uiMode
	cursor   int // selected card on the visible page
	detailID int // book shown in the detail panel

	search   textinput.Model
	yearFrom textinput.Model
	yearTo   textinput.Model
	composer textinput.Model
	// filterFocus: 0 none, 1 search, 2 yearFrom, 3 yearTo
	filterFocus int

	auth    authForm
	roles   []user.Role
	pending bool // a repository write is in flight; controls disable
	loaded  bool
}

// New creates the root model around the application facade.
func New(a *app.App) Model {
	styles := DefaultStyles()

	search := textinput.New()
	search.Placeholder = "Поиск по названию, автору, жанру…"
	search.CharLimit = 80
	search.Width = 34

	yf := textinput.New()
	yf.Placeholder = "год с"
	yf.CharLimit = 4
	yf.Width = 6

	yt := textinput.New()
	yt.Placeholder = "год по"
	yt.CharLimit = 4
	yt.Width = 6

	composer := textinput.New()
	composer.Placeholder = "Оставить комментарий…"
	composer.CharLimit = 200
	composer.Width = 56

	return Model{
		app:      a,
		styles:   styles,
		search:   search,
		yearFrom: yf,
		yearTo:   yt,
		composer: composer,
		auth:     newAuthForm(styles),
	}
}

// Init starts the initial catalog load and the notification ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.restoreCmd(), tickCmd())
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		books, err := m.app.FetchCatalog(ctx)
		return loadedMsg{books: books, err: err}
	}
}

func (m Model) restoreCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return restoredMsg{res: m.app.BeginRestore(ctx)}
	}
}

func (m Model) rolesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		roles, err := m.app.Roles(ctx)
		if err != nil {
			roles = nil
		}
		return rolesMsg{roles: roles}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tickMsg:
		// Active() prunes expired notifications as a side effect.
		m.app.Notifications()
		return m, tickCmd()

	case loadedMsg:
		m.app.ApplyCatalog(msg.books, msg.err)
		m.loaded = true
		return m, nil

	case restoredMsg:
		m.app.CompleteRestore(msg.res)
		return m, nil

	case rolesMsg:
		m.roles = msg.roles
		m.auth.roles = msg.roles
		return m, nil

	case toggledMsg:
		m.pending = false
		if msg.err == nil {
			m.app.ApplyReadToggle(msg.bookID, msg.read)
		}
		return m, nil

	case commentMsg:
		m.pending = false
		if msg.err != nil {
			return m, nil
		}
		if err := m.app.ApplyComment(msg.bookID, msg.comment); err == nil {
			m.composer.SetValue("")
		}
		return m, nil

	case authDoneMsg:
		m.pending = false
		if msg.err != nil {
			m.auth.setError(msg.err)
			return m, nil
		}
		if msg.register {
			m.app.CompleteRegistration(msg.res)
		} else {
			m.app.CompleteLogin(msg.res)
		}
		m.mode = modeBrowse
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// While a write is outstanding the originating screen is frozen so
	// a double press cannot submit twice.
	if m.pending {
		return m, nil
	}

	switch m.mode {
	case modeAuth:
		return m.handleAuthKey(msg)
	case modeDetail:
		return m.handleDetailKey(msg)
	default:
		return m.handleBrowseKey(msg)
	}
}

func (m Model) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.mode = modeBrowse
		return m, nil
	}

	cmd, submit := m.auth.update(msg)
	if !submit {
		return m, cmd
	}

	m.pending = true
	if m.auth.mode == authLogin {
		req := m.auth.loginRequest()
		return m, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			res, err := m.app.BeginLogin(ctx, req)
			return authDoneMsg{res: res, err: err}
		}
	}
	req := m.auth.registerRequest()
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		res, err := m.app.BeginRegistration(ctx, req)
		return authDoneMsg{res: res, register: true, err: err}
	}
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		// Closing always restores the grid; nothing lingers from the
		// panel, so repeated opens cannot leak state.
		m.mode = modeBrowse
		m.composer.Blur()
		m.composer.SetValue("")
		return m, nil

	case "r":
		if !m.composer.Focused() {
			return m.toggleRead(m.detailID)
		}

	case "enter":
		text := strings.TrimSpace(m.composer.Value())
		if text == "" {
			return m, nil
		}
		u := m.app.CurrentUser()
		if u == nil {
			// Guest: App pushes the warning notification on the spot.
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_, _ = m.app.AddComment(ctx, m.detailID, text)
			return m, nil
		}
		m.pending = true
		bookID := m.detailID
		return m, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			c, err := m.app.PersistComment(ctx, bookID, u.ID, u.Name, text)
			return commentMsg{bookID: bookID, comment: c, err: err}
		}

	case "tab":
		if m.composer.Focused() {
			m.composer.Blur()
		} else {
			m.composer.Focus()
		}
		return m, nil
	}

	if m.composer.Focused() {
		var cmd tea.Cmd
		m.composer, cmd = m.composer.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Keys routed into a focused filter input first.
	if m.filterFocus != 0 {
		switch msg.String() {
		case "esc":
			m.blurFilters()
			return m, nil
		case "enter", "tab":
			if msg.String() == "tab" {
				m.cycleFilterFocus()
				return m, nil
			}
			m.blurFilters()
			m.applyFilters()
			return m, nil
		default:
			var cmd tea.Cmd
			switch m.filterFocus {
			case 1:
				m.search, cmd = m.search.Update(msg)
				// Search applies as you type, like the web UI.
				m.applyFilters()
			case 2:
				m.yearFrom, cmd = m.yearFrom.Update(msg)
			case 3:
				m.yearTo, cmd = m.yearTo.Update(msg)
			}
			return m, cmd
		}
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "/":
		m.filterFocus = 1
		m.search.Focus()
		return m, nil

	case "y":
		m.filterFocus = 2
		m.yearFrom.Focus()
		return m, nil

	case "s":
		m.cycleSort()
		return m, nil

	case "c":
		m.search.SetValue("")
		m.yearFrom.SetValue("")
		m.yearTo.SetValue("")
		m.app.ClearFilters()
		m.cursor = 0
		return m, nil

	case "a":
		m.app.AddSampleBook()
		return m, nil

	case "left", "p":
		m.app.PrevPage()
		m.cursor = 0
		return m, nil

	case "right", "n":
		m.app.NextPage()
		m.cursor = 0
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.app.Cards())-1 {
			m.cursor++
		}
		return m, nil

	case "enter", " ":
		cards := m.app.Cards()
		if m.cursor < len(cards) {
			m.detailID = cards[m.cursor].ID
			m.mode = modeDetail
			if m.app.CurrentUser() != nil {
				m.composer.Focus()
			}
		}
		return m, nil

	case "r":
		cards := m.app.Cards()
		if m.cursor < len(cards) {
			return m.toggleRead(cards[m.cursor].ID)
		}
		return m, nil

	case "l":
		if m.app.CurrentUser() == nil {
			m.mode = modeAuth
			m.auth.open(authLogin, m.roles)
			return m, nil
		}
		return m, nil

	case "o":
		if m.app.CurrentUser() == nil {
			m.mode = modeAuth
			m.auth.open(authRegister, m.roles)
			return m, m.rolesCmd()
		}
		return m, nil

	case "x":
		if m.app.CurrentUser() != nil {
			m.app.Logout()
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) toggleRead(bookID int) (tea.Model, tea.Cmd) {
	u := m.app.CurrentUser()
	if u == nil {
		// Guest: App pushes the warning notification; nothing to do.
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_, _ = m.app.ToggleRead(ctx, bookID)
		return *m, nil
	}

	m.pending = true
	return *m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		read, err := m.app.PersistReadToggle(ctx, u.ID, bookID)
		return toggledMsg{bookID: bookID, read: read, err: err}
	}
}

func (m *Model) blurFilters() {
	m.filterFocus = 0
	m.search.Blur()
	m.yearFrom.Blur()
	m.yearTo.Blur()
}

func (m *Model) cycleFilterFocus() {
	m.search.Blur()
	m.yearFrom.Blur()
	m.yearTo.Blur()
	m.filterFocus = m.filterFocus%3 + 1
	switch m.filterFocus {
	case 1:
		m.search.Focus()
	case 2:
		m.yearFrom.Focus()
	case 3:
		m.yearTo.Focus()
	}
}

func (m *Model) applyFilters() {
	m.app.Search(strings.TrimSpace(m.search.Value()))
	m.app.SetYears(parseYear(m.yearFrom.Value()), parseYear(m.yearTo.Value()))
	m.cursor = 0
}

func (m *Model) cycleSort() {
	cur := m.app.Settings().Sort
	for i, k := range sortOrder {
		if k == cur {
			m.app.SetSort(sortOrder[(i+1)%len(sortOrder)])
			m.cursor = 0
			return
		}
	}
	m.app.SetSort(catalog.SortByTitle)
}

// parseYear returns nil for empty or non-numeric input, which means an
// open bound.
func parseYear(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	y, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &y
}

// View draws the whole screen.
func (m Model) View() string {
	if !m.loaded {
		return "\n  Загрузка каталога…\n"
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	if ns := m.renderNotifications(); ns != "" {
		sections = append(sections, ns)
	}
	sections = append(sections, m.renderFilterBar(), m.renderGrid(), m.renderFooter())
	screen := strings.Join(sections, "\n")

	switch m.mode {
	case modeDetail:
		if card, ok := m.app.Card(m.detailID); ok {
			return m.overlay(m.styles.Panel.Render(m.renderDetail(card)))
		}
	case modeAuth:
		return m.overlay(m.styles.Panel.Render(m.auth.view()))
	}
	return screen
}

// overlay centers a panel on a dimmed backdrop, replacing the grid the
// way the web UI's modal does.
func (m Model) overlay(panel string) string {
	w, h := m.width, m.height
	if w == 0 {
		w = lipgloss.Width(panel) + 4
	}
	if h == 0 {
		h = lipgloss.Height(panel) + 4
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, panel)
}

func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().Bold(true).Render("📚 Фолиант — каталог книг")

	var badge string
	if u := m.app.CurrentUser(); u != nil {
		badge = m.styles.UserBadge.Render("👤 "+u.Name) + m.styles.Help.Render("  x: выйти")
	} else {
		badge = m.styles.Help.Render("l: вход · o: регистрация")
	}
	return m.styles.Header.Render(title + "   " + badge)
}

func (m Model) renderNotifications() string {
	ns := m.app.Notifications()
	if len(ns) == 0 {
		return ""
	}
	lines := make([]string, len(ns))
	for i, n := range ns {
		lines[i] = m.styles.NotifyStyle(n.Severity).Render(n.Message)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderFilterBar() string {
	sort := sortTitles[m.app.Settings().Sort]
	bar := fmt.Sprintf("%s  %s–%s  сортировка: %s",
		m.search.View(), m.yearFrom.View(), m.yearTo.View(), sort)
	return m.styles.FilterBar.Render(bar)
}

func (m Model) renderGrid() string {
	cards := m.app.Cards()
	if len(cards) == 0 {
		return m.styles.CardMeta.Render("\n  Ничего не найдено. Измените фильтры.\n")
	}

	cols := 2
	if m.width >= 120 {
		cols = 3
	}

	var rows []string
	for i := 0; i < len(cards); i += cols {
		var row []string
		for j := i; j < min(i+cols, len(cards)); j++ {
			row = append(row, m.renderCard(cards[j], j == m.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderFooter() string {
	info := m.app.PageInfo()

	prev, next := "←", "→"
	if !info.HasPrev() {
		prev = " "
	}
	if !info.HasNext() {
		next = " "
	}

	status := fmt.Sprintf("%s стр. %d / %d %s · показано %d из %d · всего %d",
		prev, info.Page, info.PageCount, next, info.Shown, info.Filtered, info.Total)
	if m.app.UsingSampleData() {
		status += " · демо-данные"
	}

	help := "/: поиск · y: годы · s: сортировка · c: сброс · r: прочитано · enter: карточка · q: выход"
	return m.styles.Footer.Render(status) + "\n" + m.styles.Help.Render(help)
}
