package catalog

import "slices"

// State owns the full book list and everything derived from it for the
// lifetime of a session: the filtered+sorted list, the pagination
// cursor and the active settings. All mutations go through its methods,
// nothing else touches the slices.
type State struct {
	books    []Book
	filtered []Book
	settings Settings
	page     int
	pageSize int
}

// NewState creates catalog state with an empty book list.
func NewState(pageSize int) *State {
	if pageSize <= 0 {
		pageSize = 12
	}
	return &State{
		settings: DefaultSettings(),
		page:     1,
		pageSize: pageSize,
	}
}

// SetBooks replaces the full list and recomputes the derived list,
// keeping the current settings but resetting the cursor.
func (s *State) SetBooks(books []Book) {
	s.books = slices.Clone(books)
	s.recompute()
}

// Apply installs new filter/sort settings. Any settings change resets
// the cursor to page 1.
func (s *State) Apply(settings Settings) {
	if !settings.Sort.IsValid() {
		settings.Sort = SortByTitle
	}
	s.settings = settings
	s.recompute()
}

// ClearFilters resets search, year bounds and sort order to defaults.
func (s *State) ClearFilters() {
	s.Apply(DefaultSettings())
}

// Settings returns the active filter/sort settings.
func (s *State) Settings() Settings { return s.settings }

// NextPage advances the cursor. Beyond the last page it is a no-op.
func (s *State) NextPage() {
	if s.page < PageCount(len(s.filtered), s.pageSize) {
		s.page++
	}
}

// PrevPage moves the cursor back. Before the first page it is a no-op.
func (s *State) PrevPage() {
	if s.page > 1 {
		s.page--
	}
}

// Page returns the visible slice of the derived list.
func (s *State) Page() []Book {
	return Paginate(s.filtered, s.page, s.pageSize)
}

// PageInfo returns the cursor description for the footer and the
// pagination controls.
func (s *State) PageInfo() PageInfo {
	return PageInfo{
		Page:      ClampPage(s.page, len(s.filtered), s.pageSize),
		PageCount: PageCount(len(s.filtered), s.pageSize),
		Shown:     len(s.Page()),
		Filtered:  len(s.filtered),
		Total:     len(s.books),
	}
}

// Book looks up a book by id in the full list.
func (s *State) Book(id int) (Book, bool) {
	for _, b := range s.books {
		if b.ID == id {
			return b, true
		}
	}
	return Book{}, false
}

// NextID returns an id one past the current maximum, for generated
// sample books.
func (s *State) NextID() int {
	maxID := 0
	for _, b := range s.books {
		if b.ID > maxID {
			maxID = b.ID
		}
	}
	return maxID + 1
}

// AddBook prepends a book to the full list and recomputes the derived
// list under the current settings.
func (s *State) AddBook(b Book) {
	s.books = append([]Book{b}, s.books...)
	s.recompute()
}

// AppendComment attaches a comment to exactly one book, preserving the
// order of everything already in the thread. The derived list shares
// book values with the full list only through recompute, so the same
// append is applied to both copies.
func (s *State) AppendComment(bookID int, c Comment) bool {
	ok := false
	for i := range s.books {
		if s.books[i].ID == bookID {
			s.books[i].Comments = append(s.books[i].Comments, c)
			ok = true
			break
		}
	}
	if !ok {
		return false
	}
	for i := range s.filtered {
		if s.filtered[i].ID == bookID {
			s.filtered[i].Comments = append(s.filtered[i].Comments, c)
			break
		}
	}
	return true
}

func (s *State) recompute() {
	s.filtered = SortBooks(Filter(s.books, s.settings), s.settings.Sort)
	s.page = 1
}
