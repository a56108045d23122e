package catalog

import (
	"time"
)

// SortKey represents valid catalog sort orders
type SortKey string

const (
	SortByTitle    SortKey = "title"
	SortByAuthor   SortKey = "author"
	SortByGenre    SortKey = "genre"
	SortByYearDesc SortKey = "year_desc"
	SortByYearAsc  SortKey = "year_asc"
)

func (k SortKey) IsValid() bool {
	switch k {
	case SortByTitle, SortByAuthor, SortByGenre, SortByYearDesc, SortByYearAsc:
		return true
	}
	return false
}

func (k SortKey) String() string {
	return string(k)
}

// Book represents one catalog entry after enrichment: author and genre
// are already resolved to display names, comments are attached in
// insertion order. Year == 0 means the year is unknown.
type Book struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Year        int       `json:"year"`
	Genre       string    `json:"genre"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	Comments    []Comment `json:"comments"`
}

// Comment is one entry of a book's thread. Append-only: comments are
// never edited or deleted.
type Comment struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Settings holds the active filter and sort inputs. Nil year bounds are
// open-ended.
type Settings struct {
	Search   string
	YearFrom *int
	YearTo   *int
	Sort     SortKey
}

// DefaultSettings returns the state of the controls after "clear":
// empty search, open year range, title order.
func DefaultSettings() Settings {
	return Settings{Sort: SortByTitle}
}

// PageInfo describes the pagination cursor as shown in the footer.
type PageInfo struct {
	Page      int // 1-based, clamped to [1, PageCount]
	PageCount int // ceil(filtered/size), at least 1
	Shown     int // items on the current page
	Filtered  int // size of the derived list
	Total     int // size of the full list
}

// HasPrev reports whether the previous-page control is enabled.
func (p PageInfo) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether the next-page control is enabled.
func (p PageInfo) HasNext() bool { return p.Page < p.PageCount }
