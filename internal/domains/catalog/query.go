package catalog

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Query engine: pure functions over book slices. None of them mutates
// its input, so derived lists can always be rebuilt from the full list.

// Filter returns the books matching the search text and year bounds.
// A book matches when the lowercased concatenation of title, author and
// genre contains the lowercased search text, and its year falls inside
// the (inclusive) bounds. Nil bounds admit every year.
func Filter(list []Book, s Settings) []Book {
	q := strings.ToLower(strings.TrimSpace(s.Search))

	out := make([]Book, 0, len(list))
	for _, b := range list {
		haystack := strings.ToLower(b.Title + " " + b.Author + " " + b.Genre)
		if q != "" && !strings.Contains(haystack, q) {
			continue
		}
		if s.YearFrom != nil && b.Year < *s.YearFrom {
			continue
		}
		if s.YearTo != nil && b.Year > *s.YearTo {
			continue
		}
		out = append(out, b)
	}
	return out
}

// SortBooks returns a copy of list ordered by the given key. Text keys
// use locale-aware collation (the catalog is Russian), genre ties break
// by title, year keys compare numerically with unknown years as 0. The
// sort is stable, so equal elements keep their relative order.
func SortBooks(list []Book, key SortKey) []Book {
	out := slices.Clone(list)
	c := collate.New(language.Russian)

	switch key {
	case SortByTitle:
		slices.SortStableFunc(out, func(a, b Book) int {
			return c.CompareString(a.Title, b.Title)
		})
	case SortByAuthor:
		slices.SortStableFunc(out, func(a, b Book) int {
			return c.CompareString(a.Author, b.Author)
		})
	case SortByGenre:
		slices.SortStableFunc(out, func(a, b Book) int {
			if cmp := c.CompareString(strings.ToLower(a.Genre), strings.ToLower(b.Genre)); cmp != 0 {
				return cmp
			}
			return c.CompareString(a.Title, b.Title)
		})
	case SortByYearDesc:
		slices.SortStableFunc(out, func(a, b Book) int { return b.Year - a.Year })
	case SortByYearAsc:
		slices.SortStableFunc(out, func(a, b Book) int { return a.Year - b.Year })
	}
	return out
}

// Paginate slices out one page of the derived list. The page number is
// clamped into [1, pageCount], so callers never get an out-of-range
// panic from a stale cursor.
func Paginate(list []Book, page, pageSize int) []Book {
	if pageSize <= 0 {
		return nil
	}
	page = ClampPage(page, len(list), pageSize)
	start := (page - 1) * pageSize
	end := min(start+pageSize, len(list))
	if start >= end {
		return nil
	}
	return list[start:end]
}

// PageCount returns ceil(n/pageSize), at least 1 so the footer always
// reads "1 / 1" on an empty list.
func PageCount(n, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	return max(1, (n+pageSize-1)/pageSize)
}

// ClampPage confines a page cursor to valid bounds for n items.
func ClampPage(page, n, pageSize int) int {
	return min(max(1, page), PageCount(n, pageSize))
}
