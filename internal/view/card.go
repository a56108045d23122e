// Package view turns domain records into UI-toolkit-independent view
// models. The terminal adapter only formats what it gets from here, so
// the rendering contract is testable without a terminal.
package view

import (
	"fmt"
	"hash/fnv"
	"strings"
	"unicode"

	"github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/catalog"
	"github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/user"
)

// coverPalette mirrors the card cover tints of the web UI; used when a
// book carries no display hint of its own.
var coverPalette = []string{
	"#FFD9B3", "#FFECB8", "#FFE1C6", "#FFD2A6", "#FFC79A",
	"#FFE7C9", "#FFDAB5", "#FFE2CA", "#FFCFA8", "#FFEFCF",
	"#FFF0D9", "#FFECD0",
}

// Context is the per-render user state a card depends on.
type Context struct {
	User *user.User // nil = guest
	Read bool       // ReadStatus(user, book), false for guests
}

// CardModel is everything a card shows, precomputed. Rendering the same
// book with the same context always yields the same model.
type CardModel struct {
	ID            int
	Title         string
	Author        string
	CoverInitials string
	CoverColor    string
	YearLine      string
	GenreLine     string
	Badge         string
	Description   string

	ReadShown bool
	Read      bool
	ReadLabel string

	ComposerShown bool
	Comments      []string
	CommentCount  int
}

// Card renders one book for the given user context.
func Card(b catalog.Book, ctx Context) CardModel {
	m := CardModel{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		CoverInitials: CoverInitials(b.Title),
		CoverColor:    CoverColor(b),
		Description:   description(b),
		Badge:         b.Genre,
		ReadShown:     ctx.User != nil,
		Read:          ctx.User != nil && ctx.Read,
		ComposerShown: ctx.User != nil,
		CommentCount:  len(b.Comments),
	}

	if b.Year != 0 {
		m.YearLine = fmt.Sprintf("Год: %d", b.Year)
	} else {
		m.YearLine = "Год: —"
	}
	if b.Genre != "" {
		m.GenreLine = "Жанр: " + b.Genre
	} else {
		m.GenreLine = "Жанр: —"
	}

	m.ReadLabel = ReadLabel(m.Read)

	m.Comments = make([]string, len(b.Comments))
	for i, c := range b.Comments {
		m.Comments[i] = CommentLine(c)
	}
	return m
}

// CommentLine formats a single thread entry. Used both for full renders
// and for the in-place append after a successful submit.
func CommentLine(c catalog.Comment) string {
	return c.Author + ": " + c.Text
}

// ReadLabel returns the read-toggle caption for a read state.
func ReadLabel(read bool) string {
	if read {
		return "Прочитано"
	}
	return "Читать"
}

// CoverInitials derives the cover glyph from the title: first letters
// of the first two words, uppercased. Deterministic, so re-renders are
// idempotent.
func CoverInitials(title string) string {
	var initials []rune
	for _, w := range strings.Fields(title) {
		for _, r := range w {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				initials = append(initials, unicode.ToUpper(r))
			}
			break
		}
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}

// CoverColor returns the book's display hint, or a palette color picked
// by a stable title hash when the hint is absent.
func CoverColor(b catalog.Book) string {
	if b.Color != "" {
		return b.Color
	}
	h := fnv.New32a()
	h.Write([]byte(b.Title))
	return coverPalette[int(h.Sum32())%len(coverPalette)]
}

func description(b catalog.Book) string {
	if b.Description != "" {
		return b.Description
	}
	if b.Genre != "" {
		return b.Genre + " · Краткое описание отсутствует."
	}
	return "Краткое описание отсутствует."
}
