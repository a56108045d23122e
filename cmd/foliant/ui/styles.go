// Package ui is the terminal adapter of the catalog: it draws the view
// models produced by internal/view and translates key presses into
// application operations.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Dan4i4ek31/Final-Project-2.0/internal/notify"
)

// Styles holds every lipgloss style the adapter uses.
type Styles struct {
	Header    lipgloss.Style
	UserBadge lipgloss.Style
	FilterBar lipgloss.Style
	Footer    lipgloss.Style
	Help      lipgloss.Style

	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardTitle    lipgloss.Style
	CardAuthor   lipgloss.Style
	CardMeta     lipgloss.Style
	Badge        lipgloss.Style
	ReadMark     lipgloss.Style
	UnreadMark   lipgloss.Style

	Panel      lipgloss.Style
	PanelTitle lipgloss.Style
	Comment    lipgloss.Style
	FieldError lipgloss.Style

	NotifySuccess lipgloss.Style
	NotifyError   lipgloss.Style
	NotifyWarning lipgloss.Style
	NotifyInfo    lipgloss.Style
}

// DefaultStyles returns the warm paper-like palette of the web UI,
// translated to the terminal.
func DefaultStyles() Styles {
	var (
		ink    = lipgloss.Color("#3E2F1C")
		paper  = lipgloss.Color("#FFD9B3")
		accent = lipgloss.Color("#C77D2E")
		dim    = lipgloss.Color("245")
	)

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(dim).
		Padding(0, 1).
		Width(36)

	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(paper).Padding(0, 1),
		UserBadge: lipgloss.NewStyle().Foreground(accent).Bold(true),
		FilterBar: lipgloss.NewStyle().Padding(0, 1),
		Footer:    lipgloss.NewStyle().Foreground(dim).Padding(0, 1),
		Help:      lipgloss.NewStyle().Foreground(dim),

		Card:         card,
		CardSelected: card.BorderForeground(accent),
		CardTitle:    lipgloss.NewStyle().Bold(true),
		CardAuthor:   lipgloss.NewStyle().Foreground(accent),
		CardMeta:     lipgloss.NewStyle().Foreground(dim),
		Badge:        lipgloss.NewStyle().Background(paper).Foreground(ink).Padding(0, 1),
		ReadMark:     lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A")).Bold(true),
		UnreadMark:   lipgloss.NewStyle().Foreground(dim),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(accent).
			Padding(1, 2).
			Width(64),
		PanelTitle: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Comment:    lipgloss.NewStyle().PaddingLeft(2),
		FieldError: lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935")),

		NotifySuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("#155724")).Background(lipgloss.Color("#d4edda")).Padding(0, 1),
		NotifyError:   lipgloss.NewStyle().Foreground(lipgloss.Color("#721c24")).Background(lipgloss.Color("#f8d7da")).Padding(0, 1),
		NotifyWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("#856404")).Background(lipgloss.Color("#fff3cd")).Padding(0, 1),
		NotifyInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("#0c5460")).Background(lipgloss.Color("#d1ecf1")).Padding(0, 1),
	}
}

// NotifyStyle maps a severity to its style.
func (s Styles) NotifyStyle(sev notify.Severity) lipgloss.Style {
	switch sev {
	case notify.Success:
		return s.NotifySuccess
	case notify.Error:
		return s.NotifyError
	case notify.Warning:
		return s.NotifyWarning
	default:
		return s.NotifyInfo
	}
}
