package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dan4i4ek31/Final-Project-2.0/internal/view"
)

// renderCard draws one compact grid card.
func (m Model) renderCard(c view.CardModel, selected bool) string {
	st := m.styles.Card
	if selected {
		st = m.styles.CardSelected
	}

	cover := lipgloss.NewStyle().
		Background(lipgloss.Color(c.CoverColor)).
		Foreground(lipgloss.Color("#3E2F1C")).
		Padding(0, 1).
		Render(c.CoverInitials)

	var b strings.Builder
	b.WriteString(cover + " " + m.styles.CardTitle.Render(truncate(c.Title, 28)) + "\n")
	b.WriteString(m.styles.CardAuthor.Render(truncate(c.Author, 34)) + "\n")
	b.WriteString(m.styles.CardMeta.Render(c.YearLine+"  "+c.GenreLine) + "\n")

	status := make([]string, 0, 2)
	if c.ReadShown {
		mark := m.styles.UnreadMark
		if c.Read {
			mark = m.styles.ReadMark
		}
		status = append(status, mark.Render(c.ReadLabel))
	}
	status = append(status, m.styles.CardMeta.Render(fmt.Sprintf("💬 %d", c.CommentCount)))
	b.WriteString(strings.Join(status, "  "))

	return st.Render(b.String())
}

// renderDetail draws the focused panel for one book, with the full
// description, the comment thread and (when authenticated) the
// composer.
func (m Model) renderDetail(c view.CardModel) string {
	var b strings.Builder

	cover := lipgloss.NewStyle().
		Background(lipgloss.Color(c.CoverColor)).
		Foreground(lipgloss.Color("#3E2F1C")).
		Padding(0, 1).
		Render(c.CoverInitials)

	b.WriteString(cover + " " + m.styles.PanelTitle.Render(c.Title) + "\n")
	b.WriteString(m.styles.CardAuthor.Render(c.Author) + "\n")
	b.WriteString(m.styles.CardMeta.Render(c.YearLine+"  "+c.GenreLine) + "\n\n")
	b.WriteString(c.Description + "\n\n")

	if c.ReadShown {
		mark := m.styles.UnreadMark
		if c.Read {
			mark = m.styles.ReadMark
		}
		b.WriteString(mark.Render("["+c.ReadLabel+"]") + m.styles.Help.Render("  (r: переключить)") + "\n\n")
	}

	b.WriteString(m.styles.PanelTitle.Render(fmt.Sprintf("Комментарии (%d)", c.CommentCount)) + "\n")
	if len(c.Comments) == 0 {
		b.WriteString(m.styles.CardMeta.Render("Пока нет комментариев.") + "\n")
	}
	for _, line := range c.Comments {
		b.WriteString(m.styles.Comment.Render(truncate(line, 58)) + "\n")
	}

	if c.ComposerShown {
		b.WriteString("\n" + m.composer.View() + "\n")
		hint := "enter: отправить"
		if m.pending {
			hint = "отправка..."
		}
		b.WriteString(m.styles.Help.Render(hint + " · esc: закрыть"))
	} else {
		b.WriteString("\n" + m.styles.CardMeta.Render("Войдите, чтобы оставить комментарий.") + "\n")
		b.WriteString(m.styles.Help.Render("esc: закрыть"))
	}

	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
