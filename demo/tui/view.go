package tui

import (
	"fmt"
	"strings"
)

// visibleRows is how many feed entries are rendered around the cursor
const visibleRows = 12

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	// Title
	b.WriteString(TitleStyle.Render("📰 NewsBrain Reader"))
	b.WriteString("\n\n")

	switch m.State {
	case StateLoading:
		b.WriteString(StatusStyle.Render("⏳ Loading your feed..."))
		b.WriteString("\n")
	case StateError:
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("❌ %v", m.Err)))
		b.WriteString("\n\n")
		b.WriteString(InfoStyle.Render(TextFooterError))
		return b.String()
	default:
		b.WriteString(m.renderFeed())
	}

	// Summary box
	if m.Summary != "" {
		b.WriteString("\n")
		b.WriteString(BoxStyle.Render(HighlightStyle.Render("要約") + "\n\n" + m.Summary))
		b.WriteString("\n")
	}

	// Activity log
	if len(m.Logs) > 0 {
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render("📝 Recent Activity:"))
		b.WriteString("\n")
		for _, line := range m.Logs {
			b.WriteString(InfoStyle.Render("   " + line))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	switch m.State {
	case StateRating:
		b.WriteString(StatusStyle.Render("📤 Sending rating..."))
	case StateSummarizing:
		b.WriteString(StatusStyle.Render("🧠 Summarizing..."))
	default:
		b.WriteString(InfoStyle.Render(TextFooterBrowsing))
	}
	b.WriteString("\n")

	return b.String()
}

// renderFeed draws the article list with the cursor row highlighted
func (m Model) renderFeed() string {
	if len(m.Articles) == 0 {
		return InfoStyle.Render("The feed is empty. Press 'r' to refresh.") + "\n"
	}

	start := 0
	if m.Cursor >= visibleRows {
		start = m.Cursor - visibleRows + 1
	}
	end := start + visibleRows
	if end > len(m.Articles) {
		end = len(m.Articles)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		article := m.Articles[i]
		line := fmt.Sprintf("%+5.1f  %s", article.Score, article.Title)
		if article.Source != "" {
			line += InfoStyle.Render("  [" + article.Source + "]")
		}
		if i == m.Cursor {
			b.WriteString(CursorStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString(InfoStyle.Render(fmt.Sprintf("\n%d/%d articles", m.Cursor+1, len(m.Articles))))
	b.WriteString("\n")
	return b.String()
}
