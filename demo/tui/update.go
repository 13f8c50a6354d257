package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case NewsLoadedMsg:
		return m.handleNewsLoaded(msg)
	case RatedMsg:
		return m.handleRated(msg)
	case SummaryMsg:
		return m.handleSummary(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "j", "down":
		if m.State == StateBrowsing && m.Cursor < len(m.Articles)-1 {
			m.Cursor++
			m.Summary = ""
		}
	case "k", "up":
		if m.State == StateBrowsing && m.Cursor > 0 {
			m.Cursor--
			m.Summary = ""
		}
	case "r", "R":
		if m.State == StateBrowsing || m.State == StateError {
			m.State = StateLoading
			m.Summary = ""
			m.Err = nil
			return m, fetchNews(m.Client)
		}
	case "s", "S":
		if m.State == StateBrowsing {
			if item, ok := m.current(); ok {
				m.State = StateSummarizing
				return m, summarizeArticle(m.Client, item)
			}
		}
	case "1", "2", "3", "4":
		if m.State == StateBrowsing {
			if item, ok := m.current(); ok {
				rating := int(key[0] - '0')
				m.State = StateRating
				return m, rateArticle(m.Client, item, rating)
			}
		}
	}
	return m, nil
}

// handleNewsLoaded processes feed load completion
func (m Model) handleNewsLoaded(msg NewsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.Articles = msg.News.News
	m.DictionarySize = msg.News.DictionarySize
	m.Cursor = 0
	m.State = StateBrowsing
	m = m.AddLog(fmt.Sprintf("Loaded %d articles (dictionary: %d words)", msg.News.Total, msg.News.DictionarySize))
	return m, nil
}

// handleRated processes rating completion
func (m Model) handleRated(msg RatedMsg) (tea.Model, tea.Cmd) {
	m.State = StateBrowsing
	if msg.Err != nil {
		m = m.AddLog(fmt.Sprintf("Rating failed: %v", msg.Err))
		return m, nil
	}
	line := fmt.Sprintf("Rated %d: %d words adjusted", msg.Rating, msg.Result.WordsUpdated)
	if len(msg.Result.UpdatedWords) > 0 {
		preview := msg.Result.UpdatedWords
		if len(preview) > 5 {
			preview = preview[:5]
		}
		line += " (" + strings.Join(preview, ", ") + ")"
	}
	m = m.AddLog(line)
	return m, nil
}

// handleSummary processes summary completion
func (m Model) handleSummary(msg SummaryMsg) (tea.Model, tea.Cmd) {
	m.State = StateBrowsing
	if msg.Err != nil {
		m = m.AddLog(fmt.Sprintf("Summary failed: %v", msg.Err))
		return m, nil
	}
	m.Summary = msg.Summary
	return m, nil
}
