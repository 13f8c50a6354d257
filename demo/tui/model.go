package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// State represents the reader state machine
type State string

const (
	StateLoading     State = "loading"
	StateBrowsing    State = "browsing"
	StateRating      State = "rating"
	StateSummarizing State = "summarizing"
	StateError       State = "error"
)

// maxLogLines caps the activity log shown below the feed
const maxLogLines = 5

// Model represents the feed reader state
type Model struct {
	Client *APIClient

	State          State
	Articles       []NewsItem
	Cursor         int
	DictionarySize int
	Summary        string
	Logs           []string
	Err            error
}

// NewModel creates a new feed reader model
func NewModel(serverURL, userID string) Model {
	return Model{
		Client: NewAPIClient(serverURL, userID),
		State:  StateLoading,
		Logs:   make([]string, 0, maxLogLines),
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return fetchNews(m.Client)
}

// AddLog appends a line to the activity log, keeping only the tail
func (m Model) AddLog(line string) Model {
	m.Logs = append(m.Logs, line)
	if len(m.Logs) > maxLogLines {
		m.Logs = m.Logs[len(m.Logs)-maxLogLines:]
	}
	return m
}

// current returns the article under the cursor
func (m Model) current() (NewsItem, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Articles) {
		return NewsItem{}, false
	}
	return m.Articles[m.Cursor], true
}
