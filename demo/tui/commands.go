package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// fetchNews creates a command to load the personalized feed
func fetchNews(client *APIClient) tea.Cmd {
	return func() tea.Msg {
		news, err := client.GetNews()
		return NewsLoadedMsg{News: news, Err: err}
	}
}

// rateArticle creates a command to submit a rating
func rateArticle(client *APIClient, item NewsItem, rating int) tea.Cmd {
	return func() tea.Msg {
		result, err := client.Rate(item, rating)
		return RatedMsg{Result: result, Rating: rating, Err: err}
	}
}

// summarizeArticle creates a command to request a summary
func summarizeArticle(client *APIClient, item NewsItem) tea.Cmd {
	return func() tea.Msg {
		summary, err := client.Summarize(item)
		return SummaryMsg{Summary: summary, Err: err}
	}
}
