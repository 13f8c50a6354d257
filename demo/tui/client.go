package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APIClient is a thin HTTP client for the news API
type APIClient struct {
	baseURL string
	userID  string
	client  *http.Client
}

// NewAPIClient creates a new API client for the given user
func NewAPIClient(baseURL, userID string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		userID:  userID,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// NewsItem is one entry of the personalized feed
type NewsItem struct {
	Title          string  `json:"title"`
	Link           string  `json:"link"`
	Source         string  `json:"source"`
	ContentSnippet string  `json:"content_snippet"`
	Score          float64 `json:"score"`
}

// NewsResponse is the feed endpoint payload
type NewsResponse struct {
	Success        bool       `json:"success"`
	News           []NewsItem `json:"news"`
	Total          int        `json:"total"`
	DictionarySize int        `json:"dictionary_size"`
}

// RateResponse is the rating endpoint payload
type RateResponse struct {
	Success      bool     `json:"success"`
	WordsUpdated int      `json:"words_updated"`
	UpdatedWords []string `json:"updated_words"`
	Rating       int      `json:"rating"`
}

func (c *APIClient) do(method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", c.userID)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, string(raw))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// GetNews fetches the personalized feed
func (c *APIClient) GetNews() (*NewsResponse, error) {
	var news NewsResponse
	if err := c.do(http.MethodGet, "/api/news", nil, &news); err != nil {
		return nil, fmt.Errorf("failed to load feed: %w", err)
	}
	return &news, nil
}

// Rate submits a 1-4 rating for an article
func (c *APIClient) Rate(item NewsItem, rating int) (*RateResponse, error) {
	var result RateResponse
	payload := map[string]interface{}{
		"article_url":   item.Link,
		"article_title": item.Title,
		"rating":        rating,
	}
	if err := c.do(http.MethodPost, "/api/rate", payload, &result); err != nil {
		return nil, fmt.Errorf("failed to rate article: %w", err)
	}
	return &result, nil
}

// Summarize requests a summary for an article
func (c *APIClient) Summarize(item NewsItem) (string, error) {
	var result struct {
		Success bool   `json:"success"`
		Summary string `json:"summary"`
	}
	payload := map[string]interface{}{
		"title":   item.Title,
		"link":    item.Link,
		"content": item.ContentSnippet,
	}
	if err := c.do(http.MethodPost, "/api/news/summary", payload, &result); err != nil {
		return "", fmt.Errorf("failed to summarize article: %w", err)
	}
	return result.Summary, nil
}
