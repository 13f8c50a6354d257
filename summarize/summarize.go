package summarize

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"

	"newsbrain/config"
	"newsbrain/types"
)

// Summarizer abstracts an article -> Japanese summary generator
// Implementations must be safe for concurrent use.
type Summarizer interface {
	Summarize(ctx context.Context, article types.Article) (string, error)
	ModelName() string
}

// NewDefaultSummarizer returns a summarizer if configured via env.
// Currently supports Cohere when COHERE_API_KEY is set; returns nil otherwise
// so callers can fall back to snippet summaries.
func NewDefaultSummarizer(preferredModel string) Summarizer {
	cohereKey := os.Getenv("COHERE_API_KEY")
	if cohereKey == "" {
		return nil
	}

	model := preferredModel
	if model == "" {
		model = "command-r-08-2024"
	}
	// Custom HTTP client that forces HTTP/1.1 to avoid HTTP/2 protocol errors
	httpClient := &http.Client{
		Timeout: 60 * time.Second,
		Transport: &http.Transport{
			TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
			ForceAttemptHTTP2: false,
		},
	}
	client := cohereclient.NewClient(
		cohereclient.WithToken(cohereKey),
		cohereclient.WithHTTPClient(httpClient),
	)
	return &CohereSummarizer{client: client, model: model}
}

// CohereSummarizer implements Summarizer using the Cohere Chat API
// SDK: github.com/cohere-ai/cohere-go/v2
type CohereSummarizer struct {
	client *cohereclient.Client
	model  string
}

func (c *CohereSummarizer) ModelName() string { return c.model }

// Summarize asks the model for a three-sentence Japanese summary of the
// article. Long content is truncated before the prompt to keep token usage
// bounded.
func (c *CohereSummarizer) Summarize(ctx context.Context, article types.Article) (string, error) {
	content := article.Content
	if content == "" {
		content = article.ContentSnippet
	}
	if content == "" {
		return "", errors.New("article has no content to summarize")
	}
	content = truncateRunes(content, config.SummaryMaxContentChars)

	prompt := fmt.Sprintf(
		"以下のニュース記事を、日本語で3文以内に要約してください。重要な事実を優先し、感想や推測は含めないでください。\n\nタイトル: %s\n\n本文:\n%s",
		article.Title, content,
	)

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := c.client.Chat(ctx, &cohere.ChatRequest{
		Message: prompt,
		Model:   &c.model,
	})
	if err != nil {
		return "", fmt.Errorf("cohere chat error: %w", err)
	}
	if resp == nil || strings.TrimSpace(resp.Text) == "" {
		return "", errors.New("cohere chat returned empty response")
	}
	return strings.TrimSpace(resp.Text), nil
}

// FallbackSummary is used when no summarizer is configured or generation
// fails: the first SummaryFallbackChars runes of the article text.
func FallbackSummary(article types.Article) string {
	content := article.Content
	if content == "" {
		content = article.ContentSnippet
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return article.Title
	}
	if len([]rune(content)) <= config.SummaryFallbackChars {
		return content
	}
	return truncateRunes(content, config.SummaryFallbackChars) + "..."
}

// SummarizeAll fills in summaries for a batch, pacing requests to stay under
// the API rate limit. Per-article failures fall back to snippets rather than
// failing the batch.
func SummarizeAll(ctx context.Context, s Summarizer, articles []types.Article) []string {
	summaries := make([]string, len(articles))
	for i, article := range articles {
		if s == nil {
			summaries[i] = FallbackSummary(article)
			continue
		}
		summary, err := s.Summarize(ctx, article)
		if err != nil {
			log.Printf("Warning: summary generation failed for %s: %v", article.Link, err)
			summaries[i] = FallbackSummary(article)
			continue
		}
		summaries[i] = summary

		if i < len(articles)-1 {
			select {
			case <-ctx.Done():
				for j := i + 1; j < len(articles); j++ {
					summaries[j] = FallbackSummary(articles[j])
				}
				return summaries
			case <-time.After(1100 * time.Millisecond):
			}
		}
	}
	return summaries
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
