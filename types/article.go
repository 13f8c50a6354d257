package types

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Article represents a single news item pulled from an RSS source.
type Article struct {
	Title          string     `json:"title"`
	Link           string     `json:"link"`
	Source         string     `json:"source"`
	PubDate        *time.Time `json:"pub_date,omitempty"`
	ContentSnippet string     `json:"content_snippet,omitempty"`
	Content        string     `json:"content,omitempty"`
	Categories     []string   `json:"categories,omitempty"`
}

// ScoredArticle is an article augmented with its dictionary score and the
// words that were extracted from it during the scoring pass.
type ScoredArticle struct {
	Article
	Score float64  `json:"score"`
	Words []string `json:"words,omitempty"`
}

// RatingEvent is the audit record emitted for every accepted rating.
// It is not part of the dictionary itself; consumers archive it separately.
type RatingEvent struct {
	UserID       string    `json:"user_id"`
	ArticleURL   string    `json:"article_url"`
	ArticleTitle string    `json:"article_title,omitempty"`
	Rating       int       `json:"rating"`
	WordsUpdated int       `json:"words_updated"`
	CreatedAt    time.Time `json:"created_at"`
}

// GenerateID creates a short stable identifier from a URL
func GenerateID(url string) string {
	hash := sha256.Sum256([]byte(url))
	return hex.EncodeToString(hash[:])[:16]
}
