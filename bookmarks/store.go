package bookmarks

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when removing a bookmark the user never saved.
var ErrNotFound = errors.New("bookmark not found")

// Bookmark is one saved article. The article URL is the identity; saving the
// same URL again overwrites the earlier bookmark.
type Bookmark struct {
	ArticleURL    string    `json:"article_url"`
	ArticleTitle  string    `json:"article_title,omitempty"`
	ArticleSource string    `json:"article_source,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Store keeps each user's saved articles. Keys are unique per
// (userID, articleURL) with last-write-wins semantics, same as the
// dictionary contract.
type Store interface {
	// Save writes one bookmark, stamping CreatedAt if unset.
	Save(ctx context.Context, userID string, bookmark Bookmark) (Bookmark, error)

	// List returns the user's bookmarks, newest first.
	List(ctx context.Context, userID string) ([]Bookmark, error)

	// Remove deletes one bookmark by article URL. Returns ErrNotFound when
	// the user has no bookmark for that URL.
	Remove(ctx context.Context, userID, articleURL string) error
}
