package trending

import (
	"context"
	"errors"
	"sort"
	"time"
)

const (
	// Window is how far back interactions count toward trending
	Window = 7 * 24 * time.Hour

	// DefaultLimit is the number of trending articles returned by default
	DefaultLimit = 3

	// MaxInteractions caps the retained interaction log
	MaxInteractions = 1000
)

// Interaction kinds. Only these two are accepted; anything else is a
// client error.
const (
	KindClick    = "click"
	KindBookmark = "bookmark"
)

// ErrInvalidKind is returned for interaction kinds outside {click, bookmark}.
var ErrInvalidKind = errors.New("view type must be click or bookmark")

// Interaction is one user touching one article.
type Interaction struct {
	ArticleURL   string    `json:"article_url"`
	ArticleTitle string    `json:"article_title,omitempty"`
	UserID       string    `json:"user_id"`
	Kind         string    `json:"kind"`
	CreatedAt    time.Time `json:"created_at"`
}

// Article is one aggregated trending entry: interaction counts across all
// users inside the window.
type Article struct {
	ArticleURL        string `json:"article_url"`
	ArticleTitle      string `json:"article_title,omitempty"`
	TotalInteractions int    `json:"total_interactions"`
	UniqueUsers       int    `json:"unique_users"`
	Clicks            int    `json:"clicks"`
	Bookmarks         int    `json:"bookmarks"`
}

// Tracker records interactions and aggregates the cross-user top articles.
// Unlike the dictionary, the data here is shared between users by design.
type Tracker interface {
	// Track appends one interaction, stamping CreatedAt if unset.
	// Kind must be KindClick or KindBookmark.
	Track(ctx context.Context, interaction Interaction) error

	// Top returns up to limit articles ranked by total interactions inside
	// the window, most interactions first.
	Top(ctx context.Context, limit int) ([]Article, error)
}

// ValidKind reports whether the interaction kind is accepted.
func ValidKind(kind string) bool {
	return kind == KindClick || kind == KindBookmark
}

// aggregate folds raw interactions into ranked trending articles. Ties are
// broken by URL so equal counts order deterministically.
func aggregate(interactions []Interaction, limit int, now time.Time) []Article {
	cutoff := now.Add(-Window)

	type bucket struct {
		article Article
		users   map[string]struct{}
	}
	buckets := make(map[string]*bucket)

	for _, interaction := range interactions {
		if interaction.CreatedAt.Before(cutoff) {
			continue
		}
		b, ok := buckets[interaction.ArticleURL]
		if !ok {
			b = &bucket{
				article: Article{ArticleURL: interaction.ArticleURL},
				users:   make(map[string]struct{}),
			}
			buckets[interaction.ArticleURL] = b
		}

		b.article.TotalInteractions++
		if interaction.ArticleTitle != "" {
			b.article.ArticleTitle = interaction.ArticleTitle
		}
		b.users[interaction.UserID] = struct{}{}
		switch interaction.Kind {
		case KindClick:
			b.article.Clicks++
		case KindBookmark:
			b.article.Bookmarks++
		}
	}

	ranked := make([]Article, 0, len(buckets))
	for _, b := range buckets {
		b.article.UniqueUsers = len(b.users)
		ranked = append(ranked, b.article)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TotalInteractions != ranked[j].TotalInteractions {
			return ranked[i].TotalInteractions > ranked[j].TotalInteractions
		}
		return ranked[i].ArticleURL < ranked[j].ArticleURL
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// trim drops expired interactions and caps the log at MaxInteractions,
// keeping the newest entries. The log is assumed append-ordered.
func trim(interactions []Interaction, now time.Time) []Interaction {
	cutoff := now.Add(-Window)
	kept := make([]Interaction, 0, len(interactions))
	for _, interaction := range interactions {
		if interaction.CreatedAt.Before(cutoff) {
			continue
		}
		kept = append(kept, interaction)
	}
	if len(kept) > MaxInteractions {
		kept = kept[len(kept)-MaxInteractions:]
	}
	return kept
}
