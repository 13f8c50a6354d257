package articlecache

import (
	"context"
	"time"

	"newsbrain/types"
)

const (
	// TTL is how long a user's recent scored articles are retained
	TTL = 24 * time.Hour

	// MaxRecent caps the number of cached articles per user
	MaxRecent = 200
)

// Cache keeps each user's recently scored articles for the suggestion
// window. Entries expire after TTL; writes merge by article link with the
// newest score winning.
type Cache interface {
	// SaveScores merges a scored batch into the user's recent set.
	SaveScores(ctx context.Context, userID string, articles []types.ScoredArticle) error

	// Recent returns the user's unexpired scored articles, newest first.
	Recent(ctx context.Context, userID string) ([]types.ScoredArticle, error)
}

// cachedArticle is the stored shape: the article plus when it was cached.
type cachedArticle struct {
	types.ScoredArticle
	CachedAt time.Time `json:"cached_at"`
}

// mergeRecent folds fresh articles into an existing cached set, dropping
// expired entries and capping the result at MaxRecent, newest first.
func mergeRecent(existing []cachedArticle, fresh []types.ScoredArticle, now time.Time) []cachedArticle {
	merged := make([]cachedArticle, 0, len(existing)+len(fresh))
	seen := make(map[string]struct{}, len(fresh))

	for _, article := range fresh {
		article.Words = nil // words are per-pass scratch, not worth caching
		merged = append(merged, cachedArticle{ScoredArticle: article, CachedAt: now})
		seen[article.Link] = struct{}{}
	}

	cutoff := now.Add(-TTL)
	for _, cached := range existing {
		if _, replaced := seen[cached.Link]; replaced {
			continue
		}
		if cached.CachedAt.Before(cutoff) {
			continue
		}
		merged = append(merged, cached)
	}

	if len(merged) > MaxRecent {
		merged = merged[:MaxRecent]
	}
	return merged
}

// unexpired filters a cached set down to entries within the TTL window.
func unexpired(cached []cachedArticle, now time.Time) []types.ScoredArticle {
	cutoff := now.Add(-TTL)
	recent := make([]types.ScoredArticle, 0, len(cached))
	for _, c := range cached {
		if c.CachedAt.Before(cutoff) {
			continue
		}
		recent = append(recent, c.ScoredArticle)
	}
	return recent
}
