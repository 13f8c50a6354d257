package articlecache

import (
	"context"
	"sync"
	"time"

	"newsbrain/types"
)

// MemoryCache is an in-process Cache for tests and Redis-less runs.
type MemoryCache struct {
	mu     sync.RWMutex
	recent map[string][]cachedArticle
	now    func() time.Time
}

// NewMemoryCache creates an empty in-memory cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		recent: make(map[string][]cachedArticle),
		now:    time.Now,
	}
}

// SaveScores merges the batch into the user's cached set.
func (c *MemoryCache) SaveScores(ctx context.Context, userID string, articles []types.ScoredArticle) error {
	if len(articles) == 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recent[userID] = mergeRecent(c.recent[userID], articles, c.now())
	return nil
}

// Recent returns the user's unexpired cached articles.
func (c *MemoryCache) Recent(ctx context.Context, userID string) ([]types.ScoredArticle, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return unexpired(c.recent[userID], c.now()), nil
}
