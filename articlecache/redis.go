package articlecache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"newsbrain/types"
)

// RedisCache stores each user's recent scored articles as one JSON blob at
// recent:<userID> with a rolling TTL. A blob keeps reads to a single GET,
// which is all the suggestion path needs.
type RedisCache struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisCache wraps an already-connected Redis client.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client, now: time.Now}
}

func recentKey(userID string) string { return "recent:" + userID }

// SaveScores merges the batch into the user's cached set and refreshes the TTL.
func (c *RedisCache) SaveScores(ctx context.Context, userID string, articles []types.ScoredArticle) error {
	if len(articles) == 0 {
		return nil
	}

	existing, err := c.load(ctx, userID)
	if err != nil {
		return err
	}

	merged := mergeRecent(existing, articles, c.now())
	payload, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("failed to encode recent articles for %s: %w", userID, err)
	}

	if err := c.client.Set(ctx, recentKey(userID), payload, TTL).Err(); err != nil {
		return fmt.Errorf("failed to save recent articles for %s: %w", userID, err)
	}
	return nil
}

// Recent returns the user's unexpired cached articles.
func (c *RedisCache) Recent(ctx context.Context, userID string) ([]types.ScoredArticle, error) {
	cached, err := c.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return unexpired(cached, c.now()), nil
}

func (c *RedisCache) load(ctx context.Context, userID string) ([]cachedArticle, error) {
	raw, err := c.client.Get(ctx, recentKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load recent articles for %s: %w", userID, err)
	}

	var cached []cachedArticle
	if err := json.Unmarshal(raw, &cached); err != nil {
		// A corrupt blob is not worth failing the request over; start fresh
		return nil, nil
	}
	return cached, nil
}
