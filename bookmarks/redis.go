package bookmarks

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each user's bookmarks in a hash bookmarks:<userID>
// mapping article URL -> JSON bookmark. Hash fields give last-write-wins
// per (userID, articleURL) for free, same as the dictionary store.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an already-connected Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func bookmarksKey(userID string) string { return "bookmarks:" + userID }

// Save writes one bookmark, stamping CreatedAt if unset.
func (s *RedisStore) Save(ctx context.Context, userID string, bookmark Bookmark) (Bookmark, error) {
	if bookmark.CreatedAt.IsZero() {
		bookmark.CreatedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(bookmark)
	if err != nil {
		return Bookmark{}, fmt.Errorf("failed to encode bookmark: %w", err)
	}
	if err := s.client.HSet(ctx, bookmarksKey(userID), bookmark.ArticleURL, payload).Err(); err != nil {
		return Bookmark{}, fmt.Errorf("failed to save bookmark for %s: %w", userID, err)
	}
	return bookmark, nil
}

// List returns the user's bookmarks, newest first.
func (s *RedisStore) List(ctx context.Context, userID string) ([]Bookmark, error) {
	raw, err := s.client.HGetAll(ctx, bookmarksKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load bookmarks for %s: %w", userID, err)
	}

	list := make([]Bookmark, 0, len(raw))
	for url, value := range raw {
		var bookmark Bookmark
		if err := json.Unmarshal([]byte(value), &bookmark); err != nil {
			log.Printf("Warning: skipping malformed bookmark for %q: %v", url, err)
			continue
		}
		list = append(list, bookmark)
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

// Remove deletes one bookmark by article URL.
func (s *RedisStore) Remove(ctx context.Context, userID, articleURL string) error {
	removed, err := s.client.HDel(ctx, bookmarksKey(userID), articleURL).Result()
	if err != nil {
		return fmt.Errorf("failed to delete bookmark for %s: %w", userID, err)
	}
	if removed == 0 {
		return ErrNotFound
	}
	return nil
}
