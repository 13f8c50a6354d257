package dictionary

import (
	"context"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig configures the Redis-backed dictionary store
type RedisConfig struct {
	Addr     string // e.g. localhost:6379
	Password string
	DB       int
}

// RedisStore keeps each user's dictionary in a pair of hashes:
// dict:<userID> maps word -> weight, dictts:<userID> maps word -> RFC3339
// timestamp of the last write. Redis hash writes give us last-write-wins
// per (userID, word) without any client-side coordination.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStoreFromEnv creates a RedisStore using environment variables
// REDIS_ADDR, REDIS_PASS and REDIS_DB (optional).
func NewRedisStoreFromEnv() (*RedisStore, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	db := 0
	if d := os.Getenv("REDIS_DB"); d != "" {
		if v, err := strconv.Atoi(d); err == nil && v >= 0 {
			db = v
		}
	}
	return NewRedisStore(RedisConfig{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASS"),
		DB:       db,
	})
}

// NewRedisStore creates a RedisStore and verifies connectivity
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	return &RedisStore{client: client}, nil
}

// Close closes the underlying Redis client
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Client exposes the underlying Redis client so other components can share
// the connection.
func (s *RedisStore) Client() *redis.Client {
	return s.client
}

func weightKey(userID string) string { return "dict:" + userID }
func tsKey(userID string) string     { return "dictts:" + userID }

// Get returns a full snapshot of the user's dictionary.
func (s *RedisStore) Get(ctx context.Context, userID string) (map[string]float64, error) {
	raw, err := s.client.HGetAll(ctx, weightKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary for %s: %w", userID, err)
	}

	dict := make(map[string]float64, len(raw))
	for word, value := range raw {
		weight, err := strconv.ParseFloat(value, 64)
		if err != nil {
			log.Printf("Warning: skipping malformed weight for word %q: %v", word, err)
			continue
		}
		dict[word] = weight
	}
	return dict, nil
}

// Entries returns the dictionary joined with per-word update timestamps.
func (s *RedisStore) Entries(ctx context.Context, userID string) ([]Entry, error) {
	dict, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	stamps, err := s.client.HGetAll(ctx, tsKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary timestamps for %s: %w", userID, err)
	}

	entries := make([]Entry, 0, len(dict))
	for word, weight := range dict {
		entry := Entry{Word: word, Weight: weight}
		if raw, ok := stamps[word]; ok {
			if ts, err := time.Parse(time.RFC3339, raw); err == nil {
				entry.LastUpdated = ts
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Upsert writes one word with a clamped weight and a fresh timestamp.
func (s *RedisStore) Upsert(ctx context.Context, userID, word string, weight float64) error {
	now := time.Now().Format(time.RFC3339)
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, weightKey(userID), word, Clamp(weight))
	pipe.HSet(ctx, tsKey(userID), word, now)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to upsert word %q for %s: %w", word, userID, err)
	}
	return nil
}

// BatchUpsert writes all entries in one MULTI/EXEC so the set lands together.
func (s *RedisStore) BatchUpsert(ctx context.Context, userID string, updates map[string]float64) error {
	if len(updates) == 0 {
		return nil
	}

	now := time.Now().Format(time.RFC3339)
	weights := make(map[string]interface{}, len(updates))
	stamps := make(map[string]interface{}, len(updates))
	for word, weight := range updates {
		weights[word] = Clamp(weight)
		stamps[word] = now
	}

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, weightKey(userID), weights)
	pipe.HSet(ctx, tsKey(userID), stamps)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to batch upsert %d words for %s: %w", len(updates), userID, err)
	}
	return nil
}

// Delete removes a single word.
func (s *RedisStore) Delete(ctx context.Context, userID, word string) error {
	pipe := s.client.TxPipeline()
	pipe.HDel(ctx, weightKey(userID), word)
	pipe.HDel(ctx, tsKey(userID), word)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete word %q for %s: %w", word, userID, err)
	}
	return nil
}

// DeleteWhere removes every word with |weight| <= threshold.
func (s *RedisStore) DeleteWhere(ctx context.Context, userID string, threshold float64) (int, error) {
	dict, err := s.Get(ctx, userID)
	if err != nil {
		return 0, err
	}

	doomed := make([]string, 0)
	for word, weight := range dict {
		if math.Abs(weight) <= threshold {
			doomed = append(doomed, word)
		}
	}
	if len(doomed) == 0 {
		return 0, nil
	}

	pipe := s.client.TxPipeline()
	pipe.HDel(ctx, weightKey(userID), doomed...)
	pipe.HDel(ctx, tsKey(userID), doomed...)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to cleanup %d words for %s: %w", len(doomed), userID, err)
	}
	return len(doomed), nil
}
