package trending

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// interactionsKey holds the shared interaction log as a Redis list of JSON
// entries, oldest first. One key for all users: trending is cross-user.
const interactionsKey = "trending:interactions"

// RedisTracker is the Redis-backed Tracker. Writes append to a capped list;
// reads aggregate the whole log inside the window.
type RedisTracker struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisTracker wraps an already-connected Redis client.
func NewRedisTracker(client *redis.Client) *RedisTracker {
	return &RedisTracker{client: client, now: time.Now}
}

func (t *RedisTracker) Track(ctx context.Context, interaction Interaction) error {
	if !ValidKind(interaction.Kind) {
		return ErrInvalidKind
	}
	if interaction.CreatedAt.IsZero() {
		interaction.CreatedAt = t.now().UTC()
	}

	payload, err := json.Marshal(interaction)
	if err != nil {
		return fmt.Errorf("failed to encode interaction: %w", err)
	}

	pipe := t.client.TxPipeline()
	pipe.RPush(ctx, interactionsKey, payload)
	pipe.LTrim(ctx, interactionsKey, -MaxInteractions, -1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record interaction: %w", err)
	}
	return nil
}

func (t *RedisTracker) Top(ctx context.Context, limit int) ([]Article, error) {
	raw, err := t.client.LRange(ctx, interactionsKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load interactions: %w", err)
	}

	interactions := make([]Interaction, 0, len(raw))
	for _, value := range raw {
		var interaction Interaction
		if err := json.Unmarshal([]byte(value), &interaction); err != nil {
			log.Printf("Warning: skipping malformed interaction: %v", err)
			continue
		}
		interactions = append(interactions, interaction)
	}
	return aggregate(interactions, limit, t.now()), nil
}
