package dictionary

import (
	"context"
	"time"
)

// Weight bounds. Every write path clamps into this closed interval;
// reads return stored values as-is.
const (
	MinWeight float64 = -5.0
	MaxWeight float64 = 5.0
)

// Entry is one word with its weight and the time of its last write.
type Entry struct {
	Word        string    `json:"word"`
	Weight      float64   `json:"weight"`
	LastUpdated time.Time `json:"last_updated"`
}

// Store is the per-user word-weight dictionary contract. Keys are unique per
// (userID, word) with last-write-wins semantics; the backing store is assumed
// to serialize concurrent writes to the same key itself.
type Store interface {
	// Get returns a full snapshot of the user's dictionary.
	Get(ctx context.Context, userID string) (map[string]float64, error)

	// Entries returns the dictionary with per-word update timestamps.
	Entries(ctx context.Context, userID string) ([]Entry, error)

	// Upsert writes one word, clamping the weight and refreshing its timestamp.
	Upsert(ctx context.Context, userID, word string, weight float64) error

	// BatchUpsert writes all entries as a set. Partial failure is surfaced
	// to the caller, never swallowed.
	BatchUpsert(ctx context.Context, userID string, updates map[string]float64) error

	// Delete removes a single word.
	Delete(ctx context.Context, userID, word string) error

	// DeleteWhere removes every word with |weight| <= threshold and returns
	// the number of words removed.
	DeleteWhere(ctx context.Context, userID string, threshold float64) (int, error)
}

// Clamp bounds a weight to [MinWeight, MaxWeight].
func Clamp(weight float64) float64 {
	if weight < MinWeight {
		return MinWeight
	}
	if weight > MaxWeight {
		return MaxWeight
	}
	return weight
}
