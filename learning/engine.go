package learning

import (
	"context"
	"errors"
	"fmt"

	"newsbrain/dictionary"
)

// ErrInvalidRating is returned for ratings outside {1, 2, 3, 4}. It is
// checked before any dictionary read so a bad rating has no partial effect.
var ErrInvalidRating = errors.New("rating must be between 1 and 4")

// ratingAdjustments maps each rating to its fixed weight delta. Not
// configurable at runtime.
var ratingAdjustments = map[int]float64{
	1: -0.3, // no interest at all
	2: -0.1, // little interest
	3: 0.1,  // some interest
	4: 0.3,  // strong interest
}

// Adjustment returns the weight delta for a rating.
func Adjustment(rating int) (float64, error) {
	adj, ok := ratingAdjustments[rating]
	if !ok {
		return 0, ErrInvalidRating
	}
	return adj, nil
}

// Engine adjusts dictionary weights from explicit article ratings.
type Engine struct {
	store dictionary.Store
}

// NewEngine creates a learning engine over the given dictionary store
func NewEngine(store dictionary.Store) *Engine {
	return &Engine{store: store}
}

// UpdateWeights applies the rating's delta to every article word that is
// already present in the user's dictionary and returns the adjusted words.
// Words not in the dictionary are never auto-added: the vocabulary stays
// user-curated while weights are feedback-tuned. An empty result is a valid
// "no learning occurred" outcome, not an error.
func (e *Engine) UpdateWeights(ctx context.Context, words []string, rating int, userID string) ([]string, error) {
	adjustment, err := Adjustment(rating)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return []string{}, nil
	}

	dict, err := e.store.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}

	updates := make(map[string]float64)
	updated := make([]string, 0, len(words))
	for _, word := range words {
		current, exists := dict[word]
		if !exists {
			continue
		}
		if _, seen := updates[word]; seen {
			continue
		}
		updates[word] = current + adjustment
		updated = append(updated, word)
	}

	if len(updates) > 0 {
		if err := e.store.BatchUpsert(ctx, userID, updates); err != nil {
			return nil, fmt.Errorf("failed to write weight updates: %w", err)
		}
	}

	return updated, nil
}

// BatchUpdate accumulates adjustments across multiple (article, rating)
// pairs with a single dictionary read and a single batched write. A word
// rated in several articles receives the sum of its deltas before clamping.
func (e *Engine) BatchUpdate(ctx context.Context, userID string, ratings map[string]int, wordsByArticle map[string][]string) error {
	for _, rating := range ratings {
		if _, err := Adjustment(rating); err != nil {
			return err
		}
	}

	dict, err := e.store.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load dictionary: %w", err)
	}

	updates := make(map[string]float64)
	for articleURL, rating := range ratings {
		words, ok := wordsByArticle[articleURL]
		if !ok {
			continue
		}

		adjustment := ratingAdjustments[rating]
		for _, word := range words {
			base, pending := updates[word]
			if !pending {
				current, exists := dict[word]
				if !exists {
					// ratings never create dictionary entries
					continue
				}
				base = current
			}
			updates[word] = base + adjustment
		}
	}

	if len(updates) == 0 {
		return nil
	}
	if err := e.store.BatchUpsert(ctx, userID, updates); err != nil {
		return fmt.Errorf("failed to write batch weight updates: %w", err)
	}
	return nil
}

// Stats summarizes a user's dictionary for the learning progress view.
type Stats struct {
	TotalWords    int `json:"total_words"`
	PositiveWords int `json:"positive_words"`
	NegativeWords int `json:"negative_words"`
	NeutralWords  int `json:"neutral_words"`
}

// Stats counts words by weight band: positive above 0.5, negative below
// -0.5, neutral in between.
func (e *Engine) Stats(ctx context.Context, userID string) (*Stats, error) {
	dict, err := e.store.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}

	stats := &Stats{TotalWords: len(dict)}
	for _, weight := range dict {
		switch {
		case weight > 0.5:
			stats.PositiveWords++
		case weight < -0.5:
			stats.NegativeWords++
		default:
			stats.NeutralWords++
		}
	}
	return stats, nil
}
