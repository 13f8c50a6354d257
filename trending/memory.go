package trending

import (
	"context"
	"sync"
	"time"
)

// MemoryTracker is a process-local Tracker for tests and Redis-less runs.
type MemoryTracker struct {
	mu           sync.Mutex
	interactions []Interaction
	now          func() time.Time
}

// NewMemoryTracker creates an empty in-memory tracker.
func NewMemoryTracker() *MemoryTracker {
	return &MemoryTracker{now: time.Now}
}

func (t *MemoryTracker) Track(ctx context.Context, interaction Interaction) error {
	if !ValidKind(interaction.Kind) {
		return ErrInvalidKind
	}
	if interaction.CreatedAt.IsZero() {
		interaction.CreatedAt = t.now().UTC()
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.interactions = trim(append(t.interactions, interaction), t.now())
	return nil
}

func (t *MemoryTracker) Top(ctx context.Context, limit int) ([]Article, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return aggregate(t.interactions, limit, t.now()), nil
}
