package dictionary

import (
	"context"
	"math"
	"sync"
	"time"
)

// MemoryStore is a process-local Store used in tests and when no Redis
// address is configured. It honors the same clamp and last-write-wins
// contract as the Redis store.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]map[string]Entry
}

// NewMemoryStore creates an empty in-memory dictionary store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]map[string]Entry)}
}

func (s *MemoryStore) Get(ctx context.Context, userID string) (map[string]float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dict := make(map[string]float64, len(s.users[userID]))
	for word, entry := range s.users[userID] {
		dict[word] = entry.Weight
	}
	return dict, nil
}

func (s *MemoryStore) Entries(ctx context.Context, userID string) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]Entry, 0, len(s.users[userID]))
	for _, entry := range s.users[userID] {
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *MemoryStore) Upsert(ctx context.Context, userID, word string, weight float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(userID, word, weight)
	return nil
}

func (s *MemoryStore) BatchUpsert(ctx context.Context, userID string, updates map[string]float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for word, weight := range updates {
		s.put(userID, word, weight)
	}
	return nil
}

// put assumes the write lock is held
func (s *MemoryStore) put(userID, word string, weight float64) {
	dict, ok := s.users[userID]
	if !ok {
		dict = make(map[string]Entry)
		s.users[userID] = dict
	}
	dict[word] = Entry{Word: word, Weight: Clamp(weight), LastUpdated: time.Now()}
}

func (s *MemoryStore) Delete(ctx context.Context, userID, word string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users[userID], word)
	return nil
}

func (s *MemoryStore) DeleteWhere(ctx context.Context, userID string, threshold float64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for word, entry := range s.users[userID] {
		if math.Abs(entry.Weight) <= threshold {
			delete(s.users[userID], word)
			removed++
		}
	}
	return removed, nil
}
