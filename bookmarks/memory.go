package bookmarks

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore is a process-local Store for tests and Redis-less runs.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]map[string]Bookmark
}

// NewMemoryStore creates an empty in-memory bookmark store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]map[string]Bookmark)}
}

func (s *MemoryStore) Save(ctx context.Context, userID string, bookmark Bookmark) (Bookmark, error) {
	if bookmark.CreatedAt.IsZero() {
		bookmark.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	saved, ok := s.users[userID]
	if !ok {
		saved = make(map[string]Bookmark)
		s.users[userID] = saved
	}
	saved[bookmark.ArticleURL] = bookmark
	return bookmark, nil
}

func (s *MemoryStore) List(ctx context.Context, userID string) ([]Bookmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Bookmark, 0, len(s.users[userID]))
	for _, bookmark := range s.users[userID] {
		list = append(list, bookmark)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

func (s *MemoryStore) Remove(ctx context.Context, userID, articleURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID][articleURL]; !ok {
		return ErrNotFound
	}
	delete(s.users[userID], articleURL)
	return nil
}
