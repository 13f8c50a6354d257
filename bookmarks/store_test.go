package bookmarks

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSaveAndListNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	older := Bookmark{ArticleURL: "https://example.com/a", ArticleTitle: "古い記事",
		CreatedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)}
	newer := Bookmark{ArticleURL: "https://example.com/b", ArticleTitle: "新しい記事",
		CreatedAt: time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC)}

	for _, b := range []Bookmark{older, newer} {
		if _, err := store.Save(ctx, "u1", b); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}

	list, err := store.List(ctx, "u1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 bookmarks, got %d", len(list))
	}
	if list[0].ArticleURL != newer.ArticleURL || list[1].ArticleURL != older.ArticleURL {
		t.Fatalf("expected newest first, got %v", list)
	}
}

func TestSaveStampsCreatedAt(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	saved, err := store.Save(ctx, "u1", Bookmark{ArticleURL: "https://example.com/a"})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if saved.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be stamped")
	}
}

func TestSaveSameURLOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first := Bookmark{ArticleURL: "https://example.com/a", ArticleTitle: "初版"}
	second := Bookmark{ArticleURL: "https://example.com/a", ArticleTitle: "改題"}
	if _, err := store.Save(ctx, "u1", first); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := store.Save(ctx, "u1", second); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	list, _ := store.List(ctx, "u1")
	if len(list) != 1 || list[0].ArticleTitle != "改題" {
		t.Fatalf("expected one overwritten bookmark, got %v", list)
	}
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if _, err := store.Save(ctx, "u1", Bookmark{ArticleURL: "https://example.com/a"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Remove(ctx, "u1", "https://example.com/a"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	list, _ := store.List(ctx, "u1")
	if len(list) != 0 {
		t.Fatalf("expected no bookmarks, got %v", list)
	}
}

func TestRemoveMissingIsNotFound(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Remove(context.Background(), "u1", "https://example.com/missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPerUserIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if _, err := store.Save(ctx, "u1", Bookmark{ArticleURL: "https://example.com/a"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	list, err := store.List(ctx, "u2")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list for u2, got %v", list)
	}
}
