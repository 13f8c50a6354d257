package trending

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newFixedTracker(now time.Time) *MemoryTracker {
	tracker := NewMemoryTracker()
	tracker.now = func() time.Time { return now }
	return tracker
}

func TestTrackRejectsInvalidKind(t *testing.T) {
	tracker := NewMemoryTracker()
	err := tracker.Track(context.Background(), Interaction{
		ArticleURL: "https://example.com/a",
		UserID:     "u1",
		Kind:       "share",
	})
	if !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind, got %v", err)
	}
}

func TestTopRanksByTotalInteractions(t *testing.T) {
	ctx := context.Background()
	tracker := NewMemoryTracker()

	for i := 0; i < 3; i++ {
		if err := tracker.Track(ctx, Interaction{
			ArticleURL: "https://example.com/popular", ArticleTitle: "話題の記事",
			UserID: "u1", Kind: KindClick,
		}); err != nil {
			t.Fatalf("track failed: %v", err)
		}
	}
	if err := tracker.Track(ctx, Interaction{
		ArticleURL: "https://example.com/quiet", UserID: "u1", Kind: KindClick,
	}); err != nil {
		t.Fatalf("track failed: %v", err)
	}

	top, err := tracker.Top(ctx, DefaultLimit)
	if err != nil {
		t.Fatalf("top failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(top))
	}
	if top[0].ArticleURL != "https://example.com/popular" {
		t.Fatalf("expected popular article first, got %s", top[0].ArticleURL)
	}
	if top[0].TotalInteractions != 3 || top[0].Clicks != 3 {
		t.Fatalf("expected 3 clicks counted, got %+v", top[0])
	}
	if top[0].ArticleTitle != "話題の記事" {
		t.Fatalf("expected title carried through, got %q", top[0].ArticleTitle)
	}
}

func TestTopCountsUniqueUsersAndKinds(t *testing.T) {
	ctx := context.Background()
	tracker := NewMemoryTracker()

	url := "https://example.com/a"
	interactions := []Interaction{
		{ArticleURL: url, UserID: "u1", Kind: KindClick},
		{ArticleURL: url, UserID: "u1", Kind: KindBookmark},
		{ArticleURL: url, UserID: "u2", Kind: KindClick},
	}
	for _, interaction := range interactions {
		if err := tracker.Track(ctx, interaction); err != nil {
			t.Fatalf("track failed: %v", err)
		}
	}

	top, err := tracker.Top(ctx, DefaultLimit)
	if err != nil {
		t.Fatalf("top failed: %v", err)
	}
	got := top[0]
	if got.TotalInteractions != 3 || got.UniqueUsers != 2 || got.Clicks != 2 || got.Bookmarks != 1 {
		t.Fatalf("unexpected aggregate: %+v", got)
	}
}

func TestTopHonorsLimit(t *testing.T) {
	ctx := context.Background()
	tracker := NewMemoryTracker()

	urls := []string{
		"https://example.com/a",
		"https://example.com/b",
		"https://example.com/c",
		"https://example.com/d",
	}
	for _, url := range urls {
		if err := tracker.Track(ctx, Interaction{ArticleURL: url, UserID: "u1", Kind: KindClick}); err != nil {
			t.Fatalf("track failed: %v", err)
		}
	}

	top, err := tracker.Top(ctx, DefaultLimit)
	if err != nil {
		t.Fatalf("top failed: %v", err)
	}
	if len(top) != DefaultLimit {
		t.Fatalf("expected %d articles, got %d", DefaultLimit, len(top))
	}
}

func TestTopExcludesInteractionsOutsideWindow(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	tracker := newFixedTracker(now)

	old := Interaction{
		ArticleURL: "https://example.com/stale", UserID: "u1", Kind: KindClick,
		CreatedAt: now.Add(-Window - time.Hour),
	}
	fresh := Interaction{
		ArticleURL: "https://example.com/fresh", UserID: "u1", Kind: KindClick,
		CreatedAt: now.Add(-time.Hour),
	}
	for _, interaction := range []Interaction{old, fresh} {
		if err := tracker.Track(ctx, interaction); err != nil {
			t.Fatalf("track failed: %v", err)
		}
	}

	top, err := tracker.Top(ctx, DefaultLimit)
	if err != nil {
		t.Fatalf("top failed: %v", err)
	}
	if len(top) != 1 || top[0].ArticleURL != "https://example.com/fresh" {
		t.Fatalf("expected only the fresh article, got %v", top)
	}
}

func TestLogCappedAtMaxInteractions(t *testing.T) {
	ctx := context.Background()
	tracker := NewMemoryTracker()

	for i := 0; i < MaxInteractions+50; i++ {
		if err := tracker.Track(ctx, Interaction{
			ArticleURL: "https://example.com/a", UserID: "u1", Kind: KindClick,
		}); err != nil {
			t.Fatalf("track failed: %v", err)
		}
	}

	if len(tracker.interactions) != MaxInteractions {
		t.Fatalf("expected log capped at %d, got %d", MaxInteractions, len(tracker.interactions))
	}
}
