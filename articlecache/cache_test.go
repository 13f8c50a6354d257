package articlecache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"newsbrain/types"
)

func scored(link string, score float64) types.ScoredArticle {
	return types.ScoredArticle{
		Article: types.Article{Title: link, Link: "https://example.com/" + link},
		Score:   score,
	}
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()

	batch := []types.ScoredArticle{scored("a", 1.5), scored("b", -0.5)}
	if err := cache.SaveScores(ctx, "u1", batch); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	recent, err := cache.Recent(ctx, "u1")
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(recent))
	}
}

func TestMemoryCachePerUserIsolation(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()

	if err := cache.SaveScores(ctx, "u1", []types.ScoredArticle{scored("a", 1.0)}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	recent, err := cache.Recent(ctx, "u2")
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(recent) != 0 {
		t.Fatalf("expected empty cache for u2, got %d articles", len(recent))
	}
}

func TestMergeRecentReplacesByLink(t *testing.T) {
	now := time.Now()
	existing := []cachedArticle{
		{ScoredArticle: scored("a", 1.0), CachedAt: now.Add(-time.Hour)},
		{ScoredArticle: scored("b", 2.0), CachedAt: now.Add(-time.Hour)},
	}

	merged := mergeRecent(existing, []types.ScoredArticle{scored("a", 3.5)}, now)
	if len(merged) != 2 {
		t.Fatalf("expected 2 articles after merge, got %d", len(merged))
	}

	scores := make(map[string]float64)
	for _, c := range merged {
		scores[c.Link] = c.Score
	}
	if scores["https://example.com/a"] != 3.5 {
		t.Fatalf("expected rescored article to win, got %v", scores["https://example.com/a"])
	}
	if scores["https://example.com/b"] != 2.0 {
		t.Fatalf("expected untouched article to survive, got %v", scores["https://example.com/b"])
	}
}

func TestMergeRecentDropsExpired(t *testing.T) {
	now := time.Now()
	existing := []cachedArticle{
		{ScoredArticle: scored("old", 1.0), CachedAt: now.Add(-TTL - time.Minute)},
		{ScoredArticle: scored("young", 1.0), CachedAt: now.Add(-TTL + time.Minute)},
	}

	merged := mergeRecent(existing, nil, now)
	if len(merged) != 1 || merged[0].Link != "https://example.com/young" {
		t.Fatalf("expected only the unexpired article, got %v", merged)
	}
}

func TestMergeRecentCapsAtMaxRecent(t *testing.T) {
	now := time.Now()
	fresh := make([]types.ScoredArticle, MaxRecent+50)
	for i := range fresh {
		fresh[i] = scored(fmt.Sprintf("n%d", i), float64(i))
	}

	merged := mergeRecent(nil, fresh, now)
	if len(merged) != MaxRecent {
		t.Fatalf("expected cap at %d, got %d", MaxRecent, len(merged))
	}
}

func TestUnexpiredFiltersByWindow(t *testing.T) {
	now := time.Now()
	cached := []cachedArticle{
		{ScoredArticle: scored("a", 1.0), CachedAt: now.Add(-2 * TTL)},
		{ScoredArticle: scored("b", 1.0), CachedAt: now.Add(-time.Hour)},
	}

	recent := unexpired(cached, now)
	if len(recent) != 1 || recent[0].Link != "https://example.com/b" {
		t.Fatalf("expected only the recent article, got %v", recent)
	}
}
