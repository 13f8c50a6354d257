package scoring

import (
	"testing"

	"newsbrain/types"
)

func TestScoreSumsMatchedWeights(t *testing.T) {
	dict := map[string]float64{
		"猫":  1.5,
		"選挙": -5.0,
	}

	if got := Score([]string{"猫", "選挙"}, dict); got != -3.5 {
		t.Fatalf("expected -3.5, got %v", got)
	}
}

func TestScoreIgnoresUnknownWords(t *testing.T) {
	dict := map[string]float64{"猫": 2.0}

	// Unknown words add exactly 0, they are not penalized
	if got := Score([]string{"猫", "未知", "新語"}, dict); got != 2.0 {
		t.Fatalf("expected 2.0, got %v", got)
	}
}

func TestScoreEmptyWordSet(t *testing.T) {
	dict := map[string]float64{"猫": 2.0}
	if got := Score(nil, dict); got != 0 {
		t.Fatalf("expected 0 for empty word set, got %v", got)
	}
	if got := Score([]string{"猫"}, nil); got != 0 {
		t.Fatalf("expected 0 for empty dictionary, got %v", got)
	}
}

func TestRankArticlesSortsDescending(t *testing.T) {
	articles := []types.Article{
		{Title: "low", Link: "https://example.com/low"},
		{Title: "high", Link: "https://example.com/high"},
		{Title: "mid", Link: "https://example.com/mid"},
	}
	dict := map[string]float64{"a": 1.0, "b": 2.0, "c": 3.0}
	wordsByLink := map[string][]string{
		"https://example.com/low":  {"a"},
		"https://example.com/high": {"c"},
		"https://example.com/mid":  {"b"},
	}

	ranked := RankArticles(articles, dict, wordsByLink)
	if ranked[0].Title != "high" || ranked[1].Title != "mid" || ranked[2].Title != "low" {
		t.Fatalf("unexpected order: %s, %s, %s", ranked[0].Title, ranked[1].Title, ranked[2].Title)
	}
	if ranked[0].Score != 3.0 {
		t.Fatalf("expected top score 3.0, got %v", ranked[0].Score)
	}
}

func TestRankArticlesTiesKeepInputOrder(t *testing.T) {
	articles := []types.Article{
		{Title: "first", Link: "1"},
		{Title: "second", Link: "2"},
		{Title: "third", Link: "3"},
	}
	// All score 0: nothing in the words map
	ranked := RankArticles(articles, map[string]float64{}, map[string][]string{})

	for i, want := range []string{"first", "second", "third"} {
		if ranked[i].Title != want {
			t.Fatalf("tie order broken at %d: got %s, want %s", i, ranked[i].Title, want)
		}
	}
}

func TestRankArticlesCarriesWords(t *testing.T) {
	articles := []types.Article{{Title: "a", Link: "1"}}
	wordsByLink := map[string][]string{"1": {"猫", "犬"}}

	ranked := RankArticles(articles, map[string]float64{}, wordsByLink)
	if len(ranked[0].Words) != 2 {
		t.Fatalf("expected words to be carried, got %v", ranked[0].Words)
	}
}

func TestScoreDistribution(t *testing.T) {
	articles := []types.ScoredArticle{
		{Score: 1.0}, {Score: 3.0}, {Score: 2.0},
	}
	d := ScoreDistribution(articles)
	if d.Min != 1.0 || d.Max != 3.0 || d.Average != 2.0 || d.Median != 2.0 {
		t.Fatalf("unexpected distribution: %+v", d)
	}

	if empty := ScoreDistribution(nil); empty != (Distribution{}) {
		t.Fatalf("expected zero distribution for empty input, got %+v", empty)
	}
}

func TestScoreDistributionMedianEvenBatch(t *testing.T) {
	articles := []types.ScoredArticle{
		{Score: 1.0}, {Score: 2.0}, {Score: 4.0}, {Score: 10.0},
	}
	// Even-length batches average the two middle scores
	if d := ScoreDistribution(articles); d.Median != 3.0 {
		t.Fatalf("expected median 3.0, got %v", d.Median)
	}

	pair := []types.ScoredArticle{{Score: -2.0}, {Score: 2.0}}
	if d := ScoreDistribution(pair); d.Median != 0.0 {
		t.Fatalf("expected median 0.0, got %v", d.Median)
	}
}
