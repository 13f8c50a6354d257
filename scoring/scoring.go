package scoring

import (
	"sort"

	"newsbrain/types"
)

// Score sums the dictionary weights of the given words. Words absent from
// the dictionary contribute exactly 0.
func Score(words []string, dict map[string]float64) float64 {
	score := 0.0
	for _, word := range words {
		score += dict[word]
	}
	return score
}

// RankArticles scores each article against the dictionary and returns them
// sorted by score, highest first. The sort is stable: articles with equal
// scores keep their original relative order. wordsByLink caches the words
// extracted per article link for the duration of one scoring pass.
func RankArticles(articles []types.Article, dict map[string]float64, wordsByLink map[string][]string) []types.ScoredArticle {
	scored := make([]types.ScoredArticle, 0, len(articles))
	for _, article := range articles {
		words := wordsByLink[article.Link]
		scored = append(scored, types.ScoredArticle{
			Article: article,
			Score:   Score(words, dict),
			Words:   words,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// Distribution summarizes the score spread of a ranked batch.
type Distribution struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
	Median  float64 `json:"median"`
}

// ScoreDistribution computes min/max/average/median over a scored batch.
func ScoreDistribution(articles []types.ScoredArticle) Distribution {
	if len(articles) == 0 {
		return Distribution{}
	}

	scores := make([]float64, len(articles))
	sum := 0.0
	for i, a := range articles {
		scores[i] = a.Score
		sum += a.Score
	}
	sort.Float64s(scores)

	mid := len(scores) / 2
	median := scores[mid]
	if len(scores)%2 == 0 {
		median = (scores[mid-1] + scores[mid]) / 2
	}

	return Distribution{
		Min:     scores[0],
		Max:     scores[len(scores)-1],
		Average: sum / float64(len(scores)),
		Median:  median,
	}
}
