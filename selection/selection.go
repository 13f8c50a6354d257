package selection

import (
	"math/rand"
	"time"

	"newsbrain/types"
)

const (
	// SafetyThreshold excludes articles at or below this score. A single
	// matched hard-blocked word (weight -5.0) already lands below it.
	SafetyThreshold = -2.0

	// TopSliceSize is how many top-scored articles lead the feed
	TopSliceSize = 15

	// DiscoverySliceSize is how many randomly sampled articles follow them
	DiscoverySliceSize = 15
)

// Policy assembles the final feed from a ranked batch: a top-scored slice
// followed by a randomized discovery slice. The random source is injectable
// so tests can use a fixed seed.
type Policy struct {
	rng *rand.Rand
}

// NewPolicy creates a policy with the given random source. Pass nil to get
// a time-seeded source; production feeds must re-randomize per invocation,
// which a shared rand source provides.
func NewPolicy(rng *rand.Rand) *Policy {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Policy{rng: rng}
}

// FilterSafe drops articles whose score is at or below SafetyThreshold.
// The threshold is exclusive: a score of exactly -2.0 is excluded.
func FilterSafe(ranked []types.ScoredArticle) []types.ScoredArticle {
	safe := make([]types.ScoredArticle, 0, len(ranked))
	for _, article := range ranked {
		if article.Score > SafetyThreshold {
			safe = append(safe, article)
		}
	}
	return safe
}

// Assemble applies the safety filter, takes the top slice in score order,
// shuffles the remainder and appends a discovery slice. Top articles always
// precede discovery articles; there is no re-sort after concatenation.
// Empty input yields an empty feed, never an error.
func (p *Policy) Assemble(ranked []types.ScoredArticle) []types.ScoredArticle {
	safe := FilterSafe(ranked)

	topEnd := TopSliceSize
	if topEnd > len(safe) {
		topEnd = len(safe)
	}
	top := safe[:topEnd]

	topLinks := make(map[string]struct{}, len(top))
	for _, article := range top {
		topLinks[article.Link] = struct{}{}
	}

	remaining := make([]types.ScoredArticle, 0, len(safe)-topEnd)
	for _, article := range safe[topEnd:] {
		if _, taken := topLinks[article.Link]; taken {
			continue
		}
		remaining = append(remaining, article)
	}

	// Unbiased Fisher-Yates permutation of the leftover safe articles
	p.rng.Shuffle(len(remaining), func(i, j int) {
		remaining[i], remaining[j] = remaining[j], remaining[i]
	})

	discoveryEnd := DiscoverySliceSize
	if discoveryEnd > len(remaining) {
		discoveryEnd = len(remaining)
	}
	discovery := remaining[:discoveryEnd]

	feed := make([]types.ScoredArticle, 0, len(top)+len(discovery))
	feed = append(feed, top...)
	feed = append(feed, discovery...)
	return feed
}
