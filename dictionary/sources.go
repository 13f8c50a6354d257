package dictionary

import "strings"

// SourcePrefix marks pseudo-words that encode per-source opt-in/opt-out.
// The store itself is prefix-agnostic; this adapter interprets the
// convention: weight > 0 means the source is enabled.
const SourcePrefix = "SOURCE:"

// SourceKey builds the dictionary key for a feed's toggle.
func SourceKey(feedID string) string {
	return SourcePrefix + feedID
}

// EnabledSources scans a dictionary snapshot for SOURCE: keys. It returns
// the set of enabled feed IDs and whether the user has any source settings
// at all. No settings means the caller should apply its default; settings
// present but all disabled means fetch nothing.
func EnabledSources(dict map[string]float64) (allowed map[string]bool, hasSettings bool) {
	allowed = make(map[string]bool)
	for word, weight := range dict {
		if !strings.HasPrefix(word, SourcePrefix) {
			continue
		}
		hasSettings = true
		if weight > 0 {
			allowed[strings.TrimPrefix(word, SourcePrefix)] = true
		}
	}
	return allowed, hasSettings
}
