package config

import "time"

// Feed Constants
const (
	// DefaultItemsPerSource limits how many items are taken from each RSS source
	DefaultItemsPerSource = 5

	// DefaultSourceID is the source used when the user has no source settings
	DefaultSourceID = "yahoo"
)

// Suggestion Constants
const (
	// DefaultSuggestionLimit is the number of word suggestions returned by default
	DefaultSuggestionLimit = 20

	// RecentArticleWindow is how far back suggestion analysis looks
	RecentArticleWindow = 24 * time.Hour
)

// Dictionary Constants
const (
	// DefaultCleanupThreshold removes words with |weight| at or below this value
	DefaultCleanupThreshold = 0.1
)

// Summary Constants
const (
	// SummaryMaxContentChars caps how much article text is sent to the LLM
	SummaryMaxContentChars = 2000

	// SummaryFallbackChars is the snippet length returned when the LLM call fails
	SummaryFallbackChars = 200
)
