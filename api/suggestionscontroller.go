package api

import (
	"log"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"newsbrain/config"
	"newsbrain/tokenizer"
)

// RegisterSuggestionRoutes registers the word suggestion endpoint.
func RegisterSuggestionRoutes(r *gin.Engine, deps *Dependencies) {
	r.GET("/api/word-suggestions", handleWordSuggestions(deps))
}

// wordSuggestion pairs a candidate word with how many recent articles
// mentioned it
type wordSuggestion struct {
	Word      string `json:"word"`
	Frequency int    `json:"frequency"`
}

// handleWordSuggestions proposes dictionary candidates: frequent words from
// the user's recently scored articles that are not in the dictionary yet,
// most frequent first.
// GET /api/word-suggestions?limit=N
func handleWordSuggestions(deps *Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userID(c)
		if !ok {
			return
		}

		limit := config.DefaultSuggestionLimit
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "limit must be a positive integer"})
				return
			}
			limit = parsed
		}

		recent, err := deps.Cache.Recent(c.Request.Context(), user)
		if err != nil {
			log.Printf("Failed to load recent articles for %s: %v", user, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to load recent articles"})
			return
		}

		dict, err := deps.Store.Get(c.Request.Context(), user)
		if err != nil {
			log.Printf("Failed to load dictionary for %s: %v", user, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to load dictionary"})
			return
		}

		texts := make([]string, 0, len(recent))
		for _, article := range recent {
			texts = append(texts, article.Title+" "+article.ContentSnippet)
		}
		frequencies := tokenizer.ExtractWordFrequencies(texts)

		suggestions := make([]wordSuggestion, 0, len(frequencies))
		for word, freq := range frequencies {
			if _, known := dict[word]; known {
				continue
			}
			suggestions = append(suggestions, wordSuggestion{Word: word, Frequency: freq})
		}

		// Frequency descending, then lexicographic so equal counts are stable
		sort.Slice(suggestions, func(i, j int) bool {
			if suggestions[i].Frequency != suggestions[j].Frequency {
				return suggestions[i].Frequency > suggestions[j].Frequency
			}
			return suggestions[i].Word < suggestions[j].Word
		})
		if len(suggestions) > limit {
			suggestions = suggestions[:limit]
		}

		c.JSON(http.StatusOK, gin.H{
			"success":           true,
			"suggestions":       suggestions,
			"articles_analyzed": len(recent),
		})
	}
}
