package api

import (
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"newsbrain/config"
	"newsbrain/dictionary"
)

// RegisterDictionaryRoutes registers the dictionary management endpoints.
func RegisterDictionaryRoutes(r *gin.Engine, deps *Dependencies) {
	g := r.Group("/api/dictionary")
	g.GET("", handleListDictionary(deps))
	g.POST("", handleAddWord(deps))
	g.POST("/batch", handleBatchUpsert(deps))
	g.DELETE("", handleDeleteWords(deps))
}

// handleListDictionary returns the user's dictionary entries plus learning
// stats. Supports sort=weight|updated and order=asc|desc (default: weight
// descending).
// GET /api/dictionary
func handleListDictionary(deps *Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userID(c)
		if !ok {
			return
		}

		entries, err := deps.Store.Entries(c.Request.Context(), user)
		if err != nil {
			log.Printf("Failed to list dictionary for %s: %v", user, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to load dictionary"})
			return
		}

		sortKey := c.DefaultQuery("sort", "weight")
		ascending := c.DefaultQuery("order", "desc") == "asc"
		sort.SliceStable(entries, func(i, j int) bool {
			var less bool
			switch sortKey {
			case "updated":
				less = entries[i].LastUpdated.Before(entries[j].LastUpdated)
			default:
				less = entries[i].Weight < entries[j].Weight
			}
			if ascending {
				return less
			}
			return !less
		})

		stats, err := deps.Learner.Stats(c.Request.Context(), user)
		if err != nil {
			log.Printf("Failed to compute stats for %s: %v", user, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to compute stats"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"words":   entries,
			"total":   len(entries),
			"stats":   stats,
		})
	}
}

// addWordRequest is the payload for manually adding one word
type addWordRequest struct {
	Word   string  `json:"word"`
	Weight float64 `json:"weight"`
}

// handleAddWord adds or overwrites a single word. The word is trimmed, the
// weight clamped by the store.
// POST /api/dictionary
func handleAddWord(deps *Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userID(c)
		if !ok {
			return
		}

		var req addWordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		word := strings.TrimSpace(req.Word)
		if word == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "word is required"})
			return
		}

		if err := deps.Store.Upsert(c.Request.Context(), user, word, req.Weight); err != nil {
			log.Printf("Failed to add word %q for %s: %v", word, user, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to add word"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"word":    word,
			"weight":  dictionary.Clamp(req.Weight),
		})
	}
}

// batchUpsertRequest is the payload for bulk dictionary writes
type batchUpsertRequest struct {
	Words map[string]float64 `json:"words"`
}

// handleBatchUpsert writes many words in one store call. Keys are trimmed;
// blank keys are dropped.
// POST /api/dictionary/batch
func handleBatchUpsert(deps *Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userID(c)
		if !ok {
			return
		}

		var req batchUpsertRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		updates := make(map[string]float64, len(req.Words))
		for word, weight := range req.Words {
			word = strings.TrimSpace(word)
			if word == "" {
				continue
			}
			updates[word] = weight
		}
		if len(updates) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "words map is required"})
			return
		}

		if err := deps.Store.BatchUpsert(c.Request.Context(), user, updates); err != nil {
			log.Printf("Failed to batch upsert %d words for %s: %v", len(updates), user, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to save words"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "words_saved": len(updates)})
	}
}

// handleDeleteWords removes a single word (?word=...) or, with
// ?cleanup=true, every word whose |weight| is at or below the threshold
// (?threshold=, default 0.1).
// DELETE /api/dictionary
func handleDeleteWords(deps *Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userID(c)
		if !ok {
			return
		}

		if c.Query("cleanup") == "true" {
			threshold := config.DefaultCleanupThreshold
			if raw := c.Query("threshold"); raw != "" {
				parsed, err := strconv.ParseFloat(raw, 64)
				if err != nil || parsed < 0 {
					c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "threshold must be a non-negative number"})
					return
				}
				threshold = parsed
			}

			removed, err := deps.Store.DeleteWhere(c.Request.Context(), user, threshold)
			if err != nil {
				log.Printf("Failed to cleanup dictionary for %s: %v", user, err)
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to cleanup dictionary"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true, "words_removed": removed})
			return
		}

		word := strings.TrimSpace(c.Query("word"))
		if word == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "word or cleanup=true is required"})
			return
		}
		if err := deps.Store.Delete(c.Request.Context(), user, word); err != nil {
			log.Printf("Failed to delete word %q for %s: %v", word, user, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to delete word"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "word": word})
	}
}
