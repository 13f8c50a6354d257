package api

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"newsbrain/learning"
	"newsbrain/tokenizer"
	"newsbrain/types"
)

// RegisterRateRoutes registers the article rating endpoint.
func RegisterRateRoutes(r *gin.Engine, deps *Dependencies) {
	r.POST("/api/rate", handleRate(deps))
}

// rateRequest is the payload for rating an article
type rateRequest struct {
	ArticleURL     string `json:"article_url"`
	ArticleTitle   string `json:"article_title"`
	ArticleContent string `json:"article_content"`
	Rating         int    `json:"rating"`
}

// handleRate applies a 1-4 rating to the words of an article. The rating is
// validated before anything else so a bad request has no side effects. An
// article whose text yields no dictionary words is a successful no-op with
// words_updated 0.
// POST /api/rate
func handleRate(deps *Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userID(c)
		if !ok {
			return
		}

		var req rateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		if _, err := learning.Adjustment(req.Rating); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		if req.ArticleURL == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "article_url is required"})
			return
		}

		content := req.ArticleContent
		if content == "" {
			// Rate-by-URL: pull the full text so learning sees the same words
			// the reader did
			extracted, err := deps.FetchContent(req.ArticleURL)
			if err != nil {
				log.Printf("Warning: content extraction failed for %s, rating on title only: %v", req.ArticleURL, err)
			} else {
				content = extracted
			}
		}

		words := tokenizer.ExtractWords(req.ArticleTitle + " " + content)

		updated, err := deps.Learner.UpdateWeights(c.Request.Context(), words, req.Rating, user)
		if err != nil {
			if errors.Is(err, learning.ErrInvalidRating) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
				return
			}
			log.Printf("Failed to update weights for %s: %v", user, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to update weights"})
			return
		}

		if deps.Ratings != nil {
			event := types.RatingEvent{
				UserID:       user,
				ArticleURL:   req.ArticleURL,
				ArticleTitle: req.ArticleTitle,
				Rating:       req.Rating,
				WordsUpdated: len(updated),
				CreatedAt:    time.Now().UTC(),
			}
			if err := deps.Ratings.PublishRating(event); err != nil {
				// The audit trail is best-effort; the learning already landed
				log.Printf("Warning: failed to publish rating event: %v", err)
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"success":       true,
			"words_updated": len(updated),
			"updated_words": updated,
			"rating":        req.Rating,
		})
	}
}
