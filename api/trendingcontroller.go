package api

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"newsbrain/trending"
)

// RegisterTrendingRoutes registers the cross-user trending endpoints.
func RegisterTrendingRoutes(r *gin.Engine, deps *Dependencies) {
	g := r.Group("/api/trending")
	g.GET("", handleGetTrending(deps))
	g.POST("", handleTrackInteraction(deps))
}

// handleGetTrending returns the most-interacted articles across all users
// inside the trending window. Trending is shared data, so no user header is
// required here.
// GET /api/trending
func handleGetTrending(deps *Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		top, err := deps.Trending.Top(c.Request.Context(), trending.DefaultLimit)
		if err != nil {
			log.Printf("Failed to load trending articles: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to load trending articles"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"trending": top,
			"total":    len(top),
		})
	}
}

// trackInteractionRequest is the payload for recording one interaction
type trackInteractionRequest struct {
	ArticleURL   string `json:"article_url"`
	ArticleTitle string `json:"article_title"`
	ViewType     string `json:"view_type"`
}

// handleTrackInteraction records one click or bookmark against an article.
// POST /api/trending
func handleTrackInteraction(deps *Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userID(c)
		if !ok {
			return
		}

		var req trackInteractionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		url := strings.TrimSpace(req.ArticleURL)
		if url == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "article_url is required"})
			return
		}

		err := deps.Trending.Track(c.Request.Context(), trending.Interaction{
			ArticleURL:   url,
			ArticleTitle: strings.TrimSpace(req.ArticleTitle),
			UserID:       user,
			Kind:         req.ViewType,
		})
		if err != nil {
			if errors.Is(err, trending.ErrInvalidKind) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
				return
			}
			log.Printf("Failed to track interaction for %s: %v", user, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to track interaction"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "view_type": req.ViewType})
	}
}
