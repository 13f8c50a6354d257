package api

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"newsbrain/bookmarks"
)

// RegisterBookmarkRoutes registers the saved-article endpoints.
func RegisterBookmarkRoutes(r *gin.Engine, deps *Dependencies) {
	g := r.Group("/api/bookmarks")
	g.GET("", handleListBookmarks(deps))
	g.POST("", handleSaveBookmark(deps))
	g.DELETE("", handleRemoveBookmark(deps))
}

// handleListBookmarks returns the user's saved articles, newest first.
// GET /api/bookmarks
func handleListBookmarks(deps *Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userID(c)
		if !ok {
			return
		}

		list, err := deps.Bookmarks.List(c.Request.Context(), user)
		if err != nil {
			log.Printf("Failed to list bookmarks for %s: %v", user, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to load bookmarks"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"bookmarks": list,
			"total":     len(list),
		})
	}
}

// saveBookmarkRequest is the payload for saving one article
type saveBookmarkRequest struct {
	ArticleURL    string `json:"article_url"`
	ArticleTitle  string `json:"article_title"`
	ArticleSource string `json:"article_source"`
}

// handleSaveBookmark saves one article for the user. Saving the same URL
// again overwrites the earlier bookmark.
// POST /api/bookmarks
func handleSaveBookmark(deps *Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userID(c)
		if !ok {
			return
		}

		var req saveBookmarkRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		url := strings.TrimSpace(req.ArticleURL)
		if url == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "article_url is required"})
			return
		}

		saved, err := deps.Bookmarks.Save(c.Request.Context(), user, bookmarks.Bookmark{
			ArticleURL:    url,
			ArticleTitle:  strings.TrimSpace(req.ArticleTitle),
			ArticleSource: strings.TrimSpace(req.ArticleSource),
		})
		if err != nil {
			log.Printf("Failed to save bookmark for %s: %v", user, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to save bookmark"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "bookmark": saved})
	}
}

// handleRemoveBookmark deletes one saved article by URL (?article_url=...).
// DELETE /api/bookmarks
func handleRemoveBookmark(deps *Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userID(c)
		if !ok {
			return
		}

		url := strings.TrimSpace(c.Query("article_url"))
		if url == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "article_url is required"})
			return
		}

		if err := deps.Bookmarks.Remove(c.Request.Context(), user, url); err != nil {
			if errors.Is(err, bookmarks.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "bookmark not found"})
				return
			}
			log.Printf("Failed to remove bookmark for %s: %v", user, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to remove bookmark"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "article_url": url})
	}
}
