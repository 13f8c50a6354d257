package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"newsbrain/config"
	"newsbrain/dictionary"
	"newsbrain/rssfeeds"
	"newsbrain/scoring"
	"newsbrain/summarize"
	"newsbrain/tokenizer"
	"newsbrain/types"
)

// RegisterNewsRoutes registers the personalized feed endpoints.
func RegisterNewsRoutes(r *gin.Engine, deps *Dependencies) {
	g := r.Group("/api/news")
	g.GET("", handleGetNews(deps))
	g.POST("/summary", handleNewsSummary(deps))
}

// newsItem is the wire shape of one feed entry. Matched words are internal
// scratch and never leave the server.
type newsItem struct {
	Title          string     `json:"title"`
	Link           string     `json:"link"`
	Source         string     `json:"source"`
	PubDate        *time.Time `json:"pub_date,omitempty"`
	ContentSnippet string     `json:"content_snippet,omitempty"`
	Content        string     `json:"content,omitempty"`
	Categories     []string   `json:"categories,omitempty"`
	Score          float64    `json:"score"`
}

// handleGetNews assembles the personalized feed: load the dictionary,
// resolve enabled sources, fetch and clean articles, tokenize once per link,
// rank, cache the scores for the suggestion window, then apply the
// selection policy.
// GET /api/news
func handleGetNews(deps *Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userID(c)
		if !ok {
			return
		}

		dict, err := deps.Store.Get(c.Request.Context(), user)
		if err != nil {
			log.Printf("Failed to load dictionary for %s: %v", user, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to load dictionary"})
			return
		}

		allowed, hasSettings := dictionary.EnabledSources(dict)
		if hasSettings && len(allowed) == 0 {
			// Every source explicitly disabled: an empty feed, not an error
			c.JSON(http.StatusOK, gin.H{
				"success":         true,
				"news":            []newsItem{},
				"total":           0,
				"dictionary_size": len(dict),
			})
			return
		}
		if !hasSettings {
			allowed = map[string]bool{config.DefaultSourceID: true}
		}

		articles := deps.FetchFeeds(config.DefaultItemsPerSource, allowed)

		wordsByLink := make(map[string][]string, len(articles))
		for i := range articles {
			articles[i].Title = rssfeeds.CleanTitle(articles[i].Title)
			wordsByLink[articles[i].Link] = tokenizer.ExtractWords(articles[i].Title + " " + articles[i].ContentSnippet)
		}

		ranked := scoring.RankArticles(articles, dict, wordsByLink)
		if len(ranked) > 0 {
			dist := scoring.ScoreDistribution(ranked)
			log.Printf("Scored %d articles for %s (min %.1f, max %.1f, avg %.2f)",
				len(ranked), user, dist.Min, dist.Max, dist.Average)
		}

		if err := deps.Cache.SaveScores(c.Request.Context(), user, ranked); err != nil {
			// The cache only feeds suggestions; the feed itself can still ship
			log.Printf("Warning: failed to cache scores for %s: %v", user, err)
		}

		feed := deps.Policy.Assemble(ranked)

		// full=true pulls the readable page text for the selected articles
		// through the extraction worker pool. Off by default, it multiplies
		// response time by the page fetches.
		if c.Query("full") == "true" {
			refs := make([]*types.Article, len(feed))
			for i := range feed {
				refs[i] = &feed[i].Article
			}
			rssfeeds.ExtractAllContent(refs)
		}

		items := make([]newsItem, 0, len(feed))
		for _, article := range feed {
			items = append(items, newsItem{
				Title:          article.Title,
				Link:           article.Link,
				Source:         article.Source,
				PubDate:        article.PubDate,
				ContentSnippet: article.ContentSnippet,
				Content:        article.Content,
				Categories:     article.Categories,
				Score:          article.Score,
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"success":         true,
			"news":            items,
			"total":           len(items),
			"dictionary_size": len(dict),
		})
	}
}

// summaryRequest is the payload for on-demand article summaries
type summaryRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Link    string `json:"link"`
}

// handleNewsSummary generates a Japanese summary for one article. Without a
// configured summarizer, or when generation fails, it falls back to a
// leading snippet of the content.
// POST /api/news/summary
func handleNewsSummary(deps *Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := userID(c); !ok {
			return
		}

		var req summaryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		if req.Title == "" && req.Content == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "title or content is required"})
			return
		}

		article := types.Article{Title: req.Title, Link: req.Link, Content: req.Content}
		if article.Content == "" && req.Link != "" {
			if content, err := deps.FetchContent(req.Link); err == nil {
				article.Content = content
			} else {
				log.Printf("Warning: content extraction failed for %s: %v", req.Link, err)
			}
		}

		if deps.Summarizer == nil {
			c.JSON(http.StatusOK, gin.H{"success": true, "summary": summarize.FallbackSummary(article), "generated": false})
			return
		}

		summary, err := deps.Summarizer.Summarize(c.Request.Context(), article)
		if err != nil {
			log.Printf("Warning: summary generation failed: %v", err)
			c.JSON(http.StatusOK, gin.H{"success": true, "summary": summarize.FallbackSummary(article), "generated": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "summary": summary, "generated": true})
	}
}
