package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsbrain/articlecache"
	"newsbrain/bookmarks"
	"newsbrain/dictionary"
	"newsbrain/learning"
	"newsbrain/rssfeeds"
	"newsbrain/selection"
	"newsbrain/summarize"
	"newsbrain/trending"
	"newsbrain/types"
)

// RatingPublisher sends rating audit events; nil disables auditing.
type RatingPublisher interface {
	PublishRating(event types.RatingEvent) error
}

// FeedFetcher pulls articles from the enabled sources
type FeedFetcher func(maxPerSource int, allowed map[string]bool) []types.Article

// ContentFetcher extracts full article text from a URL
type ContentFetcher func(url string) (string, error)

// Dependencies carries everything the handlers need. FetchFeeds and
// FetchContent default to the live rssfeeds implementations when nil so
// tests can swap in fakes.
type Dependencies struct {
	Store        dictionary.Store
	Cache        articlecache.Cache
	Learner      *learning.Engine
	Policy       *selection.Policy
	Summarizer   summarize.Summarizer
	Ratings      RatingPublisher
	Bookmarks    bookmarks.Store
	Trending     trending.Tracker
	FetchFeeds   FeedFetcher
	FetchContent ContentFetcher
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(deps *Dependencies) *gin.Engine {
	if deps.FetchFeeds == nil {
		deps.FetchFeeds = rssfeeds.FetchAll
	}
	if deps.FetchContent == nil {
		deps.FetchContent = rssfeeds.FetchArticleText
	}

	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	// Register resource routers
	RegisterHealthRoutes(r)
	RegisterNewsRoutes(r, deps)
	RegisterRateRoutes(r, deps)
	RegisterDictionaryRoutes(r, deps)
	RegisterSuggestionRoutes(r, deps)
	RegisterBookmarkRoutes(r, deps)
	RegisterTrendingRoutes(r, deps)
	return r
}

// userID reads the caller identity from the X-User-ID header. Writes a 401
// and returns false when the header is missing.
func userID(c *gin.Context) (string, bool) {
	id := c.GetHeader("X-User-ID")
	if id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "X-User-ID header is required"})
		return "", false
	}
	return id, true
}
