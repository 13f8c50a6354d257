package rssfeeds

import (
	"log"
	"sort"
	"sync"
	"time"

	"newsbrain/types"

	"github.com/mmcdole/gofeed"
)

// FetchAll retrieves the newest items from every enabled feed concurrently.
// A feed that fails to parse is logged and skipped; the other feeds still
// contribute. Results are sorted newest first.
func FetchAll(maxPerSource int, allowed map[string]bool) []types.Article {
	feeds := FilterFeeds(allowed)

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		articles []types.Article
	)

	for _, feed := range feeds {
		wg.Add(1)
		go func(feed Feed) {
			defer wg.Done()

			items, err := fetchFeed(feed, maxPerSource)
			if err != nil {
				log.Printf("Warning: failed to fetch %s: %v", feed.Name, err)
				return
			}

			mu.Lock()
			articles = append(articles, items...)
			mu.Unlock()
		}(feed)
	}
	wg.Wait()

	sort.SliceStable(articles, func(i, j int) bool {
		return pubTime(articles[i]).After(pubTime(articles[j]))
	})
	return articles
}

// fetchFeed parses one RSS/Atom feed and maps up to maxCount items.
// Each call gets its own parser; gofeed parsers are not shared across
// goroutines.
func fetchFeed(feed Feed, maxCount int) ([]types.Article, error) {
	parser := gofeed.NewParser()
	parsed, err := parser.ParseURL(feed.URL)
	if err != nil {
		return nil, err
	}

	count := min(len(parsed.Items), maxCount)
	articles := make([]types.Article, 0, count)

	for i := 0; i < count; i++ {
		item := parsed.Items[i]

		var pubDate *time.Time
		if item.PublishedParsed != nil {
			pubDate = item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			pubDate = item.UpdatedParsed
		}

		snippet := item.Description
		if snippet == "" {
			snippet = item.Content
		}

		categories := make([]string, len(item.Categories))
		copy(categories, item.Categories)

		articles = append(articles, types.Article{
			Title:          item.Title,
			Link:           item.Link,
			Source:         feed.Name,
			PubDate:        pubDate,
			ContentSnippet: snippet,
			Categories:     categories,
		})
	}

	return articles, nil
}

func pubTime(a types.Article) time.Time {
	if a.PubDate == nil {
		return time.Time{}
	}
	return *a.PubDate
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
