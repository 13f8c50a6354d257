package rssfeeds

import (
	"fmt"
	"log"
	"sync"
	"time"

	"newsbrain/types"

	readability "github.com/go-shiori/go-readability"
)

const (
	WorkerCount      = 5
	extractorTimeout = 30 * time.Second
)

// FetchArticleText retrieves one article page and extracts its readable
// plain text. Used when a rating or summary request arrives without the
// article body.
func FetchArticleText(url string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("article URL is empty")
	}

	extracted, err := readability.FromURL(url, extractorTimeout)
	if err != nil {
		return "", fmt.Errorf("readability extraction failed: %w", err)
	}
	return extracted.TextContent, nil
}

// ExtractAllContent fills Content for every article using a worker pool.
// Extraction failures are logged per article and leave Content empty.
func ExtractAllContent(articles []*types.Article) {
	var wg sync.WaitGroup
	articleChan := make(chan *types.Article, len(articles))

	for i := 0; i < WorkerCount; i++ {
		go func(workerID int) {
			for article := range articleChan {
				text, err := FetchArticleText(article.Link)
				if err != nil {
					log.Printf("[Worker %d] Failed to extract %s: %v", workerID, article.Link, err)
				} else {
					article.Content = text
				}
				wg.Done()
			}
		}(i)
	}

	for _, article := range articles {
		wg.Add(1)
		articleChan <- article
	}

	wg.Wait()
	close(articleChan)
}
