package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"newsbrain/api"
	"newsbrain/articlecache"
	"newsbrain/bookmarks"
	"newsbrain/common"
	"newsbrain/dictionary"
	"newsbrain/events"
	"newsbrain/learning"
	"newsbrain/selection"
	"newsbrain/summarize"
	"newsbrain/trending"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	store, cache, bookmarkStore, trendTracker := initializeStorage()
	summarizer := summarize.NewDefaultSummarizer(os.Getenv("SUMMARY_MODEL"))
	if summarizer != nil {
		log.Printf("Summarizer enabled (model: %s)", summarizer.ModelName())
	} else {
		log.Println("No summarizer configured; falling back to snippet summaries")
	}

	producer := initializeRatingAudit()

	deps := &api.Dependencies{
		Store:      store,
		Cache:      cache,
		Learner:    learning.NewEngine(store),
		Policy:     selection.NewPolicy(nil),
		Summarizer: summarizer,
		Bookmarks:  bookmarkStore,
		Trending:   trendTracker,
	}
	if producer != nil {
		deps.Ratings = producer
		defer producer.Close()
	}

	r := api.NewRouter(deps)
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  GET  /api/news")
	log.Println("  POST /api/news/summary")
	log.Println("  POST /api/rate")
	log.Println("  GET  /api/dictionary")
	log.Println("  POST /api/dictionary")
	log.Println("  POST /api/dictionary/batch")
	log.Println("  DELETE /api/dictionary")
	log.Println("  GET  /api/word-suggestions")
	log.Println("  GET  /api/bookmarks")
	log.Println("  POST /api/bookmarks")
	log.Println("  DELETE /api/bookmarks")
	log.Println("  GET  /api/trending")
	log.Println("  POST /api/trending")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// initializeStorage connects the dictionary store, article cache, bookmark
// store and trending tracker. With REDIS_ADDR set, all four share one Redis
// connection; otherwise everything is in-memory and lost on restart.
func initializeStorage() (dictionary.Store, articlecache.Cache, bookmarks.Store, trending.Tracker) {
	memory := func() (dictionary.Store, articlecache.Cache, bookmarks.Store, trending.Tracker) {
		return dictionary.NewMemoryStore(), articlecache.NewMemoryCache(),
			bookmarks.NewMemoryStore(), trending.NewMemoryTracker()
	}

	if os.Getenv("REDIS_ADDR") == "" {
		log.Println("REDIS_ADDR not set; using in-memory storage (data is lost on restart)")
		return memory()
	}

	redisStore, err := dictionary.NewRedisStoreFromEnv()
	if err != nil {
		log.Printf("Warning: %v; using in-memory storage", err)
		return memory()
	}
	log.Printf("Connected to Redis at %s", os.Getenv("REDIS_ADDR"))
	client := redisStore.Client()
	return redisStore, articlecache.NewRedisCache(client),
		bookmarks.NewRedisStore(client), trending.NewRedisTracker(client)
}

// initializeRatingAudit wires the optional Kafka audit trail: a producer for
// the API and, when an archive bucket is configured, a consumer that copies
// events to S3.
func initializeRatingAudit() *events.Producer {
	producer, err := events.NewProducerFromEnv()
	if err != nil {
		log.Printf("Warning: failed to init Kafka producer: %v (rating audit disabled)", err)
		return nil
	}
	if producer == nil {
		log.Println("KAFKA_BROKERS not set; rating audit disabled")
		return nil
	}

	if bucket := strings.TrimSpace(os.Getenv("RATINGS_ARCHIVE_BUCKET")); bucket != "" {
		s3Client, err := common.NewS3(context.Background(), common.S3Config{
			Region:       strings.TrimSpace(os.Getenv("S3_REGION")),
			Profile:      strings.TrimSpace(os.Getenv("S3_PROFILE")),
			UsePathStyle: strings.EqualFold(strings.TrimSpace(os.Getenv("S3_USE_PATH_STYLE")), "true"),
		})
		if err != nil {
			log.Printf("Warning: failed to init S3 client: %v (archiving disabled)", err)
		} else if _, err := events.StartArchiverFromEnv(context.Background(), s3Client); err != nil {
			log.Printf("Warning: %v (archiving disabled)", err)
		}
	}

	return producer
}
