package events

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"newsbrain/types"
)

// ObjectStore is the narrow slice of the S3 wrapper the archiver needs.
type ObjectStore interface {
	PutJSON(ctx context.Context, bucket, key string, v interface{}) error
}

// Archiver consumes rating events and writes each one to object storage as
// JSON under ratings/<userID>/. The archive is the durable audit trail; the
// dictionary itself only keeps the resulting weights.
type Archiver struct {
	store  ObjectStore
	bucket string
}

// NewArchiver creates an archiver writing to the given bucket
func NewArchiver(store ObjectStore, bucket string) *Archiver {
	return &Archiver{store: store, bucket: bucket}
}

// ArchiveKey is the object key for a rating event. CreatedAt plus the
// article hash keeps keys unique and time-sortable per user.
func ArchiveKey(event *types.RatingEvent) string {
	return fmt.Sprintf("ratings/%s/%s-%s.json",
		event.UserID,
		event.CreatedAt.UTC().Format("20060102T150405Z"),
		types.GenerateID(event.ArticleURL),
	)
}

// Handler returns the typed message handler that archives rating events.
// Malformed or incomplete events are marked and skipped; storage failures
// leave the message unmarked for retry.
func (a *Archiver) Handler() MessageHandler {
	return &TypedMessageHandler[types.RatingEvent]{
		Validate: func(event *types.RatingEvent) bool {
			if event.UserID == "" || event.ArticleURL == "" {
				log.Printf("Warning: dropping incomplete rating event: %+v", event)
				return false
			}
			return true
		},
		Process: func(ctx context.Context, event *types.RatingEvent) error {
			key := ArchiveKey(event)
			if err := a.store.PutJSON(ctx, a.bucket, key, event); err != nil {
				return fmt.Errorf("failed to archive rating event to %s: %w", key, err)
			}
			return nil
		},
		AlwaysMark: true,
	}
}

// StartArchiverFromEnv wires a consumer group to the archiver when both
// KAFKA_BROKERS and RATINGS_ARCHIVE_BUCKET are configured. Returns the
// consumer so the caller can Close it, or nil when archiving is disabled.
func StartArchiverFromEnv(ctx context.Context, store ObjectStore) (*Consumer, error) {
	brokers := os.Getenv("KAFKA_BROKERS")
	bucket := os.Getenv("RATINGS_ARCHIVE_BUCKET")
	if brokers == "" || bucket == "" {
		return nil, nil
	}

	topic := os.Getenv("KAFKA_RATINGS_TOPIC")
	if topic == "" {
		topic = DefaultRatingsTopic
	}

	archiver := NewArchiver(store, bucket)
	consumer, err := NewConsumer(ConsumerConfig{
		Brokers: strings.Split(brokers, ","),
		Topic:   topic,
		GroupID: "newsbrain-archiver",
		Handler: archiver.Handler(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create archiver consumer: %w", err)
	}
	if err := consumer.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start archiver consumer: %w", err)
	}
	return consumer, nil
}
