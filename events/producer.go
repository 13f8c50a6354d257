package events

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"newsbrain/types"
)

// DefaultRatingsTopic is the Kafka topic carrying rating audit events
const DefaultRatingsTopic = "newsbrain.ratings"

// Producer publishes rating events to Kafka. Messages are keyed by userID so
// each user's ratings land on one partition in order.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

// ProducerConfig holds Kafka producer configuration
type ProducerConfig struct {
	Brokers []string
	Topic   string
}

// NewProducerFromEnv creates a Producer from KAFKA_BROKERS and
// KAFKA_RATINGS_TOPIC. Returns (nil, nil) when KAFKA_BROKERS is unset so
// callers can run without an audit trail.
func NewProducerFromEnv() (*Producer, error) {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		return nil, nil
	}
	topic := os.Getenv("KAFKA_RATINGS_TOPIC")
	if topic == "" {
		topic = DefaultRatingsTopic
	}
	return NewProducer(ProducerConfig{
		Brokers: strings.Split(brokers, ","),
		Topic:   topic,
	})
}

// NewProducer creates a new Kafka producer
func NewProducer(config ProducerConfig) (*Producer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = sarama.V3_6_0_0
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	log.Printf("✅ Kafka producer started (topic: %s)", config.Topic)
	return &Producer{producer: producer, topic: config.Topic}, nil
}

// PublishRating sends a rating event, stamping CreatedAt if unset.
func (p *Producer) PublishRating(event types.RatingEvent) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode rating event: %w", err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.UserID),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return fmt.Errorf("failed to publish rating event: %w", err)
	}

	log.Printf("📤 Published rating event: partition=%d, offset=%d, user=%s", partition, offset, event.UserID)
	return nil
}

// Close gracefully shuts down the producer
func (p *Producer) Close() error {
	return p.producer.Close()
}
