package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/IBM/sarama"

	"newsbrain/types"
)

// fakeSession implements sarama.ConsumerGroupSession and records marked
// messages.
type fakeSession struct {
	ctx    context.Context
	mu     sync.Mutex
	marked []*sarama.ConsumerMessage
}

func newFakeSession(ctx context.Context) *fakeSession {
	return &fakeSession{ctx: ctx}
}

func (s *fakeSession) Claims() map[string][]int32 { return nil }
func (s *fakeSession) MemberID() string           { return "test-member" }
func (s *fakeSession) GenerationID() int32        { return 1 }
func (s *fakeSession) MarkOffset(topic string, partition int32, offset int64, metadata string) {
}
func (s *fakeSession) Commit() {}
func (s *fakeSession) ResetOffset(topic string, partition int32, offset int64, metadata string) {
}
func (s *fakeSession) Context() context.Context { return s.ctx }

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, metadata string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marked = append(s.marked, msg)
}

func (s *fakeSession) markedOffsets() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	offsets := make([]int64, len(s.marked))
	for i, msg := range s.marked {
		offsets[i] = msg.Offset
	}
	return offsets
}

// fakeClaim implements sarama.ConsumerGroupClaim over a plain channel.
type fakeClaim struct {
	messages chan *sarama.ConsumerMessage
}

func newFakeClaim(buffer int) *fakeClaim {
	return &fakeClaim{messages: make(chan *sarama.ConsumerMessage, buffer)}
}

func (c *fakeClaim) Topic() string                            { return DefaultRatingsTopic }
func (c *fakeClaim) Partition() int32                         { return 0 }
func (c *fakeClaim) InitialOffset() int64                     { return 0 }
func (c *fakeClaim) HighWaterMarkOffset() int64               { return 0 }
func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

// funcHandler adapts a function to the MessageHandler interface.
type funcHandler func(ctx context.Context, message []byte) (bool, error)

func (f funcHandler) HandleMessage(ctx context.Context, message []byte) (bool, error) {
	return f(ctx, message)
}

func ratingMessage(t *testing.T, offset int64, event types.RatingEvent) *sarama.ConsumerMessage {
	t.Helper()
	payload, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("failed to encode event: %v", err)
	}
	return &sarama.ConsumerMessage{
		Topic:  DefaultRatingsTopic,
		Offset: offset,
		Key:    []byte(event.UserID),
		Value:  payload,
	}
}

func TestConsumeClaimMarksHandledMessages(t *testing.T) {
	var handled [][]byte
	handler := &consumerGroupHandler{
		messageHandler: funcHandler(func(ctx context.Context, message []byte) (bool, error) {
			handled = append(handled, message)
			return true, nil
		}),
		ready: make(chan bool),
	}

	claim := newFakeClaim(2)
	claim.messages <- ratingMessage(t, 10, types.RatingEvent{UserID: "u1", ArticleURL: "https://example.com/a", Rating: 4})
	claim.messages <- ratingMessage(t, 11, types.RatingEvent{UserID: "u2", ArticleURL: "https://example.com/b", Rating: 2})
	close(claim.messages)

	session := newFakeSession(context.Background())
	if err := handler.ConsumeClaim(session, claim); err != nil {
		t.Fatalf("expected nil on drained claim, got %v", err)
	}

	if len(handled) != 2 {
		t.Fatalf("expected 2 messages handled, got %d", len(handled))
	}
	offsets := session.markedOffsets()
	if len(offsets) != 2 || offsets[0] != 10 || offsets[1] != 11 {
		t.Fatalf("expected offsets 10 and 11 marked in order, got %v", offsets)
	}
}

func TestConsumeClaimLeavesFailedMessagesUnmarked(t *testing.T) {
	handler := &consumerGroupHandler{
		messageHandler: funcHandler(func(ctx context.Context, message []byte) (bool, error) {
			return false, errors.New("storage down")
		}),
		ready: make(chan bool),
	}

	claim := newFakeClaim(1)
	claim.messages <- ratingMessage(t, 7, types.RatingEvent{UserID: "u1", ArticleURL: "https://example.com/a", Rating: 1})
	close(claim.messages)

	session := newFakeSession(context.Background())
	if err := handler.ConsumeClaim(session, claim); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if marked := session.markedOffsets(); len(marked) != 0 {
		t.Fatalf("expected no marked offsets after failure, got %v", marked)
	}
}

func TestConsumeClaimHonorsShouldMark(t *testing.T) {
	handler := &consumerGroupHandler{
		messageHandler: funcHandler(func(ctx context.Context, message []byte) (bool, error) {
			// Declined without error: skip marking so the message is retried
			return false, nil
		}),
		ready: make(chan bool),
	}

	claim := newFakeClaim(1)
	claim.messages <- ratingMessage(t, 3, types.RatingEvent{UserID: "u1", ArticleURL: "https://example.com/a", Rating: 3})
	close(claim.messages)

	session := newFakeSession(context.Background())
	if err := handler.ConsumeClaim(session, claim); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if marked := session.markedOffsets(); len(marked) != 0 {
		t.Fatalf("expected declined message left unmarked, got %v", marked)
	}
}

func TestConsumeClaimStopsOnSessionCancel(t *testing.T) {
	handler := &consumerGroupHandler{
		messageHandler: funcHandler(func(ctx context.Context, message []byte) (bool, error) {
			return true, nil
		}),
		ready: make(chan bool),
	}

	ctx, cancel := context.WithCancel(context.Background())
	session := newFakeSession(ctx)
	claim := newFakeClaim(0)

	done := make(chan error, 1)
	go func() {
		done <- handler.ConsumeClaim(session, claim)
	}()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected nil on cancel, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("ConsumeClaim did not return after session cancel")
	}
}

func TestConsumeClaimWithTypedHandler(t *testing.T) {
	var processed []types.RatingEvent
	typed := &TypedMessageHandler[types.RatingEvent]{
		Validate: func(event *types.RatingEvent) bool {
			return event.UserID != "" && event.ArticleURL != ""
		},
		Process: func(ctx context.Context, event *types.RatingEvent) error {
			processed = append(processed, *event)
			return nil
		},
		AlwaysMark: true,
	}
	handler := &consumerGroupHandler{messageHandler: typed, ready: make(chan bool)}

	claim := newFakeClaim(3)
	claim.messages <- ratingMessage(t, 1, types.RatingEvent{UserID: "u1", ArticleURL: "https://example.com/a", Rating: 4})
	// Incomplete event: validated away, still marked so it is not replayed
	claim.messages <- ratingMessage(t, 2, types.RatingEvent{Rating: 4})
	claim.messages <- &sarama.ConsumerMessage{Topic: DefaultRatingsTopic, Offset: 3, Value: []byte("not json")}
	close(claim.messages)

	session := newFakeSession(context.Background())
	if err := handler.ConsumeClaim(session, claim); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}

	if len(processed) != 1 || processed[0].UserID != "u1" {
		t.Fatalf("expected only the complete event processed, got %v", processed)
	}
	if marked := session.markedOffsets(); len(marked) != 3 {
		t.Fatalf("expected all 3 offsets marked, got %v", marked)
	}
}
