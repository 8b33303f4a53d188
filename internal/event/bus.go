package event

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// Topics delivered through the bus. Quiz topics are ordered: SubmittedQuiz is
// always published before CompletedQuiz for the same attempt.
const (
	SubmissionCreated = "submission.created"
	SubmissionUpdated = "submission.updated"
	QuizSubmitted     = "quiz.submitted"
	QuizCompleted     = "quiz.completed"
)

// Event is the payload delivered to subscribers.
type Event struct {
	Topic   string
	Payload any
}

// Handler processes one event. A returned error is logged and does not stop
// delivery to later subscribers.
type Handler func(ctx context.Context, ev Event) error

// Bus is a synchronous in-process publish/subscribe dispatcher. Handlers run
// in subscription order on the publisher's goroutine, exactly once per
// publish.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

// Subscribe registers a handler for a topic. Registration order is delivery
// order.
func (b *Bus) Subscribe(topic string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = append(b.handlers[topic], h)
}

// Publish delivers the event to every subscriber of the topic, in order,
// before returning. Handler errors are logged and swallowed so that one
// listener cannot block the others.
func (b *Bus) Publish(ctx context.Context, topic string, payload any) {
	b.mu.RLock()
	hs := make([]Handler, len(b.handlers[topic]))
	copy(hs, b.handlers[topic])
	b.mu.RUnlock()

	ev := Event{Topic: topic, Payload: payload}
	for _, h := range hs {
		if err := h(ctx, ev); err != nil {
			log.Warn().Err(err).Str("topic", topic).Msg("Event handler failed")
		}
	}
}
