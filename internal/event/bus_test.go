package event

import (
	"context"
	"errors"
	"testing"
)

func TestPublishDeliversInSubscriptionOrder(t *testing.T) {
	bus := NewBus()
	var order []string

	bus.Subscribe(QuizSubmitted, func(ctx context.Context, ev Event) error {
		order = append(order, "first")
		return nil
	})
	bus.Subscribe(QuizSubmitted, func(ctx context.Context, ev Event) error {
		order = append(order, "second")
		return nil
	})

	bus.Publish(context.Background(), QuizSubmitted, nil)

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("expected ordered delivery [first second], got %v", order)
	}
}

func TestPublishContinuesAfterHandlerError(t *testing.T) {
	bus := NewBus()
	called := false

	bus.Subscribe(SubmissionCreated, func(ctx context.Context, ev Event) error {
		return errors.New("boom")
	})
	bus.Subscribe(SubmissionCreated, func(ctx context.Context, ev Event) error {
		called = true
		return nil
	})

	bus.Publish(context.Background(), SubmissionCreated, nil)

	if !called {
		t.Error("second handler was not invoked after first errored")
	}
}

func TestPublishOnlyMatchingTopic(t *testing.T) {
	bus := NewBus()
	count := 0

	bus.Subscribe(QuizCompleted, func(ctx context.Context, ev Event) error {
		count++
		return nil
	})

	bus.Publish(context.Background(), QuizSubmitted, nil)
	bus.Publish(context.Background(), QuizCompleted, nil)

	if count != 1 {
		t.Errorf("expected exactly one delivery, got %d", count)
	}
}
