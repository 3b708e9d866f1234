package events_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopcore/customer-service/internal/events"
)

func TestMemoryRecordsPublishedEvents(t *testing.T) {
	pub := events.NewMemory(nil)

	ev := events.CustomerEvent{
		Action:     events.ActionCreated,
		CustomerID: "abc-123",
		OccurredAt: time.Now().UTC(),
	}
	require.NoError(t, pub.Publish(ev))

	published := pub.Events()
	require.Len(t, published, 1)
	assert.Equal(t, ev, published[0])
}

func TestMemoryDispatchesToSubscribers(t *testing.T) {
	pub := events.NewMemory(nil)

	received := make(chan events.CustomerEvent, 1)
	pub.Subscribe(func(ev events.CustomerEvent) error {
		received <- ev
		return nil
	})

	require.NoError(t, pub.Publish(events.CustomerEvent{Action: events.ActionDeleted, CustomerID: "abc-123"}))

	select {
	case ev := <-received:
		assert.Equal(t, events.ActionDeleted, ev.Action)
		assert.Equal(t, "abc-123", ev.CustomerID)
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber was not invoked")
	}
}

func TestMemoryRetriesFailingHandler(t *testing.T) {
	pub := events.NewMemory(nil)

	attempts := make(chan int, 8)
	calls := 0
	done := make(chan struct{})
	pub.Subscribe(func(ev events.CustomerEvent) error {
		calls++
		attempts <- calls
		if calls < 2 {
			return errors.New("transient")
		}
		close(done)
		return nil
	})

	require.NoError(t, pub.Publish(events.CustomerEvent{Action: events.ActionUpdated, CustomerID: "abc-123"}))

	select {
	case <-done:
		assert.GreaterOrEqual(t, len(attempts), 2)
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not retried")
	}
}
