package events

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Queue the customer change events travel on.
const QueueName = "customer_events"

// Actions recorded in customer events.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// CustomerEvent describes one mutation of a customer record.
type CustomerEvent struct {
	Action     string    `json:"action"`
	CustomerID string    `json:"customer_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher emits customer change events. Publishing is fire-and-forget
// from the caller's perspective: failures are logged, never surfaced to
// the request.
type Publisher interface {
	Publish(event CustomerEvent) error
}

// Memory is the in-process publisher used in tests and when no broker
// is configured. Subscribed handlers run asynchronously with a bounded
// retry.
type Memory struct {
	mu       sync.Mutex
	events   []CustomerEvent
	handlers []func(CustomerEvent) error
	logger   *zap.Logger

	maxRetries int
	backoff    time.Duration
}

// NewMemory creates an in-process publisher.
func NewMemory(logger *zap.Logger) *Memory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Memory{
		logger:     logger,
		maxRetries: 3,
		backoff:    500 * time.Millisecond,
	}
}

// Publish records the event and dispatches it to every subscriber.
func (m *Memory) Publish(event CustomerEvent) error {
	m.mu.Lock()
	m.events = append(m.events, event)
	handlers := make([]func(CustomerEvent) error, len(m.handlers))
	copy(handlers, m.handlers)
	m.mu.Unlock()

	for _, handler := range handlers {
		go m.dispatch(handler, event)
	}
	return nil
}

func (m *Memory) dispatch(handler func(CustomerEvent) error, event CustomerEvent) {
	for attempt := 0; ; attempt++ {
		err := handler(event)
		if err == nil {
			return
		}
		if attempt >= m.maxRetries {
			m.logger.Error("event handler permanently failed",
				zap.String("action", event.Action),
				zap.String("customer_id", event.CustomerID),
				zap.Error(err))
			return
		}
		time.Sleep(time.Duration(attempt+1) * m.backoff)
	}
}

// Subscribe registers a handler for every published event.
func (m *Memory) Subscribe(handler func(CustomerEvent) error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers = append(m.handlers, handler)
}

// Events returns a snapshot of everything published so far.
func (m *Memory) Events() []CustomerEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	snapshot := make([]CustomerEvent, len(m.events))
	copy(snapshot, m.events)
	return snapshot
}
