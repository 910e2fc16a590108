package repository

import (
	"context"

	"github.com/hszk-dev/openveo-repository/internal/domain/model"
)

// EventPublisher emits diagnostic events to the host event bus.
type EventPublisher interface {
	// Publish sends one event. Callers treat failures as non-fatal.
	Publish(ctx context.Context, event model.Event) error
}

// EventQueue defines the message queue carrying diagnostic events from
// the API to the event log worker.
// Implementations should be provided by the infrastructure layer (e.g., RabbitMQ).
type EventQueue interface {
	EventPublisher

	// ConsumeEvents starts consuming events from the queue.
	// The handler function is called for each received event.
	// Blocks until ctx is cancelled or the delivery channel is closed.
	ConsumeEvents(ctx context.Context, handler func(event model.Event) error) error

	// Close gracefully closes the connection to the message queue.
	Close() error
}

// EventStore persists diagnostic events in the host log store.
type EventStore interface {
	Save(ctx context.Context, event model.Event) error
}
