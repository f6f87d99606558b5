package ports

import (
	"Warehouse/internal/core/domain"
	"context"
)

// Subscriber reacts to events it is registered for.
// Identity is the subscriber value itself, so implementations
// should be pointers.
type Subscriber interface {
	// Name is a stable display name used in logs.
	Name() string

	// HandleEvent processes one event. A returned error aborts the
	// rest of the fan-out and is handed back to the publisher.
	HandleEvent(ctx context.Context, event domain.Event) error
}

// EventBus defines the interface for our in-process pub/sub system
type EventBus interface {
	// Subscribe registers a subscriber for an event type.
	// Subscribing twice is a no-op.
	Subscribe(eventType domain.EventType, subscriber Subscriber) error

	// Unsubscribe removes one registration and reports whether it existed.
	Unsubscribe(eventType domain.EventType, subscriber Subscriber) bool

	// UnsubscribeFromAll removes the subscriber everywhere and returns
	// how many event types it was removed from.
	UnsubscribeFromAll(subscriber Subscriber) int

	// Publish synchronously notifies every current subscriber of the event type.
	Publish(ctx context.Context, event domain.Event) error

	// Subscribers returns a copy of the subscribers of an event type.
	Subscribers(eventType domain.EventType) []Subscriber

	ClearSubscriptions()
	TotalSubscribersCount() int
	EventTypesCount() int
}
