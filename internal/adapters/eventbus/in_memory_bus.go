package eventbus

import (
	"Warehouse/internal/core/domain"
	"Warehouse/internal/core/ports"
	"context"
	"reflect"
	"sync"

	"github.com/rs/zerolog"
)

// subscriberSet keeps subscribers unique while remembering the order
// they were added in, so dispatch order is deterministic. Members are
// always pointers, so == is reference identity and never panics.
type subscriberSet struct {
	members []ports.Subscriber
}

func (s *subscriberSet) indexOf(sub ports.Subscriber) int {
	for i, m := range s.members {
		if m == sub {
			return i
		}
	}
	return -1
}

func (s *subscriberSet) add(sub ports.Subscriber) bool {
	if s.indexOf(sub) >= 0 {
		return false
	}
	s.members = append(s.members, sub)
	return true
}

func (s *subscriberSet) remove(sub ports.Subscriber) bool {
	i := s.indexOf(sub)
	if i < 0 {
		return false
	}
	s.members = append(s.members[:i], s.members[i+1:]...)
	return true
}

func (s *subscriberSet) snapshot() []ports.Subscriber {
	out := make([]ports.Subscriber, len(s.members))
	copy(out, s.members)
	return out
}

// inMemoryEventBus implements the ports.EventBus interface.
// Dispatch is synchronous; the lock is never held while a handler runs,
// so handlers may subscribe, unsubscribe or publish re-entrantly.
type inMemoryEventBus struct {
	log         zerolog.Logger
	subscribers map[domain.EventType]*subscriberSet
	mu          sync.Mutex
}

var _ ports.EventBus = (*inMemoryEventBus)(nil)

// NewInMemoryEventBus creates a new, empty event bus
func NewInMemoryEventBus(baseLogger *zerolog.Logger) ports.EventBus {
	return &inMemoryEventBus{
		log:         baseLogger.With().Str("component", "in_memory_bus").Logger(),
		subscribers: make(map[domain.EventType]*subscriberSet),
	}
}

// Subscribe registers a subscriber for an event type.
func (b *inMemoryEventBus) Subscribe(eventType domain.EventType, subscriber ports.Subscriber) error {
	if eventType == "" || isNil(subscriber) {
		b.log.Error().Msg("Cannot subscribe with empty event type or nil subscriber")
		return domain.InvalidArgument("EventType and subscriber must be provided")
	}
	if !isPointer(subscriber) {
		b.log.Error().Str("subscriber", subscriber.Name()).Msg("Cannot subscribe a non-pointer subscriber")
		return domain.InvalidArgument("Subscriber %s must be a pointer", subscriber.Name())
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	set, ok := b.subscribers[eventType]
	if !ok {
		set = &subscriberSet{}
		b.subscribers[eventType] = set
	}

	if !set.add(subscriber) {
		b.log.Warn().
			Str("subscriber", subscriber.Name()).
			Str("event_type", string(eventType)).
			Msg("Subscriber is already subscribed to event type")
		return nil
	}

	b.log.Info().
		Str("subscriber", subscriber.Name()).
		Str("event_type", string(eventType)).
		Msg("Subscriber subscribed to event type")
	return nil
}

// Unsubscribe removes one registration.
func (b *inMemoryEventBus) Unsubscribe(eventType domain.EventType, subscriber ports.Subscriber) bool {
	if eventType == "" || isNil(subscriber) || !isPointer(subscriber) {
		b.log.Error().Msg("Cannot unsubscribe with empty event type or a nil or non-pointer subscriber")
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	log := b.log.With().
		Str("subscriber", subscriber.Name()).
		Str("event_type", string(eventType)).
		Logger()

	set, ok := b.subscribers[eventType]
	if !ok || len(set.members) == 0 {
		log.Warn().Msg("Cannot unsubscribe: no subscribers exist for event type")
		return false
	}

	if !set.remove(subscriber) {
		log.Warn().Msg("Cannot unsubscribe: not subscribed")
		return false
	}
	log.Info().Msg("Subscriber unsubscribed from event type")

	if len(set.members) == 0 {
		delete(b.subscribers, eventType)
		log.Info().Msg("Removed empty subscriber set")
	}
	return true
}

// UnsubscribeFromAll removes the subscriber from every event type.
func (b *inMemoryEventBus) UnsubscribeFromAll(subscriber ports.Subscriber) int {
	if isNil(subscriber) || !isPointer(subscriber) {
		b.log.Error().Msg("Cannot unsubscribe a nil or non-pointer subscriber from all events")
		return 0
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	count := 0
	for eventType, set := range b.subscribers {
		if !set.remove(subscriber) {
			continue
		}
		count++
		if len(set.members) == 0 {
			delete(b.subscribers, eventType)
		}
	}

	b.log.Info().
		Str("subscriber", subscriber.Name()).
		Int("event_types", count).
		Msg("Subscriber unsubscribed from all events")
	return count
}

// Publish notifies every subscriber of event.Type, in subscription order.
// The first handler error stops the fan-out and is returned as-is.
func (b *inMemoryEventBus) Publish(ctx context.Context, event domain.Event) error {
	if err := validateEvent(event); err != nil {
		b.log.Error().Err(err).Str("event_type", string(event.Type)).Msg("Cannot publish invalid event")
		return err
	}

	log := b.log.With().Str("event_type", string(event.Type)).Logger()
	log.Info().Msg("Publishing event")

	// Handlers run against a point-in-time copy of the set.
	subscribers := b.snapshot(event.Type)
	if len(subscribers) == 0 {
		log.Info().Msg("No subscribers for event type")
		return nil
	}

	for _, sub := range subscribers {
		log.Info().Str("subscriber", sub.Name()).Msg("Notifying subscriber")
		if err := sub.HandleEvent(ctx, event); err != nil {
			log.Error().Err(err).Str("subscriber", sub.Name()).Msg("Subscriber failed to handle event")
			return err
		}
	}
	return nil
}

// Subscribers returns a copy of the subscribers of an event type.
func (b *inMemoryEventBus) Subscribers(eventType domain.EventType) []ports.Subscriber {
	subscribers := b.snapshot(eventType)
	if len(subscribers) == 0 {
		b.log.Warn().Str("event_type", string(eventType)).Msg("No subscribers found for event type")
	}
	return subscribers
}

// ClearSubscriptions drops every registration.
func (b *inMemoryEventBus) ClearSubscriptions() {
	b.mu.Lock()
	b.subscribers = make(map[domain.EventType]*subscriberSet)
	b.mu.Unlock()
	b.log.Info().Msg("Cleared all subscriptions")
}

func (b *inMemoryEventBus) TotalSubscribersCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	count := 0
	for _, set := range b.subscribers {
		count += len(set.members)
	}
	return count
}

func (b *inMemoryEventBus) EventTypesCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subscribers)
}

func (b *inMemoryEventBus) snapshot(eventType domain.EventType) []ports.Subscriber {
	b.mu.Lock()
	defer b.mu.Unlock()

	set, ok := b.subscribers[eventType]
	if !ok {
		return []ports.Subscriber{}
	}
	return set.snapshot()
}

func validateEvent(event domain.Event) error {
	if event.Type == "" {
		return domain.InvalidArgument("Valid event with type must be provided")
	}
	if event.Payload == nil || isNil(event.Payload) {
		return domain.InvalidArgument("Event %s must carry a payload", event.Type)
	}
	if kind := event.Payload.EventType(); kind != event.Type {
		return domain.InvalidArgument("Event type %s does not match payload type %s", event.Type, kind)
	}
	return nil
}

// isNil catches both untyped nil and typed nil pointers inside an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// isPointer holds for subscribers whose dynamic type is a pointer.
// Value subscribers are refused: a struct with an interface field can
// hold a slice and make == panic at runtime.
func isPointer(v any) bool {
	return reflect.TypeOf(v).Kind() == reflect.Ptr
}
