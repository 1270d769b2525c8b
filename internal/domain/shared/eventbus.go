package shared

import "context"

// EventHandler reacts to domain events, for example keeping the
// product review aggregates in step with review writes
type EventHandler interface {
	Handle(ctx context.Context, event DomainEvent) error
	// EventTypes names the event types this handler wants.
	// Empty means all events.
	EventTypes() []string
}

// EventPublisher is the write side of the bus. Application services
// depend on this narrow interface, not on the full bus.
type EventPublisher interface {
	Publish(ctx context.Context, events ...DomainEvent) error
}

// EventSubscriber manages handler registrations
type EventSubscriber interface {
	// Subscribe registers a handler for the given event types, or for
	// the handler's own EventTypes when none are given
	Subscribe(handler EventHandler, eventTypes ...string)
	// Unsubscribe removes a handler from every event type
	Unsubscribe(handler EventHandler)
}

// EventBus is the full pub/sub surface plus lifecycle hooks, so an
// implementation with background workers can be drained on shutdown
type EventBus interface {
	EventPublisher
	EventSubscriber
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}
