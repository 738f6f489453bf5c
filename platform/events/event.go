// Package events carries the event contract between the modules and the
// in-memory bus. Events announce conversation and estimate milestones; the
// package holds no business logic so the platform layer stays free of domain
// imports.
package events

import (
	"context"
	"time"
)

// Event is implemented by every domain event published on the bus.
type Event interface {
	// EventName identifies the event type. Subscriptions key on it.
	EventName() string
	OccurredAt() time.Time
}

// BaseEvent holds the timestamp every event carries. Concrete events embed
// it next to their own fields.
type BaseEvent struct {
	Timestamp time.Time `json:"timestamp"`
}

func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// NewBaseEvent stamps an event with the current time.
func NewBaseEvent() BaseEvent {
	return BaseEvent{Timestamp: time.Now()}
}

// Handler consumes the events it subscribed to.
type Handler interface {
	Handle(ctx context.Context, event Event) error
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(ctx context.Context, event Event) error

func (f HandlerFunc) Handle(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// Bus publishes domain events to subscribed handlers.
type Bus interface {
	// Publish dispatches the event to its subscribers asynchronously.
	Publish(ctx context.Context, event Event)

	// Subscribe registers a handler under the name the event reports from
	// EventName.
	Subscribe(eventName string, handler Handler)
}
