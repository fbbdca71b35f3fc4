package domain

import "time"

// BaseDomainEvent is implemented by every event raised by an aggregate.
// EventName is the key handlers are registered under.
type BaseDomainEvent interface {
	EventName() string
	OccurredAt() time.Time
}

type EventHandler interface {
	Handle(event BaseDomainEvent) error
}

// EventDispatcher delivers events synchronously, in registration order, to the
// handlers registered for the event name. The first handler error stops the
// delivery and is returned from Notify.
type EventDispatcher interface {
	Register(eventName string, handler EventHandler)
	Unregister(eventName string, handler EventHandler)
	UnregisterAll()
	Notify(event BaseDomainEvent) error
	EventHandlers() map[string][]EventHandler
}
