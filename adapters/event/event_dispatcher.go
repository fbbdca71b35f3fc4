package event

import (
	"reflect"
	"sync"

	"github.com/storefront/backend/domain"
)

var _ domain.EventDispatcher = (*eventDispatcher)(nil)

type eventDispatcher struct {
	handlers map[string][]domain.EventHandler
	mutex    sync.RWMutex
}

func NewEventDispatcher() *eventDispatcher {
	return &eventDispatcher{
		handlers: make(map[string][]domain.EventHandler),
	}
}

// Register appends handler to the list for eventName. Registering the same
// handler twice delivers every event to it twice.
func (ed *eventDispatcher) Register(eventName string, handler domain.EventHandler) {
	if eventName == "" || handler == nil {
		return
	}

	ed.mutex.Lock()
	defer ed.mutex.Unlock()

	ed.handlers[eventName] = append(ed.handlers[eventName], handler)
}

// Unregister removes every registration of handler for eventName. The entry
// for eventName is kept, possibly empty.
func (ed *eventDispatcher) Unregister(eventName string, handler domain.EventHandler) {
	ed.mutex.Lock()
	defer ed.mutex.Unlock()

	handlers, ok := ed.handlers[eventName]
	if !ok {
		return
	}

	kept := make([]domain.EventHandler, 0, len(handlers))
	for _, h := range handlers {
		if !sameHandler(h, handler) {
			kept = append(kept, h)
		}
	}

	ed.handlers[eventName] = kept
}

func (ed *eventDispatcher) UnregisterAll() {
	ed.mutex.Lock()
	defer ed.mutex.Unlock()

	ed.handlers = make(map[string][]domain.EventHandler)
}

// Notify runs the handlers registered for the event in registration order.
// Delivery stops at the first failing handler and its error is returned.
// A nil event, including a nil pointer to an event type, is ignored.
func (ed *eventDispatcher) Notify(event domain.BaseDomainEvent) error {
	if isNilEvent(event) {
		return nil
	}

	ed.mutex.RLock()
	handlers := append([]domain.EventHandler(nil), ed.handlers[event.EventName()]...)
	ed.mutex.RUnlock()

	for _, handler := range handlers {
		if err := handler.Handle(event); err != nil {
			return err
		}
	}

	return nil
}

func (ed *eventDispatcher) EventHandlers() map[string][]domain.EventHandler {
	ed.mutex.RLock()
	defer ed.mutex.RUnlock()

	snapshot := make(map[string][]domain.EventHandler, len(ed.handlers))
	for name, handlers := range ed.handlers {
		snapshot[name] = append([]domain.EventHandler{}, handlers...)
	}

	return snapshot
}

func isNilEvent(event domain.BaseDomainEvent) bool {
	if event == nil {
		return true
	}

	v := reflect.ValueOf(event)

	return v.Kind() == reflect.Ptr && v.IsNil()
}

// sameHandler compares handler identity. Handlers of non comparable dynamic
// types never match, since == on them would panic.
func sameHandler(a, b domain.EventHandler) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	if !reflect.TypeOf(a).Comparable() {
		return false
	}

	return a == b
}
