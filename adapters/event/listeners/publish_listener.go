package listeners

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/storefront/backend/domain"
	"github.com/storefront/backend/domain/pubsub"
)

// Envelope is the wire format of a relayed domain event.
type Envelope struct {
	Name       string          `json:"name"`
	OccurredAt string          `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

// PublishEventHandler relays any domain event to the broker on the channel
// "<prefix>.<EventName>".
type PublishEventHandler struct {
	pubsub pubsub.Service
	prefix string
}

func NewPublishEventHandler(ps pubsub.Service, prefix string) *PublishEventHandler {
	return &PublishEventHandler{pubsub: ps, prefix: prefix}
}

func (h *PublishEventHandler) Channel(eventName string) string {
	return h.prefix + "." + eventName
}

func (h *PublishEventHandler) Handle(event domain.BaseDomainEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", event.EventName(), err)
	}

	data, err := json.Marshal(Envelope{
		Name:       event.EventName(),
		OccurredAt: event.OccurredAt().Format("2006-01-02T15:04:05.000Z07:00"),
		Payload:    payload,
	})
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	if err := h.pubsub.Publish(context.Background(), h.Channel(event.EventName()), string(data)); err != nil {
		return fmt.Errorf("publish %s: %w", event.EventName(), err)
	}

	return nil
}
