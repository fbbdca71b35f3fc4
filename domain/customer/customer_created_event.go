package customer

import "time"

const CustomerCreatedEventName = "CustomerCreatedEvent"

type CustomerCreatedEvent struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   *Address  `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCustomerCreatedEvent(c *Customer) CustomerCreatedEvent {
	e := CustomerCreatedEvent{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: time.Now().UTC(),
	}

	if c.Address != nil {
		addr := *c.Address
		e.Address = &addr
	}

	return e
}

func (e CustomerCreatedEvent) EventName() string {
	return CustomerCreatedEventName
}

func (e CustomerCreatedEvent) OccurredAt() time.Time {
	return e.CreatedAt
}
