package customer

import "time"

const CustomerChangeAddressEventName = "CustomerChangeAddressEvent"

type CustomerChangeAddressEvent struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	ChangedAt time.Time `json:"changed_at"`
}

func NewCustomerChangeAddressEvent(c *Customer) CustomerChangeAddressEvent {
	var address string
	if c.Address != nil {
		address = c.Address.String()
	}

	return CustomerChangeAddressEvent{
		ID:        c.ID,
		Name:      c.Name,
		Address:   address,
		ChangedAt: time.Now().UTC(),
	}
}

func (e CustomerChangeAddressEvent) EventName() string {
	return CustomerChangeAddressEventName
}

func (e CustomerChangeAddressEvent) OccurredAt() time.Time {
	return e.ChangedAt
}
