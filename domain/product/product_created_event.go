package product

import "time"

const ProductCreatedEventName = "ProductCreatedEvent"

type ProductCreatedEvent struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewProductCreatedEvent(p *Product, description string) ProductCreatedEvent {
	return ProductCreatedEvent{
		ID:          p.ID,
		Name:        p.Name,
		Description: description,
		Price:       p.Price,
		CreatedAt:   time.Now().UTC(),
	}
}

func (e ProductCreatedEvent) EventName() string {
	return ProductCreatedEventName
}

func (e ProductCreatedEvent) OccurredAt() time.Time {
	return e.CreatedAt
}
