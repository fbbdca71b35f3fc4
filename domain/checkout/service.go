package checkout

import (
	"github.com/google/uuid"
	"github.com/storefront/backend/domain/customer"
)

// PlaceOrder creates an order for c and credits the customer with half of the
// order total as reward points.
func PlaceOrder(c *customer.Customer, items []OrderItem) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrItemsRequired
	}

	o, err := NewOrder(uuid.NewString(), c.ID, items)
	if err != nil {
		return nil, err
	}

	if err := c.AddRewardPoints(int(o.Total() / 2)); err != nil {
		return nil, err
	}

	return o, nil
}

func Total(orders []Order) float64 {
	var total float64
	for i := range orders {
		total += orders[i].Total()
	}

	return total
}
