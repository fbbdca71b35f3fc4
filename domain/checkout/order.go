package checkout

import (
	"context"
	"errors"

	"github.com/storefront/backend/domain/customer"
	"github.com/storefront/backend/pkg/pagination"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrIDRequired          = errors.New("id is required")
	ErrCustomerIDRequired  = errors.New("customer id is required")
	ErrItemsRequired       = errors.New("order must have at least one item")
	ErrDuplicatedOrderItem = errors.New("order item already exists")
)

type Store interface {
	Create(ctx context.Context, o *Order) error
	// Place stores o and the reward points of its customer c in one
	// transaction.
	Place(ctx context.Context, o *Order, c *customer.Customer) error
	Update(ctx context.Context, o *Order) error
	Find(ctx context.Context, id string) (*Order, error)
	FindAll(ctx context.Context) ([]Order, error)
	List(ctx context.Context, pager *pagination.Pager) ([]Order, error)
}

type Order struct {
	ID         string      `json:"id" xml:"id"`
	CustomerID string      `json:"customer_id" xml:"customer_id"`
	Items      []OrderItem `json:"items" xml:"items>item"`
} // @name checkout.Order

func NewOrder(id, customerID string, items []OrderItem) (*Order, error) {
	o := &Order{ID: id, CustomerID: customerID, Items: items}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o.ID == "" {
		return ErrIDRequired
	}

	if o.CustomerID == "" {
		return ErrCustomerIDRequired
	}

	if len(o.Items) == 0 {
		return ErrItemsRequired
	}

	seen := make(map[string]struct{}, len(o.Items))
	for _, item := range o.Items {
		if err := item.Validate(); err != nil {
			return err
		}

		if _, ok := seen[item.ID]; ok {
			return ErrDuplicatedOrderItem
		}
		seen[item.ID] = struct{}{}
	}

	return nil
}

func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Total()
	}

	return total
}

func (o *Order) ChangeCustomer(customerID string) error {
	if customerID == "" {
		return ErrCustomerIDRequired
	}

	o.CustomerID = customerID

	return nil
}

func (o *Order) AddItem(item OrderItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	for _, existing := range o.Items {
		if existing.ID == item.ID {
			return ErrDuplicatedOrderItem
		}
	}

	o.Items = append(o.Items, item)

	return nil
}
