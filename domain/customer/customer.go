package customer

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront/backend/pkg/pagination"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrIDRequired       = errors.New("id is required")
	ErrNameRequired     = errors.New("name is required")
	ErrAddressMissing   = errors.New("address is mandatory to activate a customer")
	ErrNegativePoints   = errors.New("reward points must not be negative")
)

type Store interface {
	Create(ctx context.Context, c *Customer) error
	Update(ctx context.Context, c *Customer) error
	Find(ctx context.Context, id string) (*Customer, error)
	FindAll(ctx context.Context) ([]Customer, error)
	List(ctx context.Context, pager *pagination.Pager) ([]Customer, error)
}

type Customer struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Address      *Address `json:"address,omitempty"`
	Active       bool     `json:"active"`
	RewardPoints int      `json:"reward_points"`
} // @name customer.Customer

func New(id, name string) (*Customer, error) {
	c := &Customer{ID: id, Name: name}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Create builds a customer with a freshly generated id.
func Create(name string) (*Customer, error) {
	return New(uuid.NewString(), name)
}

func CreateWithAddress(name string, address Address) (*Customer, error) {
	c, err := Create(name)
	if err != nil {
		return nil, err
	}

	if err := c.ChangeAddress(address); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Customer) Validate() error {
	if c.ID == "" {
		return ErrIDRequired
	}

	if c.Name == "" {
		return ErrNameRequired
	}

	return nil
}

func (c *Customer) ChangeName(name string) error {
	if name == "" {
		return ErrNameRequired
	}

	c.Name = name

	return nil
}

func (c *Customer) ChangeAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.Address = &address

	return nil
}

func (c *Customer) Activate() error {
	if c.Address == nil {
		return ErrAddressMissing
	}

	c.Active = true

	return nil
}

func (c *Customer) Deactivate() {
	c.Active = false
}

func (c *Customer) AddRewardPoints(points int) error {
	if points < 0 {
		return ErrNegativePoints
	}

	c.RewardPoints += points

	return nil
}
