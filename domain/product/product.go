package product

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront/backend/pkg/pagination"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrIDRequired      = errors.New("id is required")
	ErrNameRequired    = errors.New("name is required")
	ErrNegativePrice   = errors.New("price must be greater than or equal to zero")
)

type Store interface {
	Create(ctx context.Context, p *Product) error
	// CreateMany stores every product or none of them.
	CreateMany(ctx context.Context, products []*Product) error
	Update(ctx context.Context, p *Product) error
	Find(ctx context.Context, id string) (*Product, error)
	FindAll(ctx context.Context) ([]Product, error)
	List(ctx context.Context, pager *pagination.Pager) ([]Product, error)
}

type Product struct {
	ID    string  `json:"id" xml:"id"`
	Name  string  `json:"name" xml:"name"`
	Price float64 `json:"price" xml:"price"`
} // @name product.Product

func New(id, name string, price float64) (*Product, error) {
	p := &Product{ID: id, Name: name, Price: price}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

func Create(name string, price float64) (*Product, error) {
	return New(uuid.NewString(), name, price)
}

func (p *Product) Validate() error {
	switch {
	case p.ID == "":
		return ErrIDRequired
	case p.Name == "":
		return ErrNameRequired
	case p.Price < 0:
		return ErrNegativePrice
	}

	return nil
}

func (p *Product) ChangeName(name string) error {
	if name == "" {
		return ErrNameRequired
	}

	p.Name = name

	return nil
}

func (p *Product) ChangePrice(price float64) error {
	if price < 0 {
		return ErrNegativePrice
	}

	p.Price = price

	return nil
}
