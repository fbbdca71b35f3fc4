package product

import (
	"context"
	"fmt"

	"github.com/storefront/backend/domain"
	"github.com/storefront/backend/domain/product"
	"github.com/storefront/backend/usecase"
)

type CreateUseCase struct {
	store      product.Store
	dispatcher domain.EventDispatcher
}

func NewCreateUseCase(store product.Store, dispatcher domain.EventDispatcher) *CreateUseCase {
	return &CreateUseCase{store: store, dispatcher: dispatcher}
}

// Execute stores a new product and announces it with a ProductCreatedEvent.
func (u *CreateUseCase) Execute(ctx context.Context, in CreateInput) (Output, error) {
	p, err := product.Create(in.Name, in.Price)
	if err != nil {
		return Output{}, usecase.Invalid(err)
	}

	if err := u.save(ctx, p, in.Description); err != nil {
		return Output{}, err
	}

	return newOutput(p), nil
}

func (u *CreateUseCase) save(ctx context.Context, p *product.Product, description string) error {
	if err := u.store.Create(ctx, p); err != nil {
		return fmt.Errorf("create product: %w", err)
	}

	return u.notify(p, description)
}

func (u *CreateUseCase) notify(p *product.Product, description string) error {
	if err := u.dispatcher.Notify(product.NewProductCreatedEvent(p, description)); err != nil {
		return fmt.Errorf("notify product created: %w", err)
	}

	return nil
}

type BulkCreateUseCase struct {
	create *CreateUseCase
}

func NewBulkCreateUseCase(store product.Store, dispatcher domain.EventDispatcher) *BulkCreateUseCase {
	return &BulkCreateUseCase{create: NewCreateUseCase(store, dispatcher)}
}

// Execute validates every row, stores all products in one transaction and then
// announces each of them in input order.
func (u *BulkCreateUseCase) Execute(ctx context.Context, in BulkCreateInput) (ListOutput, error) {
	products := make([]*product.Product, 0, len(in.Products))
	for i, row := range in.Products {
		p, err := product.Create(row.Name, row.Price)
		if err != nil {
			return ListOutput{}, usecase.Invalid(fmt.Errorf("row %d: %w", i+1, err))
		}

		products = append(products, p)
	}

	if err := u.create.store.CreateMany(ctx, products); err != nil {
		return ListOutput{}, fmt.Errorf("create products: %w", err)
	}

	out := ListOutput{Products: make([]Output, 0, len(products))}
	for i, p := range products {
		if err := u.create.notify(p, in.Products[i].Description); err != nil {
			return out, err
		}

		out.Products = append(out.Products, newOutput(p))
	}

	return out, nil
}
