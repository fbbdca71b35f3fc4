package customer

import (
	"context"
	"fmt"

	"github.com/storefront/backend/domain"
	"github.com/storefront/backend/domain/customer"
	"github.com/storefront/backend/usecase"
)

type CreateUseCase struct {
	store      customer.Store
	dispatcher domain.EventDispatcher
}

func NewCreateUseCase(store customer.Store, dispatcher domain.EventDispatcher) *CreateUseCase {
	return &CreateUseCase{store: store, dispatcher: dispatcher}
}

// Execute stores a new customer and announces it with a CustomerCreatedEvent.
func (u *CreateUseCase) Execute(ctx context.Context, in CreateInput) (Output, error) {
	address, err := in.Address.toDomain()
	if err != nil {
		return Output{}, usecase.Invalid(err)
	}

	c, err := customer.CreateWithAddress(in.Name, address)
	if err != nil {
		return Output{}, usecase.Invalid(err)
	}

	if err := u.store.Create(ctx, c); err != nil {
		return Output{}, fmt.Errorf("create customer: %w", err)
	}

	if err := u.dispatcher.Notify(customer.NewCustomerCreatedEvent(c)); err != nil {
		return Output{}, fmt.Errorf("notify customer created: %w", err)
	}

	return newOutput(c), nil
}
