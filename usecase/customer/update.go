package customer

import (
	"context"
	"fmt"

	"github.com/storefront/backend/domain"
	"github.com/storefront/backend/domain/customer"
	"github.com/storefront/backend/usecase"
)

type UpdateUseCase struct {
	store      customer.Store
	dispatcher domain.EventDispatcher
}

func NewUpdateUseCase(store customer.Store, dispatcher domain.EventDispatcher) *UpdateUseCase {
	return &UpdateUseCase{store: store, dispatcher: dispatcher}
}

// Execute renames the customer and replaces the address. A
// CustomerChangeAddressEvent is sent only when the address differs from the
// stored one.
func (u *UpdateUseCase) Execute(ctx context.Context, in UpdateInput) (Output, error) {
	c, err := u.store.Find(ctx, in.ID)
	if err != nil {
		return Output{}, err
	}

	address, err := in.Address.toDomain()
	if err != nil {
		return Output{}, usecase.Invalid(err)
	}

	if err := c.ChangeName(in.Name); err != nil {
		return Output{}, usecase.Invalid(err)
	}

	addressChanged := c.Address == nil || *c.Address != address
	if err := c.ChangeAddress(address); err != nil {
		return Output{}, usecase.Invalid(err)
	}

	if err := u.store.Update(ctx, c); err != nil {
		return Output{}, fmt.Errorf("update customer: %w", err)
	}

	if addressChanged {
		if err := u.dispatcher.Notify(customer.NewCustomerChangeAddressEvent(c)); err != nil {
			return Output{}, fmt.Errorf("notify customer address changed: %w", err)
		}
	}

	return newOutput(c), nil
}
