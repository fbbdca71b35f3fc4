package order

import (
	"context"
	"fmt"

	"github.com/storefront/backend/domain/checkout"
	"github.com/storefront/backend/domain/customer"
	"github.com/storefront/backend/usecase"
)

type ChangeCustomerUseCase struct {
	orderStore    checkout.Store
	customerStore customer.Store
}

func NewChangeCustomerUseCase(orderStore checkout.Store, customerStore customer.Store) *ChangeCustomerUseCase {
	return &ChangeCustomerUseCase{orderStore: orderStore, customerStore: customerStore}
}

func (u *ChangeCustomerUseCase) Execute(ctx context.Context, in ChangeCustomerInput) (Output, error) {
	o, err := u.orderStore.Find(ctx, in.ID)
	if err != nil {
		return Output{}, err
	}

	if _, err := u.customerStore.Find(ctx, in.CustomerID); err != nil {
		return Output{}, err
	}

	if err := o.ChangeCustomer(in.CustomerID); err != nil {
		return Output{}, usecase.Invalid(err)
	}

	if err := u.orderStore.Update(ctx, o); err != nil {
		return Output{}, fmt.Errorf("update order: %w", err)
	}

	return newOutput(o), nil
}
