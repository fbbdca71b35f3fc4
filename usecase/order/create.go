package order

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/storefront/backend/domain/checkout"
	"github.com/storefront/backend/domain/customer"
	"github.com/storefront/backend/domain/product"
	"github.com/storefront/backend/usecase"
)

type CreateUseCase struct {
	orderStore    checkout.Store
	customerStore customer.Store
	productStore  product.Store
}

func NewCreateUseCase(orderStore checkout.Store, customerStore customer.Store, productStore product.Store) *CreateUseCase {
	return &CreateUseCase{
		orderStore:    orderStore,
		customerStore: customerStore,
		productStore:  productStore,
	}
}

// Execute places an order for a stored customer. Item names and prices are
// taken from the stored products, and the reward points earned by the order
// are saved on the customer in the same transaction as the order.
func (u *CreateUseCase) Execute(ctx context.Context, in CreateInput) (Output, error) {
	c, err := u.customerStore.Find(ctx, in.CustomerID)
	if err != nil {
		return Output{}, err
	}

	items := make([]checkout.OrderItem, 0, len(in.Items))
	for _, itemInput := range in.Items {
		p, err := u.productStore.Find(ctx, itemInput.ProductID)
		if err != nil {
			return Output{}, err
		}

		item, err := checkout.NewOrderItem(uuid.NewString(), p.Name, p.Price, p.ID, itemInput.Quantity)
		if err != nil {
			return Output{}, usecase.Invalid(err)
		}

		items = append(items, item)
	}

	o, err := checkout.PlaceOrder(c, items)
	if err != nil {
		return Output{}, usecase.Invalid(err)
	}

	if err := u.orderStore.Place(ctx, o, c); err != nil {
		return Output{}, fmt.Errorf("place order: %w", err)
	}

	return newOutput(o), nil
}
