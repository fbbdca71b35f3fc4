package model

import (
	"context"

	"github.com/storefront/backend/pkg/validation"
)

type OrderItemRequest struct {
	ProductID string `json:"product_id" xml:"product_id" mod:"trim" validate:"required"`
	Quantity  int    `json:"quantity" xml:"quantity" validate:"required,gt=0"`
} // @name model.OrderItemRequest

type CreateOrderRequest struct {
	CustomerID string             `json:"customer_id" xml:"customer_id" mod:"trim" validate:"required"`
	Items      []OrderItemRequest `json:"items" xml:"items>item" mod:"dive" validate:"required,min=1,dive"`
} // @name model.CreateOrderRequest

func (r *CreateOrderRequest) Validate(ctx context.Context) error {
	return validation.Struct(ctx, r)
}

type ChangeOrderCustomerRequest struct {
	ID         string `param:"id" json:"-" xml:"-" validate:"required" swaggerignore:"true"`
	CustomerID string `json:"customer_id" xml:"customer_id" mod:"trim" validate:"required"`
} // @name model.ChangeOrderCustomerRequest

func (r *ChangeOrderCustomerRequest) Validate(ctx context.Context) error {
	return validation.Struct(ctx, r)
}
