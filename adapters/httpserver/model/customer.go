package model

import (
	"context"

	"github.com/storefront/backend/pkg/validation"
)

type AddressRequest struct {
	Street string `json:"street" xml:"street" mod:"trim" validate:"required"`
	City   string `json:"city" xml:"city" mod:"trim" validate:"required"`
	Number int    `json:"number" xml:"number" validate:"required,gt=0"`
	Zip    string `json:"zip" xml:"zip" mod:"trim" validate:"required"`
} // @name model.AddressRequest

type CreateCustomerRequest struct {
	Name    string         `json:"name" xml:"name" mod:"trim" validate:"required"`
	Address AddressRequest `json:"address" xml:"address"`
} // @name model.CreateCustomerRequest

func (r *CreateCustomerRequest) Validate(ctx context.Context) error {
	return validation.Struct(ctx, r)
}

type UpdateCustomerRequest struct {
	ID      string         `param:"id" json:"-" xml:"-" validate:"required" swaggerignore:"true"`
	Name    string         `json:"name" xml:"name" mod:"trim" validate:"required"`
	Address AddressRequest `json:"address" xml:"address"`
} // @name model.UpdateCustomerRequest

func (r *UpdateCustomerRequest) Validate(ctx context.Context) error {
	return validation.Struct(ctx, r)
}
