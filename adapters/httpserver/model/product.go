package model

import (
	"context"

	"github.com/storefront/backend/pkg/validation"
)

type CreateProductRequest struct {
	Name        string   `json:"name" xml:"name" mod:"trim" validate:"required"`
	Price       *float64 `json:"price" xml:"price" validate:"required,gte=0"`
	Description string   `json:"description" xml:"description" mod:"trim" validate:"omitempty,max=1024"`
} // @name model.CreateProductRequest

func (r *CreateProductRequest) Validate(ctx context.Context) error {
	return validation.Struct(ctx, r)
}

type UpdateProductRequest struct {
	ID    string   `param:"id" json:"-" xml:"-" validate:"required" swaggerignore:"true"`
	Name  string   `json:"name" xml:"name" mod:"trim" validate:"required"`
	Price *float64 `json:"price" xml:"price" validate:"required,gte=0"`
} // @name model.UpdateProductRequest

func (r *UpdateProductRequest) Validate(ctx context.Context) error {
	return validation.Struct(ctx, r)
}
