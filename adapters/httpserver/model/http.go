package model

import (
	"context"
	"encoding/xml"

	"github.com/storefront/backend/pkg/validation"
)

type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
} // @name model.SuccessResponse

type ErrorResponse struct {
	XMLName xml.Name `json:"-" xml:"error"`
	Code    string   `json:"code" xml:"code"`
	Message string   `json:"message" xml:"message"`
	Info    string   `json:"info" xml:"info"`
} // @name model.ErrorResponse

type GetByIDRequest struct {
	ID string `param:"id" validate:"required"`
}

func (r *GetByIDRequest) Validate(ctx context.Context) error {
	return validation.Struct(ctx, r)
}

type ListRequest struct {
	Page  int `query:"page" validate:"omitempty,min=1"`
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

func (r *ListRequest) Validate(ctx context.Context) error {
	return validation.Struct(ctx, r)
}
