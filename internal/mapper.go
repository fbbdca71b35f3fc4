package internal

import (
	"github.com/storefront/backend/adapters/httpserver/model"
	"github.com/storefront/backend/usecase/customer"
	"github.com/storefront/backend/usecase/order"
	"github.com/storefront/backend/usecase/product"
)

type Mapper interface {
	ToCreateProductInput(request model.CreateProductRequest) product.CreateInput

	ToUpdateProductInput(request model.UpdateProductRequest) product.UpdateInput

	ToProductRequest(record map[string]string) (interface{}, error)

	ToBulkCreateProductInput(rows []interface{}) (product.BulkCreateInput, error)

	ToCreateCustomerInput(request model.CreateCustomerRequest) customer.CreateInput

	ToUpdateCustomerInput(request model.UpdateCustomerRequest) customer.UpdateInput

	ToCreateOrderInput(request model.CreateOrderRequest) order.CreateInput
}
