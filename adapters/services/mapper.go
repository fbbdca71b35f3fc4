package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/storefront/backend/adapters/httpserver/model"
	"github.com/storefront/backend/usecase/customer"
	"github.com/storefront/backend/usecase/order"
	"github.com/storefront/backend/usecase/product"
)

var ErrUnexpectedRow = errors.New("unexpected csv row")

var (
	mapperInstance *mapper
	onceMapper     sync.Once
)

type mapper struct{}

func NewMapperService() *mapper {
	onceMapper.Do(func() {
		mapperInstance = &mapper{}
	})
	return mapperInstance
}

func (s *mapper) ToCreateProductInput(request model.CreateProductRequest) product.CreateInput {
	in := product.CreateInput{
		Name:        request.Name,
		Description: request.Description,
	}

	if request.Price != nil {
		in.Price = *request.Price
	}

	return in
}

func (s *mapper) ToUpdateProductInput(request model.UpdateProductRequest) product.UpdateInput {
	in := product.UpdateInput{
		ID:   request.ID,
		Name: request.Name,
	}

	if request.Price != nil {
		in.Price = *request.Price
	}

	return in
}

// ToProductRequest reads a product from a csv row with the columns name,
// price and an optional description.
func (s *mapper) ToProductRequest(record map[string]string) (interface{}, error) {
	request := model.CreateProductRequest{
		Name:        record["name"],
		Description: record["description"],
	}

	if raw := record["price"]; raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid price %q: %w", raw, err)
		}

		request.Price = &price
	}

	return request, nil
}

func (s *mapper) ToBulkCreateProductInput(rows []interface{}) (product.BulkCreateInput, error) {
	in := product.BulkCreateInput{Products: make([]product.CreateInput, 0, len(rows))}

	for i, row := range rows {
		request, ok := row.(model.CreateProductRequest)
		if !ok {
			return product.BulkCreateInput{}, fmt.Errorf("row %d: %w", i+1, ErrUnexpectedRow)
		}

		if err := request.Validate(context.Background()); err != nil {
			return product.BulkCreateInput{}, fmt.Errorf("row %d: %w", i+1, err)
		}

		in.Products = append(in.Products, s.ToCreateProductInput(request))
	}

	return in, nil
}

func (s *mapper) ToCreateCustomerInput(request model.CreateCustomerRequest) customer.CreateInput {
	return customer.CreateInput{
		Name:    request.Name,
		Address: toAddressDTO(request.Address),
	}
}

func (s *mapper) ToUpdateCustomerInput(request model.UpdateCustomerRequest) customer.UpdateInput {
	return customer.UpdateInput{
		ID:      request.ID,
		Name:    request.Name,
		Address: toAddressDTO(request.Address),
	}
}

func toAddressDTO(request model.AddressRequest) customer.AddressDTO {
	return customer.AddressDTO{
		Street: request.Street,
		City:   request.City,
		Number: request.Number,
		Zip:    request.Zip,
	}
}

func (s *mapper) ToCreateOrderInput(request model.CreateOrderRequest) order.CreateInput {
	in := order.CreateInput{
		CustomerID: request.CustomerID,
		Items:      make([]order.ItemInput, 0, len(request.Items)),
	}

	for _, item := range request.Items {
		in.Items = append(in.Items, order.ItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return in
}
