package services_test

import (
	"testing"

	"github.com/storefront/backend/adapters/httpserver/model"
	"github.com/storefront/backend/adapters/services"
	"github.com/storefront/backend/usecase/customer"
	"github.com/storefront/backend/usecase/order"
	"github.com/storefront/backend/usecase/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v float64) *float64 {
	return &v
}

func TestToProductRequest(t *testing.T) {
	m := services.NewMapperService()

	row, err := m.ToProductRequest(map[string]string{"name": "Keyboard", "price": "49.9", "description": "Mechanical"})
	require.NoError(t, err)
	assert.Equal(t, model.CreateProductRequest{Name: "Keyboard", Price: price(49.9), Description: "Mechanical"}, row)

	row, err = m.ToProductRequest(map[string]string{"name": "Keyboard"})
	require.NoError(t, err)
	assert.Nil(t, row.(model.CreateProductRequest).Price)

	_, err = m.ToProductRequest(map[string]string{"name": "Keyboard", "price": "cheap"})
	assert.ErrorContains(t, err, `invalid price "cheap"`)
}

func TestToBulkCreateProductInput(t *testing.T) {
	m := services.NewMapperService()

	in, err := m.ToBulkCreateProductInput([]interface{}{
		model.CreateProductRequest{Name: "Keyboard", Price: price(49.9)},
		model.CreateProductRequest{Name: "Mouse", Price: price(0), Description: "Wireless"},
	})
	require.NoError(t, err)
	assert.Equal(t, product.BulkCreateInput{Products: []product.CreateInput{
		{Name: "Keyboard", Price: 49.9},
		{Name: "Mouse", Price: 0, Description: "Wireless"},
	}}, in)

	_, err = m.ToBulkCreateProductInput([]interface{}{
		model.CreateProductRequest{Name: "Keyboard", Price: price(49.9)},
		model.CreateProductRequest{Name: "Mouse"},
	})
	assert.ErrorContains(t, err, "row 2")

	in, err = m.ToBulkCreateProductInput([]interface{}{
		model.CreateProductRequest{Name: " Keyboard ", Price: price(49.9)},
	})
	require.NoError(t, err)
	assert.Equal(t, "Keyboard", in.Products[0].Name)

	_, err = m.ToBulkCreateProductInput([]interface{}{
		model.CreateProductRequest{Name: "  ", Price: price(1)},
	})
	assert.ErrorContains(t, err, "row 1")

	_, err = m.ToBulkCreateProductInput([]interface{}{"not a product"})
	assert.ErrorIs(t, err, services.ErrUnexpectedRow)
}

func TestToCustomerInputs(t *testing.T) {
	m := services.NewMapperService()
	address := model.AddressRequest{Street: "Street", City: "City", Number: 7, Zip: "123"}

	assert.Equal(t, customer.CreateInput{
		Name:    "John",
		Address: customer.AddressDTO{Street: "Street", City: "City", Number: 7, Zip: "123"},
	}, m.ToCreateCustomerInput(model.CreateCustomerRequest{Name: "John", Address: address}))

	assert.Equal(t, customer.UpdateInput{
		ID:      "c1",
		Name:    "John",
		Address: customer.AddressDTO{Street: "Street", City: "City", Number: 7, Zip: "123"},
	}, m.ToUpdateCustomerInput(model.UpdateCustomerRequest{ID: "c1", Name: "John", Address: address}))
}

func TestToCreateOrderInput(t *testing.T) {
	in := services.NewMapperService().ToCreateOrderInput(model.CreateOrderRequest{
		CustomerID: "c1",
		Items: []model.OrderItemRequest{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
	})

	assert.Equal(t, order.CreateInput{
		CustomerID: "c1",
		Items: []order.ItemInput{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
	}, in)
}

func TestToProductInputs(t *testing.T) {
	m := services.NewMapperService()

	assert.Equal(t, product.CreateInput{Name: "Keyboard", Price: 10, Description: "d"},
		m.ToCreateProductInput(model.CreateProductRequest{Name: "Keyboard", Price: price(10), Description: "d"}))

	assert.Equal(t, product.UpdateInput{ID: "p1", Name: "Keyboard", Price: 12},
		m.ToUpdateProductInput(model.UpdateProductRequest{ID: "p1", Name: "Keyboard", Price: price(12)}))
}
