package customer

import (
	"encoding/xml"

	"github.com/storefront/backend/domain/customer"
	"github.com/storefront/backend/pkg/pagination"
)

type AddressDTO struct {
	Street string `json:"street" xml:"street"`
	City   string `json:"city" xml:"city"`
	Number int    `json:"number" xml:"number"`
	Zip    string `json:"zip" xml:"zip"`
} // @name usecase.customer.Address

func (a AddressDTO) toDomain() (customer.Address, error) {
	return customer.NewAddress(a.Street, a.Number, a.Zip, a.City)
}

func newAddressDTO(a *customer.Address) AddressDTO {
	if a == nil {
		return AddressDTO{}
	}

	return AddressDTO{
		Street: a.Street,
		City:   a.City,
		Number: a.Number,
		Zip:    a.Zip,
	}
}

type CreateInput struct {
	Name    string
	Address AddressDTO
}

type FindInput struct {
	ID string
}

type UpdateInput struct {
	ID      string
	Name    string
	Address AddressDTO
}

// ListInput pages the result when Page or Limit is set, otherwise every
// record is returned.
type ListInput struct {
	Page  int
	Limit int
}

func (in ListInput) paged() bool {
	return in.Page > 0 || in.Limit > 0
}

type Output struct {
	XMLName xml.Name   `json:"-" xml:"customer"`
	ID      string     `json:"id" xml:"id"`
	Name    string     `json:"name" xml:"name"`
	Address AddressDTO `json:"address" xml:"address"`
} // @name usecase.customer.Output

type ListOutput struct {
	XMLName    xml.Name             `json:"-" xml:"customers"`
	Customers  []Output             `json:"customers" xml:"customer"`
	Pagination *pagination.PageInfo `json:"pagination,omitempty" xml:"pagination,omitempty"`
} // @name usecase.customer.ListOutput

func newOutput(c *customer.Customer) Output {
	return Output{
		ID:      c.ID,
		Name:    c.Name,
		Address: newAddressDTO(c.Address),
	}
}
