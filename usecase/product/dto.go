package product

import (
	"encoding/xml"

	"github.com/storefront/backend/domain/product"
	"github.com/storefront/backend/pkg/pagination"
)

type CreateInput struct {
	Name        string
	Price       float64
	Description string
}

type FindInput struct {
	ID string
}

type UpdateInput struct {
	ID    string
	Name  string
	Price float64
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

type BulkCreateInput struct {
	Products []CreateInput
}

type Output struct {
	XMLName xml.Name `json:"-" xml:"product"`
	ID      string   `json:"id" xml:"id"`
	Name    string   `json:"name" xml:"name"`
	Price   float64  `json:"price" xml:"price"`
} // @name usecase.product.Output

type ListOutput struct {
	XMLName    xml.Name             `json:"-" xml:"products"`
	Products   []Output             `json:"products" xml:"product"`
	Pagination *pagination.PageInfo `json:"pagination,omitempty" xml:"pagination,omitempty"`
} // @name usecase.product.ListOutput

func newOutput(p *product.Product) Output {
	return Output{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
	}
}
