package order

import (
	"encoding/xml"

	"github.com/storefront/backend/domain/checkout"
	"github.com/storefront/backend/pkg/pagination"
)

type ItemInput struct {
	ProductID string
	Quantity  int
}

type CreateInput struct {
	CustomerID string
	Items      []ItemInput
}

type FindInput struct {
	ID string
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

type ChangeCustomerInput struct {
	ID         string
	CustomerID string
}

type ItemOutput struct {
	ID        string  `json:"id" xml:"id"`
	ProductID string  `json:"product_id" xml:"product_id"`
	Name      string  `json:"name" xml:"name"`
	Price     float64 `json:"price" xml:"price"`
	Quantity  int     `json:"quantity" xml:"quantity"`
	Total     float64 `json:"total" xml:"total"`
} // @name usecase.order.ItemOutput

type Output struct {
	XMLName    xml.Name     `json:"-" xml:"order"`
	ID         string       `json:"id" xml:"id"`
	CustomerID string       `json:"customer_id" xml:"customer_id"`
	Items      []ItemOutput `json:"items" xml:"items>item"`
	Total      float64      `json:"total" xml:"total"`
} // @name usecase.order.Output

type ListOutput struct {
	XMLName    xml.Name             `json:"-" xml:"orders"`
	Orders     []Output             `json:"orders" xml:"order"`
	Pagination *pagination.PageInfo `json:"pagination,omitempty" xml:"pagination,omitempty"`
	Total      float64              `json:"total" xml:"total,attr"`
} // @name usecase.order.ListOutput

func newOutput(o *checkout.Order) Output {
	out := Output{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Items:      make([]ItemOutput, 0, len(o.Items)),
		Total:      o.Total(),
	}

	for _, item := range o.Items {
		out.Items = append(out.Items, ItemOutput{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Total:     item.Total(),
		})
	}

	return out
}
