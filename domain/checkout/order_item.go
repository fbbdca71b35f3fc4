package checkout

import "errors"

var (
	ErrItemIDRequired      = errors.New("item id is required")
	ErrItemProductRequired = errors.New("item product id is required")
	ErrInvalidQuantity     = errors.New("quantity must be greater than zero")
	ErrInvalidPrice        = errors.New("price must be greater than or equal to zero")
)

type OrderItem struct {
	ID        string  `json:"id" xml:"id"`
	Name      string  `json:"name" xml:"name"`
	Price     float64 `json:"price" xml:"price"`
	ProductID string  `json:"product_id" xml:"product_id"`
	Quantity  int     `json:"quantity" xml:"quantity"`
} // @name checkout.OrderItem

func NewOrderItem(id, name string, price float64, productID string, quantity int) (OrderItem, error) {
	item := OrderItem{
		ID:        id,
		Name:      name,
		Price:     price,
		ProductID: productID,
		Quantity:  quantity,
	}

	if err := item.Validate(); err != nil {
		return OrderItem{}, err
	}

	return item, nil
}

func (i OrderItem) Validate() error {
	switch {
	case i.ID == "":
		return ErrItemIDRequired
	case i.ProductID == "":
		return ErrItemProductRequired
	case i.Quantity <= 0:
		return ErrInvalidQuantity
	case i.Price < 0:
		return ErrInvalidPrice
	}

	return nil
}

// Total is the unit price times the quantity.
func (i OrderItem) Total() float64 {
	return i.Price * float64(i.Quantity)
}
