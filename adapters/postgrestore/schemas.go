package postgrestore

import (
	"math"
	"time"

	"github.com/storefront/backend/domain/checkout"
	"github.com/storefront/backend/domain/customer"
	"github.com/storefront/backend/domain/product"
)

// Schemas lists every table model, in dependency order.
func Schemas() []interface{} {
	return []interface{}{
		&CustomerSchema{},
		&ProductSchema{},
		&OrderSchema{},
		&OrderItemSchema{},
	}
}

type CustomerSchema struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name;not null"`
	Street       string    `gorm:"column:street"`
	Number       int       `gorm:"column:number"`
	Zipcode      string    `gorm:"column:zipcode"`
	City         string    `gorm:"column:city"`
	Active       bool      `gorm:"column:active"`
	RewardPoints int       `gorm:"column:reward_points"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (CustomerSchema) TableName() string {
	return "customers"
}

func NewCustomerSchema(c *customer.Customer) CustomerSchema {
	s := CustomerSchema{
		ID:           c.ID,
		Name:         c.Name,
		Active:       c.Active,
		RewardPoints: c.RewardPoints,
	}

	if c.Address != nil {
		s.Street = c.Address.Street
		s.Number = c.Address.Number
		s.Zipcode = c.Address.Zip
		s.City = c.Address.City
	}

	return s
}

func (s *CustomerSchema) ToDomainCustomer() *customer.Customer {
	if s == nil {
		return nil
	}

	c := &customer.Customer{
		ID:           s.ID,
		Name:         s.Name,
		Active:       s.Active,
		RewardPoints: s.RewardPoints,
	}

	if s.Street != "" {
		c.Address = &customer.Address{
			Street: s.Street,
			Number: s.Number,
			Zip:    s.Zipcode,
			City:   s.City,
		}
	}

	return c
}

type ProductSchema struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Price     float64   `gorm:"column:price;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (ProductSchema) TableName() string {
	return "products"
}

func (s *ProductSchema) ToDomainProduct() *product.Product {
	if s == nil {
		return nil
	}

	return &product.Product{
		ID:    s.ID,
		Name:  s.Name,
		Price: s.Price,
	}
}

type OrderSchema struct {
	ID         string    `gorm:"column:id;primaryKey"`
	CustomerID string    `gorm:"column:customer_id;not null"`
	Total      float64   `gorm:"column:total;not null"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`

	Items []OrderItemSchema `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

func (OrderSchema) TableName() string {
	return "orders"
}

// OrderItemSchema stores the line total in Price, the unit price is
// Price / Quantity.
type OrderItemSchema struct {
	ID        string  `gorm:"column:id;primaryKey"`
	OrderID   string  `gorm:"column:order_id;not null"`
	ProductID string  `gorm:"column:product_id;not null"`
	Name      string  `gorm:"column:name"`
	Price     float64 `gorm:"column:price"`
	Quantity  int     `gorm:"column:quantity"`
	Position  int     `gorm:"column:position"`
}

func (OrderItemSchema) TableName() string {
	return "order_items"
}

func NewOrderSchema(o *checkout.Order) OrderSchema {
	return OrderSchema{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Total:      o.Total(),
		Items:      newOrderItemSchemas(o),
	}
}

func newOrderItemSchemas(o *checkout.Order) []OrderItemSchema {
	items := make([]OrderItemSchema, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemSchema{
			ID:        item.ID,
			OrderID:   o.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Total(),
			Quantity:  item.Quantity,
			Position:  i,
		}
	}

	return items
}

func (s *OrderItemSchema) ToDomainOrderItem() checkout.OrderItem {
	var unitPrice float64
	if s.Quantity > 0 {
		// prices are in cents, drop the drift of the division
		unitPrice = math.Round(s.Price/float64(s.Quantity)*100) / 100
	}

	return checkout.OrderItem{
		ID:        s.ID,
		Name:      s.Name,
		Price:     unitPrice,
		ProductID: s.ProductID,
		Quantity:  s.Quantity,
	}
}

func (s *OrderSchema) ToDomainOrder() *checkout.Order {
	if s == nil {
		return nil
	}

	items := make([]checkout.OrderItem, len(s.Items))
	for i := range s.Items {
		items[i] = s.Items[i].ToDomainOrderItem()
	}

	return &checkout.Order{
		ID:         s.ID,
		CustomerID: s.CustomerID,
		Items:      items,
	}
}
