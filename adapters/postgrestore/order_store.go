package postgrestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/storefront/backend/domain/checkout"
	"github.com/storefront/backend/domain/customer"
	"github.com/storefront/backend/pkg/pagination"
	"gorm.io/gorm"
)

var _ checkout.Store = (*OrderStore)(nil)

type OrderStore struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db}
}

// Create inserts the order together with its items.
func (s *OrderStore) Create(ctx context.Context, o *checkout.Order) error {
	orderSchema := NewOrderSchema(o)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&orderSchema).Error
	})
	if err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}

	return nil
}

// Place inserts the order with its items and saves the customer's reward
// points. Nothing is written when either fails.
func (s *OrderStore) Place(ctx context.Context, o *checkout.Order, c *customer.Customer) error {
	orderSchema := NewOrderSchema(o)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&orderSchema).Error; err != nil {
			return fmt.Errorf("unexpected error: %w", err)
		}

		return updateCustomer(tx, c)
	})
}

// Update rewrites the order row and replaces its items.
func (s *OrderStore) Update(ctx context.Context, o *checkout.Order) error {
	items := newOrderItemSchemas(o)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&OrderSchema{}).
			Where("id = ?", o.ID).
			Updates(map[string]interface{}{
				"customer_id": o.CustomerID,
				"total":       o.Total(),
			})
		if result.Error != nil {
			return fmt.Errorf("unexpected error: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			return checkout.ErrOrderNotFound
		}

		if err := tx.Where("order_id = ?", o.ID).Delete(&OrderItemSchema{}).Error; err != nil {
			return fmt.Errorf("delete order items: %w", err)
		}

		if len(items) == 0 {
			return nil
		}

		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("create order items: %w", err)
		}

		return nil
	})
}

func (s *OrderStore) Find(ctx context.Context, id string) (*checkout.Order, error) {
	var orderSchema OrderSchema

	if err := s.withItems(ctx).Where("id = ?", id).First(&orderSchema).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, checkout.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	return orderSchema.ToDomainOrder(), nil
}

func (s *OrderStore) FindAll(ctx context.Context) ([]checkout.Order, error) {
	var orderSchemas []OrderSchema

	if err := s.withItems(ctx).Order("created_at, id").Find(&orderSchemas).Error; err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	orders := make([]checkout.Order, 0, len(orderSchemas))
	for i := range orderSchemas {
		orders = append(orders, *orderSchemas[i].ToDomainOrder())
	}

	return orders, nil
}

func (s *OrderStore) List(ctx context.Context, pager *pagination.Pager) ([]checkout.Order, error) {
	var (
		orderSchemas []OrderSchema
		total        int64
	)

	if err := s.db.WithContext(ctx).Model(&OrderSchema{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	pager.SetTotal(total)

	offset, limit := pager.Do()
	if err := s.withItems(ctx).Order("created_at, id").Limit(limit).Offset(offset).Find(&orderSchemas).Error; err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	orders := make([]checkout.Order, 0, len(orderSchemas))
	for i := range orderSchemas {
		orders = append(orders, *orderSchemas[i].ToDomainOrder())
	}

	return orders, nil
}

func (s *OrderStore) withItems(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}
