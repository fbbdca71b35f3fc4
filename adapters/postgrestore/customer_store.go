package postgrestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/storefront/backend/domain/customer"
	"github.com/storefront/backend/pkg/pagination"
	"gorm.io/gorm"
)

var _ customer.Store = (*CustomerStore)(nil)

type CustomerStore struct {
	db *gorm.DB
}

func NewCustomerStore(db *gorm.DB) *CustomerStore {
	return &CustomerStore{db: db}
}

func (s *CustomerStore) Create(ctx context.Context, c *customer.Customer) error {
	customerSchema := NewCustomerSchema(c)

	if err := s.db.WithContext(ctx).Create(&customerSchema).Error; err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}

	return nil
}

func (s *CustomerStore) Update(ctx context.Context, c *customer.Customer) error {
	return updateCustomer(s.db.WithContext(ctx), c)
}

func updateCustomer(tx *gorm.DB, c *customer.Customer) error {
	customerSchema := NewCustomerSchema(c)

	result := tx.Model(&CustomerSchema{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"name":          customerSchema.Name,
			"street":        customerSchema.Street,
			"number":        customerSchema.Number,
			"zipcode":       customerSchema.Zipcode,
			"city":          customerSchema.City,
			"active":        customerSchema.Active,
			"reward_points": customerSchema.RewardPoints,
		})
	if result.Error != nil {
		return fmt.Errorf("unexpected error: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return customer.ErrCustomerNotFound
	}

	return nil
}

func (s *CustomerStore) Find(ctx context.Context, id string) (*customer.Customer, error) {
	var customerSchema CustomerSchema

	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&customerSchema).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrCustomerNotFound
		}

		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	return customerSchema.ToDomainCustomer(), nil
}

func (s *CustomerStore) FindAll(ctx context.Context) ([]customer.Customer, error) {
	var customerSchemas []CustomerSchema

	if err := s.db.WithContext(ctx).Order("created_at, id").Find(&customerSchemas).Error; err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	customers := make([]customer.Customer, 0, len(customerSchemas))
	for _, customerSchema := range customerSchemas {
		customers = append(customers, *customerSchema.ToDomainCustomer())
	}

	return customers, nil
}

func (s *CustomerStore) List(ctx context.Context, pager *pagination.Pager) ([]customer.Customer, error) {
	var (
		customerSchemas []CustomerSchema
		total           int64
	)

	if err := s.db.WithContext(ctx).Model(&CustomerSchema{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	pager.SetTotal(total)

	offset, limit := pager.Do()
	if err := s.db.WithContext(ctx).Order("created_at, id").Limit(limit).Offset(offset).Find(&customerSchemas).Error; err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	customers := make([]customer.Customer, 0, len(customerSchemas))
	for i := range customerSchemas {
		customers = append(customers, *customerSchemas[i].ToDomainCustomer())
	}

	return customers, nil
}
