package postgrestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/storefront/backend/domain/product"
	"github.com/storefront/backend/pkg/pagination"
	"gorm.io/gorm"
)

var _ product.Store = (*ProductStore)(nil)

type ProductStore struct {
	db *gorm.DB
}

func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{db: db}
}

func (s *ProductStore) Create(ctx context.Context, p *product.Product) error {
	productSchema := ProductSchema{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
	}

	if err := s.db.WithContext(ctx).Create(&productSchema).Error; err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}

	return nil
}

func (s *ProductStore) CreateMany(ctx context.Context, products []*product.Product) error {
	if len(products) == 0 {
		return nil
	}

	// one batch shares a clock reading, stagger it so lists keep input order
	now := time.Now()

	productSchemas := make([]ProductSchema, len(products))
	for i, p := range products {
		productSchemas[i] = ProductSchema{
			ID:        p.ID,
			Name:      p.Name,
			Price:     p.Price,
			CreatedAt: now.Add(time.Duration(i) * time.Microsecond),
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&productSchemas).Error
	})
	if err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}

	return nil
}

func (s *ProductStore) Update(ctx context.Context, p *product.Product) error {
	result := s.db.WithContext(ctx).Model(&ProductSchema{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":  p.Name,
			"price": p.Price,
		})
	if result.Error != nil {
		return fmt.Errorf("unexpected error: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return product.ErrProductNotFound
	}

	return nil
}

func (s *ProductStore) Find(ctx context.Context, id string) (*product.Product, error) {
	var productSchema ProductSchema

	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&productSchema).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, product.ErrProductNotFound
		}

		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	return productSchema.ToDomainProduct(), nil
}

func (s *ProductStore) FindAll(ctx context.Context) ([]product.Product, error) {
	var productSchemas []ProductSchema

	if err := s.db.WithContext(ctx).Order("created_at, id").Find(&productSchemas).Error; err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	products := make([]product.Product, 0, len(productSchemas))
	for _, productSchema := range productSchemas {
		products = append(products, *productSchema.ToDomainProduct())
	}

	return products, nil
}

func (s *ProductStore) List(ctx context.Context, pager *pagination.Pager) ([]product.Product, error) {
	var (
		productSchemas []ProductSchema
		total          int64
	)

	if err := s.db.WithContext(ctx).Model(&ProductSchema{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	pager.SetTotal(total)

	offset, limit := pager.Do()
	if err := s.db.WithContext(ctx).Order("created_at, id").Limit(limit).Offset(offset).Find(&productSchemas).Error; err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	products := make([]product.Product, 0, len(productSchemas))
	for i := range productSchemas {
		products = append(products, *productSchemas[i].ToDomainProduct())
	}

	return products, nil
}
