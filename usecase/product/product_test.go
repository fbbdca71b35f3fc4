package product_test

import (
	"context"
	"errors"
	"testing"

	"github.com/storefront/backend/adapters/event"
	"github.com/storefront/backend/adapters/inmemstore"
	"github.com/storefront/backend/adapters/postgrestore"
	"github.com/storefront/backend/domain"
	domainproduct "github.com/storefront/backend/domain/product"
	"github.com/storefront/backend/usecase"
	"github.com/storefront/backend/usecase/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockHandler struct {
	mock.Mock
}

func (m *mockHandler) Handle(e domain.BaseDomainEvent) error {
	args := m.Called(e)
	return args.Error(0)
}

func newStore(t *testing.T) *postgrestore.ProductStore {
	t.Helper()

	store, _ := newStoreWithDB(t)

	return store
}

func newStoreWithDB(t *testing.T) (*postgrestore.ProductStore, *gorm.DB) {
	t.Helper()

	db, err := inmemstore.NewConnection()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return postgrestore.NewProductStore(db.DB), db.DB
}

func TestCreateProduct(t *testing.T) {
	store := newStore(t)
	dispatcher := event.NewEventDispatcher()

	handler := &mockHandler{}
	handler.On("Handle", mock.MatchedBy(func(e domainproduct.ProductCreatedEvent) bool {
		return e.Name == "Product 1" && e.Description == "Product 1 description" && e.Price == 10.0
	})).Return(nil).Once()
	dispatcher.Register(domainproduct.ProductCreatedEventName, handler)

	out, err := product.NewCreateUseCase(store, dispatcher).Execute(context.Background(), product.CreateInput{
		Name:        "Product 1",
		Price:       10.0,
		Description: "Product 1 description",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Product 1", out.Name)
	assert.Equal(t, 10.0, out.Price)
	handler.AssertExpectations(t)

	stored, err := store.Find(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, out.Name, stored.Name)
}

func TestCreateProductInvalid(t *testing.T) {
	uc := product.NewCreateUseCase(newStore(t), event.NewEventDispatcher())

	_, err := uc.Execute(context.Background(), product.CreateInput{Price: 10})
	assert.ErrorIs(t, err, usecase.ErrInvalidInput)
	assert.ErrorIs(t, err, domainproduct.ErrNameRequired)

	_, err = uc.Execute(context.Background(), product.CreateInput{Name: "Product", Price: -1})
	assert.ErrorIs(t, err, domainproduct.ErrNegativePrice)
}

func TestFindAndListProducts(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	create := product.NewCreateUseCase(store, event.NewEventDispatcher())

	one, err := create.Execute(ctx, product.CreateInput{Name: "Product One", Price: 10})
	require.NoError(t, err)
	second, err := create.Execute(ctx, product.CreateInput{Name: "Product Second", Price: 20})
	require.NoError(t, err)

	found, err := product.NewFindUseCase(store).Execute(ctx, product.FindInput{ID: one.ID})
	require.NoError(t, err)
	assert.Equal(t, one, found)

	_, err = product.NewFindUseCase(store).Execute(ctx, product.FindInput{ID: "missing"})
	assert.ErrorIs(t, err, domainproduct.ErrProductNotFound)

	list, err := product.NewListUseCase(store).Execute(ctx, product.ListInput{})
	require.NoError(t, err)
	assert.Equal(t, []product.Output{one, second}, list.Products)
}

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	created, err := product.NewCreateUseCase(store, event.NewEventDispatcher()).Execute(ctx, product.CreateInput{Name: "Product", Price: 10})
	require.NoError(t, err)

	uc := product.NewUpdateUseCase(store)

	out, err := uc.Execute(ctx, product.UpdateInput{ID: created.ID, Name: "Product updated", Price: 15})
	require.NoError(t, err)
	assert.Equal(t, product.Output{ID: created.ID, Name: "Product updated", Price: 15}, out)

	_, err = uc.Execute(ctx, product.UpdateInput{ID: created.ID, Name: "Product updated", Price: -5})
	assert.ErrorIs(t, err, domainproduct.ErrNegativePrice)

	_, err = uc.Execute(ctx, product.UpdateInput{ID: "missing", Name: "x", Price: 1})
	assert.ErrorIs(t, err, domainproduct.ErrProductNotFound)

	stored, err := store.Find(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 15.0, stored.Price)
}

func TestBulkCreateProducts(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	dispatcher := event.NewEventDispatcher()

	handler := &mockHandler{}
	handler.On("Handle", mock.Anything).Return(nil).Twice()
	dispatcher.Register(domainproduct.ProductCreatedEventName, handler)

	out, err := product.NewBulkCreateUseCase(store, dispatcher).Execute(ctx, product.BulkCreateInput{
		Products: []product.CreateInput{
			{Name: "Keyboard", Price: 49.9, Description: "Mechanical"},
			{Name: "Mouse", Price: 19.5},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Products, 2)
	assert.Equal(t, "Keyboard", out.Products[0].Name)
	assert.Equal(t, "Mouse", out.Products[1].Name)
	handler.AssertExpectations(t)

	products, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestBulkCreateProductsStoresNothingOnFailure(t *testing.T) {
	ctx := context.Background()
	store, db := newStoreWithDB(t)
	dispatcher := event.NewEventDispatcher()

	handler := &mockHandler{}
	dispatcher.Register(domainproduct.ProductCreatedEventName, handler)

	errDown := errors.New("products unavailable")
	err := db.Callback().Create().Before("gorm:create").Register("test:fail_products", func(tx *gorm.DB) {
		if tx.Statement.Table == "products" {
			_ = tx.AddError(errDown)
		}
	})
	require.NoError(t, err)

	_, err = product.NewBulkCreateUseCase(store, dispatcher).Execute(ctx, product.BulkCreateInput{
		Products: []product.CreateInput{
			{Name: "Keyboard", Price: 49.9},
			{Name: "Mouse", Price: 19.5},
		},
	})
	assert.ErrorIs(t, err, errDown)
	handler.AssertNotCalled(t, "Handle", mock.Anything)

	products, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestBulkCreateProductsRejectsInvalidRow(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	_, err := product.NewBulkCreateUseCase(store, event.NewEventDispatcher()).Execute(ctx, product.BulkCreateInput{
		Products: []product.CreateInput{
			{Name: "Keyboard", Price: 49.9},
			{Name: "", Price: 19.5},
		},
	})
	assert.ErrorIs(t, err, usecase.ErrInvalidInput)
	assert.ErrorContains(t, err, "row 2")

	products, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestListProductsPaged(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	create := product.NewCreateUseCase(store, event.NewEventDispatcher())

	var created []product.Output
	for _, name := range []string{"A", "B", "C"} {
		out, err := create.Execute(ctx, product.CreateInput{Name: name, Price: 1})
		require.NoError(t, err)
		created = append(created, out)
	}

	list, err := product.NewListUseCase(store).Execute(ctx, product.ListInput{Page: 2, Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, []product.Output{created[2]}, list.Products)
	require.NotNil(t, list.Pagination)
	assert.Equal(t, int64(3), list.Pagination.TotalItems)
	assert.Equal(t, 2, list.Pagination.TotalPages)
	assert.Equal(t, 2, list.Pagination.CurrentPage)
}
