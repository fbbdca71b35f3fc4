package postgrestore_test

import (
	"context"
	"testing"

	"github.com/storefront/backend/adapters/inmemstore"
	"github.com/storefront/backend/adapters/postgrestore"
	"github.com/storefront/backend/domain/checkout"
	"github.com/storefront/backend/domain/customer"
	"github.com/storefront/backend/domain/product"
	"github.com/storefront/backend/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) *inmemstore.DB {
	t.Helper()

	db, err := inmemstore.NewConnection()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func newCustomer(t *testing.T, id, name string) *customer.Customer {
	t.Helper()

	c, err := customer.New(id, name)
	require.NoError(t, err)
	require.NoError(t, c.ChangeAddress(customer.Address{Street: "Street 1", Number: 1, Zip: "Zipcode 1", City: "City 1"}))

	return c
}

func TestCustomerStore(t *testing.T) {
	ctx := context.Background()
	store := postgrestore.NewCustomerStore(newDB(t).DB)

	t.Run("it should create and find a customer", func(t *testing.T) {
		c := newCustomer(t, "123", "Customer 1")
		require.NoError(t, store.Create(ctx, c))

		got, err := store.Find(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, c, got)
	})

	t.Run("it should update a customer", func(t *testing.T) {
		c, err := store.Find(ctx, "123")
		require.NoError(t, err)

		require.NoError(t, c.ChangeName("Customer 2"))
		require.NoError(t, c.ChangeAddress(customer.Address{Street: "Street 2", Number: 2, Zip: "Zipcode 2", City: "City 2"}))
		require.NoError(t, c.Activate())
		require.NoError(t, c.AddRewardPoints(10))
		require.NoError(t, store.Update(ctx, c))

		got, err := store.Find(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, c, got)
	})

	t.Run("it should keep a customer without address", func(t *testing.T) {
		c, err := customer.New("no-address", "Nomad")
		require.NoError(t, err)
		require.NoError(t, store.Create(ctx, c))

		got, err := store.Find(ctx, "no-address")
		require.NoError(t, err)
		assert.Nil(t, got.Address)
	})

	t.Run("it should list customers in creation order", func(t *testing.T) {
		customers, err := store.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, customers, 2)
		assert.Equal(t, "123", customers[0].ID)
		assert.Equal(t, "no-address", customers[1].ID)
	})

	t.Run("it should fail when customer is not found", func(t *testing.T) {
		_, err := store.Find(ctx, "456ABC")
		assert.ErrorIs(t, err, customer.ErrCustomerNotFound)

		ghost := newCustomer(t, "ghost", "Ghost")
		assert.ErrorIs(t, store.Update(ctx, ghost), customer.ErrCustomerNotFound)
	})
}

func TestProductStore(t *testing.T) {
	ctx := context.Background()
	store := postgrestore.NewProductStore(newDB(t).DB)

	p1, err := product.New("1", "Product 1", 100)
	require.NoError(t, err)
	p2, err := product.New("2", "Product 2", 200)
	require.NoError(t, err)

	require.NoError(t, store.Create(ctx, p1))
	require.NoError(t, store.Create(ctx, p2))

	got, err := store.Find(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, p1, got)

	require.NoError(t, p1.ChangeName("Product 1 updated"))
	require.NoError(t, p1.ChangePrice(150))
	require.NoError(t, store.Update(ctx, p1))

	got, err = store.Find(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Product 1 updated", got.Name)
	assert.Equal(t, 150.0, got.Price)

	products, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []product.Product{*p1, *p2}, products)

	_, err = store.Find(ctx, "missing")
	assert.ErrorIs(t, err, product.ErrProductNotFound)

	ghost, _ := product.New("ghost", "Ghost", 1)
	assert.ErrorIs(t, store.Update(ctx, ghost), product.ErrProductNotFound)
}

type orderFixture struct {
	db         *inmemstore.DB
	orderStore *postgrestore.OrderStore
	products   []*product.Product
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	ctx := context.Background()
	db := newDB(t)

	customerStore := postgrestore.NewCustomerStore(db.DB)
	require.NoError(t, customerStore.Create(ctx, newCustomer(t, "123", "Customer 1")))
	require.NoError(t, customerStore.Create(ctx, newCustomer(t, "2", "Customer 2")))

	productStore := postgrestore.NewProductStore(db.DB)
	p1, _ := product.New("1", "Product 1", 55)
	p2, _ := product.New("2", "Product 2", 35)
	require.NoError(t, productStore.Create(ctx, p1))
	require.NoError(t, productStore.Create(ctx, p2))

	return &orderFixture{
		db:         db,
		orderStore: postgrestore.NewOrderStore(db.DB),
		products:   []*product.Product{p1, p2},
	}
}

func (f *orderFixture) item(t *testing.T, id string, p *product.Product, quantity int) checkout.OrderItem {
	t.Helper()

	item, err := checkout.NewOrderItem(id, p.Name, p.Price, p.ID, quantity)
	require.NoError(t, err)

	return item
}

func TestOrderStoreCreate(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)

	item := f.item(t, "1", f.products[0], 2)
	order, err := checkout.NewOrder("123", "123", []checkout.OrderItem{item})
	require.NoError(t, err)

	require.NoError(t, f.orderStore.Create(ctx, order))

	var orderSchema postgrestore.OrderSchema
	require.NoError(t, f.db.Preload("Items").Where("id = ?", "123").First(&orderSchema).Error)

	assert.Equal(t, "123", orderSchema.CustomerID)
	assert.Equal(t, order.Total(), orderSchema.Total)
	require.Len(t, orderSchema.Items, 1)
	assert.Equal(t, postgrestore.OrderItemSchema{
		ID:        "1",
		OrderID:   "123",
		ProductID: "1",
		Name:      "Product 1",
		Price:     110,
		Quantity:  2,
		Position:  0,
	}, orderSchema.Items[0])
}

func TestOrderStoreUpdate(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)

	items := []checkout.OrderItem{
		f.item(t, "1", f.products[0], 10),
		f.item(t, "2", f.products[1], 4),
	}
	order, err := checkout.NewOrder("456", "123", items)
	require.NoError(t, err)
	require.NoError(t, f.orderStore.Create(ctx, order))

	require.NoError(t, order.ChangeCustomer("2"))
	require.NoError(t, f.orderStore.Update(ctx, order))

	got, err := f.orderStore.Find(ctx, "456")
	require.NoError(t, err)
	assert.Equal(t, "2", got.CustomerID)
	assert.Equal(t, items, got.Items)
	assert.Equal(t, 690.0, got.Total())

	missing, _ := checkout.NewOrder("missing", "2", items)
	assert.ErrorIs(t, f.orderStore.Update(ctx, missing), checkout.ErrOrderNotFound)
}

func TestOrderStoreUpdateReplacesItems(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)

	order, err := checkout.NewOrder("o1", "123", []checkout.OrderItem{f.item(t, "1", f.products[0], 1)})
	require.NoError(t, err)
	require.NoError(t, f.orderStore.Create(ctx, order))

	order.Items = []checkout.OrderItem{f.item(t, "2", f.products[1], 3)}
	require.NoError(t, f.orderStore.Update(ctx, order))

	got, err := f.orderStore.Find(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, order, got)

	var count int64
	require.NoError(t, f.db.Model(&postgrestore.OrderItemSchema{}).Where("order_id = ?", "o1").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestOrderStoreFind(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)

	item := f.item(t, "1", f.products[0], 2)
	order, err := checkout.NewOrder("123", "123", []checkout.OrderItem{item})
	require.NoError(t, err)
	require.NoError(t, f.orderStore.Create(ctx, order))

	got, err := f.orderStore.Find(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, 110.0, got.Total())
	assert.Equal(t, []checkout.OrderItem{item}, got.Items)
	assert.Equal(t, order, got)
}

func TestOrderStoreFindNotFound(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.orderStore.Find(context.Background(), "456ABC")
	assert.ErrorIs(t, err, checkout.ErrOrderNotFound)
	assert.EqualError(t, err, "order not found")
}

func TestOrderStoreFindAll(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)

	order, err := checkout.NewOrder("456", "123", []checkout.OrderItem{f.item(t, "1", f.products[0], 10)})
	require.NoError(t, err)
	order2, err := checkout.NewOrder("56", "2", []checkout.OrderItem{f.item(t, "2", f.products[1], 4)})
	require.NoError(t, err)

	require.NoError(t, f.orderStore.Create(ctx, order))
	require.NoError(t, f.orderStore.Create(ctx, order2))

	orders, err := f.orderStore.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []checkout.Order{*order, *order2}, orders)
}

func TestCustomerStoreList(t *testing.T) {
	ctx := context.Background()
	store := postgrestore.NewCustomerStore(newDB(t).DB)

	for _, id := range []string{"1", "2", "3", "4", "5"} {
		require.NoError(t, store.Create(ctx, newCustomer(t, id, "Customer "+id)))
	}

	pager := pagination.NewPager(2, 2)

	customers, err := store.List(ctx, pager)
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "3", customers[0].ID)
	assert.Equal(t, "4", customers[1].ID)
	assert.Equal(t, pagination.PageInfo{TotalItems: 5, TotalPages: 3, CurrentPage: 2, Limit: 2}, pager.PageInfo())
}

func TestOrderStoreList(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)

	for _, id := range []string{"o1", "o2", "o3"} {
		order, err := checkout.NewOrder(id, "123", []checkout.OrderItem{f.item(t, id+"-item", f.products[0], 1)})
		require.NoError(t, err)
		require.NoError(t, f.orderStore.Create(ctx, order))
	}

	pager := pagination.NewPager(1, 2)

	orders, err := f.orderStore.List(ctx, pager)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "o1", orders[0].ID)
	assert.Len(t, orders[0].Items, 1)
	assert.Equal(t, int64(3), pager.PageInfo().TotalItems)
}

func TestOrderStorePlace(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	customerStore := postgrestore.NewCustomerStore(f.db.DB)

	c, err := customerStore.Find(ctx, "123")
	require.NoError(t, err)

	order, err := checkout.PlaceOrder(c, []checkout.OrderItem{f.item(t, "1", f.products[0], 2)})
	require.NoError(t, err)
	require.NoError(t, f.orderStore.Place(ctx, order, c))

	stored, err := f.orderStore.Find(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 110.0, stored.Total())

	c, err = customerStore.Find(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, 55, c.RewardPoints)
}

func TestOrderStorePlaceRollsBack(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)

	ghost := newCustomer(t, "ghost", "Ghost")
	order, err := checkout.PlaceOrder(ghost, []checkout.OrderItem{f.item(t, "1", f.products[0], 2)})
	require.NoError(t, err)

	err = f.orderStore.Place(ctx, order, ghost)
	assert.ErrorIs(t, err, customer.ErrCustomerNotFound)

	orders, err := f.orderStore.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	var items int64
	require.NoError(t, f.db.Model(&postgrestore.OrderItemSchema{}).Count(&items).Error)
	assert.Zero(t, items)
}

func TestProductStoreCreateMany(t *testing.T) {
	ctx := context.Background()
	store := postgrestore.NewProductStore(newDB(t).DB)

	p1, _ := product.New("1", "Product 1", 100)
	p2, _ := product.New("2", "Product 2", 200)
	p3, _ := product.New("3", "Product 3", 300)

	require.NoError(t, store.CreateMany(ctx, nil))
	require.NoError(t, store.CreateMany(ctx, []*product.Product{p2, p1}))

	products, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []product.Product{*p2, *p1}, products)

	// "1" already exists, so "3" must not be stored either
	assert.Error(t, store.CreateMany(ctx, []*product.Product{p3, p1}))

	_, err = store.Find(ctx, "3")
	assert.ErrorIs(t, err, product.ErrProductNotFound)
}

func TestOrderItemUnitPriceSurvivesLineTotal(t *testing.T) {
	tests := []struct {
		price    float64
		quantity int
	}{
		{89.9, 3},
		{19.99, 7},
		{0.1, 3},
		{55, 2},
	}

	for _, tt := range tests {
		schema := postgrestore.OrderItemSchema{Price: tt.price * float64(tt.quantity), Quantity: tt.quantity}
		assert.Equal(t, tt.price, schema.ToDomainOrderItem().Price, "price %v x %d", tt.price, tt.quantity)
	}
}

func TestOrderStoreFindKeepsCentPrices(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)

	keyboard, err := product.New("3", "Keyboard", 89.9)
	require.NoError(t, err)

	item := f.item(t, "1", keyboard, 3)
	order, err := checkout.NewOrder("o1", "123", []checkout.OrderItem{item})
	require.NoError(t, err)
	require.NoError(t, f.orderStore.Create(ctx, order))

	got, err := f.orderStore.Find(ctx, "o1")
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 89.9, got.Items[0].Price)
	assert.Equal(t, item.Total(), got.Items[0].Total())
}
