package inmemstore_test

import (
	"testing"

	"github.com/storefront/backend/adapters/inmemstore"

	"github.com/stretchr/testify/assert"
)

func TestOpenConnection(t *testing.T) {
	t.Run("it should open new connection", func(t *testing.T) {
		db, err := inmemstore.NewConnection()

		assert.NoError(t, err)
		assert.NotNil(t, db)
		assert.NoError(t, db.Close())
	})

	t.Run("it should create every table", func(t *testing.T) {
		db, err := inmemstore.NewConnection()
		assert.NoError(t, err)
		defer db.Close()

		for _, table := range []string{"customers", "products", "orders", "order_items"} {
			assert.True(t, db.Migrator().HasTable(table), table)
		}
	})

	t.Run("connections are isolated", func(t *testing.T) {
		a, err := inmemstore.NewConnection()
		assert.NoError(t, err)
		defer a.Close()

		b, err := inmemstore.NewConnection()
		assert.NoError(t, err)
		defer b.Close()

		assert.NoError(t, a.Exec(`INSERT INTO products (id, name, price) VALUES ('1', 'Product 1', 10)`).Error)

		var count int64
		assert.NoError(t, b.Table("products").Count(&count).Error)
		assert.Zero(t, count)
	})
}
