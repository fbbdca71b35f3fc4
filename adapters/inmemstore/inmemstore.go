package inmemstore

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/storefront/backend/adapters/postgrestore"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is an in-memory SQLite database holding the store schemas. Every
// connection gets its own database.
type DB struct {
	*gorm.DB
}

func NewConnection() (*DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}

	// a single connection keeps the memory database alive and serializes
	// access
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(postgrestore.Schemas()...); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return &DB{DB: db}, nil
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
