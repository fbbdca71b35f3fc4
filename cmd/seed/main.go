package main

import (
	"context"
	"log"

	"github.com/storefront/backend/adapters/event"
	"github.com/storefront/backend/adapters/event/listeners"
	"github.com/storefront/backend/adapters/inmemstore"
	"github.com/storefront/backend/adapters/postgrestore"
	domaincustomer "github.com/storefront/backend/domain/customer"
	"github.com/storefront/backend/pkg/config"
	"github.com/storefront/backend/pkg/logger"
	"github.com/storefront/backend/pkg/sentry"
	"github.com/storefront/backend/usecase/customer"
	"github.com/storefront/backend/usecase/product"

	sentrygo "github.com/getsentry/sentry-go"
	"gorm.io/gorm"
)

var products = []product.CreateInput{
	{Name: "Mechanical keyboard", Price: 89.9, Description: "Hot-swappable switches"},
	{Name: "Wireless mouse", Price: 29.5, Description: "Two buttons and a wheel"},
	{Name: "USB-C hub", Price: 45, Description: "Seven ports"},
}

var customers = []customer.CreateInput{
	{Name: "John", Address: customer.AddressDTO{Street: "Street", City: "São Paulo", Number: 123, Zip: "13330-250"}},
	{Name: "Ashley", Address: customer.AddressDTO{Street: "Street 2", City: "San Diego", Number: 1, Zip: "052330-250"}},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v\n", err)
	}

	applog, err := logger.NewAppLogger(cfg.AppEnv)
	if err != nil {
		log.Fatalf("cannot init logger: %v\n", err)
	}
	defer logger.Sync(applog)

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		applog.Fatalf("cannot init sentry: %v", err)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	var db *gorm.DB
	if cfg.DB.Driver == "sqlite" {
		mem, err := inmemstore.NewConnection()
		if err != nil {
			applog.Fatalf("cannot open sqlite: %v", err)
		}
		db = mem.DB
	} else {
		db, err = postgrestore.NewConnection(postgrestore.ParseFromConfig(cfg), applog)
		if err != nil {
			applog.Fatalf("cannot connect to db: %v", err)
		}
	}

	// seeding only logs the events, nothing is mailed or relayed
	dispatcher := event.NewEventDispatcher()
	dispatcher.Register(domaincustomer.CustomerCreatedEventName, listeners.NewLogWhenCustomerIsCreatedHandler(applog))

	ctx := context.Background()

	createProduct := product.NewCreateUseCase(postgrestore.NewProductStore(db), dispatcher)
	for _, in := range products {
		out, err := createProduct.Execute(ctx, in)
		if err != nil {
			applog.Fatalf("cannot create product %s: %v", in.Name, err)
		}

		applog.Infow("product created", "id", out.ID, "name", out.Name, "price", out.Price)
	}

	createCustomer := customer.NewCreateUseCase(postgrestore.NewCustomerStore(db), dispatcher)
	for _, in := range customers {
		if _, err := createCustomer.Execute(ctx, in); err != nil {
			applog.Fatalf("cannot create customer %s: %v", in.Name, err)
		}
	}

	applog.Info("seed data created successfully")
}
