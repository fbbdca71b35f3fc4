package main

import (
	"flag"
	"log"

	"github.com/storefront/backend/adapters/postgrestore"
	"github.com/storefront/backend/pkg/config"
	"github.com/storefront/backend/pkg/logger"
)

func main() {
	var (
		down   = flag.Bool("down", false, "revert the applied migrations")
		status = flag.Bool("status", false, "list pending migrations and exit")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v\n", err)
	}

	applog, err := logger.NewAppLogger(cfg.AppEnv)
	if err != nil {
		log.Fatalf("cannot init logger: %v\n", err)
	}
	defer logger.Sync(applog)

	db, err := postgrestore.OpenMigrationDB(cfg.DSN())
	if err != nil {
		applog.Fatalf("cannot connect to db: %v", err)
	}
	defer db.Close()

	if *status {
		pending, err := postgrestore.PendingMigrations(db)
		if err != nil {
			applog.Fatal(err)
		}

		applog.Infow("pending migrations", "count", len(pending), "ids", pending)
		return
	}

	n, err := postgrestore.Migrate(db, !*down)
	if err != nil {
		applog.Fatal(err)
	}

	applog.Infow("migrations applied", "count", n, "down", *down)
}
