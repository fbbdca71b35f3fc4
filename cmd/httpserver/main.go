package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/storefront/backend/adapters/event"
	"github.com/storefront/backend/adapters/event/listeners"
	"github.com/storefront/backend/adapters/httpserver"
	"github.com/storefront/backend/adapters/inmemstore"
	"github.com/storefront/backend/adapters/natsstore"
	"github.com/storefront/backend/adapters/notificationhub"
	"github.com/storefront/backend/adapters/postgrestore"
	"github.com/storefront/backend/adapters/redisstore"
	"github.com/storefront/backend/adapters/services"
	"github.com/storefront/backend/domain/pubsub"
	"github.com/storefront/backend/pkg/config"
	"github.com/storefront/backend/pkg/logger"
	"github.com/storefront/backend/pkg/sentry"

	sentrygo "github.com/getsentry/sentry-go"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const shutdownTimeout = 20 * time.Second

// @title Storefront APIs
// @version 1.0

// @BasePath /api
// @schemes http https

// @description Products, customers and orders.
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

	if _, err := maxprocs.Set(maxprocs.Logger(applog.Infof)); err != nil {
		applog.Warnw("cannot set GOMAXPROCS", zap.Error(err))
	}

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		applog.Fatalf("cannot init sentry: %v", err)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	db, err := openDB(cfg, applog)
	if err != nil {
		applog.Fatalf("cannot connect to db: %v", err)
	}

	broker, closeBroker, err := openBroker(context.Background(), cfg, applog)
	if err != nil {
		applog.Fatalf("cannot connect to broker: %v", err)
	}
	defer closeBroker()

	notifier, err := notificationhub.NewNotificationHub(cfg)
	if err != nil {
		applog.Fatalf("cannot init notification hub: %v", err)
	}

	// event bus
	dispatcher := event.NewEventDispatcher()
	listeners.RegisterAll(dispatcher, listeners.Dependencies{
		Logger:        applog,
		Notifier:      notifier,
		Recipient:     cfg.NotificationHub.Recipient,
		PubSub:        broker,
		ChannelPrefix: cfg.Broker.Channel,
	})

	server, err := httpserver.New(cfg, applog, func(s *httpserver.Server) error {
		s.EventDispatcher = dispatcher

		// store adapters
		s.CustomerStore = postgrestore.NewCustomerStore(db)
		s.ProductStore = postgrestore.NewProductStore(db)
		s.OrderStore = postgrestore.NewOrderStore(db)

		// internal services
		s.CSVService = services.NewCSVService()
		s.MapperService = services.NewMapperService()

		return nil
	})
	if err != nil {
		applog.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		applog.Infow("server started", "addr", httpServer.Addr, "broker", cfg.Broker.Kind, "db", cfg.DB.Driver)

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		applog.Info("shutdown started")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		applog.Errorw("server stopped", zap.Error(err))
		return
	}

	applog.Info("shutdown complete")
}

func openDB(cfg *config.Config, applog *zap.SugaredLogger) (*gorm.DB, error) {
	if cfg.DB.Driver == "sqlite" {
		applog.Warn("using in-memory sqlite, data is lost on exit")

		db, err := inmemstore.NewConnection()
		if err != nil {
			return nil, err
		}

		return db.DB, nil
	}

	return postgrestore.NewConnection(postgrestore.ParseFromConfig(cfg), applog)
}

// openBroker returns the broker selected by BROKER_KIND, or nil when it is
// "none".
func openBroker(ctx context.Context, cfg *config.Config, applog *zap.SugaredLogger) (pubsub.Service, func(), error) {
	switch cfg.Broker.Kind {
	case "redis":
		rdb, err := redisstore.NewConnection(ctx, redisstore.ParseFromConfig(cfg), applog)
		if err != nil {
			return nil, nil, err
		}

		return redisstore.NewRedisClient(rdb), func() { _ = rdb.Close() }, nil
	case "nats":
		nc, err := natsstore.NewConnection(natsstore.ParseFromConfig(cfg))
		if err != nil {
			return nil, nil, err
		}

		return natsstore.NewNatsClient(nc), nc.Close, nil
	case "none", "":
		return nil, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown broker kind %q", cfg.Broker.Kind)
	}
}
