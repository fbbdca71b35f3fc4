package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/storefront/backend/adapters/event/listeners"
	"github.com/storefront/backend/adapters/natsstore"
	"github.com/storefront/backend/adapters/redisstore"
	"github.com/storefront/backend/domain/customer"
	"github.com/storefront/backend/domain/product"
	"github.com/storefront/backend/domain/pubsub"
	"github.com/storefront/backend/pkg/config"
	"github.com/storefront/backend/pkg/logger"
	"github.com/storefront/backend/pkg/sentry"

	sentrygo "github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

type service struct {
	applog        *zap.SugaredLogger
	pubsubService pubsub.Service
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

	s := &service{applog: applog}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Broker.Kind {
	case "nats":
		nc, err := natsstore.NewConnection(natsstore.ParseFromConfig(cfg))
		if err != nil {
			applog.Fatalf("cannot connect to nats: %v", err)
		}
		defer nc.Close()

		s.pubsubService = natsstore.NewNatsClient(nc)
	case "redis":
		rdb, err := redisstore.NewConnection(ctx, redisstore.ParseFromConfig(cfg), applog)
		if err != nil {
			applog.Fatalf("cannot connect to redis: %v", err)
		}
		defer rdb.Close()

		s.pubsubService = redisstore.NewRedisClient(rdb)
	default:
		applog.Fatalf("event relay needs a broker, got BROKER_KIND=%q", cfg.Broker.Kind)
	}

	pattern := cfg.Broker.Channel + ".*"
	sub := s.pubsubService.PSubscribe(ctx, pattern)
	defer sub.Close()

	applog.Infow("relaying events", "pattern", pattern, "broker", cfg.Broker.Kind)

	for {
		msg, err := sub.ReceiveMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				applog.Info("relay stopped")
				return
			}

			applog.Errorw("cannot receive message", zap.Error(err))
			sentry.Global().Error(err)
			return
		}

		if err := s.process(msg); err != nil {
			applog.Warnw("cannot process message", "channel", msg.Channel, zap.Error(err))
		}
	}
}

func (s *service) process(msg pubsub.Message) error {
	var envelope listeners.Envelope
	if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
		return fmt.Errorf("unmarshal envelope: %w", err)
	}

	summary, err := describe(envelope)
	if err != nil {
		return err
	}

	s.applog.Infow(summary,
		"event", envelope.Name,
		"channel", msg.Channel,
		"occurred_at", envelope.OccurredAt,
	)

	return nil
}

// describe renders a one-line summary of a relayed event.
func describe(envelope listeners.Envelope) (string, error) {
	switch envelope.Name {
	case product.ProductCreatedEventName:
		var e product.ProductCreatedEvent
		if err := json.Unmarshal(envelope.Payload, &e); err != nil {
			return "", fmt.Errorf("unmarshal %s: %w", envelope.Name, err)
		}

		return fmt.Sprintf("product %s created: %s at %.2f", e.ID, e.Name, e.Price), nil
	case customer.CustomerCreatedEventName:
		var e customer.CustomerCreatedEvent
		if err := json.Unmarshal(envelope.Payload, &e); err != nil {
			return "", fmt.Errorf("unmarshal %s: %w", envelope.Name, err)
		}

		return fmt.Sprintf("customer %s created: %s", e.ID, e.Name), nil
	case customer.CustomerChangeAddressEventName:
		var e customer.CustomerChangeAddressEvent
		if err := json.Unmarshal(envelope.Payload, &e); err != nil {
			return "", fmt.Errorf("unmarshal %s: %w", envelope.Name, err)
		}

		return fmt.Sprintf("customer %s moved to %s", e.ID, e.Address), nil
	}

	return "", fmt.Errorf("unknown event %q", envelope.Name)
}
