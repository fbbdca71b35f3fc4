package natsstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/storefront/backend/domain/pubsub"
	"github.com/storefront/backend/pkg/config"
)

var _ pubsub.Service = (*NatsClient)(nil)

type Options struct {
	URL  string
	Name string
}

func ParseFromConfig(c *config.Config) Options {
	return Options{
		URL:  c.NATS.URL,
		Name: "storefront",
	}
}

func NewConnection(opts Options) (*nats.Conn, error) {
	nc, err := nats.Connect(opts.URL,
		nats.Name(opts.Name),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}

	return nc, nil
}

type NatsClient struct {
	nc *nats.Conn
}

type NatsPubSub struct {
	sub *nats.Subscription
	err error
}

func NewNatsClient(nc *nats.Conn) *NatsClient {
	return &NatsClient{nc: nc}
}

func (n *NatsClient) Publish(_ context.Context, channel string, message interface{}) error {
	data, err := encode(message)
	if err != nil {
		return err
	}

	return n.nc.Publish(channel, data)
}

func (n *NatsClient) Subscribe(_ context.Context, channel string) pubsub.PubSub {
	sub, err := n.nc.SubscribeSync(channel)

	return &NatsPubSub{sub: sub, err: err}
}

// PSubscribe relies on the native subject wildcards, "events.*" matches
// "events.ProductCreatedEvent".
func (n *NatsClient) PSubscribe(ctx context.Context, pattern string) pubsub.PubSub {
	return n.Subscribe(ctx, pattern)
}

func (p *NatsPubSub) ReceiveMessage(ctx context.Context) (pubsub.Message, error) {
	if p.err != nil {
		return pubsub.Message{}, fmt.Errorf("subscribe: %w", p.err)
	}

	msg, err := p.sub.NextMsgWithContext(ctx)
	if err != nil {
		return pubsub.Message{}, err
	}

	return pubsub.Message{
		Channel: msg.Subject,
		Payload: string(msg.Data),
	}, nil
}

func (p *NatsPubSub) Close() error {
	if p.sub == nil {
		return p.err
	}

	return p.sub.Unsubscribe()
}

func encode(message interface{}) ([]byte, error) {
	switch m := message.(type) {
	case string:
		return []byte(m), nil
	case []byte:
		return m, nil
	default:
		data, err := json.Marshal(m)
		if err != nil {
			return nil, fmt.Errorf("marshal message: %w", err)
		}

		return data, nil
	}
}
