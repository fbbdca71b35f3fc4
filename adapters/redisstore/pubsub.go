package redisstore

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/storefront/backend/domain/pubsub"
)

var _ pubsub.Service = (*RedisClient)(nil)

type RedisClient struct {
	rdb *redis.Client
}

type RedisPubSub struct {
	rps *redis.PubSub
	err error
}

func NewRedisClient(rdb *redis.Client) *RedisClient {
	return &RedisClient{rdb: rdb}
}

func (r *RedisClient) Publish(ctx context.Context, channel string, message interface{}) error {
	return r.rdb.Publish(ctx, channel, message).Err()
}

func (r *RedisClient) Subscribe(ctx context.Context, channel string) pubsub.PubSub {
	return confirmed(ctx, r.rdb.Subscribe(ctx, channel))
}

func (r *RedisClient) PSubscribe(ctx context.Context, pattern string) pubsub.PubSub {
	return confirmed(ctx, r.rdb.PSubscribe(ctx, pattern))
}

// confirmed waits for the server to acknowledge the subscription so messages
// published after the call returns are delivered. A failure is reported by
// the first ReceiveMessage.
func confirmed(ctx context.Context, rps *redis.PubSub) *RedisPubSub {
	if _, err := rps.Receive(ctx); err != nil {
		return &RedisPubSub{rps: rps, err: err}
	}

	return &RedisPubSub{rps: rps}
}

func (r *RedisPubSub) ReceiveMessage(ctx context.Context) (pubsub.Message, error) {
	if r.err != nil {
		return pubsub.Message{}, r.err
	}

	msg, err := r.rps.ReceiveMessage(ctx)
	if err != nil {
		return pubsub.Message{}, err
	}

	return pubsub.Message{
		Channel: msg.Channel,
		Payload: msg.Payload,
	}, nil
}

func (r *RedisPubSub) Close() error {
	return r.rps.Close()
}
