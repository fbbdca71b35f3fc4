package redisstore

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/storefront/backend/pkg/config"
	"go.uber.org/zap"
)

const pingTimeout = 5 * time.Second

type Options struct {
	Addr     string
	Password string
	DB       int

	// Debug logs every command sent to redis.
	Debug bool
}

func ParseFromConfig(c *config.Config) Options {
	return Options{
		Addr:     c.Redis.Addr,
		Password: c.Redis.Password,
		DB:       c.Redis.DB,
		Debug:    c.Debug,
	}
}

func NewConnection(ctx context.Context, opts Options, applog *zap.SugaredLogger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: pingTimeout,
	})

	if opts.Debug {
		rdb.AddHook(commandLogger{applog: applog})
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", opts.Addr, err)
	}

	return rdb, nil
}

type commandLogger struct {
	applog *zap.SugaredLogger
}

func (h commandLogger) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		if err != nil {
			h.applog.Debugw("redis dial failed", "addr", addr, zap.Error(err))
		}

		return conn, err
	}
}

func (h commandLogger) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)

		h.applog.Debugw("redis command",
			"cmd", cmd.Name(),
			"duration_ms", time.Since(start).Milliseconds(),
			"error", errString(err),
		)

		return err
	}
}

func (h commandLogger) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)

		h.applog.Debugw("redis pipeline",
			"commands", len(cmds),
			"duration_ms", time.Since(start).Milliseconds(),
			"error", errString(err),
		)

		return err
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}

	return err.Error()
}
