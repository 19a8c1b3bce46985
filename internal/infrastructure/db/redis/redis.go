package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// defaultTimeout bounds the startup ping and each dedup round trip. Dedup
// sits on the booking write path, so commands must fail fast rather than
// stall a request.
const defaultTimeout = 5 * time.Second

// Config captures the settings for the idempotency store connection.
type Config struct {
	Addr string
	DB   int
	// Timeout bounds dialing, the startup ping, and individual commands.
	// Defaults to defaultTimeout.
	Timeout time.Duration
}

// Connect initialises the Redis client backing booking idempotency checks and
// validates connectivity with a ping.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		DB:          cfg.DB,
		DialTimeout: timeout,
		ReadTimeout: timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
