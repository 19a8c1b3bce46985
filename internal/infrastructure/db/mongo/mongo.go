package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// appName identifies this service in server logs and currentOp output.
const appName = "dealfourwheel-marketplace"

// defaultTimeout bounds every repository call in this package as well as the
// initial connect and ping.
const defaultTimeout = 10 * time.Second

// Config captures the settings for the marketplace database connection.
type Config struct {
	URI      string
	Database string
	// Timeout bounds the initial connect and ping. Defaults to defaultTimeout.
	Timeout time.Duration
}

// Connect establishes the MongoDB client for the marketplace collections,
// verifies connectivity with a ping, and returns the client together with the
// selected database.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(appName)

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}
