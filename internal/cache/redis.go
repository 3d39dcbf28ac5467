// Package cache provides Redis connection management and JSON
// cache-aside helpers.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is the shared Redis client. It stays nil when Redis is
// unreachable; all helpers treat a nil client as a cache miss.
var Client *redis.Client

// InitRedis connects to Redis at the given address. A connection
// failure is logged and tolerated; the application runs uncached.
func InitRedis(addr string) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unavailable, running without cache", slog.String("error", err.Error()))
		Client = nil
		return
	}
	Client = client
}

// GetClient returns the shared Redis client, which may be nil.
func GetClient() *redis.Client {
	return Client
}

// Close closes the shared client if one was established.
func Close() error {
	if Client == nil {
		return nil
	}
	return Client.Close()
}
