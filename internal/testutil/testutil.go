// Package testutil provides shared helpers for integration-style tests.
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// GetTestRedisAddr returns the Redis address for tests. REDIS_TEST_ADDR
// overrides the default local address.
func GetTestRedisAddr() string {
	if addr := os.Getenv("REDIS_TEST_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

// SetupTestRedis creates a Redis client for testing.
// Tests are skipped if Redis is not reachable.
func SetupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	addr := GetTestRedisAddr()
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   15, // keep test data away from any local dev database
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		if cerr := client.Close(); cerr != nil {
			t.Logf("warning: failed to close redis client after ping error: %v", cerr)
		}
		t.Skipf("Redis not available for testing at %s: %v", addr, err)
	}

	client.FlushDB(ctx)

	return client
}
