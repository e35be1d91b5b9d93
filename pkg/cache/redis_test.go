package cache

import (
	"context"
	"os"
	"testing"
	"time"
)

// Backend tests run against real servers when their address is exported, as
// in CI service containers.
func backendCaches(t *testing.T) map[string]Cache {
	t.Helper()
	ctx := context.Background()
	out := map[string]Cache{}

	if addr := os.Getenv("PERIODIC_TEST_REDIS_ADDR"); addr != "" {
		c, err := NewRedisCache(ctx, addr, "periodic-test:")
		if err != nil {
			t.Fatalf("redis: %v", err)
		}
		out["redis"] = c
	}
	if uri := os.Getenv("PERIODIC_TEST_MONGO_URI"); uri != "" {
		c, err := NewMongoCache(ctx, uri, "periodic_test")
		if err != nil {
			t.Fatalf("mongo: %v", err)
		}
		out["mongo"] = c
	}
	if len(out) == 0 {
		t.Skip("set PERIODIC_TEST_REDIS_ADDR or PERIODIC_TEST_MONGO_URI to run backend tests")
	}
	for _, c := range out {
		t.Cleanup(func() { c.Close() })
	}
	return out
}

func TestNetworkBackends(t *testing.T) {
	for name, c := range backendCaches(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if err := c.(Clearer).Clear(ctx); err != nil {
				t.Fatalf("Clear: %v", err)
			}

			if _, hit, err := c.Get(ctx, "missing"); hit || err != nil {
				t.Errorf("Get(missing) = %v, %v", hit, err)
			}
			if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if data, hit, err := c.Get(ctx, "k"); !hit || err != nil || string(data) != "v" {
				t.Errorf("Get(k) = %q, %v, %v", data, hit, err)
			}

			if err := c.Set(ctx, "short", []byte("x"), time.Second); err != nil {
				t.Fatalf("Set(short): %v", err)
			}
			time.Sleep(1100 * time.Millisecond)
			if _, hit, _ := c.Get(ctx, "short"); hit {
				t.Error("expired entry returned")
			}

			if err := c.Delete(ctx, "k"); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if _, hit, _ := c.Get(ctx, "k"); hit {
				t.Error("deleted entry returned")
			}
		})
	}
}

func TestNewRedisCacheUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := NewRedisCache(ctx, "127.0.0.1:1", "x:")
	if err == nil {
		t.Fatal("expected connection error")
	}
	if !IsRetryable(err) {
		t.Errorf("connection error should be retryable: %v", err)
	}
}
