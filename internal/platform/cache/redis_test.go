package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
)

func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisBackend_UnavailableIsNotMiss(t *testing.T) {
	t.Parallel()

	backend := NewRedisBackend(unreachableRedis(t), "epl:")
	ctx := context.Background()

	_, err := backend.Get(ctx, "epl_table")
	if err == nil || errors.Is(err, ErrMiss) {
		t.Fatalf("expected backend failure distinct from miss, got %v", err)
	}
	if !crerr.Is(err, ErrBackendUnavailable) {
		t.Fatalf("expected ErrBackendUnavailable mark, got %v", err)
	}

	if err := backend.Set(ctx, "epl_table", []byte(`[]`), time.Minute); !crerr.Is(err, ErrBackendUnavailable) {
		t.Fatalf("expected set failure, got %v", err)
	}
	if err := backend.Ping(ctx); !crerr.Is(err, ErrBackendUnavailable) {
		t.Fatalf("expected ping failure, got %v", err)
	}
}

func TestRedisBackend_ReadFailureDegradesToMiss(t *testing.T) {
	t.Parallel()

	rc := NewResultCache(NewRedisBackend(unreachableRedis(t), ""), Options{TTL: time.Minute})
	calls := 0
	load := Memoize(rc, StaticKey[struct{}]("epl_results"), func(context.Context, struct{}, struct{}) ([]string, error) {
		calls++
		return []string{"Arsenal 2-1 Chelsea"}, nil
	})

	got, err := load(context.Background(), struct{}{}, struct{}{})
	if err != nil {
		t.Fatalf("expected cache outage not to fail the call, got %v", err)
	}
	if len(got) != 1 || calls != 1 {
		t.Fatalf("unexpected result %v after %d calls", got, calls)
	}

	stats := rc.Stats()
	if stats.ReadErrors != 1 || stats.WriteErrors != 1 {
		t.Fatalf("expected one read and one write error, got %+v", stats)
	}
}
