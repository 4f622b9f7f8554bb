package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by a Backend when the key holds no live entry.
var ErrMiss = errors.New("cache miss")

// Backend stores encoded values under string keys with a time-to-live. Any
// error other than ErrMiss is a backend failure.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
