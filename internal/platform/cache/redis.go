package cache

import (
	"context"
	"errors"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
)

var ErrBackendUnavailable = crerr.New("cache backend unavailable")

type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// RedisBackend stores entries in Redis under an optional key prefix.
type RedisBackend struct {
	client redis.Cmdable
	prefix string
}

func NewRedisClient(cfg RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})
}

func NewRedisBackend(client redis.Cmdable, prefix string) *RedisBackend {
	return &RedisBackend{client: client, prefix: prefix}
}

func (r *RedisBackend) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, crerr.Mark(crerr.Wrapf(err, "redis get %q", key), ErrBackendUnavailable)
	}
	return raw, nil
}

func (r *RedisBackend) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := r.client.Set(ctx, r.key(key), value, ttl).Err(); err != nil {
		return crerr.Mark(crerr.Wrapf(err, "redis set %q", key), ErrBackendUnavailable)
	}
	return nil
}

// Ping checks connectivity. Startup only logs its failure.
func (r *RedisBackend) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return crerr.Mark(crerr.Wrap(err, "redis ping"), ErrBackendUnavailable)
	}
	return nil
}

func (r *RedisBackend) key(key string) string {
	return r.prefix + key
}
