package cache

import (
	"context"
	"errors"
	"iter"
	"sync/atomic"
	"time"

	"github.com/riskibarqy/epl-stats/internal/platform/logging"
	"github.com/riskibarqy/epl-stats/internal/platform/resilience"
)

const (
	DefaultTTL         = 5 * time.Minute
	DefaultFillTimeout = 2 * time.Minute
)

type Options struct {
	TTL time.Duration
	// SingleFlight makes concurrent misses for one key share a single producer
	// call. Without it every concurrent miss runs the producer.
	SingleFlight bool
	// MaterializeStreams drains streaming results so they can be stored. When
	// false, streams pass through live and are never stored.
	MaterializeStreams bool
	// FillTimeout bounds one shared single-flight fill, which runs detached
	// from the cancellation of the caller that started it.
	FillTimeout time.Duration
	Logger      *logging.Logger
}

type Stats struct {
	Hits        int64 `json:"hits"`
	Misses      int64 `json:"misses"`
	ReadErrors  int64 `json:"read_errors"`
	WriteErrors int64 `json:"write_errors"`
	Bypassed    int64 `json:"bypassed"`
}

// ResultCache memoizes producer results in a Backend as JSON.
type ResultCache struct {
	backend Backend
	opts    Options
	logger  *logging.Logger
	flight  resilience.Group[any]

	hits        atomic.Int64
	misses      atomic.Int64
	readErrors  atomic.Int64
	writeErrors atomic.Int64
	bypassed    atomic.Int64
}

func NewResultCache(backend Backend, opts Options) *ResultCache {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.FillTimeout <= 0 {
		opts.FillTimeout = DefaultFillTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &ResultCache{
		backend: backend,
		opts:    opts,
		logger:  logger.With("component", "result_cache"),
	}
}

func (c *ResultCache) TTL() time.Duration {
	return c.opts.TTL
}

func (c *ResultCache) Stats() Stats {
	if c == nil {
		return Stats{}
	}
	return Stats{
		Hits:        c.hits.Load(),
		Misses:      c.misses.Load(),
		ReadErrors:  c.readErrors.Load(),
		WriteErrors: c.writeErrors.Load(),
		Bypassed:    c.bypassed.Load(),
	}
}

// Producer computes a value from a transient handle (a browser page, a
// connection) and the logical arguments. Only the arguments take part in the
// cache key, and only the returned value is stored.
type Producer[H, A, T any] func(ctx context.Context, handle H, args A) (T, error)

// StreamProducer is a Producer whose result is a lazy sequence.
type StreamProducer[H, A, T any] func(ctx context.Context, handle H, args A) (iter.Seq2[T, error], error)

// Memoize wraps produce so that a stored result under the resolved key is
// returned without calling it. Producer errors are returned and not stored.
// A nil cache returns produce unchanged.
func Memoize[H, A, T any](c *ResultCache, strategy KeyStrategy[A], produce Producer[H, A, T]) Producer[H, A, T] {
	if c == nil {
		return produce
	}

	return func(ctx context.Context, handle H, args A) (T, error) {
		var zero T
		key := strategy.Resolve(args)
		if key == "" {
			c.bypassed.Add(1)
			return produce(ctx, handle, args)
		}

		var cached T
		if c.lookup(ctx, key, &cached, true) {
			return cached, nil
		}

		v, err := c.fill(ctx, key, handle, func(ctx context.Context) (any, error) {
			var again T
			if c.opts.SingleFlight && c.lookup(ctx, key, &again, false) {
				return again, nil
			}

			out, err := produce(ctx, handle, args)
			if err != nil {
				return nil, err
			}
			c.store(ctx, key, out)
			return out, nil
		})
		if err != nil {
			return zero, err
		}
		out, _ := v.(T)
		return out, nil
	}
}

// MemoizeStream wraps a streaming producer. On a hit the stored items come
// back as a materialized Batch. On a miss the stream is drained, stored and
// returned materialized, unless MaterializeStreams is off, in which case the
// live stream is returned and nothing is stored.
func MemoizeStream[H, A, T any](c *ResultCache, strategy KeyStrategy[A], produce StreamProducer[H, A, T]) func(context.Context, H, A) (Batch[T], error) {
	live := func(ctx context.Context, handle H, args A) (Batch[T], error) {
		seq, err := produce(ctx, handle, args)
		if err != nil {
			return Batch[T]{}, err
		}
		return LiveBatch(seq), nil
	}
	if c == nil {
		return live
	}

	return func(ctx context.Context, handle H, args A) (Batch[T], error) {
		key := strategy.Resolve(args)
		if key == "" {
			c.bypassed.Add(1)
			return live(ctx, handle, args)
		}

		var cached []T
		if c.lookup(ctx, key, &cached, true) {
			return BatchOf(cached), nil
		}
		if !c.opts.MaterializeStreams {
			return live(ctx, handle, args)
		}

		v, err := c.fill(ctx, key, handle, func(ctx context.Context) (any, error) {
			var again []T
			if c.opts.SingleFlight && c.lookup(ctx, key, &again, false) {
				return again, nil
			}

			seq, err := produce(ctx, handle, args)
			if err != nil {
				return nil, err
			}
			items, err := Collect(seq)
			if err != nil {
				return nil, err
			}
			c.store(ctx, key, items)
			return items, nil
		})
		if err != nil {
			return Batch[T]{}, err
		}
		items, _ := v.([]T)
		return BatchOf(items), nil
	}
}

// Retainer is implemented by producer handles that must stay usable after the
// caller that started a shared fill has stopped waiting for it. Retain keeps
// the handle open until the returned func is called.
type Retainer interface {
	Retain() (release func())
}

func retain(handle any) func() {
	if r, ok := handle.(Retainer); ok {
		return r.Retain()
	}
	return func() {}
}

// fill runs produce for a missed key. With single-flight, concurrent misses
// share one run of produce under a context that keeps the starting caller's
// values but not its cancellation, bounded by FillTimeout. Every caller,
// including the one that started the run, stops waiting when its own ctx ends.
func (c *ResultCache) fill(ctx context.Context, key string, handle any, produce func(context.Context) (any, error)) (any, error) {
	if !c.opts.SingleFlight {
		return produce(ctx)
	}

	release := retain(handle)
	ch, leader := c.flight.DoChan(key, func() (any, error) {
		defer release()
		fillCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.opts.FillTimeout)
		defer cancel()
		return produce(fillCtx)
	})
	if !leader {
		release()
	}

	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// lookup decodes the entry under key into target. Backend failures and
// undecodable entries are logged and reported as a miss.
func (c *ResultCache) lookup(ctx context.Context, key string, target any, count bool) bool {
	raw, err := c.backend.Get(ctx, key)
	switch {
	case err == nil:
	case errors.Is(err, ErrMiss):
		if count {
			c.misses.Add(1)
		}
		return false
	default:
		c.readErrors.Add(1)
		if count {
			c.misses.Add(1)
		}
		c.logger.WarnContext(ctx, "cache read failed, treating as miss", "key", key, "error", err)
		return false
	}

	if err := decode(raw, target); err != nil {
		c.readErrors.Add(1)
		if count {
			c.misses.Add(1)
		}
		c.logger.WarnContext(ctx, "cache entry unreadable, treating as miss", "key", key, "error", err)
		return false
	}

	// A re-check inside a fill belongs to a call already counted as a miss.
	if count {
		c.hits.Add(1)
	}
	c.logger.DebugContext(ctx, "cache hit", "key", key)
	return true
}

// store writes value under key. A failed write is logged and counted; the
// caller still returns the computed value.
func (c *ResultCache) store(ctx context.Context, key string, value any) {
	raw, err := encode(value)
	if err == nil {
		err = c.backend.Set(ctx, key, raw, c.opts.TTL)
	}
	if err != nil {
		c.writeErrors.Add(1)
		c.logger.ErrorContext(ctx, "cache write failed", "key", key, "error", err)
		return
	}
	c.logger.DebugContext(ctx, "cache stored", "key", key, "ttl", c.opts.TTL)
}
