package resilience

import (
	"fmt"
	"sync"
)

// Group coalesces concurrent calls that share a key: the first caller runs fn
// and later callers wait for and share its result.
type Group[T any] struct {
	mu    sync.Mutex
	calls map[string]*call[T]
}

// Result is what DoChan delivers once the shared call finishes.
type Result[T any] struct {
	Val    T
	Err    error
	Shared bool
}

type call[T any] struct {
	done  chan struct{}
	val   T
	err   error
	dups  int
	chans []chan<- Result[T]
}

// Do runs fn once per key at a time. shared reports whether the result was
// handed to more than one caller.
func (g *Group[T]) Do(key string, fn func() (T, error)) (v T, err error, shared bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*call[T])
	}

	if c, ok := g.calls[key]; ok {
		c.dups++
		g.mu.Unlock()
		<-c.done
		return c.val, c.err, true
	}

	c := &call[T]{done: make(chan struct{})}
	g.calls[key] = c
	g.mu.Unlock()

	g.run(key, c, fn)

	g.mu.Lock()
	dups := c.dups
	g.mu.Unlock()
	return c.val, c.err, dups > 0
}

// DoChan is like Do but does not block. The caller that starts the call runs
// fn in a new goroutine and gets leader=true; fn is ignored for every other
// caller. The returned channel receives exactly one Result, so a caller may
// stop waiting on it without stalling the call.
func (g *Group[T]) DoChan(key string, fn func() (T, error)) (ch <-chan Result[T], leader bool) {
	out := make(chan Result[T], 1)

	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*call[T])
	}

	if c, ok := g.calls[key]; ok {
		c.dups++
		c.chans = append(c.chans, out)
		g.mu.Unlock()
		return out, false
	}

	c := &call[T]{done: make(chan struct{}), chans: []chan<- Result[T]{out}}
	g.calls[key] = c
	g.mu.Unlock()

	go g.run(key, c, fn)
	return out, true
}

// InFlight reports whether a call for key is currently running.
func (g *Group[T]) InFlight(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.calls[key]
	return ok
}

func (g *Group[T]) run(key string, c *call[T], fn func() (T, error)) {
	defer func() {
		if r := recover(); r != nil {
			c.err = fmt.Errorf("singleflight %q panicked: %v", key, r)
		}
		g.mu.Lock()
		delete(g.calls, key)
		shared := c.dups > 0
		chans := c.chans
		g.mu.Unlock()

		close(c.done)
		for _, ch := range chans {
			ch <- Result[T]{Val: c.val, Err: c.err, Shared: shared}
		}
	}()

	c.val, c.err = fn()
}
