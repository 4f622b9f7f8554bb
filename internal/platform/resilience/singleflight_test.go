package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestGroup_DoCoalescesConcurrentCalls(t *testing.T) {
	t.Parallel()

	var g Group[string]
	var counter atomic.Int32
	var sharedCount atomic.Int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err, shared := g.Do("player_stats_salah", func() (string, error) {
				counter.Add(1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
			if v != "ok" {
				t.Errorf("unexpected value %q", v)
			}
			if shared {
				sharedCount.Add(1)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := counter.Load(); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
	if got := sharedCount.Load(); got != workers {
		t.Fatalf("expected every caller to see a shared result, got %d", got)
	}
	if g.InFlight("player_stats_salah") {
		t.Fatalf("expected key to be released after completion")
	}
}

func TestGroup_DoRecoversPanic(t *testing.T) {
	t.Parallel()

	var g Group[int]
	_, err, _ := g.Do("boom", func() (int, error) {
		panic("exploded")
	})
	if err == nil {
		t.Fatalf("expected panic to surface as error")
	}

	v, err, shared := g.Do("boom", func() (int, error) { return 7, nil })
	if err != nil || v != 7 || shared {
		t.Fatalf("expected fresh call after panic, got v=%d err=%v shared=%v", v, err, shared)
	}
}

func TestGroup_DoPropagatesError(t *testing.T) {
	t.Parallel()

	var g Group[any]
	wantErr := errors.New("upstream")
	if _, err, _ := g.Do("k", func() (any, error) { return nil, wantErr }); !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}

func TestGroup_DoChanSharesOneCall(t *testing.T) {
	t.Parallel()

	var g Group[string]
	var counter atomic.Int32
	unblock := make(chan struct{})
	fn := func() (string, error) {
		counter.Add(1)
		<-unblock
		return "table", nil
	}

	first, leader := g.DoChan("epl_table", fn)
	if !leader {
		t.Fatalf("expected first caller to lead")
	}
	second, leader := g.DoChan("epl_table", fn)
	if leader {
		t.Fatalf("expected second caller to join the running call")
	}
	close(unblock)

	for i, ch := range []<-chan Result[string]{first, second} {
		select {
		case res := <-ch:
			if res.Err != nil || res.Val != "table" || !res.Shared {
				t.Fatalf("caller %d got %+v", i, res)
			}
		case <-time.After(time.Second):
			t.Fatalf("caller %d never received a result", i)
		}
	}
	if got := counter.Load(); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestGroup_DoChanAbandonedWaiterDoesNotBlockCall(t *testing.T) {
	t.Parallel()

	var g Group[int]
	unblock := make(chan struct{})
	leaderCh, _ := g.DoChan("k", func() (int, error) {
		<-unblock
		return 1, nil
	})
	// Never read.
	_, _ = g.DoChan("k", nil)
	close(unblock)

	select {
	case res := <-leaderCh:
		if res.Val != 1 {
			t.Fatalf("unexpected value %d", res.Val)
		}
	case <-time.After(time.Second):
		t.Fatalf("call stalled on an abandoned waiter")
	}
	if g.InFlight("k") {
		t.Fatalf("expected key to be released after completion")
	}
}

func TestGroup_DoChanRecoversPanic(t *testing.T) {
	t.Parallel()

	var g Group[int]
	ch, _ := g.DoChan("boom", func() (int, error) {
		panic("exploded")
	})
	if res := <-ch; res.Err == nil {
		t.Fatalf("expected panic to surface as error")
	}
}
