package cache

import "iter"

// Batch is the result of a streaming producer. A materialized batch holds the
// items in memory and may be streamed any number of times. A live batch wraps
// the producer's sequence; each pass over it runs the producer's fetches again.
type Batch[T any] struct {
	items        []T
	live         iter.Seq2[T, error]
	materialized bool
}

func BatchOf[T any](items []T) Batch[T] {
	if items == nil {
		items = []T{}
	}
	return Batch[T]{items: items, materialized: true}
}

func LiveBatch[T any](seq iter.Seq2[T, error]) Batch[T] {
	return Batch[T]{live: seq}
}

func (b Batch[T]) Materialized() bool {
	return b.materialized
}

// Stream returns a lazy view over the batch.
func (b Batch[T]) Stream() iter.Seq2[T, error] {
	if !b.materialized {
		if b.live == nil {
			return func(func(T, error) bool) {}
		}
		return b.live
	}
	items := b.items
	return func(yield func(T, error) bool) {
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
	}
}

// Materialize returns the items as a slice, draining a live batch.
func (b Batch[T]) Materialize() ([]T, error) {
	if b.materialized {
		out := make([]T, len(b.items))
		copy(out, b.items)
		return out, nil
	}
	return Collect(b.Stream())
}

// Collect drains seq in order and stops at the first error.
func Collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	out := make([]T, 0)
	if seq == nil {
		return out, nil
	}
	for item, err := range seq {
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
