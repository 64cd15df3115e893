// Package queue provides a bounded FIFO window used for single-pass
// "last n" selection over streams whose length is not known up front.
package queue

import "iter"

// Window holds at most limit items in insertion order. Pushing into a full
// window evicts the oldest item.
//
// Storage grows lazily up to limit, so a window created with a huge limit
// over a short stream only allocates what the stream actually delivers.
type Window[T any] struct {
	items []T // ring storage, len(items) <= limit
	start int // index of the oldest item once the ring is full
	limit int
}

// NewWindow creates a window that retains the last limit items.
// A non-positive limit yields a window that retains nothing.
func NewWindow[T any](limit int) *Window[T] {
	if limit < 0 {
		limit = 0
	}
	return &Window[T]{limit: limit}
}

// Push appends v, evicting the oldest item if the window is full.
func (w *Window[T]) Push(v T) {
	if w.limit == 0 {
		return
	}
	if len(w.items) < w.limit {
		w.items = append(w.items, v)
		return
	}
	w.items[w.start] = v
	w.start++
	if w.start == w.limit {
		w.start = 0
	}
}

// All yields the retained items from oldest to newest.
func (w *Window[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		n := len(w.items)
		for i := range n {
			if !yield(w.items[(w.start+i)%n]) {
				return
			}
		}
	}
}
