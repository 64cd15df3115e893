package ratingchain

import (
	"math"
	"time"

	"github.com/hupe1980/ratingchain/internal/queue"
)

// builder appends fresh records to a chain under construction. The tail it
// tracks is local to the build and never stored on the chain.
type builder struct {
	chain *Chain
	tail  *Record
	n     int
}

func newBuilder(c *Chain) *builder {
	return &builder{chain: c}
}

// append adds a copy of (id, value) at the end. Callers feed records in
// chain order, so the result is sorted without a placement scan.
func (b *builder) append(id int, value float64) {
	r := NewRecord(id, value)
	if b.tail == nil {
		b.chain.head = r
	} else {
		b.tail.setNext(r)
	}
	b.tail = r
	b.n++
}

// SelectRange returns a new chain holding every record whose rating lies in
// [lo, hi], in sorted order. The source chain is not modified.
//
// It returns ErrInvalidRange if lo > hi or either bound is NaN.
func (c *Chain) SelectRange(lo, hi float64) (*Chain, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		c.opts.logger.LogQuery(OpSelectRange, 0, ErrInvalidRange)
		return nil, ErrInvalidRange
	}

	start := time.Now()
	b := newBuilder(c.derive(c.opts.order))
	for r := c.head; r != nil; r = r.next {
		if r.value >= lo && r.value <= hi {
			b.append(r.id, r.value)
		}
	}

	c.recordQuery(OpSelectRange, b.n, start)
	return b.chain, nil
}

// TakeTopN returns a new chain with the first min(n, Len()) records. For a
// descending chain these are the n best rated movies.
//
// It returns ErrInvalidN if n is negative.
func (c *Chain) TakeTopN(n int) (*Chain, error) {
	if n < 0 {
		c.opts.logger.LogQuery(OpTopN, 0, ErrInvalidN)
		return nil, ErrInvalidN
	}

	start := time.Now()
	b := newBuilder(c.derive(c.opts.order))
	for r := c.head; r != nil && b.n < n; r = r.next {
		b.append(r.id, r.value)
	}

	c.recordQuery(OpTopN, b.n, start)
	return b.chain, nil
}

// TakeBottomN returns a new chain with the last min(n, Len()) records in
// their original order. For a descending chain these are the n worst rated
// movies.
//
// The chain is walked once with a single cursor. Visited records pass
// through a window holding at most n of them, the oldest dropping out as new
// ones arrive, so when the cursor runs off the end the window holds exactly
// the trailing records. The source chain is neither reversed nor modified.
//
// It returns ErrInvalidN if n is negative.
func (c *Chain) TakeBottomN(n int) (*Chain, error) {
	if n < 0 {
		c.opts.logger.LogQuery(OpBottomN, 0, ErrInvalidN)
		return nil, ErrInvalidN
	}

	start := time.Now()
	w := queue.NewWindow[*Record](n)
	for r := c.head; r != nil; r = r.next {
		w.Push(r)
	}

	b := newBuilder(c.derive(c.opts.order))
	for r := range w.All() {
		b.append(r.id, r.value)
	}

	c.recordQuery(OpBottomN, b.n, start)
	return b.chain, nil
}

func (c *Chain) recordQuery(op string, results int, start time.Time) {
	c.opts.metricsCollector.RecordQuery(op, results, time.Since(start))
	c.opts.logger.LogQuery(op, results, nil)
}
