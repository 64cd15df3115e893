package ratingchain

import "time"

// Reverse consumes c and returns a chain holding the same records in reverse
// order: a descending chain comes back ascending and vice versa.
//
// The links are flipped in place, so no record is allocated and extra memory
// is constant. Ownership of every record moves to the returned chain and c is
// left empty; use Reverse(c.Clone()) to keep the original.
func Reverse(c *Chain) *Chain {
	if c == nil {
		return New()
	}
	if c.head == nil {
		began := time.Now()
		out := c.derive(c.opts.order.Reverse())
		c.opts.metricsCollector.RecordReverse(0, time.Since(began))
		c.opts.logger.LogReverse(0, out.opts.order, nil)
		return out
	}
	out, _ := c.ReverseFrom(c.head)
	return out
}

// ReverseFrom detaches the sub-chain starting at start and returns it
// reversed, flipping the links in place.
//
// start must be reachable from c, otherwise ErrNotInChain is returned and c
// is untouched. On success c keeps only the records before start, which are
// still sorted, and the returned chain owns start and every record after it.
// The caller forfeits any other reference into the detached sub-chain.
func (c *Chain) ReverseFrom(start *Record) (*Chain, error) {
	if start == nil {
		c.opts.logger.LogReverse(0, c.opts.order, ErrNotInChain)
		return nil, ErrNotInChain
	}

	var prev *Record
	cur := c.head
	for cur != nil && cur != start {
		prev, cur = cur, cur.next
	}
	if cur == nil {
		c.opts.logger.LogReverse(0, c.opts.order, ErrNotInChain)
		return nil, ErrNotInChain
	}

	began := time.Now()
	if prev == nil {
		c.head = nil
	} else {
		prev.setNext(nil)
	}

	out := c.derive(c.opts.order.Reverse())
	var n int
	out.head, n = reverseLinks(start)

	c.opts.metricsCollector.RecordReverse(n, time.Since(began))
	c.opts.logger.LogReverse(n, out.opts.order, nil)
	return out, nil
}

// reverseLinks flips the links of the detached list starting at head and
// returns the new head (the former tail) and the number of records.
func reverseLinks(head *Record) (*Record, int) {
	var prev *Record
	n := 0
	for cur := head; cur != nil; {
		next := cur.next
		cur.setNext(prev)
		prev, cur = cur, next
		n++
	}
	return prev, n
}
