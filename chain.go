package ratingchain

import (
	"math"
	"time"
)

// Chain holds one user's ratings as a singly-linked list kept sorted by
// rating, best first unless configured otherwise (see WithOrder).
//
// A chain stores only its first record: there is no cached length and no
// tail reference, so every operation is a bounded forward scan.
//
// Ties are ordered first-come first-served: a new or updated record is
// placed after every record already holding an equal rating. Movie ids never
// take part in ordering.
//
// A Chain is not safe for concurrent use. Callers sharing a chain must
// serialize access, including iteration.
type Chain struct {
	head *Record
	opts options
}

// New creates an empty chain.
func New(optFns ...Option) *Chain {
	return &Chain{opts: applyOptions(optFns)}
}

// derive returns an empty chain with c's options and the given order.
func (c *Chain) derive(order Order) *Chain {
	o := c.opts
	o.order = order
	return &Chain{opts: o}
}

// Order returns the direction the chain is sorted in.
func (c *Chain) Order() Order { return c.opts.order }

// Head returns the first record, or nil if the chain is empty.
func (c *Chain) Head() *Record { return c.head }

// IsEmpty reports whether the chain holds no records.
func (c *Chain) IsEmpty() bool { return c.head == nil }

// Len counts the records in a single pass.
func (c *Chain) Len() int {
	n := 0
	for r := c.head; r != nil; r = r.next {
		n++
	}
	return n
}

// Insert adds a rating for a movie that is not yet in the chain, at the
// position that keeps the chain sorted.
//
// It returns ErrInvalidRating for a NaN rating and an *ErrDuplicateMovie if
// the movie is already rated; use SetValue to change an existing rating.
func (c *Chain) Insert(id int, value float64) error {
	start := time.Now()
	err := c.insert(id, value)
	c.opts.metricsCollector.RecordInsert(time.Since(start), err)
	c.opts.logger.LogInsert(id, value, err)
	return err
}

func (c *Chain) insert(id int, value float64) error {
	if math.IsNaN(value) {
		return ErrInvalidRating
	}

	// One pass: remember the insertion point and keep scanning for a duplicate.
	var prev *Record
	placed := false
	for cur := c.head; cur != nil; cur = cur.next {
		if cur.id == id {
			return &ErrDuplicateMovie{MovieID: id}
		}
		if !placed {
			if c.opts.order.precedes(value, cur.value) {
				placed = true
			} else {
				prev = cur
			}
		}
	}

	c.link(NewRecord(id, value), prev)
	return nil
}

// SetValue sets the rating of a movie. An existing record is moved to the
// position its new rating requires; an unknown movie is inserted.
//
// It returns ErrInvalidRating for a NaN rating.
func (c *Chain) SetValue(id int, value float64) error {
	start := time.Now()
	inserted, err := c.setValue(id, value)
	c.opts.metricsCollector.RecordUpdate(time.Since(start), err)
	c.opts.logger.LogUpdate(id, value, inserted, err)
	return err
}

func (c *Chain) setValue(id int, value float64) (bool, error) {
	if math.IsNaN(value) {
		return false, ErrInvalidRating
	}

	r, prev := c.find(id)
	if r == nil {
		c.link(NewRecord(id, value), c.insertionPoint(value))
		return true, nil
	}

	c.unlink(r, prev)
	r.setValue(value)
	c.link(r, c.insertionPoint(value))
	return false, nil
}

// Lookup returns the rating of a movie. ok is false if the movie is not rated.
func (c *Chain) Lookup(id int) (value float64, ok bool) {
	r, _ := c.find(id)
	if r == nil {
		return 0, false
	}
	return r.value, true
}

// Contains reports whether the movie is rated.
func (c *Chain) Contains(id int) bool {
	r, _ := c.find(id)
	return r != nil
}

// Remove deletes the rating of a movie. It reports whether the movie was rated.
func (c *Chain) Remove(id int) bool {
	start := time.Now()
	r, prev := c.find(id)
	if r != nil {
		c.unlink(r, prev)
	}
	found := r != nil
	c.opts.metricsCollector.RecordRemove(time.Since(start), found)
	c.opts.logger.LogRemove(id, found)
	return found
}

// Clone returns a deep copy of the chain with fresh records.
func (c *Chain) Clone() *Chain {
	start := time.Now()
	b := newBuilder(c.derive(c.opts.order))
	for r := c.head; r != nil; r = r.next {
		b.append(r.id, r.value)
	}
	c.recordQuery(OpClone, b.n, start)
	return b.chain
}

// find returns the record holding id and its predecessor.
func (c *Chain) find(id int) (r, prev *Record) {
	for r = c.head; r != nil; prev, r = r, r.next {
		if r.id == id {
			return r, prev
		}
	}
	return nil, nil
}

// insertionPoint returns the record a new record with value must follow,
// or nil if it becomes the head.
func (c *Chain) insertionPoint(value float64) *Record {
	var prev *Record
	for cur := c.head; cur != nil && !c.opts.order.precedes(value, cur.value); cur = cur.next {
		prev = cur
	}
	return prev
}

// link splices r in after prev, or at the head if prev is nil.
func (c *Chain) link(r, prev *Record) {
	if prev == nil {
		r.setNext(c.head)
		c.head = r
		return
	}
	r.setNext(prev.next)
	prev.setNext(r)
}

// unlink detaches r, whose predecessor is prev (nil for the head).
func (c *Chain) unlink(r, prev *Record) {
	if prev == nil {
		c.head = r.next
	} else {
		prev.setNext(r.next)
	}
	r.setNext(nil)
}
