package ratingchain

import "iter"

// Cursor is a one-shot forward iterator over a chain's records.
//
// It starts at the chain's head as of creation and cannot be restarted;
// obtain a fresh cursor for every traversal. Mutating the chain while a
// cursor is live yields undefined results.
//
// Usage:
//
//	for cur := c.Cursor(); cur.HasNext(); {
//	    r, _ := cur.Next()
//	    // process r.ID(), r.Value()
//	}
type Cursor struct {
	next *Record
}

// Cursor returns a cursor positioned before the first record.
func (c *Chain) Cursor() *Cursor {
	return &Cursor{next: c.head}
}

// HasNext reports whether Next will return a record.
func (it *Cursor) HasNext() bool {
	return it.next != nil
}

// Next returns the current record and advances to the following one.
// It returns ErrCursorExhausted once the end of the chain has been passed.
func (it *Cursor) Next() (*Record, error) {
	if it.next == nil {
		return nil, ErrCursorExhausted
	}
	r := it.next
	it.next = r.next
	return r, nil
}

// All returns an iterator over (movie id, rating) pairs in chain order.
// Each range loop drives its own cursor.
func (c *Chain) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for it := c.Cursor(); it.HasNext(); {
			r, _ := it.Next()
			if !yield(r.id, r.value) {
				return
			}
		}
	}
}
