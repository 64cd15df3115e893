package ratingchain

import "fmt"

// Record is one (movie id, rating) entry of a Chain plus its forward link.
//
// A record is exclusively owned by its predecessor, or by the chain when it
// is first. Records handed out by a chain are read-only views: only the chain
// rewrites values and links, which keeps its order invariant intact.
type Record struct {
	id    int
	value float64
	next  *Record
}

// NewRecord creates an unlinked record.
func NewRecord(id int, value float64) *Record {
	return &Record{id: id, value: value}
}

// ID returns the movie id.
func (r *Record) ID() int { return r.id }

// Value returns the rating.
func (r *Record) Value() float64 { return r.value }

// Next returns the following record, or nil at the end of the chain.
func (r *Record) Next() *Record { return r.next }

// String returns a string representation of the record.
func (r *Record) String() string {
	return fmt.Sprintf("Record(%d:%g)", r.id, r.value)
}

func (r *Record) setValue(v float64) { r.value = v }

func (r *Record) setNext(n *Record) { r.next = n }
