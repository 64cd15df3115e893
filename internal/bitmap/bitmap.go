package bitmap

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// IDSet is a set of movie ids.
// It wraps the official roaring64 implementation.
type IDSet struct {
	rb *roaring64.Bitmap
}

// New creates an empty set.
func New() *IDSet {
	return &IDSet{rb: roaring64.New()}
}

func toKey(id int) uint64  { return uint64(int64(id)) }
func fromKey(k uint64) int { return int(int64(k)) }

// Add adds id to the set.
func (s *IDSet) Add(id int) {
	s.rb.Add(toKey(id))
}

// Cardinality returns the number of ids in the set.
func (s *IDSet) Cardinality() int {
	return int(s.rb.GetCardinality())
}

// All iterates over the ids in the set.
func (s *IDSet) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(fromKey(it.Next())) {
				return
			}
		}
	}
}

// Intersect returns a new set with the ids present in both a and b.
// Neither input is modified.
func Intersect(a, b *IDSet) *IDSet {
	return &IDSet{rb: roaring64.And(a.rb, b.rb)}
}
