package ratingchain

import (
	"testing"

	"github.com/hupe1980/ratingchain/testutil"
	"github.com/stretchr/testify/require"
)

type pair = testutil.Rating

// chainOf inserts the pairs in order into a new chain.
func chainOf(t *testing.T, pairs []pair, opts ...Option) *Chain {
	t.Helper()

	c := New(opts...)
	for _, p := range pairs {
		require.NoError(t, c.Insert(p.MovieID, p.Value))
	}
	return c
}

// collect returns the chain's pairs in chain order.
func collect(c *Chain) []pair {
	var out []pair
	for id, v := range c.All() {
		out = append(out, pair{MovieID: id, Value: v})
	}
	return out
}

// requireSorted checks the order invariant and id uniqueness.
func requireSorted(t *testing.T, c *Chain) {
	t.Helper()

	seen := make(map[int]bool)
	var prev *Record
	for r := c.Head(); r != nil; r = r.Next() {
		require.False(t, seen[r.ID()], "duplicate movie %d", r.ID())
		seen[r.ID()] = true
		if prev != nil {
			require.False(t, c.Order().precedes(r.Value(), prev.Value()),
				"%v out of %s order after %v", r, c.Order(), prev)
		}
		prev = r
	}
}
