package ratingchain

import (
	"slices"
	"testing"

	"github.com/hupe1980/ratingchain/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverse(t *testing.T) {
	t.Run("flips order and empties source", func(t *testing.T) {
		c := chainOf(t, []pair{{MovieID: 1, Value: 5}, {MovieID: 2, Value: 3}, {MovieID: 3, Value: 1}})

		out := Reverse(c)

		assert.Equal(t, []pair{{MovieID: 3, Value: 1}, {MovieID: 2, Value: 3}, {MovieID: 1, Value: 5}}, collect(out))
		assert.Equal(t, Ascending, out.Order())
		assert.True(t, c.IsEmpty())
		requireSorted(t, out)
	})

	t.Run("reuses records", func(t *testing.T) {
		c := chainOf(t, []pair{{MovieID: 1, Value: 5}, {MovieID: 2, Value: 3}, {MovieID: 3, Value: 1}})
		head, tail := c.Head(), c.Head().Next().Next()

		out := Reverse(c)

		assert.Same(t, tail, out.Head())
		assert.Same(t, head, out.Head().Next().Next())
		assert.Nil(t, head.Next())
	})

	t.Run("reversed chain keeps ascending order on insert", func(t *testing.T) {
		out := Reverse(chainOf(t, []pair{{MovieID: 1, Value: 5}, {MovieID: 2, Value: 3}, {MovieID: 3, Value: 1}}))

		require.NoError(t, out.Insert(4, 2))
		require.NoError(t, out.Insert(5, 0.5))
		require.NoError(t, out.SetValue(1, 2.5))

		assert.Equal(t, []pair{{MovieID: 5, Value: 0.5}, {MovieID: 3, Value: 1}, {MovieID: 4, Value: 2}, {MovieID: 1, Value: 2.5}, {MovieID: 2, Value: 3}}, collect(out))
		requireSorted(t, out)
	})

	t.Run("twice restores descending", func(t *testing.T) {
		c := chainOf(t, []pair{{MovieID: 1, Value: 5}, {MovieID: 2, Value: 3}, {MovieID: 3, Value: 1}})

		out := Reverse(Reverse(c))

		assert.Equal(t, Descending, out.Order())
		assert.Equal(t, []pair{{MovieID: 1, Value: 5}, {MovieID: 2, Value: 3}, {MovieID: 3, Value: 1}}, collect(out))
	})

	t.Run("single record", func(t *testing.T) {
		out := Reverse(chainOf(t, []pair{{MovieID: 7, Value: 4}}))

		assert.Equal(t, []pair{{MovieID: 7, Value: 4}}, collect(out))
	})

	t.Run("empty", func(t *testing.T) {
		out := Reverse(New())

		assert.True(t, out.IsEmpty())
		assert.Equal(t, Ascending, out.Order())
	})

	t.Run("nil", func(t *testing.T) {
		out := Reverse(nil)

		require.NotNil(t, out)
		assert.True(t, out.IsEmpty())
	})

	t.Run("clone keeps original", func(t *testing.T) {
		c := chainOf(t, []pair{{MovieID: 1, Value: 5}, {MovieID: 2, Value: 3}})

		out := Reverse(c.Clone())

		assert.Equal(t, []pair{{MovieID: 1, Value: 5}, {MovieID: 2, Value: 3}}, collect(c))
		assert.Equal(t, []pair{{MovieID: 2, Value: 3}, {MovieID: 1, Value: 5}}, collect(out))
	})

	t.Run("randomized", func(t *testing.T) {
		rng := testutil.NewRNG(11)
		ratings := rng.Ratings(100, 500)

		want := testutil.SortedByRating(ratings, true)
		slices.Reverse(want)

		out := Reverse(chainOf(t, ratings))

		assert.Equal(t, want, collect(out))
		requireSorted(t, out)
	})
}

func TestReverseFrom(t *testing.T) {
	t.Run("mid chain keeps prefix", func(t *testing.T) {
		c := chainOf(t, []pair{{MovieID: 1, Value: 5}, {MovieID: 2, Value: 4}, {MovieID: 3, Value: 3}, {MovieID: 4, Value: 2}})

		out, err := c.ReverseFrom(c.Head().Next())
		require.NoError(t, err)

		assert.Equal(t, []pair{{MovieID: 4, Value: 2}, {MovieID: 3, Value: 3}, {MovieID: 2, Value: 4}}, collect(out))
		assert.Equal(t, []pair{{MovieID: 1, Value: 5}}, collect(c))
		requireSorted(t, c)
		requireSorted(t, out)
	})

	t.Run("from tail", func(t *testing.T) {
		c := chainOf(t, []pair{{MovieID: 1, Value: 5}, {MovieID: 2, Value: 4}})

		out, err := c.ReverseFrom(c.Head().Next())
		require.NoError(t, err)

		assert.Equal(t, []pair{{MovieID: 2, Value: 4}}, collect(out))
		assert.Equal(t, []pair{{MovieID: 1, Value: 5}}, collect(c))
	})

	t.Run("from head", func(t *testing.T) {
		c := chainOf(t, []pair{{MovieID: 1, Value: 5}, {MovieID: 2, Value: 4}})

		out, err := c.ReverseFrom(c.Head())
		require.NoError(t, err)

		assert.Equal(t, []pair{{MovieID: 2, Value: 4}, {MovieID: 1, Value: 5}}, collect(out))
		assert.True(t, c.IsEmpty())
	})

	t.Run("foreign record", func(t *testing.T) {
		c := chainOf(t, []pair{{MovieID: 1, Value: 5}, {MovieID: 2, Value: 4}})
		other := chainOf(t, []pair{{MovieID: 1, Value: 5}, {MovieID: 2, Value: 4}})

		out, err := c.ReverseFrom(other.Head())

		assert.ErrorIs(t, err, ErrNotInChain)
		assert.Nil(t, out)
		assert.Equal(t, []pair{{MovieID: 1, Value: 5}, {MovieID: 2, Value: 4}}, collect(c))
	})

	t.Run("nil start", func(t *testing.T) {
		c := chainOf(t, []pair{{MovieID: 1, Value: 5}})

		_, err := c.ReverseFrom(nil)

		assert.ErrorIs(t, err, ErrNotInChain)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("detached record is gone", func(t *testing.T) {
		c := chainOf(t, []pair{{MovieID: 1, Value: 5}, {MovieID: 2, Value: 4}, {MovieID: 3, Value: 3}})
		mid := c.Head().Next()

		_, err := c.ReverseFrom(mid)
		require.NoError(t, err)

		_, err = c.ReverseFrom(mid)
		assert.ErrorIs(t, err, ErrNotInChain)
	})
}
