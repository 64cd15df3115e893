package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatings(t *testing.T) {
	rng := NewRNG(4711)

	ratings := rng.Ratings(50, 80)

	assert.Len(t, ratings, 50)
	seen := make(map[int]bool)
	for _, r := range ratings {
		assert.False(t, seen[r.MovieID], "duplicate movie %d", r.MovieID)
		seen[r.MovieID] = true
		assert.GreaterOrEqual(t, r.MovieID, 0)
		assert.Less(t, r.MovieID, 80)
		assert.GreaterOrEqual(t, r.Value, 0.5)
		assert.LessOrEqual(t, r.Value, 5.0)
		assert.Equal(t, r.Value, math.Round(r.Value*2)/2)
	}
}

func TestRatingsCappedAtCatalog(t *testing.T) {
	rng := NewRNG(4711)

	assert.Len(t, rng.Ratings(10, 3), 3)
}

func TestPopularRatings(t *testing.T) {
	rng := NewRNG(4711)

	ratings := rng.PopularRatings(20, 200, 1.2)

	assert.NotEmpty(t, ratings)
	assert.LessOrEqual(t, len(ratings), 20)
	seen := make(map[int]bool)
	for _, r := range ratings {
		assert.False(t, seen[r.MovieID])
		seen[r.MovieID] = true
	}
}

func TestZipf(t *testing.T) {
	rng := NewRNG(4711)

	low := 0
	for range 1000 {
		v := rng.Zipf(100, 1.5)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 100)
		if v < 10 {
			low++
		}
	}
	assert.Greater(t, low, 500)
	assert.Equal(t, 0, rng.Zipf(1, 1.5))
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	r1 := rng.Ratings(5, 100)
	rng.Reset()
	r2 := rng.Ratings(5, 100)

	assert.Equal(t, r1, r2)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestSortedByRating(t *testing.T) {
	in := []Rating{{1, 3}, {2, 5}, {3, 3}, {4, 1}}

	assert.Equal(t, []Rating{{2, 5}, {1, 3}, {3, 3}, {4, 1}}, SortedByRating(in, true))
	assert.Equal(t, []Rating{{4, 1}, {1, 3}, {3, 3}, {2, 5}}, SortedByRating(in, false))
	assert.Equal(t, Rating{1, 3}, in[0], "input must not be modified")
}

func TestPearson(t *testing.T) {
	assert.InDelta(t, 1.0, Pearson([]float64{1, 2, 3}, []float64{2, 4, 6}), 1e-12)
	assert.InDelta(t, -1.0, Pearson([]float64{1, 2, 3}, []float64{3, 2, 1}), 1e-12)
	assert.True(t, math.IsNaN(Pearson([]float64{1, 1}, []float64{1, 2})))
	assert.True(t, math.IsNaN(Pearson(nil, nil)))
}
