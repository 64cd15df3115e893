package ratingchain

import (
	"math"
	"slices"
	"time"

	"github.com/hupe1980/ratingchain/internal/bitmap"
)

// ratingIndex is a value-by-id view of a chain together with its id set.
type ratingIndex struct {
	values map[int]float64
	ids    *bitmap.IDSet
}

func (c *Chain) index() ratingIndex {
	idx := ratingIndex{
		values: make(map[int]float64),
		ids:    bitmap.New(),
	}
	for r := c.head; r != nil; r = r.next {
		idx.values[r.id] = r.value
		idx.ids.Add(r.id)
	}
	return idx
}

// Correlation returns the Pearson correlation coefficient between the ratings
// of c and other, restricted to the movies rated in both:
//
//	r = (n·Σxy − Σx·Σy) / (sqrt(n·Σx² − (Σx)²) · sqrt(n·Σy² − (Σy)²))
//
// The result lies in [-1, 1] and is symmetric in c and other.
//
// When the coefficient is undefined it returns NaN together with an
// *UndefinedSimilarityError: the chains share no movie, the shared ratings of
// either side are all equal (zero variance), a shared rating is infinite, or
// fewer movies are shared than the larger minimum overlap of the two chains
// (see WithMinOverlap). It returns ErrNilChain if other is nil.
func (c *Chain) Correlation(other *Chain) (float64, error) {
	if other == nil {
		return math.NaN(), ErrNilChain
	}

	start := time.Now()
	r, shared, err := c.correlation(other)
	c.opts.metricsCollector.RecordSimilarity(shared, time.Since(start), err)
	c.opts.logger.LogSimilarity(shared, r, err)
	return r, err
}

func (c *Chain) correlation(other *Chain) (float64, int, error) {
	xs, ys := c.index(), other.index()
	common := bitmap.Intersect(xs.ids, ys.ids)

	n := common.Cardinality()
	if n == 0 {
		return math.NaN(), 0, &UndefinedSimilarityError{Shared: 0, Reason: ReasonNoOverlap}
	}
	if n < max(c.opts.minOverlap, other.opts.minOverlap) {
		return math.NaN(), n, &UndefinedSimilarityError{Shared: n, Reason: ReasonInsufficientOverlap}
	}

	x := make([]float64, 0, n)
	y := make([]float64, 0, n)
	for id := range common.All() {
		x = append(x, xs.values[id])
		y = append(y, ys.values[id])
	}

	// Checked on the raw values: with rounding, n·Σx² − (Σx)² of identical
	// ratings need not come out as exactly zero.
	if constant(x) || constant(y) {
		return math.NaN(), n, &UndefinedSimilarityError{Shared: n, Reason: ReasonZeroVariance}
	}

	// r is invariant under scaling either side by a positive factor. Scaling
	// into [-1, 1] keeps the squared sums finite for any finite ratings.
	mx, my := maxAbs(x), maxAbs(y)
	if math.IsInf(mx, 0) || math.IsInf(my, 0) {
		return math.NaN(), n, &UndefinedSimilarityError{Shared: n, Reason: ReasonNonFinite}
	}

	var sx, sy, sxy, sx2, sy2 float64
	for i := range x {
		xi, yi := x[i]/mx, y[i]/my
		sx += xi
		sy += yi
		sxy += xi * yi
		sx2 += xi * xi
		sy2 += yi * yi
	}

	fn := float64(n)
	num := fn*sxy - sx*sy
	// A nearly constant side can round to a zero or slightly negative spread.
	den := math.Sqrt(fn*sx2-sx*sx) * math.Sqrt(fn*sy2-sy*sy)
	if den == 0 || math.IsNaN(den) {
		return math.NaN(), n, &UndefinedSimilarityError{Shared: n, Reason: ReasonZeroVariance}
	}

	return clamp(num/den, -1, 1), n, nil
}

func constant(vs []float64) bool {
	for _, v := range vs[1:] {
		if v != vs[0] {
			return false
		}
	}
	return true
}

// maxAbs returns the largest magnitude in vs. vs must hold a non-zero value.
func maxAbs(vs []float64) float64 {
	m := 0.0
	for _, v := range vs {
		m = math.Max(m, math.Abs(v))
	}
	return m
}

// SharedMovies returns the ids of the movies rated in both c and other,
// in ascending order.
func (c *Chain) SharedMovies(other *Chain) []int {
	if other == nil {
		return nil
	}
	ids := slices.Collect(bitmap.Intersect(c.index().ids, other.index().ids).All())
	slices.Sort(ids)
	return ids
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
