package testutil

import (
	"math"
	"math/rand"
	"slices"
	"sync"
)

// Rating is a (movie id, rating) pair.
type Rating struct {
	MovieID int
	Value   float64
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Stars returns a rating on the half-star scale 0.5, 1.0, ..., 5.0.
func (r *RNG) Stars() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.starsLocked()
}

func (r *RNG) starsLocked() float64 {
	return float64(r.rand.Intn(10)+1) / 2
}

// Ratings generates num ratings for distinct movies drawn from [0, catalog).
// Ratings are on the half-star scale, so ties are frequent.
// num is capped at catalog.
func (r *RNG) Ratings(num, catalog int) []Rating {
	r.mu.Lock()
	defer r.mu.Unlock()

	num = min(num, catalog)
	ids := r.rand.Perm(catalog)[:num]
	out := make([]Rating, num)
	for i, id := range ids {
		out[i] = Rating{MovieID: id, Value: r.starsLocked()}
	}
	return out
}

// PopularRatings generates up to num ratings whose movie ids follow a Zipf
// distribution over [0, catalog): low ids are popular, so ratings generated
// for different users overlap the way real rating sets do.
// s is the skew (s=1.0 standard Zipf, larger is heavier).
func (r *RNG) PopularRatings(num, catalog int, s float64) []Rating {
	r.mu.Lock()
	defer r.mu.Unlock()

	num = min(num, catalog)
	seen := make(map[int]struct{}, num)
	out := make([]Rating, 0, num)
	for attempts := 0; len(out) < num && attempts < num*50; attempts++ {
		id := r.zipfLocked(catalog, s)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, Rating{MovieID: id, Value: r.starsLocked()})
	}
	return out
}

// Zipf returns a Zipfian-distributed value in [0, n).
// Uses Zipf's law: P(k) ∝ 1/k^s where s is the skew parameter.
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1
		}
	}

	return n - 1
}

// SortedByRating returns a copy of ratings in the order a chain keeps them:
// best first when descending, ties in input order.
// This is the ground truth for chain invariants.
func SortedByRating(ratings []Rating, descending bool) []Rating {
	out := slices.Clone(ratings)
	slices.SortStableFunc(out, func(a, b Rating) int {
		if descending {
			a, b = b, a
		}
		switch {
		case a.Value < b.Value:
			return -1
		case a.Value > b.Value:
			return 1
		default:
			return 0
		}
	})
	return out
}

// Pearson computes the correlation of two aligned samples with the two-pass,
// mean-centered formula. It returns NaN when either sample has no variance.
// It serves as an independent reference for streaming implementations.
func Pearson(xs, ys []float64) float64 {
	if len(xs) != len(ys) || len(xs) == 0 {
		return math.NaN()
	}

	var meanX, meanY float64
	for i := range xs {
		meanX += xs[i]
		meanY += ys[i]
	}
	meanX /= float64(len(xs))
	meanY /= float64(len(ys))

	var num, denX, denY float64
	for i := range xs {
		dx, dy := xs[i]-meanX, ys[i]-meanY
		num += dx * dy
		denX += dx * dx
		denY += dy * dy
	}
	if denX == 0 || denY == 0 {
		return math.NaN()
	}
	return num / math.Sqrt(denX*denY)
}
