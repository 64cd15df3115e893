// Package testutil provides testing utilities for ratingchain.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random rating sets and computing
// ground truth for chain order and correlation.
//
// # Random Ratings
//
//	rng := testutil.NewRNG(seed)
//	ratings := rng.Ratings(100, 1000)              // distinct movies, half-star values
//	popular := rng.PopularRatings(100, 1000, 1.2) // Zipf-skewed movie ids
//
// # Ground Truth
//
//	want := testutil.SortedByRating(ratings, true)
//	r := testutil.Pearson(xs, ys)
package testutil
