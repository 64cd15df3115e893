// Package bitmap provides compressed movie-id sets backed by 64-bit Roaring
// bitmaps.
//
// Movie ids are signed integers. They are mapped onto the uint64 universe by
// two's-complement reinterpretation, which is a bijection, so negative ids
// round-trip unchanged. Iteration order follows the unsigned universe:
// non-negative ids in ascending order first, then negative ids.
//
// # Example Usage
//
//	a := bitmap.New()
//	a.Add(1)
//	a.Add(7)
//
//	b := bitmap.New()
//	b.Add(7)
//	b.Add(9)
//
//	shared := bitmap.Intersect(a, b) // {7}
//	for id := range shared.All() {
//	    // process shared movie id
//	}
package bitmap
