// Package ratingchain keeps one user's movie ratings in a sorted singly-linked
// chain and provides the algorithms a user-based recommender runs over it.
//
// A Chain stores only its first record. There is no cached length and no
// tail pointer, so every operation is expressed as a bounded forward scan:
// slow/fast cursors find the middle, a bounded window collects the last n
// records, and reversal flips links in place.
//
// # Quick Start
//
//	alice := ratingchain.New()
//	_ = alice.Insert(1, 5.0)
//	_ = alice.Insert(2, 3.5)
//	_ = alice.SetValue(2, 4.5) // moves movie 2 to its new position
//
//	v, ok := alice.Lookup(2) // 4.5, true
//
// # Queries
//
// Queries never modify the source chain; they return new chains built from
// fresh records:
//
//	top, _ := alice.TakeTopN(10)       // best rated
//	bottom, _ := alice.TakeBottomN(10) // worst rated, single pass
//	good, _ := alice.SelectRange(4, 5) // ratings in [4, 5]
//	median, ok := alice.Median()
//
// # Similarity
//
// Correlation computes Pearson's r over the movies two users both rated:
//
//	r, err := alice.Correlation(bob)
//	if errors.Is(err, ratingchain.ErrUndefinedSimilarity) {
//	    // no shared movies, or one side rated all shared movies alike
//	}
//
// # Reversal
//
// Reverse and ReverseFrom are destructive: they relink records in place and
// hand ownership to the returned chain. The reversed chain runs in ascending
// order and stays ascending under later inserts.
//
//	asc := ratingchain.Reverse(alice) // alice is now empty
//
// # Iteration
//
//	for id, rating := range alice.All() {
//	    fmt.Println(id, rating)
//	}
//
// Package render turns such sequences into text; ratingchain itself does no
// formatting.
//
// # Concurrency
//
// Chains are not safe for concurrent use. Serialize access externally.
package ratingchain
