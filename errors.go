package ratingchain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRating is returned when a rating is NaN.
	ErrInvalidRating = errors.New("ratingchain: rating must be a number")

	// ErrDuplicate is the sentinel wrapped by ErrDuplicateMovie.
	ErrDuplicate = errors.New("ratingchain: duplicate movie id")

	// ErrInvalidN is returned when a rank query asks for a negative count.
	ErrInvalidN = errors.New("ratingchain: n must not be negative")

	// ErrInvalidRange is returned when a range query has lo > hi or a NaN bound.
	ErrInvalidRange = errors.New("ratingchain: invalid rating range")

	// ErrUndefinedSimilarity is the sentinel wrapped by UndefinedSimilarityError.
	ErrUndefinedSimilarity = errors.New("ratingchain: similarity is undefined")

	// ErrCursorExhausted is returned by Cursor.Next past the last record.
	ErrCursorExhausted = errors.New("ratingchain: cursor exhausted")

	// ErrNotInChain is returned when a record is not reachable from the chain.
	ErrNotInChain = errors.New("ratingchain: record not in chain")

	// ErrNilChain is returned when a nil chain is passed as an argument.
	ErrNilChain = errors.New("ratingchain: nil chain")
)

// ErrDuplicateMovie indicates an insert of a movie id that is already rated.
//
// errors.Is(err, ErrDuplicate) reports true for it.
type ErrDuplicateMovie struct {
	MovieID int
}

func (e *ErrDuplicateMovie) Error() string {
	return fmt.Sprintf("ratingchain: duplicate movie id %d", e.MovieID)
}

func (e *ErrDuplicateMovie) Unwrap() error { return ErrDuplicate }

// Reasons reported by UndefinedSimilarityError.
const (
	ReasonNoOverlap           = "no shared movies"
	ReasonInsufficientOverlap = "too few shared movies"
	ReasonZeroVariance        = "zero variance"
	ReasonNonFinite           = "non-finite ratings"
)

// UndefinedSimilarityError indicates a correlation whose denominator is zero,
// whose support is below the minimum overlap, or whose shared ratings are not
// all finite.
//
// errors.Is(err, ErrUndefinedSimilarity) reports true for it.
type UndefinedSimilarityError struct {
	Shared int
	Reason string
}

func (e *UndefinedSimilarityError) Error() string {
	return fmt.Sprintf("ratingchain: similarity is undefined: %s (shared=%d)", e.Reason, e.Shared)
}

func (e *UndefinedSimilarityError) Unwrap() error { return ErrUndefinedSimilarity }
