package ratingchain

// Order is the direction a chain is sorted in.
type Order int

const (
	// Descending keeps the best rated movie first. It is the default.
	Descending Order = iota
	// Ascending keeps the worst rated movie first. Reversed chains use it.
	Ascending
)

// String returns the name of the order.
func (o Order) String() string {
	switch o {
	case Descending:
		return "descending"
	case Ascending:
		return "ascending"
	default:
		return "unknown"
	}
}

// Reverse returns the opposite order.
func (o Order) Reverse() Order {
	if o == Ascending {
		return Descending
	}
	return Ascending
}

// precedes reports whether rating a belongs strictly before rating b.
// Equal ratings never precede each other.
func (o Order) precedes(a, b float64) bool {
	if o == Ascending {
		return a < b
	}
	return a > b
}
