package bounds

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/lo"
)

const (
	// Less indicates that the first value is smaller than the second one.
	Less Ordering = -1

	// Equal indicates that both values are equal.
	Equal Ordering = 0

	// Greater indicates that the first value is bigger than the second one.
	Greater Ordering = 1

	// Incomparable indicates that the values have no defined order (i.e. NaN).
	Incomparable Ordering = 2
)

// Ordering is the result of comparing two values of a partially ordered domain.
type Ordering int8

// String returns a human-readable representation of the Ordering.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "Incomparable"
	}
}

// Comparator is a function that compares two values of the domain V.
type Comparator[V any] func(a, b V) Ordering

// Natural returns the Comparator that uses the built-in ordering of V. NaN is incomparable to every value.
func Natural[V constraints.Ordered]() Comparator[V] {
	return func(a, b V) Ordering {
		//nolint:gocritic // NaN is the only value that is not equal to itself
		if a != a || b != b {
			return Incomparable
		}

		return Ordering(lo.Comparator(a, b))
	}
}

// FromCompare returns a Comparator for a domain whose values implement constraints.Comparable (a total order).
func FromCompare[V constraints.Comparable[V]]() Comparator[V] {
	return func(a, b V) Ordering {
		switch result := a.Compare(b); {
		case result < 0:
			return Less
		case result > 0:
			return Greater
		default:
			return Equal
		}
	}
}

// compare compares the values of two Bounds. It reports Incomparable if one of them carries no value.
func compare[V any](cmp Comparator[V], a, b Bound[V]) Ordering {
	if !a.IsBounded() || !b.IsBounded() {
		return Incomparable
	}

	return cmp(a.value, b.value)
}
