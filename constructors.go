package intervals

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/intervals/bounds"
)

// New creates an Interval over a naturally ordered domain from the given Bounds after checking their order.
func New[V constraints.Ordered](left, right bounds.Bound[V]) (Interval[V], error) {
	return NewWithComparator(bounds.Natural[V](), left, right)
}

// NewUnchecked creates an Interval over a naturally ordered domain from the given Bounds without checking their order.
func NewUnchecked[V constraints.Ordered](left, right bounds.Bound[V]) Interval[V] {
	return NewUncheckedWithComparator(bounds.Natural[V](), left, right)
}

// All returns the Interval that contains every value.
func All[V constraints.Ordered]() Interval[V] {
	return NewUnchecked(bounds.Unbounded[V](), bounds.Unbounded[V]())
}

// LeftBounded returns the Interval that is limited by the given Bound on its left side only.
func LeftBounded[V constraints.Ordered](left bounds.Bound[V]) Interval[V] {
	return NewUnchecked(left, bounds.Unbounded[V]())
}

// RightBounded returns the Interval that is limited by the given Bound on its right side only.
func RightBounded[V constraints.Ordered](right bounds.Bound[V]) Interval[V] {
	return NewUnchecked(bounds.Unbounded[V](), right)
}

// GreaterThan returns the Interval that contains all values that are strictly bigger than the given one.
func GreaterThan[V constraints.Ordered](lower V) Interval[V] {
	return LeftBounded(bounds.Open(lower))
}

// AtLeast returns the Interval that contains all values that are bigger than or equal to the given one.
func AtLeast[V constraints.Ordered](lower V) Interval[V] {
	return LeftBounded(bounds.Closed(lower))
}

// LessThan returns the Interval that contains all values that are strictly smaller than the given one.
func LessThan[V constraints.Ordered](upper V) Interval[V] {
	return RightBounded(bounds.Open(upper))
}

// AtMost returns the Interval that contains all values that are smaller than or equal to the given one.
func AtMost[V constraints.Ordered](upper V) Interval[V] {
	return RightBounded(bounds.Closed(upper))
}

// Open returns the Interval (lower, upper). It fails if lower is not strictly smaller than upper.
func Open[V constraints.Ordered](lower, upper V) (Interval[V], error) {
	return New(bounds.Open(lower), bounds.Open(upper))
}

// OpenUnchecked returns the Interval (lower, upper) without checking the order of the values.
func OpenUnchecked[V constraints.Ordered](lower, upper V) Interval[V] {
	return NewUnchecked(bounds.Open(lower), bounds.Open(upper))
}

// Closed returns the Interval [lower, upper]. It fails if lower is bigger than upper.
func Closed[V constraints.Ordered](lower, upper V) (Interval[V], error) {
	return New(bounds.Closed(lower), bounds.Closed(upper))
}

// ClosedUnchecked returns the Interval [lower, upper] without checking the order of the values.
func ClosedUnchecked[V constraints.Ordered](lower, upper V) Interval[V] {
	return NewUnchecked(bounds.Closed(lower), bounds.Closed(upper))
}

// ClosedOpen returns the Interval [lower, upper). It fails if lower is not strictly smaller than upper.
func ClosedOpen[V constraints.Ordered](lower, upper V) (Interval[V], error) {
	return New(bounds.Closed(lower), bounds.Open(upper))
}

// ClosedOpenUnchecked returns the Interval [lower, upper) without checking the order of the values.
func ClosedOpenUnchecked[V constraints.Ordered](lower, upper V) Interval[V] {
	return NewUnchecked(bounds.Closed(lower), bounds.Open(upper))
}

// OpenClosed returns the Interval (lower, upper]. It fails if lower is not strictly smaller than upper.
func OpenClosed[V constraints.Ordered](lower, upper V) (Interval[V], error) {
	return New(bounds.Open(lower), bounds.Closed(upper))
}

// OpenClosedUnchecked returns the Interval (lower, upper] without checking the order of the values.
func OpenClosedUnchecked[V constraints.Ordered](lower, upper V) Interval[V] {
	return NewUnchecked(bounds.Open(lower), bounds.Closed(upper))
}

// Degenerate returns the Interval [value, value] that contains exactly one value.
func Degenerate[V constraints.Ordered](value V) Interval[V] {
	return ClosedUnchecked(value, value)
}

// Unit returns the Interval [0, 1].
func Unit[V constraints.Numeric]() Interval[V] {
	return ClosedUnchecked[V](0, 1)
}
