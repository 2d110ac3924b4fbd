// Package intervals implements intervals over an ordered value domain whose sides are open, closed, unbounded or
// decided at runtime. Intervals are immutable values: every operation returns a new Interval.
package intervals

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/intervals/bounds"
)

// Interval is a contiguous set of values of the domain V that is delimited by a left and a right Bound.
//
// The zero value is the fully unbounded Interval without a Comparator. It adopts the Comparator of the Interval it is
// combined with.
type Interval[V any] struct {
	left  bounds.Bound[V]
	right bounds.Bound[V]
	cmp   bounds.Comparator[V]
}

// NewWithComparator creates an Interval from the given Bounds after checking that the left Bound does not lie after
// the right Bound.
func NewWithComparator[V any](cmp bounds.Comparator[V], left, right bounds.Bound[V]) (interval Interval[V], err error) {
	if err = bounds.Validate(cmp, left, right); err != nil {
		return interval, ierrors.Wrap(err, "failed to create interval")
	}

	return NewUncheckedWithComparator(cmp, left, right), nil
}

// NewUncheckedWithComparator creates an Interval from the given Bounds without checking their order.
func NewUncheckedWithComparator[V any](cmp bounds.Comparator[V], left, right bounds.Bound[V]) Interval[V] {
	return Interval[V]{
		left:  left,
		right: right,
		cmp:   cmp,
	}
}

// Left returns the left Bound of the Interval.
func (i Interval[V]) Left() bounds.Bound[V] {
	return i.left
}

// Right returns the right Bound of the Interval.
func (i Interval[V]) Right() bounds.Bound[V] {
	return i.right
}

// Comparator returns the Comparator that orders the values of the Interval.
func (i Interval[V]) Comparator() bounds.Comparator[V] {
	return i.cmp
}

// Intersect returns the Interval of the values that are contained in both Intervals. The flag is false if the
// intersection is empty.
func (i Interval[V]) Intersect(other Interval[V]) (intersection Interval[V], nonEmpty bool) {
	cmp := i.sharedComparator(other)

	left := bounds.PinchLeft(cmp, i.left, other.left)
	right := bounds.PinchRight(cmp, i.right, other.right)
	if bounds.Validate(cmp, left, right) != nil {
		return intersection, false
	}

	return NewUncheckedWithComparator(cmp, left, right), true
}

// UnionClosure returns the smallest closed (or unbounded) Interval that contains both Intervals.
func (i Interval[V]) UnionClosure(other Interval[V]) Interval[V] {
	cmp := i.sharedComparator(other)

	return NewUncheckedWithComparator(cmp,
		bounds.UnrollLeft(cmp, i.left, other.left).WithLimitPoint(),
		bounds.UnrollRight(cmp, i.right, other.right).WithLimitPoint(),
	)
}

// Contains checks if the value lies inside the Interval.
func (i Interval[V]) Contains(value V) bool {
	return bounds.Contains(i.cmp, i.left, i.right, value)
}

// IsDegenerate returns true if the Interval contains exactly one value.
func (i Interval[V]) IsDegenerate() bool {
	if !i.left.IsClosed() || !i.right.IsClosed() {
		return false
	}

	leftValue, _ := i.left.Value()
	rightValue, _ := i.right.Value()

	return i.cmp(leftValue, rightValue) == bounds.Equal
}

// IsBounded returns true if both sides of the Interval carry a value.
func (i Interval[V]) IsBounded() bool {
	return i.left.IsBounded() && i.right.IsBounded()
}

// Equal checks if both Intervals behave identically on both sides.
func (i Interval[V]) Equal(other Interval[V]) bool {
	cmp := i.sharedComparator(other)

	return bounds.EqualBounds(cmp, i.left, other.left) && bounds.EqualBounds(cmp, i.right, other.right)
}

// String returns a human-readable version of the Interval.
func (i Interval[V]) String() string {
	return i.left.FormatLeft() + ", " + i.right.FormatRight()
}

// sharedComparator returns the Comparator used to combine two Intervals.
func (i Interval[V]) sharedComparator(other Interval[V]) bounds.Comparator[V] {
	if i.cmp == nil {
		return other.cmp
	}

	return i.cmp
}
