package partitions

import (
	"fmt"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/intervals/bounds"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/stringify"
)

// Declarative is a Partition whose subintervals are delimited by an explicit list of strictly ascending breakpoints.
// N breakpoints define N-1 subintervals.
type Declarative[V any] struct {
	breakpoints []V
	cmp         bounds.Comparator[V]
}

// NewDeclarative creates a Declarative Partition over a naturally ordered domain.
func NewDeclarative[V constraints.Ordered](breakpoints ...V) (*Declarative[V], error) {
	return NewDeclarativeWithComparator(bounds.Natural[V](), breakpoints...)
}

// NewDeclarativeWithComparator creates a Declarative Partition whose breakpoints are ordered by the given Comparator.
func NewDeclarativeWithComparator[V any](cmp bounds.Comparator[V], breakpoints ...V) (*Declarative[V], error) {
	if len(breakpoints) < 2 {
		return nil, ierrors.Wrapf(ErrIllFormedBreakpoints, "at least 2 breakpoints are required (got %d)", len(breakpoints))
	}

	for i := 1; i < len(breakpoints); i++ {
		if cmp(breakpoints[i-1], breakpoints[i]) != bounds.Less {
			return nil, ierrors.Wrapf(ErrIllFormedBreakpoints, "breakpoint %d (%v) does not follow %v", i, breakpoints[i], breakpoints[i-1])
		}
	}

	return &Declarative[V]{
		breakpoints: lo.CopySlice(breakpoints),
		cmp:         cmp,
	}, nil
}

// Len returns the number of subintervals.
func (d *Declarative[V]) Len() int {
	return len(d.breakpoints) - 1
}

// Breakpoints returns a copy of the breakpoints.
func (d *Declarative[V]) Breakpoints() []V {
	return lo.CopySlice(d.breakpoints)
}

// Breakpoint returns the breakpoint with the given index and a flag that indicates if it exists.
func (d *Declarative[V]) Breakpoint(index int) (breakpoint V, exists bool) {
	if index < 0 || index >= len(d.breakpoints) {
		return breakpoint, false
	}

	return d.breakpoints[index], true
}

// Index returns the index of the subinterval that contains the value. The last breakpoint belongs to the last
// subinterval.
func (d *Declarative[V]) Index(value V) (index int, found bool) {
	last := len(d.breakpoints) - 1

	switch d.cmp(value, d.breakpoints[last]) {
	case bounds.Equal:
		return last - 1, true
	case bounds.Greater, bounds.Incomparable:
		return 0, false
	}

	if ordering := d.cmp(value, d.breakpoints[0]); ordering == bounds.Less || ordering == bounds.Incomparable {
		return 0, false
	}

	for low, high := 0, last; low < high; {
		middle := (low + high) / 2

		lower, upper := d.cmp(d.breakpoints[middle], value), d.cmp(d.breakpoints[middle+1], value)
		switch {
		case lower == bounds.Incomparable || upper == bounds.Incomparable:
			return 0, false
		case lower == bounds.Greater:
			high = middle
		case upper == bounds.Greater:
			return middle, true
		case upper == bounds.Equal:
			return middle + 1, true
		default:
			low = middle + 1
		}
	}

	return 0, false
}

// SubInterval returns the subinterval with the given index.
func (d *Declarative[V]) SubInterval(index int) (subInterval SubInterval[V], exists bool) {
	if index < 0 || index >= d.Len() {
		return subInterval, false
	}

	return newSubInterval(d.cmp, index, d.breakpoints[index], d.breakpoints[index+1], index == d.Len()-1), true
}

// String returns a human-readable version of the Declarative Partition.
func (d *Declarative[V]) String() string {
	return stringify.Struct("Declarative",
		stringify.NewStructField("breakpoints", fmt.Sprint(d.breakpoints)),
		stringify.NewStructField("subIntervals", d.Len()),
	)
}

// code contract (make sure the type implements all required methods)
var _ Partition[string] = &Declarative[string]{}
