package partitions

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/intervals"
	"github.com/iotaledger/hive.go/intervals/bounds"
	"github.com/iotaledger/hive.go/stringify"
)

// region Partition ////////////////////////////////////////////////////////////////////////////////////////////////////

// Partition is a bounded interval that is divided into a fixed number of indexed, adjacent subintervals.
type Partition[V any] interface {
	// Len returns the number of subintervals.
	Len() int

	// Index returns the index of the subinterval that contains the value and a flag that indicates if the value lies
	// inside the Partition.
	Index(value V) (index int, found bool)

	// SubInterval returns the subinterval with the given index and a flag that indicates if it exists.
	SubInterval(index int) (subInterval SubInterval[V], exists bool)
}

// Digitise returns the subinterval of the Partition that contains the value.
func Digitise[V any](partition Partition[V], value V) (subInterval SubInterval[V], found bool) {
	index, found := partition.Index(value)
	if !found {
		return subInterval, false
	}

	return partition.SubInterval(index)
}

// SubIntervals returns all subintervals of the Partition in ascending order.
func SubIntervals[V any](partition Partition[V]) []SubInterval[V] {
	subIntervals := make([]SubInterval[V], 0, partition.Len())
	for index, length := 0, partition.Len(); index < length; index++ {
		if subInterval, exists := partition.SubInterval(index); exists {
			subIntervals = append(subIntervals, subInterval)
		}
	}

	return subIntervals
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region SubInterval //////////////////////////////////////////////////////////////////////////////////////////////////

// SubInterval is one indexed part of a Partition. Its left side is always Closed, its right side is Open except for
// the last SubInterval of a Partition.
type SubInterval[V any] struct {
	intervals.Interval[V]

	// Index is the position of the SubInterval in its Partition.
	Index int
}

func newSubInterval[V any](cmp bounds.Comparator[V], index int, left, right V, last bool) SubInterval[V] {
	return SubInterval[V]{
		Interval: intervals.NewUncheckedWithComparator(cmp, bounds.Closed(left), bounds.OpenOrClosed(!last, right)),
		Index:    index,
	}
}

// Edges returns the values of the left and the right side of the SubInterval.
func (s SubInterval[V]) Edges() (left, right V) {
	left, _ = s.Left().Value()
	right, _ = s.Right().Value()

	return left, right
}

// String returns a human-readable version of the SubInterval.
func (s SubInterval[V]) String() string {
	return stringify.Struct("SubInterval",
		stringify.NewStructField("index", s.Index),
		stringify.NewStructField("interval", s.Interval.String()),
	)
}

// Width returns the distance between the edges of the SubInterval.
func Width[V constraints.Numeric](subInterval SubInterval[V]) V {
	left, right := subInterval.Edges()

	return right - left
}

// Midpoint returns the value halfway between the edges of the SubInterval.
func Midpoint[V constraints.Numeric](subInterval SubInterval[V]) V {
	left, right := subInterval.Edges()

	return left + (right-left)/2
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
