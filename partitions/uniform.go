package partitions

import (
	"math"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/intervals"
	"github.com/iotaledger/hive.go/stringify"
)

// Uniform is a Partition of the closed interval [left, right] into subintervals of equal width.
//
// Over integer domains the edges are rounded up to the next integer, so that every subinterval contains exactly the
// integers that Index maps to it. Every subinterval contains at least one value, which limits count to right-left+1
// over integers and to 1 for a single point.
type Uniform[V constraints.Numeric] struct {
	count    int
	left     V
	right    V
	integral bool
	interval intervals.Interval[V]
}

// NewUniform creates a Uniform Partition of [left, right] into count subintervals.
func NewUniform[V constraints.Numeric](count int, left, right V) (*Uniform[V], error) {
	if count < 1 {
		return nil, ierrors.Wrapf(ErrInvalidCount, "count must be at least 1 (got %d)", count)
	}

	interval, err := intervals.Closed(left, right)
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to create uniform partition")
	}

	if math.IsInf(float64(left), 0) || math.IsInf(float64(right), 0) || math.IsInf(float64(right)-float64(left), 0) {
		return nil, ierrors.Wrapf(ErrNotFinite, "cannot partition %s", interval)
	}

	u := &Uniform[V]{
		count:    count,
		left:     left,
		right:    right,
		integral: isIntegral[V](),
		interval: interval,
	}

	for index := 1; index <= count; index++ {
		if previous, next := u.edge(index-1), u.edge(index); next < previous || (next == previous && index < count) {
			return nil, ierrors.Wrapf(ErrInvalidCount, "%s can not be divided into %d non-empty subintervals", interval, count)
		}
	}

	return u, nil
}

// Linspace creates a Uniform Partition of the given closed interval into count subintervals.
func Linspace[V constraints.Numeric](interval intervals.Interval[V], count int) (*Uniform[V], error) {
	if !interval.Left().IsClosed() || !interval.Right().IsClosed() {
		return nil, ierrors.Wrapf(ErrNotClosed, "cannot partition %s", interval)
	}

	left, _ := interval.Left().Value()
	right, _ := interval.Right().Value()

	return NewUniform(count, left, right)
}

// Len returns the number of subintervals.
func (u *Uniform[V]) Len() int {
	return u.count
}

// Interval returns the closed interval that is covered by the Partition.
func (u *Uniform[V]) Interval() intervals.Interval[V] {
	return u.interval
}

// Width returns the width of the subintervals.
//
// Over integer domains the width is truncated while the edges are rounded up, so the subintervals are Width() or
// Width()+1 wide.
func (u *Uniform[V]) Width() V {
	return (u.right - u.left) / V(u.count)
}

// Index returns the index of the subinterval that contains the value. The right edge belongs to the last subinterval.
func (u *Uniform[V]) Index(value V) (index int, found bool) {
	if !u.interval.Contains(value) {
		return 0, false
	}

	if value == u.right {
		return u.count - 1, true
	}

	span := float64(u.right) - float64(u.left)
	index = max(0, min(u.count-1, int(math.Floor((float64(value)-float64(u.left))*float64(u.count)/span))))

	// the estimate can be off by one at the edges due to rounding
	for index > 0 && value < u.edge(index) {
		index--
	}
	for index < u.count-1 && value >= u.edge(index+1) {
		index++
	}

	return index, true
}

// SubInterval returns the subinterval with the given index.
func (u *Uniform[V]) SubInterval(index int) (subInterval SubInterval[V], exists bool) {
	if index < 0 || index >= u.count {
		return subInterval, false
	}

	return newSubInterval(u.interval.Comparator(), index, u.edge(index), u.edge(index+1), index == u.count-1), true
}

// String returns a human-readable version of the Uniform Partition.
func (u *Uniform[V]) String() string {
	return stringify.Struct("Uniform",
		stringify.NewStructField("count", u.count),
		stringify.NewStructField("interval", u.interval.String()),
	)
}

// edge returns the left edge of the subinterval with the given index (the right edge of the Partition for count).
func (u *Uniform[V]) edge(index int) V {
	switch {
	case index <= 0:
		return u.left
	case index >= u.count:
		return u.right
	case u.integral:
		return u.left + V(math.Ceil((float64(u.right)-float64(u.left))*float64(index)/float64(u.count)))
	default:
		return u.left + V(index)*u.Width()
	}
}

// isIntegral returns true if V is an integer type.
func isIntegral[V constraints.Numeric]() bool {
	one := V(1)

	return one/(one+one) == 0
}

// code contract (make sure the type implements all required methods)
var _ Partition[float64] = &Uniform[float64]{}
