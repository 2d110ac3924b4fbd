package bounds

import (
	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrDecreasingBounds is returned if the left Bound of an interval lies after its right Bound.
	ErrDecreasingBounds = ierrors.New("decreasing bounds")
)

// DecreasingBoundsError carries the pair of Bounds that violated the ordering of an interval.
type DecreasingBoundsError[V any] struct {
	Left  Bound[V]
	Right Bound[V]
}

// Error returns a human-readable version of the error.
func (e *DecreasingBoundsError[V]) Error() string {
	return ErrDecreasingBounds.Error() + ": " + e.Left.FormatLeft() + ", " + e.Right.FormatRight()
}

// Is makes the error match ErrDecreasingBounds.
func (e *DecreasingBoundsError[V]) Is(target error) bool {
	return target == ErrDecreasingBounds
}
