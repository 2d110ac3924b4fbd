package partitions

import (
	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrIllFormedBreakpoints is returned if the breakpoints of a Declarative partition are not strictly ascending.
	ErrIllFormedBreakpoints = ierrors.New("ill-formed breakpoints")

	// ErrInvalidCount is returned if a Uniform partition is requested with less than one subinterval.
	ErrInvalidCount = ierrors.New("invalid subinterval count")

	// ErrNotClosed is returned if a partition is requested for an interval that is not closed on both sides.
	ErrNotClosed = ierrors.New("interval is not closed")

	// ErrNotFinite is returned if a Uniform partition is requested for infinite bounds.
	ErrNotFinite = ierrors.New("partition bounds are not finite")

	// ErrDuplicateEdge is returned if two subintervals of a labeled partition start at the same edge.
	ErrDuplicateEdge = ierrors.New("duplicate subinterval edge")

	// ErrLabelCountMismatch is returned if the number of labels does not match the number of subintervals.
	ErrLabelCountMismatch = ierrors.New("label count does not match subinterval count")
)
