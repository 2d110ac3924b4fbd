package partitions

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/intervals/bounds"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/runtime/options"
	"github.com/iotaledger/hive.go/stringify"
)

// Labeled maps the subintervals of a Partition to labels. Lookups use the left edges of the subintervals as lower
// thresholds, so a value is resolved to the label of the closest subinterval that starts at or before it. The thresholds
// are ordered by the Comparator of the Partition.
type Labeled[V any, T any] struct {
	tree *redblacktree.Tree

	fallback    T
	hasFallback bool
}

// labeledEntry is the value stored in the tree of a Labeled partition.
type labeledEntry[V any, T any] struct {
	subInterval SubInterval[V]
	label       T
}

// NewLabeled creates a Labeled partition that assigns the labels to the subintervals of the Partition in order.
func NewLabeled[V any, T any](partition Partition[V], labels []T, opts ...options.Option[Labeled[V, T]]) (*Labeled[V, T], error) {
	if len(labels) != partition.Len() {
		return nil, ierrors.Wrapf(ErrLabelCountMismatch, "got %d labels for %d subintervals", len(labels), partition.Len())
	}

	subIntervals := SubIntervals(partition)
	if len(subIntervals) == 0 {
		return options.Apply(&Labeled[V, T]{tree: redblacktree.NewWithIntComparator()}, opts), nil
	}

	cmp := subIntervals[0].Comparator()
	tree := redblacktree.NewWith(func(a interface{}, b interface{}) int {
		switch cmp(a.(V), b.(V)) {
		case bounds.Less:
			return -1
		case bounds.Equal:
			return 0
		default:
			return 1
		}
	})

	for _, subInterval := range subIntervals {
		left, _ := subInterval.Edges()
		if _, exists := tree.Get(left); exists {
			return nil, ierrors.Wrapf(ErrDuplicateEdge, "subinterval %d starts at %v", subInterval.Index, left)
		}

		tree.Put(left, &labeledEntry[V, T]{
			subInterval: subInterval,
			label:       labels[subInterval.Index],
		})
	}

	return options.Apply(&Labeled[V, T]{tree: tree}, opts), nil
}

// WithFallback is an option that sets the label that is returned for values outside the partition.
func WithFallback[V any, T any](label T) options.Option[Labeled[V, T]] {
	return func(l *Labeled[V, T]) {
		l.fallback = label
		l.hasFallback = true
	}
}

// Get returns the label of the subinterval that contains the value and a flag that indicates if such a subinterval
// exists. If it does not exist, the fallback label (or the zero value) is returned.
func (l *Labeled[V, T]) Get(value V) (label T, exists bool) {
	if entry, found := l.lookup(value); found {
		return entry.label, true
	}

	if l.hasFallback {
		label = l.fallback
	}

	return label, false
}

// SubInterval returns the subinterval that contains the value and a flag that indicates if it exists.
func (l *Labeled[V, T]) SubInterval(value V) (subInterval SubInterval[V], exists bool) {
	entry, exists := l.lookup(value)
	if !exists {
		return subInterval, false
	}

	return entry.subInterval, true
}

// Labels returns the labels in the order of their subintervals.
func (l *Labeled[V, T]) Labels() []T {
	return lo.Map(l.tree.Values(), func(value interface{}) T {
		return value.(*labeledEntry[V, T]).label
	})
}

// Size returns the number of labeled subintervals.
func (l *Labeled[V, T]) Size() int {
	return l.tree.Size()
}

// String returns a human-readable version of the Labeled partition.
func (l *Labeled[V, T]) String() string {
	return stringify.Struct("Labeled",
		stringify.NewStructField("subIntervals", l.tree.Size()),
		stringify.NewStructField("hasFallback", l.hasFallback),
	)
}

// lookup returns the entry of the subinterval that contains the value.
func (l *Labeled[V, T]) lookup(value V) (entry *labeledEntry[V, T], exists bool) {
	node, exists := l.tree.Floor(value)
	if !exists {
		return nil, false
	}

	if entry = node.Value.(*labeledEntry[V, T]); !entry.subInterval.Contains(value) {
		return nil, false
	}

	return entry, true
}
