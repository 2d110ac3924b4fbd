package bounds

import (
	"fmt"
)

// Bound is one side of an interval. It is either Unbounded or carries exactly one value of the domain V together with
// the information whether that value is included (Closed), excluded (Open) or decided at runtime (OpenOrClosed).
//
// The zero value is an Unbounded Bound.
type Bound[V any] struct {
	kind  Kind
	open  bool
	value V
}

// Unbounded returns a Bound that does not limit its side of an interval.
func Unbounded[V any]() Bound[V] {
	return Bound[V]{kind: KindUnbounded}
}

// Open returns a Bound that excludes the given value.
func Open[V any](value V) Bound[V] {
	return Bound[V]{kind: KindOpen, open: true, value: value}
}

// Closed returns a Bound that includes the given value.
func Closed[V any](value V) Bound[V] {
	return Bound[V]{kind: KindClosed, value: value}
}

// OpenOrClosed returns a Bound whose openness is decided at runtime.
func OpenOrClosed[V any](isOpen bool, value V) Bound[V] {
	return Bound[V]{kind: KindOpenOrClosed, open: isOpen, value: value}
}

// Kind returns the declared Kind of the Bound.
func (b Bound[V]) Kind() Kind {
	return b.kind
}

// Concrete returns the Kind the Bound behaves as, which resolves KindOpenOrClosed to KindOpen or KindClosed.
func (b Bound[V]) Concrete() Kind {
	switch b.kind {
	case KindOpenOrClosed:
		if b.open {
			return KindOpen
		}

		return KindClosed
	default:
		return b.kind
	}
}

// Value returns the value of the Bound and a flag that indicates if the Bound carries a value.
func (b Bound[V]) Value() (value V, exists bool) {
	return b.value, b.IsBounded()
}

// IsBounded returns true if the Bound carries a value.
func (b Bound[V]) IsBounded() bool {
	return b.kind.CarriesValue()
}

// IsOpen returns true if the Bound excludes its value.
func (b Bound[V]) IsOpen() bool {
	return b.Concrete() == KindOpen
}

// IsClosed returns true if the Bound includes its value.
func (b Bound[V]) IsClosed() bool {
	return b.Concrete() == KindClosed
}

// WithLimitPoint returns the Closed Bound with the same value. An Unbounded Bound is returned unchanged.
func (b Bound[V]) WithLimitPoint() Bound[V] {
	if !b.IsBounded() {
		return b
	}

	return Closed(b.value)
}

// Dynamic returns the Bound re-tagged as KindOpenOrClosed. An Unbounded Bound is returned unchanged.
func (b Bound[V]) Dynamic() Bound[V] {
	if !b.IsBounded() {
		return b
	}

	return OpenOrClosed(b.IsOpen(), b.value)
}

// FormatLeft returns the human-readable fragment of the Bound when it is used as the left side of an interval.
func (b Bound[V]) FormatLeft() string {
	switch b.Concrete() {
	case KindOpen:
		return fmt.Sprintf("(%v", b.value)
	case KindClosed:
		return fmt.Sprintf("[%v", b.value)
	default:
		return "(∞"
	}
}

// FormatRight returns the human-readable fragment of the Bound when it is used as the right side of an interval.
func (b Bound[V]) FormatRight() string {
	switch b.Concrete() {
	case KindOpen:
		return fmt.Sprintf("%v)", b.value)
	case KindClosed:
		return fmt.Sprintf("%v]", b.value)
	default:
		return "∞)"
	}
}

// String returns a human-readable version of the Bound.
func (b Bound[V]) String() string {
	switch b.kind {
	case KindUnbounded:
		return b.kind.String()
	case KindOpenOrClosed:
		return fmt.Sprintf("%s(%s(%v))", b.kind, b.Concrete(), b.value)
	default:
		return fmt.Sprintf("%s(%v)", b.kind, b.value)
	}
}

// EqualBounds checks if two Bounds behave identically. A KindOpenOrClosed Bound is equal to the concrete Bound that
// matches its tag and value.
func EqualBounds[V any](cmp Comparator[V], a, b Bound[V]) bool {
	if a.Concrete() != b.Concrete() {
		return false
	}

	return !a.IsBounded() || cmp(a.value, b.value) == Equal
}
