package bounds

import (
	"fmt"
)

const (
	// KindUnbounded represents the absence of a limit on one side of an interval.
	KindUnbounded Kind = iota

	// KindOpen represents a limit that excludes its value.
	KindOpen

	// KindClosed represents a limit that includes its value.
	KindClosed

	// KindOpenOrClosed represents a limit whose openness is only known at runtime.
	KindOpenOrClosed
)

// concreteKinds is the number of Kinds a Bound can behave as (Unbounded, Open and Closed). It sizes the dispatch
// tables of the algebra.
const concreteKinds = int(KindOpenOrClosed)

// KindNames contains a dictionary of the names of Kinds.
var KindNames = [...]string{
	"Unbounded",
	"Open",
	"Closed",
	"OpenOrClosed",
}

// Kinds contains every Kind in the order of their declaration.
var Kinds = []Kind{KindUnbounded, KindOpen, KindClosed, KindOpenOrClosed}

// Kind represents the kind of a Bound.
type Kind uint8

// KindFromByte converts a byte into a Kind and reports whether the byte denotes a known Kind.
func KindFromByte(kindByte byte) (kind Kind, valid bool) {
	if kind = Kind(kindByte); kind > KindOpenOrClosed {
		return kind, false
	}

	return kind, true
}

// CarriesValue returns true if Bounds of this Kind carry a value.
func (k Kind) CarriesValue() bool {
	return k != KindUnbounded
}

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	if int(k) >= len(KindNames) {
		return fmt.Sprintf("Kind(%X)", uint8(k))
	}

	return KindNames[k]
}
