package bounds

// membership decides whether a value lies between two Bounds, given its ordering relative to the left (lower) and the
// right (upper) value.
type membership func(lower, upper Ordering) bool

func above(ordering Ordering) bool { return ordering == Greater }

func atLeast(ordering Ordering) bool { return ordering == Greater || ordering == Equal }

func below(ordering Ordering) bool { return ordering == Less }

func atMost(ordering Ordering) bool { return ordering == Less || ordering == Equal }

// membershipRules contains the containment test for every pair of concrete left and right kinds.
var membershipRules = [concreteKinds][concreteKinds]membership{
	KindUnbounded: {
		KindUnbounded: func(_, _ Ordering) bool { return true },
		KindOpen:      func(_, upper Ordering) bool { return below(upper) },
		KindClosed:    func(_, upper Ordering) bool { return atMost(upper) },
	},
	KindOpen: {
		KindUnbounded: func(lower, _ Ordering) bool { return above(lower) },
		KindOpen:      func(lower, upper Ordering) bool { return above(lower) && below(upper) },
		KindClosed:    func(lower, upper Ordering) bool { return above(lower) && atMost(upper) },
	},
	KindClosed: {
		KindUnbounded: func(lower, _ Ordering) bool { return atLeast(lower) },
		KindOpen:      func(lower, upper Ordering) bool { return atLeast(lower) && below(upper) },
		KindClosed:    func(lower, upper Ordering) bool { return atLeast(lower) && atMost(upper) },
	},
}

// Contains checks if the value lies between the left and the right Bound. A value that is incomparable to one of the
// limits is not contained.
func Contains[V any](cmp Comparator[V], left, right Bound[V], value V) bool {
	lower, upper := Incomparable, Incomparable
	if left.IsBounded() {
		lower = cmp(value, left.value)
	}
	if right.IsBounded() {
		upper = cmp(value, right.value)
	}

	return membershipRules[left.Concrete()][right.Concrete()](lower, upper)
}
