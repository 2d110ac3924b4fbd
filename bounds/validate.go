package bounds

// admissible decides, given the ordering of a left and a right value, whether the pair forms a non-empty interval.
type admissible func(ordering Ordering) bool

func always(Ordering) bool { return true }

func increasing(ordering Ordering) bool { return ordering == Less }

func nonDecreasing(ordering Ordering) bool { return ordering == Less || ordering == Equal }

// validationRules contains the ordering requirement for every pair of concrete left and right kinds.
var validationRules = [concreteKinds][concreteKinds]admissible{
	KindUnbounded: {KindUnbounded: always, KindOpen: always, KindClosed: always},
	KindOpen:      {KindUnbounded: always, KindOpen: increasing, KindClosed: increasing},
	KindClosed:    {KindUnbounded: always, KindOpen: increasing, KindClosed: nonDecreasing},
}

// Validate checks that the left Bound does not lie after the right Bound. Two Closed Bounds may share their value,
// every other pair of value carrying Bounds must be strictly increasing. Incomparable values are rejected.
func Validate[V any](cmp Comparator[V], left, right Bound[V]) error {
	if !validationRules[left.Concrete()][right.Concrete()](compare(cmp, left, right)) {
		return &DecreasingBoundsError[V]{Left: left, Right: right}
	}

	return nil
}
