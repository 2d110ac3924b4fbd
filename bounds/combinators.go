package bounds

// choice decides, given the ordering of the values of its two operands, whether a combinator keeps its first operand.
type choice func(ordering Ordering) (keepFirst bool)

func first(Ordering) bool { return true }

func second(Ordering) bool { return false }

func firstIfGreater(ordering Ordering) bool { return ordering == Greater }

func firstIfAtLeast(ordering Ordering) bool { return ordering == Greater || ordering == Equal }

func firstIfLess(ordering Ordering) bool { return ordering == Less }

func firstIfAtMost(ordering Ordering) bool { return ordering == Less || ordering == Equal }

// region Pinch ////////////////////////////////////////////////////////////////////////////////////////////////////////

// pinchLeftRules selects the tighter (larger) of two left Bounds. Ties exclude the point.
var pinchLeftRules = [concreteKinds][concreteKinds]choice{
	KindUnbounded: {KindUnbounded: first, KindOpen: second, KindClosed: second},
	KindOpen:      {KindUnbounded: first, KindOpen: firstIfAtLeast, KindClosed: firstIfAtLeast},
	KindClosed:    {KindUnbounded: first, KindOpen: firstIfGreater, KindClosed: firstIfAtLeast},
}

// pinchRightRules selects the tighter (smaller) of two right Bounds. Ties exclude the point.
var pinchRightRules = [concreteKinds][concreteKinds]choice{
	KindUnbounded: {KindUnbounded: first, KindOpen: second, KindClosed: second},
	KindOpen:      {KindUnbounded: first, KindOpen: firstIfAtMost, KindClosed: firstIfAtMost},
	KindClosed:    {KindUnbounded: first, KindOpen: firstIfLess, KindClosed: firstIfAtMost},
}

// PinchLeft returns the tighter of two left Bounds (the left Bound of the intersection).
func PinchLeft[V any](cmp Comparator[V], a, b Bound[V]) Bound[V] {
	return combine(&pinchLeftRules, cmp, a, b)
}

// PinchRight returns the tighter of two right Bounds (the right Bound of the intersection).
func PinchRight[V any](cmp Comparator[V], a, b Bound[V]) Bound[V] {
	return combine(&pinchRightRules, cmp, a, b)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Unroll ///////////////////////////////////////////////////////////////////////////////////////////////////////

// unrollLeftRules selects the looser (smaller) of two left Bounds. Ties include the point and Unbounded absorbs.
var unrollLeftRules = [concreteKinds][concreteKinds]choice{
	KindUnbounded: {KindUnbounded: first, KindOpen: first, KindClosed: first},
	KindOpen:      {KindUnbounded: second, KindOpen: firstIfAtMost, KindClosed: firstIfLess},
	KindClosed:    {KindUnbounded: second, KindOpen: firstIfAtMost, KindClosed: firstIfAtMost},
}

// unrollRightRules selects the looser (larger) of two right Bounds. Ties include the point and Unbounded absorbs.
var unrollRightRules = [concreteKinds][concreteKinds]choice{
	KindUnbounded: {KindUnbounded: first, KindOpen: first, KindClosed: first},
	KindOpen:      {KindUnbounded: second, KindOpen: firstIfAtLeast, KindClosed: firstIfGreater},
	KindClosed:    {KindUnbounded: second, KindOpen: firstIfAtLeast, KindClosed: firstIfAtLeast},
}

// UnrollLeft returns the looser of two left Bounds (the left Bound of the union closure).
func UnrollLeft[V any](cmp Comparator[V], a, b Bound[V]) Bound[V] {
	return combine(&unrollLeftRules, cmp, a, b)
}

// UnrollRight returns the looser of two right Bounds (the right Bound of the union closure).
func UnrollRight[V any](cmp Comparator[V], a, b Bound[V]) Bound[V] {
	return combine(&unrollRightRules, cmp, a, b)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// combine applies the rule of the given table to the concrete kinds of both operands. The result is Unbounded if the
// selected operand is Unbounded, and KindOpenOrClosed if an operand was dynamic or the value carrying operands differ
// in kind. Incomparable values select the second operand.
func combine[V any](rules *[concreteKinds][concreteKinds]choice, cmp Comparator[V], a, b Bound[V]) Bound[V] {
	kindA, kindB := a.Concrete(), b.Concrete()

	result := b
	if rules[kindA][kindB](compare(cmp, a, b)) {
		result = a
	}

	if !result.IsBounded() {
		return result
	}

	if a.kind == KindOpenOrClosed || b.kind == KindOpenOrClosed || (a.IsBounded() && b.IsBounded() && kindA != kindB) {
		return result.Dynamic()
	}

	return result
}
