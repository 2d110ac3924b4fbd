package bounds

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestKind tests the names and the byte conversion of the Kinds.
func TestKind(t *testing.T) {
	require.Equal(t, "Unbounded", KindUnbounded.String())
	require.Equal(t, "Open", KindOpen.String())
	require.Equal(t, "Closed", KindClosed.String())
	require.Equal(t, "OpenOrClosed", KindOpenOrClosed.String())
	require.Equal(t, "Kind(11)", Kind(17).String())

	for _, kind := range Kinds {
		parsedKind, valid := KindFromByte(byte(kind))
		require.True(t, valid)
		require.Equal(t, kind, parsedKind)
	}

	_, valid := KindFromByte(4)
	require.False(t, valid)
}

// TestBound_Accessors tests the getters of the different Bounds.
func TestBound_Accessors(t *testing.T) {
	var zero Bound[float64]
	require.Equal(t, Unbounded[float64](), zero)

	_, exists := Unbounded[int]().Value()
	require.False(t, exists)
	require.False(t, Unbounded[int]().IsOpen())
	require.False(t, Unbounded[int]().IsClosed())
	require.Equal(t, KindUnbounded, Unbounded[int]().Concrete())

	value, exists := Open(3).Value()
	require.True(t, exists)
	require.Equal(t, 3, value)
	require.True(t, Open(3).IsOpen())
	require.Equal(t, KindOpen, Open(3).Kind())

	require.True(t, Closed(3).IsClosed())
	require.Equal(t, KindClosed, Closed(3).Concrete())

	require.Equal(t, KindOpenOrClosed, OpenOrClosed(true, 3).Kind())
	require.Equal(t, KindOpen, OpenOrClosed(true, 3).Concrete())
	require.Equal(t, KindClosed, OpenOrClosed(false, 3).Concrete())
	require.True(t, OpenOrClosed(true, 3).IsOpen())
	require.True(t, OpenOrClosed(false, 3).IsClosed())
}

// TestBound_WithLimitPoint tests that the limit point of a Bound is always Closed.
func TestBound_WithLimitPoint(t *testing.T) {
	require.Equal(t, Unbounded[int](), Unbounded[int]().WithLimitPoint())
	require.Equal(t, Closed(1), Open(1).WithLimitPoint())
	require.Equal(t, Closed(1), Closed(1).WithLimitPoint())
	require.Equal(t, Closed(1), OpenOrClosed(true, 1).WithLimitPoint())
	require.Equal(t, Closed(1), OpenOrClosed(false, 1).WithLimitPoint())
}

// TestBound_Format tests the human-readable fragments of the Bounds.
func TestBound_Format(t *testing.T) {
	require.Equal(t, "(∞", Unbounded[float64]().FormatLeft())
	require.Equal(t, "∞)", Unbounded[float64]().FormatRight())
	require.Equal(t, "(0.5", Open(0.5).FormatLeft())
	require.Equal(t, "0.5)", Open(0.5).FormatRight())
	require.Equal(t, "[1", Closed(1).FormatLeft())
	require.Equal(t, "1]", Closed(1).FormatRight())
	require.Equal(t, "(2", OpenOrClosed(true, 2).FormatLeft())
	require.Equal(t, "2]", OpenOrClosed(false, 2).FormatRight())

	require.Equal(t, "Unbounded", Unbounded[int]().String())
	require.Equal(t, "Closed(1)", Closed(1).String())
	require.Equal(t, "OpenOrClosed(Open(1))", OpenOrClosed(true, 1).String())
}

// TestEqualBounds tests the equality of Bounds across their Kinds.
func TestEqualBounds(t *testing.T) {
	cmp := Natural[float64]()

	require.True(t, EqualBounds(cmp, Unbounded[float64](), Unbounded[float64]()))
	require.False(t, EqualBounds(cmp, Unbounded[float64](), Closed(0.0)))
	require.True(t, EqualBounds(cmp, Closed(1.0), Closed(1.0)))
	require.False(t, EqualBounds(cmp, Closed(1.0), Closed(2.0)))
	require.False(t, EqualBounds(cmp, Closed(1.0), Open(1.0)))
	require.True(t, EqualBounds(cmp, OpenOrClosed(true, 1.0), Open(1.0)))
	require.True(t, EqualBounds(cmp, Closed(1.0), OpenOrClosed(false, 1.0)))
	require.False(t, EqualBounds(cmp, OpenOrClosed(false, 1.0), Open(1.0)))
	require.False(t, EqualBounds(cmp, Closed(math.NaN()), Closed(math.NaN())))
}

// TestNatural tests the natural Comparator including incomparable values.
func TestNatural(t *testing.T) {
	cmp := Natural[float64]()
	require.Equal(t, Less, cmp(0, 1))
	require.Equal(t, Equal, cmp(1, 1))
	require.Equal(t, Greater, cmp(2, 1))
	require.Equal(t, Incomparable, cmp(math.NaN(), 1))
	require.Equal(t, Incomparable, cmp(1, math.NaN()))

	require.Equal(t, Less, Natural[string]()("a", "b"))
	require.Equal(t, "Incomparable", Incomparable.String())
}

type version struct {
	major, minor int
}

func (v version) Compare(other version) int {
	if v.major != other.major {
		return v.major - other.major
	}

	return v.minor - other.minor
}

// TestFromCompare tests the Comparator derived from a Compare method.
func TestFromCompare(t *testing.T) {
	cmp := FromCompare[version]()
	require.Equal(t, Less, cmp(version{1, 2}, version{1, 10}))
	require.Equal(t, Greater, cmp(version{2, 0}, version{1, 10}))
	require.Equal(t, Equal, cmp(version{1, 1}, version{1, 1}))
}
