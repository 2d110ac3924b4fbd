package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/intervals"
	"github.com/iotaledger/hive.go/intervals/bounds"
	"github.com/iotaledger/hive.go/intervals/partitions"
)

// TestBound_MarshalUnmarshal tests if marshaling and unmarshalling of every kind of Bound works correctly.
func TestBound_MarshalUnmarshal(t *testing.T) {
	for _, bound := range []bounds.Bound[float64]{
		bounds.Unbounded[float64](),
		bounds.Open(-1.25),
		bounds.Closed(3.5),
		bounds.OpenOrClosed(true, 7.0),
		bounds.OpenOrClosed(false, 7.0),
	} {
		marshaledBound := BoundBytes(Float64, bound)
		unmarshaledBound, consumedBytes, err := BoundFromBytes(Float64, marshaledBound)
		require.NoError(t, err)
		require.Equal(t, len(marshaledBound), consumedBytes)
		require.Equal(t, bound, unmarshaledBound)
	}
}

func TestBound_UnknownKind(t *testing.T) {
	_, consumedBytes, err := BoundFromBytes(Int64, []byte{17})
	require.ErrorIs(t, err, ErrParseBytesFailed)
	require.Equal(t, 0, consumedBytes)

	_, _, err = BoundFromBytes(Int64, []byte{byte(bounds.KindClosed), 1, 2})
	require.ErrorIs(t, err, ErrParseBytesFailed)
}

// TestInterval_MarshalUnmarshal tests if marshaling and unmarshalling of Intervals works correctly.
func TestInterval_MarshalUnmarshal(t *testing.T) {
	for _, interval := range []intervals.Interval[int64]{
		intervals.All[int64](),
		intervals.AtLeast[int64](-3),
		intervals.LessThan[int64](12),
		intervals.ClosedOpenUnchecked[int64](-3, 12),
		intervals.NewUnchecked(bounds.OpenOrClosed[int64](true, 1), bounds.OpenOrClosed[int64](false, 2)),
	} {
		marshaledInterval := IntervalBytes(Int64, interval)
		unmarshaledInterval, consumedBytes, err := IntervalFromBytes(Int64, bounds.Natural[int64](), marshaledInterval)
		require.NoError(t, err)
		require.Equal(t, len(marshaledInterval), consumedBytes)
		require.Equal(t, interval.Left(), unmarshaledInterval.Left())
		require.Equal(t, interval.Right(), unmarshaledInterval.Right())
	}

	require.Len(t, IntervalBytes(Int64, intervals.All[int64]()), 1)
}

func TestInterval_Decreasing(t *testing.T) {
	marshaledInterval := IntervalBytes(String, intervals.ClosedUnchecked("z", "a"))

	_, _, err := IntervalFromBytes(String, bounds.Natural[string](), marshaledInterval)
	require.ErrorIs(t, err, bounds.ErrDecreasingBounds)

	_, _, err = IntervalFromBytes(String, bounds.Natural[string](), marshaledInterval[:len(marshaledInterval)-1])
	require.ErrorIs(t, err, ErrParseBytesFailed)
}

func TestDeclarative_MarshalUnmarshal(t *testing.T) {
	declarative, err := partitions.NewDeclarative("apple", "kiwi", "mango", "peach")
	require.NoError(t, err)

	marshaledDeclarative := DeclarativeBytes(String, declarative)
	unmarshaledDeclarative, consumedBytes, err := DeclarativeFromBytes(String, bounds.Natural[string](), marshaledDeclarative)
	require.NoError(t, err)
	require.Equal(t, len(marshaledDeclarative), consumedBytes)
	require.Equal(t, declarative.Breakpoints(), unmarshaledDeclarative.Breakpoints())

	_, _, err = DeclarativeFromBytes(String, bounds.Natural[string](), marshaledDeclarative[:6])
	require.ErrorIs(t, err, ErrParseBytesFailed)

	reversed := func(a, b string) bounds.Ordering { return bounds.Natural[string]()(b, a) }
	_, _, err = DeclarativeFromBytes(String, reversed, marshaledDeclarative)
	require.ErrorIs(t, err, partitions.ErrIllFormedBreakpoints)
}

func TestUniform_MarshalUnmarshal(t *testing.T) {
	uniform, err := partitions.NewUniform(8, -1.0, 1.0)
	require.NoError(t, err)

	marshaledUniform := UniformBytes(Float64, uniform)
	require.Len(t, marshaledUniform, 4+8+8)

	unmarshaledUniform, consumedBytes, err := UniformFromBytes(Float64, marshaledUniform)
	require.NoError(t, err)
	require.Equal(t, len(marshaledUniform), consumedBytes)
	require.Equal(t, uniform.Len(), unmarshaledUniform.Len())
	require.True(t, uniform.Interval().Equal(unmarshaledUniform.Interval()))

	_, _, err = UniformFromBytes(Float64, marshaledUniform[:10])
	require.ErrorIs(t, err, ErrParseBytesFailed)
}
