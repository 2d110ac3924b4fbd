package partitions

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubIntervals(t *testing.T) {
	uniform, err := NewUniform(3, 0.0, 3.0)
	require.NoError(t, err)

	subIntervals := SubIntervals[float64](uniform)
	require.Len(t, subIntervals, 3)

	for index, subInterval := range subIntervals {
		require.Equal(t, index, subInterval.Index)
		require.Equal(t, 1.0, Width(subInterval))
		require.Equal(t, float64(index)+0.5, Midpoint(subInterval))
	}

	left, right := subIntervals[2].Edges()
	require.Equal(t, 2.0, left)
	require.Equal(t, 3.0, right)
}

func TestMidpoint_Integers(t *testing.T) {
	declarative, err := NewDeclarative(0, 5, 10)
	require.NoError(t, err)

	subInterval, found := Digitise[int](declarative, 7)
	require.True(t, found)
	require.Equal(t, 5, Width(subInterval))
	require.Equal(t, 7, Midpoint(subInterval))
}

func TestDigitise_NotFound(t *testing.T) {
	declarative, err := NewDeclarative(0, 5, 10)
	require.NoError(t, err)

	subInterval, found := Digitise[int](declarative, 11)
	require.False(t, found)
	require.Zero(t, subInterval.Index)
}

func TestSubInterval_String(t *testing.T) {
	declarative, err := NewDeclarative(0, 5, 10)
	require.NoError(t, err)

	subInterval, _ := declarative.SubInterval(1)
	require.Contains(t, subInterval.String(), "SubInterval")
	require.Contains(t, subInterval.String(), "[5, 10]")
	require.Contains(t, declarative.String(), "[0 5 10]")
}
