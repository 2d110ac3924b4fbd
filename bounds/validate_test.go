package bounds

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/ierrors"
)

// TestValidate tests the ordering requirement for every pair of kinds.
func TestValidate(t *testing.T) {
	cmp := Natural[float64]()

	for _, testCase := range []struct {
		name        string
		left, right Bound[float64]
		valid       bool
	}{
		{"closed increasing", Closed(0.0), Closed(1.0), true},
		{"closed equal", Closed(1.0), Closed(1.0), true},
		{"closed decreasing", Closed(2.0), Closed(1.0), false},
		{"open increasing", Open(0.0), Open(1.0), true},
		{"open equal", Open(1.0), Open(1.0), false},
		{"closed/open equal", Closed(1.0), Open(1.0), false},
		{"open/closed equal", Open(1.0), Closed(1.0), false},
		{"open/closed increasing", Open(0.0), Closed(1.0), true},
		{"dynamic closed equal", OpenOrClosed(false, 1.0), Closed(1.0), true},
		{"dynamic open equal", OpenOrClosed(true, 1.0), Closed(1.0), false},
		{"unbounded/unbounded", Unbounded[float64](), Unbounded[float64](), true},
		{"unbounded/open", Unbounded[float64](), Open(-100.0), true},
		{"closed/unbounded", Closed(100.0), Unbounded[float64](), true},
		{"incomparable", Closed(math.NaN()), Closed(1.0), false},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			err := Validate(cmp, testCase.left, testCase.right)
			if testCase.valid {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, ErrDecreasingBounds)
			require.True(t, ierrors.Is(err, ErrDecreasingBounds))

			var decreasingBoundsErr *DecreasingBoundsError[float64]
			require.True(t, ierrors.As(err, &decreasingBoundsErr))
			require.Equal(t, testCase.left.Kind(), decreasingBoundsErr.Left.Kind())
			require.Equal(t, testCase.right.Kind(), decreasingBoundsErr.Right.Kind())
		})
	}
}

// TestDecreasingBoundsError tests the message of the error.
func TestDecreasingBoundsError(t *testing.T) {
	err := Validate(Natural[int](), Closed(2), Open(1))
	require.EqualError(t, err, "decreasing bounds: [2, 1)")
}
