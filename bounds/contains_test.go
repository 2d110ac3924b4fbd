package bounds

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestContains tests the containment test for every pair of kinds.
func TestContains(t *testing.T) {
	cmp := Natural[float64]()

	for _, testCase := range []struct {
		name        string
		left, right Bound[float64]
		inside      []float64
		outside     []float64
	}{
		{"closed/closed", Closed(0.0), Closed(1.0), []float64{0, 0.5, 1}, []float64{-0.5, 1.5}},
		{"open/open", Open(0.0), Open(1.0), []float64{0.5}, []float64{0, 1, -1, 2}},
		{"closed/open", Closed(0.0), Open(1.0), []float64{0, 0.5}, []float64{1, -0.1}},
		{"open/closed", Open(0.0), Closed(1.0), []float64{0.5, 1}, []float64{0, 1.1}},
		{"unbounded/unbounded", Unbounded[float64](), Unbounded[float64](), []float64{-1e300, 0, 1e300}, nil},
		{"unbounded/open", Unbounded[float64](), Open(1.0), []float64{-1e300, 0.9}, []float64{1, 2}},
		{"unbounded/closed", Unbounded[float64](), Closed(1.0), []float64{-1e300, 1}, []float64{1.1}},
		{"open/unbounded", Open(1.0), Unbounded[float64](), []float64{1.1, 1e300}, []float64{1, 0}},
		{"closed/unbounded", Closed(1.0), Unbounded[float64](), []float64{1, 1e300}, []float64{0.9}},
		{"dynamic open/dynamic open", OpenOrClosed(true, 0.0), OpenOrClosed(true, 1.0), []float64{0.5}, []float64{0, 1}},
		{"open/dynamic open", Open(0.0), OpenOrClosed(true, 1.0), []float64{0.5}, []float64{0, 1, 2}},
		{"closed/dynamic closed", Closed(0.0), OpenOrClosed(false, 1.0), []float64{0, 1}, []float64{2}},
		{"closed/closed with nan", Closed(0.0), Closed(1.0), nil, []float64{math.NaN()}},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			for _, value := range testCase.inside {
				require.True(t, Contains(cmp, testCase.left, testCase.right, value), "%v", value)
			}

			for _, value := range testCase.outside {
				require.False(t, Contains(cmp, testCase.left, testCase.right, value), "%v", value)
			}
		})
	}
}
