package heuristic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/heuristic"
)

func TestDistances(t *testing.T) {
	cases := []struct {
		name                    string
		a, b                    gridgraph.Cell
		euclid, manhattan, diag float64
	}{
		{"Same", gridgraph.Cell{X: 2, Y: 2}, gridgraph.Cell{X: 2, Y: 2}, 0, 0, 0},
		{"Side", gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 1, Y: 0}, 1, 1, 1},
		{"UnitDiagonal", gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 1, Y: 1}, math.Sqrt2, 2, 1},
		{"ThreeFour", gridgraph.Cell{X: 1, Y: 5}, gridgraph.Cell{X: 4, Y: 1}, 5, 7, 4},
		{"Negative", gridgraph.Cell{X: 6, Y: 0}, gridgraph.Cell{X: 0, Y: 2}, math.Sqrt(40), 8, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.euclid, heuristic.EuclideanDistance(tc.a, tc.b), 1e-9)
			assert.Equal(t, tc.manhattan, heuristic.ManhattanDistance(tc.a, tc.b))
			assert.Equal(t, tc.diag, heuristic.DiagonalDistance(tc.a, tc.b))
		})
	}
}

// TestEuclidean_NotConflated guards against the dx*dy variant of the formula:
// for (0,0)-(3,1) it would give sqrt(3+1) = 2 instead of sqrt(10).
func TestEuclidean_NotConflated(t *testing.T) {
	got := heuristic.EuclideanDistance(gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 3, Y: 1})
	assert.InDelta(t, math.Sqrt(10), got, 1e-9)
}

func TestDistances_Symmetric(t *testing.T) {
	cells := []gridgraph.Cell{{X: 0, Y: 0}, {X: 3, Y: 7}, {X: 11, Y: 2}, {X: 5, Y: 5}}
	for _, m := range []heuristic.Mode{heuristic.Euclidean, heuristic.Manhattan, heuristic.Diagonal} {
		h, err := m.Func()
		require.NoError(t, err)
		for _, a := range cells {
			for _, b := range cells {
				assert.Equal(t, h(a, b), h(b, a), "%s(%s,%s)", m, a, b)
				assert.GreaterOrEqual(t, h(a, b), 0.0)
			}
		}
	}
}

func TestMode_FuncAndString(t *testing.T) {
	a, b := gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 2, Y: 1}
	cases := []struct {
		mode heuristic.Mode
		name string
		want float64
	}{
		{heuristic.Euclidean, "euclidean", math.Sqrt(5)},
		{heuristic.Manhattan, "manhattan", 3},
		{heuristic.Diagonal, "diagonal", 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.name, tc.mode.String())
			h, err := tc.mode.Func()
			require.NoError(t, err)
			assert.InDelta(t, tc.want, h(a, b), 1e-9)

			parsed, err := heuristic.ParseMode(" " + tc.name + " ")
			require.NoError(t, err)
			assert.Equal(t, tc.mode, parsed)
		})
	}

	_, err := heuristic.Mode(9).Func()
	assert.ErrorIs(t, err, heuristic.ErrUnknownMode)
	assert.Equal(t, "mode(9)", heuristic.Mode(9).String())
	_, err = heuristic.ParseMode("chebyshev")
	assert.ErrorIs(t, err, heuristic.ErrUnknownMode)
	m, err := heuristic.ParseMode("MANHATTAN")
	require.NoError(t, err)
	assert.Equal(t, heuristic.Manhattan, m)
}
