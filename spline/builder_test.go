package spline_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cubicspline/matrix"
	"github.com/katalvlaran/cubicspline/spline"
	"github.com/stretchr/testify/require"
)

// TestBuildSystem_Layout pins every row of the three-point natural system.
func TestBuildSystem_Layout(t *testing.T) {
	t.Parallel()

	a, err := spline.BuildSystem(threePoints, spline.Natural)
	require.NoError(t, err)
	require.Equal(t, 8, a.Rows())
	require.Equal(t, 9, a.Cols())
	require.Equal(t, 2, a.Blocks())

	want := [][]string{
		// interpolation: segment 0 at x=1, x=2; segment 1 at x=2, x=3
		{"1", "1", "1", "1", "0", "0", "0", "0", "10"},
		{"8", "4", "2", "1", "0", "0", "0", "0", "15"},
		{"0", "0", "0", "0", "8", "4", "2", "1", "15"},
		{"0", "0", "0", "0", "27", "9", "3", "1", "12"},
		// f' continuity at x=2
		{"12", "4", "1", "0", "-12", "-4", "-1", "0", "0"},
		// f'' continuity at x=2
		{"12", "2", "0", "0", "-12", "-2", "0", "0", "0"},
		// natural: f''(1) on segment 0, f''(3) on segment 1
		{"6", "2", "0", "0", "0", "0", "0", "0", "0"},
		{"0", "0", "0", "0", "18", "2", "0", "0", "0"},
	}
	for i := range want {
		for j := range want[i] {
			v, err := a.At(i, j)
			require.NoError(t, err)
			RequireRatEqual(t, R(want[i][j]), v, "row", i, "col", j)
		}
	}
}

func TestBuildSystem_BoundaryRows(t *testing.T) {
	t.Parallel()

	pts := []spline.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}, {X: 3, Y: 1}}
	// 3 segments → 12 unknowns; boundary rows are 10 and 11.
	for _, tc := range []struct {
		boundary spline.Boundary
		row10    map[int]string
		row11    map[int]string
	}{
		{spline.Quadratic, map[int]string{0: "1"}, map[int]string{8: "1"}},
		{spline.NotAKnot, map[int]string{0: "1", 4: "-1"}, map[int]string{4: "1", 8: "-1"}},
		{spline.Natural, map[int]string{0: "0", 1: "2"}, map[int]string{8: "18", 9: "2"}},
		{
			spline.Periodic,
			map[int]string{0: "0", 1: "0", 2: "1", 8: "-27", 9: "-6", 10: "-1"},
			map[int]string{0: "0", 1: "2", 8: "-18", 9: "-2"},
		},
	} {
		a, err := spline.BuildSystem(pts, tc.boundary)
		require.NoError(t, err, tc.boundary.String())

		for row, cells := range map[int]map[int]string{10: tc.row10, 11: tc.row11} {
			for col := 0; col < a.Cols(); col++ {
				want := "0"
				if s, ok := cells[col]; ok {
					want = s
				}
				v, err := a.At(row, col)
				require.NoError(t, err)
				RequireRatEqual(t, R(want), v, tc.boundary.String(), "row", row, "col", col)
			}
		}
	}
}

func TestBuildSystem_ExactDecimalInput(t *testing.T) {
	t.Parallel()

	a, err := spline.BuildSystem(calibrationPoints[:3], spline.Natural)
	require.NoError(t, err)

	v, err := a.At(0, 2) // x of the first point, unrounded
	require.NoError(t, err)
	RequireRatEqual(t, R("12695/10000"), v)
}

func TestBuildSystem_Errors(t *testing.T) {
	t.Parallel()

	_, err := spline.BuildSystem(threePoints, spline.Boundary(-1))
	require.ErrorIs(t, err, spline.ErrUnsupportedBoundary)

	for _, b := range allBoundaries {
		_, err = spline.BuildSystem(threePoints[:b.MinPoints()-1], b)
		require.ErrorIs(t, err, spline.ErrTooFewPoints, b.String())
	}

	_, err = spline.BuildSystem([]spline.Point{{X: math.Inf(1), Y: 0}, {X: 1, Y: 1}}, spline.Natural)
	require.ErrorIs(t, err, spline.ErrNonFinite)
}

// TestBuildSystem_SolvableByMatrix wires builder output straight into the solver.
func TestBuildSystem_SolvableByMatrix(t *testing.T) {
	t.Parallel()

	a, err := spline.BuildSystem(threePoints, spline.Natural)
	require.NoError(t, err)

	xf, err := matrix.SolveFloat(a)
	require.NoError(t, err)

	x, err := matrix.Solve(a)
	require.NoError(t, err)
	require.Len(t, x, 8)
	for i := range x {
		f, _ := x[i].Float64()
		require.InDelta(t, f, xf[i], 1e-9, "x%d", i)
	}
}
