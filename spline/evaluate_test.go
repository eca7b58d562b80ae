package spline_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cubicspline/spline"
	"github.com/stretchr/testify/require"
)

func TestSegment_ValueAndDerivatives(t *testing.T) {
	t.Parallel()

	// 2x³ - 18x² + 49x - 27 on [2, 3]
	g := spline.Segment{A: R("2"), B: R("-18"), C: R("49"), D: R("-27"), XMin: R("2"), XMax: R("3")}
	x := R("5/2")

	RequireRatEqual(t, R("57/4"), g.Value(x))
	RequireRatEqual(t, R("57/4"), g.Derivative(x, 0))
	RequireRatEqual(t, R("-7/2"), g.Derivative(x, 1)) // 6x² - 36x + 49
	RequireRatEqual(t, R("-6"), g.Derivative(x, 2))   // 12x - 36
	RequireRatEqual(t, R("12"), g.Derivative(x, 3))
	RequireRatEqual(t, R("0"), g.Derivative(x, 4))

	a, b, c, d := g.Float64()
	require.Equal(t, []float64{2, -18, 49, -27}, []float64{a, b, c, d})

	require.True(t, g.Contains(R("2")))
	require.True(t, g.Contains(R("3")))
	require.False(t, g.Contains(R("31/10")))

	reversed := spline.Segment{A: R("0"), B: R("0"), C: R("0"), D: R("0"), XMin: R("3"), XMax: R("1")}
	require.False(t, reversed.Contains(R("2")))
}

func TestSpline_Containment(t *testing.T) {
	t.Parallel()

	s := MustInterpolate(t, threePoints, spline.Natural)

	// the shared knot belongs to the first segment that contains it
	y, ok := s.At(R("2"))
	require.True(t, ok)
	RequireRatEqual(t, R("15"), y)

	y, ok = s.At(R("5/2"))
	require.True(t, ok)
	RequireRatEqual(t, s.Segments[1].Value(R("5/2")), y)

	_, ok = s.At(R("3001/1000"))
	require.False(t, ok)
	_, ok = s.At(nil)
	require.False(t, ok)

	d, ok := s.Derivative(R("1"), 2)
	require.True(t, ok)
	RequireRatEqual(t, R("0"), d)

	_, ok = s.Eval(0.999)
	require.False(t, ok)
	_, ok = s.Eval(math.NaN())
	require.False(t, ok)
}

// TestSpline_CalibrationQueryOutsideRange: 4.6 lies past the last knot
// (4.5669), so the sample run reports absence rather than extrapolating.
func TestSpline_CalibrationQueryOutsideRange(t *testing.T) {
	t.Parallel()

	s := MustInterpolate(t, calibrationPoints, spline.Natural)
	_, ok := s.Eval(4.6)
	require.False(t, ok)

	y, ok := s.Eval(4.5669)
	require.True(t, ok)
	require.InDelta(t, 640, y, 1e-9)

	lo, hi := s.Domain()
	require.Equal(t, 1.2695, lo)
	require.Equal(t, 4.5669, hi)
}

func TestSpline_EvalAll(t *testing.T) {
	t.Parallel()

	s := MustInterpolate(t, threePoints, spline.Natural)
	ys, ok := s.EvalAll([]float64{1, 1.5, 4})
	require.Equal(t, []bool{true, true, false}, ok)
	require.Equal(t, 10.0, ys[0])
	require.Equal(t, 13.25, ys[1])
	require.Equal(t, 0.0, ys[2])
}

func TestSpline_DomainEmpty(t *testing.T) {
	var s *spline.Spline
	lo, hi := s.Domain()
	require.Zero(t, lo)
	require.Zero(t, hi)
}
