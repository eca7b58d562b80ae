package render_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/cubicspline/internal/render"
	"github.com/katalvlaran/cubicspline/spline"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

var knots = []spline.Point{{X: 1, Y: 10}, {X: 2, Y: 15}, {X: 3, Y: 12}}

func mustFit(t *testing.T, pts []spline.Point) *spline.Spline {
	t.Helper()
	s, err := spline.Interpolate(pts, spline.Natural)
	require.NoError(t, err)

	return s
}

func TestSamples(t *testing.T) {
	s := mustFit(t, knots)

	xys, err := render.Samples(s, 10)
	require.NoError(t, err)
	require.Len(t, xys, 10) // five per unit-width segment

	require.Equal(t, 1.0, xys[0].X)
	require.Equal(t, 10.0, xys[0].Y)
	require.Equal(t, 3.0, xys[len(xys)-1].X)
	require.Equal(t, 12.0, xys[len(xys)-1].Y)
	for i := 1; i < len(xys); i++ {
		require.GreaterOrEqual(t, xys[i].X, xys[i-1].X)
	}
}

func TestSamples_ReversedSegmentSkipped(t *testing.T) {
	// the middle pair runs backwards; its segment contains no x
	s := mustFit(t, []spline.Point{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 3}, {X: 3, Y: 2}})

	xys, err := render.Samples(s, 30)
	require.NoError(t, err)
	for _, xy := range xys {
		_, ok := s.Eval(xy.X)
		require.True(t, ok, "x=%v", xy.X)
	}
}

func TestSamples_Errors(t *testing.T) {
	_, err := render.Samples(nil, 10)
	require.ErrorIs(t, err, render.ErrEmptySpline)

	_, err = render.Samples(mustFit(t, knots), 1)
	require.ErrorIs(t, err, render.ErrInvalidSamples)
}

func TestPlot(t *testing.T) {
	p, err := render.Plot(mustFit(t, knots), knots, render.WithTitle("calibration"))
	require.NoError(t, err)
	require.Equal(t, "calibration", p.Title.Text)

	p, err = render.Plot(mustFit(t, knots), nil)
	require.NoError(t, err)
	require.Equal(t, "natural cubic spline", p.Title.Text)
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	s := mustFit(t, knots)

	for _, name := range []string{"fit.png", "fit.svg"} {
		path := filepath.Join(dir, name)
		require.NoError(t, render.Save(path, s, knots,
			render.WithSamples(50), render.WithSize(3*vg.Inch, 2*vg.Inch)))

		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Positive(t, info.Size(), name)
	}

	err := render.Save(filepath.Join(dir, "fit.unknown"), s, knots)
	require.Error(t, err)
}
