// SPDX-License-Identifier: MIT
// Package spline_test contains shared fixtures and law checks.

package spline_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/cubicspline/spline"
	"github.com/stretchr/testify/require"
)

// calibrationPoints is the nine-point sample set the CLI ships with.
var calibrationPoints = []spline.Point{
	{X: 1.2695, Y: 10},
	{X: 1.4060, Y: 15},
	{X: 1.7100, Y: 30},
	{X: 2.1563, Y: 60},
	{X: 2.7522, Y: 120},
	{X: 3.5070, Y: 250},
	{X: 3.9393, Y: 370},
	{X: 4.2349, Y: 480},
	{X: 4.5669, Y: 640},
}

// threePoints is the minimal worked example: (1,10), (2,15), (3,12).
var threePoints = []spline.Point{{X: 1, Y: 10}, {X: 2, Y: 15}, {X: 3, Y: 12}}

var allBoundaries = []spline.Boundary{spline.Quadratic, spline.NotAKnot, spline.Periodic, spline.Natural}

// R parses a rational literal or panics; test tables only.
func R(s string) *big.Rat {
	v, ok := new(big.Rat).SetString(s)
	if !ok {
		panic("bad rational literal " + s)
	}

	return v
}

// X converts a float coordinate exactly or fails the test.
func X(t *testing.T, v float64) *big.Rat {
	t.Helper()
	r, err := spline.Exact(v)
	require.NoError(t, err)

	return r
}

// RequireRatEqual compares two rationals exactly.
func RequireRatEqual(t *testing.T, want, got *big.Rat, msgAndArgs ...interface{}) {
	t.Helper()
	require.NotNil(t, got, msgAndArgs...)
	require.Zerof(t, want.Cmp(got), "want %s, got %s %v", want.RatString(), got.RatString(), msgAndArgs)
}

// RequireCoeffs checks a segment's (a, b, c, d) against literals.
func RequireCoeffs(t *testing.T, g spline.Segment, a, b, c, d string) {
	t.Helper()
	RequireRatEqual(t, R(a), g.A, "a")
	RequireRatEqual(t, R(b), g.B, "b")
	RequireRatEqual(t, R(c), g.C, "c")
	RequireRatEqual(t, R(d), g.D, "d")
}

// MustInterpolate fits or fails the test.
func MustInterpolate(t *testing.T, pts []spline.Point, b spline.Boundary, opts ...spline.Option) *spline.Spline {
	t.Helper()
	s, err := spline.Interpolate(pts, b, opts...)
	require.NoError(t, err)

	return s
}

// RequireSplineLaws checks segment count, interpolation and C¹/C² continuity
// at every interior knot, all exactly.
func RequireSplineLaws(t *testing.T, pts []spline.Point, s *spline.Spline) {
	t.Helper()
	require.Equal(t, len(pts)-1, s.Len(), "segment count")

	for i, g := range s.Segments {
		x0, x1 := X(t, pts[i].X), X(t, pts[i+1].X)
		RequireRatEqual(t, x0, g.XMin, "segment", i, "xmin")
		RequireRatEqual(t, x1, g.XMax, "segment", i, "xmax")
		RequireRatEqual(t, X(t, pts[i].Y), g.Value(x0), "segment", i, "left endpoint")
		RequireRatEqual(t, X(t, pts[i+1].Y), g.Value(x1), "segment", i, "right endpoint")
	}
	for i := 0; i+1 < s.Len(); i++ {
		knot := X(t, pts[i+1].X)
		left, right := s.Segments[i], s.Segments[i+1]
		RequireRatEqual(t, left.Derivative(knot, 1), right.Derivative(knot, 1), "C1 at knot", i+1)
		RequireRatEqual(t, left.Derivative(knot, 2), right.Derivative(knot, 2), "C2 at knot", i+1)
	}
}

// RequireBoundaryLaw checks the two extra equations of s.Boundary.
func RequireBoundaryLaw(t *testing.T, pts []spline.Point, s *spline.Spline) {
	t.Helper()
	first, last := s.Segments[0], s.Segments[s.Len()-1]
	x0, xn := X(t, pts[0].X), X(t, pts[len(pts)-1].X)
	zero := new(big.Rat)

	switch s.Boundary {
	case spline.Natural:
		RequireRatEqual(t, zero, first.Derivative(x0, 2), "f'' at first knot")
		RequireRatEqual(t, zero, last.Derivative(xn, 2), "f'' at last knot")
	case spline.Quadratic:
		RequireRatEqual(t, zero, first.A, "a of first segment")
		RequireRatEqual(t, zero, last.A, "a of last segment")
	case spline.NotAKnot:
		RequireRatEqual(t, s.Segments[0].A, s.Segments[1].A, "a0 = a1")
		RequireRatEqual(t, s.Segments[s.Len()-2].A, last.A, "a(S-2) = a(S-1)")
	case spline.Periodic:
		RequireRatEqual(t, first.Derivative(x0, 1), last.Derivative(xn, 1), "f' periodic")
		RequireRatEqual(t, first.Derivative(x0, 2), last.Derivative(xn, 2), "f'' periodic")
	default:
		t.Fatalf("unexpected boundary %s", s.Boundary)
	}
}
