// SPDX-License-Identifier: MIT
// Package spline: sentinel error set.
// Tests and callers match these with errors.Is; operations wrap them with an
// op tag via splineErrorf.

package spline

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cubicspline/matrix"
)

var (
	// ErrUnsupportedBoundary is returned for a Boundary outside the four known kinds.
	ErrUnsupportedBoundary = errors.New("spline: unsupported boundary kind")

	// ErrTooFewPoints is returned when the point count is below Boundary.MinPoints.
	ErrTooFewPoints = errors.New("spline: too few points")

	// ErrNonFinite is returned for a NaN or ±Inf coordinate.
	ErrNonFinite = errors.New("spline: NaN or Inf coordinate")
)

// Re-exported solver sentinels so callers need not import matrix to match them.
var (
	// ErrMalformedSystem: equation count does not match the unknowns (builder bug).
	ErrMalformedSystem = matrix.ErrMalformedSystem

	// ErrSingular: the points and boundary do not determine a unique spline,
	// e.g. two consecutive points share an abscissa.
	ErrSingular = matrix.ErrSingular
)

const (
	opBuild       = "BuildSystem"
	opExtract     = "Extract"
	opInterpolate = "Interpolate"
)

func splineErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
