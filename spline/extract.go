// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/cubicspline/matrix"
)

// Extract groups a solution vector into segments: values [4i, 4i+3] become
// segment i's (a, b, c, d) and its range is [points[i].X, points[i+1].X].
// Coefficients are copied; the spline does not alias solution.
//
// Errors:
//   - ErrTooFewPoints for fewer than two points.
//   - ErrMalformedSystem when len(solution) != 4·(len(points)−1).
//   - ErrNonFinite for NaN/Inf abscissas.
func Extract(points []Point, solution []*big.Rat, b Boundary) (*Spline, error) {
	if len(points) < 2 {
		return nil, splineErrorf(opExtract, fmt.Errorf("got %d: %w", len(points), ErrTooFewPoints))
	}
	segments := len(points) - 1
	if err := matrix.ValidateVecLen(solution, coeffsPerSegment*segments); err != nil {
		return nil, splineErrorf(opExtract, err)
	}
	xs, _, err := exactPoints(points)
	if err != nil {
		return nil, splineErrorf(opExtract, err)
	}

	out := &Spline{Segments: make([]Segment, segments), Boundary: b}
	for i := range out.Segments {
		base := i * coeffsPerSegment
		out.Segments[i] = Segment{
			A:    new(big.Rat).Set(solution[base+coeffA]),
			B:    new(big.Rat).Set(solution[base+coeffB]),
			C:    new(big.Rat).Set(solution[base+coeffC]),
			D:    new(big.Rat).Set(solution[base+coeffD]),
			XMin: xs[i],
			XMax: new(big.Rat).Set(xs[i+1]),
		}
	}

	return out, nil
}
