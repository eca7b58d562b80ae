// SPDX-License-Identifier: MIT

// Package spline - Matrix Builder.
//
// Row layout of the 4S×(4S+1) system for S segments:
//   - rows [0, 2S)       interpolation, two per segment (left, right endpoint)
//   - rows [2S, 3S−1)    first-derivative continuity at interior knots
//   - rows [3S−1, 4S−2)  second-derivative continuity at interior knots
//   - rows [4S−2, 4S)    boundary rows from boundaryRows[b]
//
// Segment i owns block i, i.e. columns [4i, 4i+3] for (a, b, c, d).

package spline

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/cubicspline/matrix"
)

// Coefficient slots inside a segment block.
const (
	coeffA = iota // x³
	coeffB        // x²
	coeffC        // x
	coeffD        // 1

	coeffsPerSegment
)

var (
	one      = big.NewRat(1, 1)
	minusOne = big.NewRat(-1, 1)
)

// system is the builder's cursor over the augmented matrix. The first failed
// write is kept in err and later writes become no-ops, so equation
// generators stay free of error plumbing.
type system struct {
	a      *matrix.Augmented
	xs, ys []*big.Rat
	row    int
	err    error
}

// last is the index of the last segment.
func (s *system) last() int { return len(s.xs) - 2 }

// next moves to the following equation row.
func (s *system) next() { s.row++ }

// add accumulates v into coefficient k of segment seg on the current row.
func (s *system) add(seg, k int, v *big.Rat) {
	if s.err != nil || v.Sign() == 0 {
		return
	}
	if err := s.a.AddBlock(s.row, seg, k, v); err != nil {
		s.err = fmt.Errorf("row %d segment %d coeff %d: %w", s.row, seg, k, err)
	}
}

// terms writes a full (a, b, c, d) pattern for seg on the current row,
// negated when the segment is the right-hand side of an equality.
func (s *system) terms(seg int, t [coeffsPerSegment]*big.Rat, negate bool) {
	for k, v := range t {
		if negate {
			v = new(big.Rat).Neg(v)
		}
		s.add(seg, k, v)
	}
}

// rhs sets the constant of the current row.
func (s *system) rhs(v *big.Rat) {
	if s.err != nil {
		return
	}
	if err := s.a.SetRHS(s.row, v); err != nil {
		s.err = fmt.Errorf("row %d rhs: %w", s.row, err)
	}
}

// valueTerms are the coefficients of f(x) = a·x³+b·x²+c·x+d.
func valueTerms(x *big.Rat) [coeffsPerSegment]*big.Rat {
	x2 := new(big.Rat).Mul(x, x)
	x3 := new(big.Rat).Mul(x2, x)

	return [coeffsPerSegment]*big.Rat{x3, x2, new(big.Rat).Set(x), big.NewRat(1, 1)}
}

// slopeTerms are the coefficients of f′(x) = 3a·x²+2b·x+c.
func slopeTerms(x *big.Rat) [coeffsPerSegment]*big.Rat {
	x2 := new(big.Rat).Mul(x, x)

	return [coeffsPerSegment]*big.Rat{
		x2.Mul(x2, big.NewRat(3, 1)),
		new(big.Rat).Mul(x, big.NewRat(2, 1)),
		big.NewRat(1, 1),
		new(big.Rat),
	}
}

// curvatureTerms are the coefficients of f″(x) = 6a·x+2b.
func curvatureTerms(x *big.Rat) [coeffsPerSegment]*big.Rat {
	return [coeffsPerSegment]*big.Rat{
		new(big.Rat).Mul(x, big.NewRat(6, 1)),
		big.NewRat(2, 1),
		new(big.Rat),
		new(big.Rat),
	}
}

// interpolationRows: each segment passes through both of its endpoints.
func (s *system) interpolationRows() {
	for i := 0; i <= s.last(); i++ {
		s.terms(i, valueTerms(s.xs[i]), false)
		s.rhs(s.ys[i])
		s.next()

		s.terms(i, valueTerms(s.xs[i+1]), false)
		s.rhs(s.ys[i+1])
		s.next()
	}
}

// continuityRows: pattern(x) of segment i equals pattern(x) of segment i+1 at
// their shared knot x, written as segment i − segment i+1 = 0.
func (s *system) continuityRows(pattern func(*big.Rat) [coeffsPerSegment]*big.Rat) {
	for i := 0; i < s.last(); i++ {
		t := pattern(s.xs[i+1])
		s.terms(i, t, false)
		s.terms(i+1, t, true)
		s.next()
	}
}

// BuildSystem translates points and a boundary kind into the augmented
// 4S×(4S+1) system, S = len(points)−1.
//
// Implementation:
//   - Stage 1: resolve the boundary generator; check the point count and
//     convert coordinates exactly.
//   - Stage 2: emit interpolation, C¹, C² and boundary rows in that order.
//   - Stage 3: assert rows written == unknowns and rows == cols−1.
//
// Errors:
//   - ErrUnsupportedBoundary, ErrTooFewPoints, ErrNonFinite.
//   - ErrMalformedSystem if the generators disagree with the matrix size.
func BuildSystem(points []Point, b Boundary) (*matrix.Augmented, error) {
	gen, ok := boundaryRows[b]
	if !ok {
		return nil, splineErrorf(opBuild, fmt.Errorf("%s: %w", b, ErrUnsupportedBoundary))
	}
	if len(points) < b.MinPoints() {
		return nil, splineErrorf(opBuild,
			fmt.Errorf("%s needs %d points, got %d: %w", b, b.MinPoints(), len(points), ErrTooFewPoints))
	}
	xs, ys, err := exactPoints(points)
	if err != nil {
		return nil, splineErrorf(opBuild, err)
	}

	segments := len(points) - 1
	a, err := matrix.NewAugmented(coeffsPerSegment*segments, coeffsPerSegment)
	if err != nil {
		return nil, splineErrorf(opBuild, err)
	}

	s := &system{a: a, xs: xs, ys: ys}
	s.interpolationRows()
	s.continuityRows(slopeTerms)
	s.continuityRows(curvatureTerms)
	gen(s)

	if s.err != nil {
		return nil, splineErrorf(opBuild, fmt.Errorf("%w: %w", ErrMalformedSystem, s.err))
	}
	if s.row != a.Rows() {
		return nil, splineErrorf(opBuild,
			fmt.Errorf("wrote %d rows for %d unknowns: %w", s.row, a.Unknowns(), ErrMalformedSystem))
	}
	if err = matrix.ValidateAugmented(a); err != nil {
		return nil, splineErrorf(opBuild, err)
	}

	return a, nil
}
