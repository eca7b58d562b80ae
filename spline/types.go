// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// Point is one input sample. Points are consumed in slice order; consecutive
// points bound one segment. No sorting or uniqueness check is performed.
type Point struct {
	X, Y float64
}

// Exact converts v to the rational written by its shortest decimal form, so
// 1.2695 becomes exactly 12695/10000 rather than the nearest binary fraction.
//
// Errors:
//   - ErrNonFinite for NaN or ±Inf.
func Exact(v float64) (*big.Rat, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%v: %w", v, ErrNonFinite)
	}
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(v, 'g', -1, 64))
	if !ok {
		// unreachable for finite input; FormatFloat output always parses
		return new(big.Rat).SetFloat64(v), nil
	}

	return r, nil
}

// exactPoints converts every coordinate once, up front.
func exactPoints(points []Point) (xs, ys []*big.Rat, err error) {
	xs = make([]*big.Rat, len(points))
	ys = make([]*big.Rat, len(points))
	for i, p := range points {
		if xs[i], err = Exact(p.X); err != nil {
			return nil, nil, fmt.Errorf("point %d x: %w", i, err)
		}
		if ys[i], err = Exact(p.Y); err != nil {
			return nil, nil, fmt.Errorf("point %d y: %w", i, err)
		}
	}

	return xs, ys, nil
}

// Segment is one cubic piece a·x³+b·x²+c·x+d, valid on [XMin, XMax].
// XMin and XMax are the abscissas of the segment's first and second point;
// for unsorted input XMin may exceed XMax and the segment then contains no x.
type Segment struct {
	A, B, C, D *big.Rat
	XMin, XMax *big.Rat
}

// Spline is the ordered sequence of segments produced by Interpolate, one per
// consecutive pair of input points. It is read-only after construction.
type Spline struct {
	Segments []Segment
	Boundary Boundary
}

// Len returns the number of segments.
func (s *Spline) Len() int { return len(s.Segments) }
