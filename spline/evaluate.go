// SPDX-License-Identifier: MIT

package spline

import (
	"math/big"
)

// Contains reports XMin ≤ x ≤ XMax.
func (g Segment) Contains(x *big.Rat) bool {
	return g.XMin.Cmp(x) <= 0 && g.XMax.Cmp(x) >= 0
}

// Value evaluates a·x³+b·x²+c·x+d exactly (Horner form).
func (g Segment) Value(x *big.Rat) *big.Rat {
	v := new(big.Rat).Mul(g.A, x)
	v.Add(v, g.B)
	v.Mul(v, x)
	v.Add(v, g.C)
	v.Mul(v, x)

	return v.Add(v, g.D)
}

// Derivative evaluates the order-th derivative at x. Order ≤ 0 is the value
// itself; orders above 3 are identically zero.
func (g Segment) Derivative(x *big.Rat, order int) *big.Rat {
	switch {
	case order <= 0:
		return g.Value(x)
	case order == 1: // 3a·x² + 2b·x + c
		v := new(big.Rat).Mul(g.A, big.NewRat(3, 1))
		v.Mul(v, x)
		v.Add(v, new(big.Rat).Mul(g.B, big.NewRat(2, 1)))
		v.Mul(v, x)

		return v.Add(v, g.C)
	case order == 2: // 6a·x + 2b
		v := new(big.Rat).Mul(g.A, big.NewRat(6, 1))
		v.Mul(v, x)

		return v.Add(v, new(big.Rat).Mul(g.B, big.NewRat(2, 1)))
	case order == 3:
		return new(big.Rat).Mul(g.A, big.NewRat(6, 1))
	default:
		return new(big.Rat)
	}
}

// Float64 returns the coefficients rounded to float64.
func (g Segment) Float64() (a, b, c, d float64) {
	a, _ = g.A.Float64()
	b, _ = g.B.Float64()
	c, _ = g.C.Float64()
	d, _ = g.D.Float64()

	return a, b, c, d
}

// segmentAt returns the first segment whose range contains x.
func (s *Spline) segmentAt(x *big.Rat) (Segment, bool) {
	for _, g := range s.Segments {
		if g.Contains(x) {
			return g, true
		}
	}

	return Segment{}, false
}

// At evaluates the spline at x using the first segment, in order, whose
// range contains x. ok is false when no segment does; that is absence, not
// failure, and the caller decides what it means (e.g. no extrapolation).
func (s *Spline) At(x *big.Rat) (y *big.Rat, ok bool) {
	return s.Derivative(x, 0)
}

// Derivative is At for the order-th derivative.
func (s *Spline) Derivative(x *big.Rat, order int) (*big.Rat, bool) {
	if s == nil || x == nil {
		return nil, false
	}
	g, ok := s.segmentAt(x)
	if !ok {
		return nil, false
	}

	return g.Derivative(x, order), true
}

// Eval is At for float64 callers. x is converted with Exact; NaN and ±Inf
// are never contained in any segment.
func (s *Spline) Eval(x float64) (float64, bool) {
	rx, err := Exact(x)
	if err != nil {
		return 0, false
	}
	y, ok := s.At(rx)
	if !ok {
		return 0, false
	}
	f, _ := y.Float64()

	return f, true
}

// EvalAll evaluates every x in order; ok[i] mirrors Eval's second result.
func (s *Spline) EvalAll(xs []float64) (ys []float64, ok []bool) {
	ys = make([]float64, len(xs))
	ok = make([]bool, len(xs))
	for i, x := range xs {
		ys[i], ok[i] = s.Eval(x)
	}

	return ys, ok
}

// Domain returns the smallest and largest abscissa over all segment ranges.
func (s *Spline) Domain() (lo, hi float64) {
	if s == nil || len(s.Segments) == 0 {
		return 0, 0
	}
	first, last := s.Segments[0].XMin, s.Segments[0].XMin
	for _, g := range s.Segments {
		for _, x := range [2]*big.Rat{g.XMin, g.XMax} {
			if x.Cmp(first) < 0 {
				first = x
			}
			if x.Cmp(last) > 0 {
				last = x
			}
		}
	}
	lo, _ = first.Float64()
	hi, _ = last.Float64()

	return lo, hi
}
