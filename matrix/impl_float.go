// SPDX-License-Identifier: MIT

// Package matrix - float64 bridge to gonum.
//
// Purpose:
//   - Export an exact system as a gonum *mat.Dense for diagnostics.
//   - Estimate conditioning of the coefficient block (Cond).
//   - Offer an LU-based float64 solve (SolveFloat) as an independent cross-check
//     of the exact solution.
//
// Notes:
//   - Conversions round each rational to the nearest float64; nothing here
//     feeds back into exact results.

package matrix

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ToFloat64 copies m into a new gonum Dense, rounding each entry to float64.
//
// Errors:
//   - ErrNilMatrix for a nil m.
func ToFloat64(m *Dense) (*mat.Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opFloat, ErrNilMatrix)
	}
	data := make([]float64, len(m.data))
	for i, v := range m.data {
		data[i], _ = v.Float64()
	}

	return mat.NewDense(m.r, m.c, data), nil
}

// split returns the coefficient block A (n×n) and right-hand side b of a.
func split(a *Augmented) (*mat.Dense, *mat.VecDense, error) {
	full, err := ToFloat64(a.Dense)
	if err != nil {
		return nil, nil, err
	}
	n := a.Unknowns()
	coef := mat.DenseCopyOf(full.Slice(0, n, 0, n))
	rhs := mat.VecDenseCopyOf(full.ColView(n))

	return coef, rhs, nil
}

// Cond returns the 2-norm condition number of the coefficient block of a.
// +Inf means the block is numerically singular.
//
// Errors:
//   - ErrNilMatrix, ErrMalformedSystem from ValidateAugmented.
func Cond(a *Augmented) (float64, error) {
	if err := ValidateAugmented(a); err != nil {
		return 0, matrixErrorf(opCond, err)
	}
	coef, _, err := split(a)
	if err != nil {
		return 0, matrixErrorf(opCond, err)
	}

	return mat.Cond(coef, 2), nil
}

// SolveFloat solves the system in float64 with gonum's LU factorization.
// The input is not modified.
//
// Errors:
//   - ErrNilMatrix, ErrMalformedSystem from ValidateAugmented.
//   - ErrSingular when gonum reports an infinite condition number.
func SolveFloat(a *Augmented) ([]float64, error) {
	if err := ValidateAugmented(a); err != nil {
		return nil, matrixErrorf(opSolveF, err)
	}
	coef, rhs, err := split(a)
	if err != nil {
		return nil, matrixErrorf(opSolveF, err)
	}

	var x mat.VecDense
	if err = x.SolveVec(coef, rhs); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) && !math.IsInf(float64(cond), 1) {
			// ill-conditioned but solved; the caller compares against the exact result
			return x.RawVector().Data, nil
		}

		return nil, matrixErrorf(opSolveF, fmt.Errorf("%v: %w", err, ErrSingular))
	}

	return x.RawVector().Data, nil
}
