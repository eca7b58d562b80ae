// SPDX-License-Identifier: MIT
// Package matrix provides the Gauss–Jordan kernel that brings any Dense to
// reduced row-echelon form in place.
//
// Purpose:
//   - Declare the elimination kernel and the operation tags used for error wrapping.
//
// Notes:
//   - Pivoting is "first non-zero at or below the current row". With exact
//     arithmetic there is no small-pivot rounding to guard against.

package matrix

import (
	"fmt"
	"math/big"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opReduce = "ReduceRowEchelon"
	opSolve  = "Solve"
	opFloat  = "ToFloat64"
	opCond   = "Cond"
	opSolveF = "SolveFloat"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ReduceRowEchelon reduces m to reduced row-echelon form in place.
//
// Implementation:
//   - A lead column pointer starts at 0. For each row r:
//   - Stage 1: find the first row i ≥ r with m[i,lead] ≠ 0; if none, advance
//     lead and search again; stop when lead runs past the last column.
//   - Stage 2: swap row i into position r.
//   - Stage 3: divide row r by its pivot.
//   - Stage 4: subtract m[i,lead]·row r from every other row i.
//   - Stage 5: record the pivot and advance lead.
//
// Behavior highlights:
//   - A rank-deficient matrix is NOT an error here: reduction stops early and
//     the returned Reduction reports fewer pivots. Callers decide (see Solve).
//   - Running it again on a reduced matrix changes nothing.
//
// Returns:
//   - Reduction: rank and pivot columns.
//   - error    : ErrNilMatrix only.
//
// Complexity:
//   - O(r²·c) big.Rat operations; rows that already hold 0 at the lead column are skipped.
func ReduceRowEchelon(m *Dense) (Reduction, error) {
	if m == nil {
		return Reduction{}, matrixErrorf(opReduce, ErrNilMatrix)
	}

	var (
		rows, cols = m.r, m.c
		lead       int
		r, i, j    int
		pivot      = new(big.Rat) // copy of the pivot value
		factor     = new(big.Rat) // copy of m[i,lead] during elimination
		tmp        = new(big.Rat)
		red        = Reduction{Pivots: make([]int, 0, rows)}
	)

	for r = 0; r < rows; r++ {
		if lead >= cols {
			return red, nil
		}

		// Stage 1: locate a non-zero entry in the lead column.
		i = r
		for m.cell(i, lead).Sign() == 0 {
			i++
			if i == rows {
				i = r
				lead++
				if lead == cols {
					return red, nil
				}
			}
		}

		// Stage 2: bring it up.
		m.swapRows(i, r)

		// Stage 3: normalize the pivot row.
		pivot.Set(m.cell(r, lead))
		for j = 0; j < cols; j++ {
			if c := m.cell(r, j); c.Sign() != 0 {
				c.Quo(c, pivot)
			}
		}

		// Stage 4: clear the lead column everywhere else.
		for i = 0; i < rows; i++ {
			if i == r || m.cell(i, lead).Sign() == 0 {
				continue
			}
			factor.Set(m.cell(i, lead))
			for j = 0; j < cols; j++ {
				src := m.cell(r, j)
				if src.Sign() == 0 {
					continue
				}
				dst := m.cell(i, j)
				dst.Sub(dst, tmp.Mul(factor, src))
			}
		}

		// Stage 5: bookkeeping.
		red.Rank++
		red.Pivots = append(red.Pivots, lead)
		lead++
	}

	return red, nil
}
