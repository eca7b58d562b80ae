// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/big"
)

// Solve reduces the augmented system a to reduced row-echelon form and returns
// its solution vector (one entry per unknown, in column order).
//
// Implementation:
//   - Stage 1: ValidateAugmented (nil, rows == cols-1, whole blocks).
//   - Stage 2: ReduceRowEchelon in place (or on a clone with WithPreserveInput).
//   - Stage 3: require a pivot on every unknown column, i.e. an identity on
//     the coefficient part; a pivot on the RHS column means the equations
//     contradict each other and is reported the same way.
//   - Stage 4: read the RHS column.
//
// Errors:
//   - ErrNilMatrix, ErrMalformedSystem (shape).
//   - ErrSingular when rank < unknowns, unless WithLenientRank is set.
//
// Complexity:
//   - Dominated by ReduceRowEchelon: O(n³) rational operations.
func Solve(a *Augmented, opts ...Option) ([]*big.Rat, error) {
	if err := ValidateAugmented(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	o := gatherOptions(opts...)

	work := a
	if o.preserveInput {
		work = &Augmented{Dense: a.clone(), block: a.block}
	}

	red, err := ReduceRowEchelon(work.Dense)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	n := work.Unknowns()
	if !red.Complete(n) && !o.lenientRank {
		return nil, matrixErrorf(opSolve,
			fmt.Errorf("rank %d of %d unknowns: %w", coefficientRank(red, n), n, ErrSingular))
	}

	return work.RHS(), nil
}

// coefficientRank counts pivots that landed on unknown columns.
func coefficientRank(red Reduction, n int) int {
	k := 0
	for _, p := range red.Pivots {
		if p < n {
			k++
		}
	}

	return k
}
