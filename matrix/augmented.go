// SPDX-License-Identifier: MIT

// Package matrix - Augmented systems [A | b] with block-addressed unknowns.
//
// Purpose:
//   - Hold a square linear system plus its right-hand side in one Dense.
//   - Address unknown columns as (block, k) pairs so equation builders never
//     compute raw column offsets themselves.

package matrix

import (
	"fmt"
	"math/big"
)

const (
	ctxBlock = "BlockColumn"
	ctxAug   = "NewAugmented"
)

// Augmented is an n×(n+1) Dense whose first n columns are unknown
// coefficients grouped into consecutive blocks of equal size; the last
// column holds the right-hand-side constants.
type Augmented struct {
	*Dense
	block int // unknowns per block (> 0)
}

// NewAugmented allocates a zero system with the given number of unknowns,
// split into blocks of blockSize columns.
//
// Errors:
//   - ErrInvalidDimensions when unknowns <= 0 or blockSize <= 0.
//   - ErrMalformedSystem when unknowns is not a multiple of blockSize.
//
// Complexity:
//   - Time O(n²), Space O(n²) with n = unknowns.
func NewAugmented(unknowns, blockSize int) (*Augmented, error) {
	if unknowns <= 0 || blockSize <= 0 {
		return nil, matrixErrorf(ctxAug, ErrInvalidDimensions)
	}
	if unknowns%blockSize != 0 {
		return nil, matrixErrorf(ctxAug,
			fmt.Errorf("%d unknowns in blocks of %d: %w", unknowns, blockSize, ErrMalformedSystem))
	}
	d, err := NewDense(unknowns, unknowns+1)
	if err != nil {
		return nil, matrixErrorf(ctxAug, err)
	}

	return &Augmented{Dense: d, block: blockSize}, nil
}

// Unknowns is the number of coefficient columns (Cols()-1).
func (a *Augmented) Unknowns() int { return a.c - 1 }

// BlockSize is the number of unknowns per block.
func (a *Augmented) BlockSize() int { return a.block }

// Blocks is the number of unknown blocks.
func (a *Augmented) Blocks() int { return a.Unknowns() / a.block }

// RHSColumn is the index of the right-hand-side column.
func (a *Augmented) RHSColumn() int { return a.c - 1 }

// BlockColumn maps (block, k) to its absolute column: block*BlockSize()+k.
//
// Errors:
//   - ErrOutOfRange when block or k fall outside the unknown columns.
func (a *Augmented) BlockColumn(block, k int) (int, error) {
	if block < 0 || block >= a.Blocks() || k < 0 || k >= a.block {
		return 0, fmt.Errorf("%s(%d,%d): %w", ctxBlock, block, k, ErrOutOfRange)
	}

	return block*a.block + k, nil
}

// SetBlock writes v into coefficient k of the given block on row.
func (a *Augmented) SetBlock(row, block, k int, v *big.Rat) error {
	col, err := a.BlockColumn(block, k)
	if err != nil {
		return err
	}

	return a.Set(row, col, v)
}

// AddBlock adds v to coefficient k of the given block on row. Equations that
// mention the same unknown twice (e.g. first and last block coincide) stay
// correct because terms accumulate instead of overwriting each other.
func (a *Augmented) AddBlock(row, block, k int, v *big.Rat) error {
	col, err := a.BlockColumn(block, k)
	if err != nil {
		return err
	}
	if row < 0 || row >= a.r {
		return denseErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	if v == nil {
		return denseErrorf(ctxSet, row, col, ErrNilValue)
	}
	c := a.cell(row, col)
	c.Add(c, v)

	return nil
}

// SetRHS writes the right-hand-side constant of row.
func (a *Augmented) SetRHS(row int, v *big.Rat) error {
	return a.Set(row, a.RHSColumn(), v)
}

// RHS returns copies of the right-hand-side column, top to bottom.
// After a complete reduction this is the solution vector.
func (a *Augmented) RHS() []*big.Rat {
	out := make([]*big.Rat, a.r)
	last := a.RHSColumn()
	for i := 0; i < a.r; i++ {
		out[i] = new(big.Rat).Set(a.cell(i, last))
	}

	return out
}
