// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by Dense and Augmented.
package matrix

import "math/big"

// Matrix represents a two-dimensional mutable array of exact rationals.
//
// Values crossing the interface are always copies: At returns a fresh
// *big.Rat and Set stores a copy of its argument, so callers can never alias
// internal storage.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves a copy of the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (*big.Rat, error)

	// Set assigns a copy of v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid, ErrNilValue if v is nil.
	Set(i, j int, v *big.Rat) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// Reduction describes the outcome of ReduceRowEchelon.
//   - Rank is the number of pivot rows produced.
//   - Pivots[r] is the lead column of pivot row r, strictly increasing.
type Reduction struct {
	Rank   int
	Pivots []int
}

// Complete reports whether the first n columns all received a pivot, i.e. the
// reduced matrix holds an identity on its first n columns.
func (r Reduction) Complete(n int) bool {
	if r.Rank < n {
		return false
	}
	for i := 0; i < n; i++ {
		if r.Pivots[i] != i {
			return false
		}
	}

	return true
}
