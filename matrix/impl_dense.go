// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer of exact rationals with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Ownership:
//   - Every cell owns its own *big.Rat. At returns copies and Set stores copies,
//     so no caller ever aliases a cell. Kernels in this package use cell() to
//     mutate in place without allocating.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) allocations; At/Set: O(1) plus one big.Rat copy; Clone: O(r*c).

package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"       // method tag used in error wrappers
	ctxSet     = "Set"      // method tag used in error wrappers
	ctxSwap    = "SwapRows" // method tag used in error wrappers
	ctxFromRow = "FromRows" // ctor tag for FromRows
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of exact rationals.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j);
//     every entry is a distinct, non-nil *big.Rat.
type Dense struct {
	r, c int        // row and column counts (> 0)
	data []*big.Rat // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate one zero *big.Rat per cell.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	buf := make([]*big.Rat, rows*cols)
	for i := range buf {
		buf[i] = new(big.Rat) // zero value is 0/1
	}

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// FromRows builds a Dense from a rectangular slice of rows. Values are copied.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty, a row is empty, or rows are ragged.
//   - ErrNilValue when any entry is nil.
func FromRows(rows [][]*big.Rat) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = range rows {
		if len(rows[i]) != m.c {
			return nil, fmt.Errorf("%s: row %d has %d cols, want %d: %w",
				ctxFromRow, i, len(rows[i]), m.c, ErrInvalidDimensions)
		}
		for j = range rows[i] {
			if rows[i][j] == nil {
				return nil, denseErrorf(ctxFromRow, i, j, ErrNilValue)
			}
			m.data[i*m.c+j].Set(rows[i][j])
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// cell returns the live storage at (row, col) without bounds checks.
// Internal kernels only; callers must have validated the shape.
func (m *Dense) cell(row, col int) *big.Rat { return m.data[row*m.c+col] }

// At returns a copy of the value at (row, col) or ErrOutOfRange.
//
// Errors:
//   - ErrOutOfRange when out of bounds.
//
// Complexity:
//   - Time O(1) plus one big.Rat copy.
func (m *Dense) At(row, col int) (*big.Rat, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxAt, row, col, err)
	}

	return new(big.Rat).Set(m.data[off]), nil
}

// Set stores a copy of v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNilValue for a nil v.
func (m *Dense) Set(row, col int, v *big.Rat) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if v == nil {
		return denseErrorf(ctxSet, row, col, ErrNilValue)
	}
	m.data[off].Set(v)

	return nil
}

// SetInt64 is Set for small integer constants (1, -1, 2 ...), which make up
// most structural coefficients of an equation system.
func (m *Dense) SetInt64(row, col int, v int64) error {
	return m.Set(row, col, new(big.Rat).SetInt64(v))
}

// SwapRows exchanges rows i and k in place. Swapping a row with itself is a no-op.
//
// Errors:
//   - ErrOutOfRange if either index is invalid.
func (m *Dense) SwapRows(i, k int) error {
	if i < 0 || i >= m.r || k < 0 || k >= m.r {
		return denseErrorf(ctxSwap, i, k, ErrOutOfRange)
	}
	m.swapRows(i, k)

	return nil
}

// swapRows exchanges cell pointers of rows i and k; no bounds checks.
func (m *Dense) swapRows(i, k int) {
	if i == k {
		return
	}
	bi, bk := i*m.c, k*m.c
	for j := 0; j < m.c; j++ {
		m.data[bi+j], m.data[bk+j] = m.data[bk+j], m.data[bi+j]
	}
}

// Clone returns a deep copy (new buffer, new cells).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

func (m *Dense) clone() *Dense {
	cp := make([]*big.Rat, len(m.data))
	for i, v := range m.data {
		cp[i] = new(big.Rat).Set(v)
	}

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports whether o has the same shape and exactly the same entries.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i].Cmp(o.data[i]) != 0 {
			return false
		}
	}

	return true
}

// String HUMAN-READABLE dump of rows for diagnostics, entries in a/b form.
// Not for hot paths; intended for logs and debugging.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(m.data[base+j].RatString())
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
