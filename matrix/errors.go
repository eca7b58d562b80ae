// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly from validators; kernels wrap with matrixErrorf(op, ErrX) at the
// outer boundary and callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> system shape (ErrMalformedSystem) -> rank (ErrSingular).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNilValue indicates that a nil *big.Rat was passed to Set.
	ErrNilValue = errors.New("matrix: nil value")

	// ErrMalformedSystem signals an augmented system whose row count does not
	// equal its column count minus one, or whose unknown columns do not split
	// into whole blocks. It always points at a builder bug.
	ErrMalformedSystem = errors.New("matrix: malformed augmented system")

	// ErrSingular is returned when reduction leaves an unknown column without a
	// pivot (rank-deficient or inconsistent system).
	ErrSingular = errors.New("matrix: singular system")
)
