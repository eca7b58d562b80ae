// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil checks here.
//  - Return plain sentinel errors (tag-wrapped only) so call sites can wrap uniformly.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Blocks).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense hidden inside the interface.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateAugmentedShape checks that m has exactly one more column than rows,
// the shape of a square system [A | b].
//
// Errors: ErrNilMatrix, ErrMalformedSystem.
// Complexity: O(1).
func ValidateAugmentedShape(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateAugmentedShape", err)
	}
	if m.Rows() != m.Cols()-1 {
		return validatorErrorf("ValidateAugmentedShape",
			fmt.Errorf("%d rows for %d unknowns: %w", m.Rows(), m.Cols()-1, ErrMalformedSystem))
	}

	return nil
}

// ValidateAugmented – Composite: NotNil → AugmentedShape → whole blocks.
//
// Errors: ErrNilMatrix, ErrMalformedSystem.
// Complexity: O(1).
func ValidateAugmented(a *Augmented) error {
	if a == nil || a.Dense == nil {
		return validatorErrorf("ValidateAugmented", ErrNilMatrix)
	}
	if err := ValidateAugmentedShape(a.Dense); err != nil {
		return validatorErrorf("ValidateAugmented", err)
	}
	if a.block <= 0 || a.Unknowns()%a.block != 0 {
		return validatorErrorf("ValidateAugmented",
			fmt.Errorf("%d unknowns in blocks of %d: %w", a.Unknowns(), a.block, ErrMalformedSystem))
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Errors: ErrMalformedSystem on mismatch.
func ValidateVecLen[T any](x []T, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen",
			fmt.Errorf("len %d, want %d: %w", len(x), n, ErrMalformedSystem))
	}

	return nil
}
