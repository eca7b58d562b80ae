// Package matrix offers exact rational matrices for solving small dense
// linear systems.
//
// The matrix package provides:
//
//   - Dense: a row-major grid of *big.Rat with safe, error-returning accessors.
//   - Augmented: an R×(R+1) system [A | b] whose unknown columns are grouped
//     into fixed-size blocks (BlockColumn) so equation builders never do raw
//     column arithmetic.
//   - ReduceRowEchelon: in-place Gauss–Jordan reduction to reduced row-echelon
//     form, and Solve, which validates shape and rank before reading the
//     solution column.
//   - A float64 bridge to gonum (ToFloat64, Cond, SolveFloat) for conditioning
//     diagnostics and cross-checks.
//
// All arithmetic on Dense is exact, so pivot selection is "first non-zero"
// without any loss of precision.
//
// See the examples in this package and in spline for usage patterns.
package matrix
