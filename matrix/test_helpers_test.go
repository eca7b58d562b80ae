// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the exact kernels.
//   • Write matrices as rows of rational literals ("1/2", "-3", "0") to keep tables readable.

package matrix_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/cubicspline/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
type hide struct{ matrix.Matrix }

// R parses a rational literal or panics; test tables only.
func R(s string) *big.Rat {
	v, ok := new(big.Rat).SetString(s)
	if !ok {
		panic("bad rational literal " + s)
	}

	return v
}

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustRows builds a *Dense from rational literals or fails the test.
func MustRows(t *testing.T, rows [][]string) *matrix.Dense {
	t.Helper()
	vals := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		vals[i] = make([]*big.Rat, len(row))
		for j, s := range row {
			vals[i][j] = R(s)
		}
	}
	m, err := matrix.FromRows(vals)
	require.NoError(t, err)

	return m
}

// MustAugmented builds an Augmented system from rational literals.
func MustAugmented(t *testing.T, block int, rows [][]string) *matrix.Augmented {
	t.Helper()
	a, err := matrix.NewAugmented(len(rows), block)
	require.NoError(t, err)
	for i, row := range rows {
		require.Len(t, row, len(rows)+1, "row %d", i)
		for j, s := range row {
			require.NoError(t, a.Set(i, j, R(s)))
		}
	}

	return a
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) *big.Rat {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireRatEqual compares two rationals exactly.
func RequireRatEqual(t *testing.T, want, got *big.Rat, msgAndArgs ...interface{}) {
	t.Helper()
	require.NotNil(t, got, msgAndArgs...)
	require.Zerof(t, want.Cmp(got), "want %s, got %s %v", want.RatString(), got.RatString(), msgAndArgs)
}

// RequireRows compares every cell of m against rational literals.
func RequireRows(t *testing.T, want [][]string, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows())
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols())
		for j := range want[i] {
			RequireRatEqual(t, R(want[i][j]), MustAt(t, m, i, j), "at", i, j)
		}
	}
}
