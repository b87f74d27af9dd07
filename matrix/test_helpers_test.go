// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for Dense and kernels.
//   - Keep fixtures literal (row-major slices) so expected values read like the math.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// eps mirrors matrix.DefaultEpsilon for tolerance-boundary fixtures.
const eps = matrix.DefaultEpsilon

// hide wraps a Matrix to hide its concrete type from type assertions,
// forcing the generic (non-*Dense) paths in code under test.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustSet writes (i,j) or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d)", i, j)
}

// FromRows builds a *Dense from literal rows or fails the test.
func FromRows(t testing.TB, rows ...[]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// RequireEqual asserts matrix equality under the receiver tolerance and
// prints both operands on failure.
func RequireEqual(t testing.TB, want, got *matrix.Dense) {
	t.Helper()
	require.Truef(t, want.Equal(got), "want:\n%s\ngot:\n%s", want, got)
}

// RandomFill fills m with deterministic U(-1,1) values by seed.
func RandomFill(t testing.TB, m *matrix.Dense, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := m.Shape()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			MustSet(t, m, i, j, rng.Float64()*2-1)
		}
	}
}

// seq3x3 returns the 3×3 fixture used by the copy/move tests.
func seq3x3(t testing.TB) *matrix.Dense {
	t.Helper()

	return FromRows(t,
		[]float64{324, 3, -324},
		[]float64{87, 8, 8786},
		[]float64{-43, 9843, -98},
	)
}
