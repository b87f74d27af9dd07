// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestHadamard(t *testing.T) {
	a := FromRows(t, []float64{1, 2}, []float64{3, 4})
	b := FromRows(t, []float64{5, 6}, []float64{7, 8})
	got, err := matrix.Hadamard(a, b)
	require.NoError(t, err)
	RequireEqual(t, FromRows(t, []float64{5, 12}, []float64{21, 32}), got)
	RequireEqual(t, FromRows(t, []float64{1, 2}, []float64{3, 4}), a)

	_, err = matrix.Hadamard(a, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Hadamard(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestReplaceInfNaN(t *testing.T) {
	m := FromRows(t, []float64{math.NaN(), 1}, []float64{math.Inf(1), math.Inf(-1)})
	got, err := matrix.ReplaceInfNaN(m, 0)
	require.NoError(t, err)
	RequireEqual(t, FromRows(t, []float64{0, 1}, []float64{0, 0}), got)
	require.True(t, math.IsNaN(MustAt(t, m, 0, 0)), "input must stay untouched")

	_, err = matrix.ReplaceInfNaN(m, math.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestClip(t *testing.T) {
	m := FromRows(t, []float64{-5, 0.5, 5})
	got, err := matrix.Clip(m, 1, -1) // reversed bounds are swapped
	require.NoError(t, err)
	RequireEqual(t, FromRows(t, []float64{-1, 0.5, 1}), got)

	_, err = matrix.Clip(m, math.Inf(-1), 1)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestAllClose(t *testing.T) {
	a := FromRows(t, []float64{100, 1})
	b := FromRows(t, []float64{100.5, 1})

	ok, err := matrix.AllClose(a, b, 1e-2, 0)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(hide{a}, b, 1e-3, 0)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.AllClose(a, MustDense(t, 2, 2), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTrace(t *testing.T) {
	tr, err := seq3x3(t).Trace()
	require.NoError(t, err)
	require.Equal(t, 324.0+8-98, tr)

	_, err = MustDense(t, 2, 3).Trace()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestCheckFinite(t *testing.T) {
	m := MustDense(t, 2, 3)
	require.NoError(t, matrix.CheckFinite(m))
	MustSet(t, m, 1, 2, math.NaN())
	err := matrix.CheckFinite(m)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "(1,2)")
	require.ErrorIs(t, matrix.CheckFinite(nil), matrix.ErrNilMatrix)
}
