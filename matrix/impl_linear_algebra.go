// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic contracts of Dense: approximate
// equality, in-place sum, difference, scalar and matrix multiplication, and
// transpose. All operations perform strict fail-fast validation and return
// clear errors on dimension mismatches; a failed operation leaves the
// receiver and its operands untouched.
//
// Purpose:
//   - Define operation tags and shared constants for error reporting.
//   - Keep the in-place kernels on flat slices (single loop, fixed order).
//
// Notes:
//   - Value-returning facades (Add, Sub, Mul, Scale, Transpose) live in api.go
//     and are built as clone + in-place kernel.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSum         = "Sum"
	opDifference  = "Difference"
	opMultiply    = "Multiply"
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opScale       = "Scale"
	opTranspose   = "Transpose"
	opDeterminant = "Determinant"
	opCofactors   = "Cofactors"
	opInverse     = "Inverse"
	opMinor       = "minor"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Format: "<tag>: <underlying>".
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Equal reports whether m and other have the same shape and every pair of
// elements satisfies |a-b| <= eps, where eps is m's tolerance
// (DefaultEpsilon unless built WithEpsilon).
//
// Behavior highlights:
//   - Different shapes → false immediately; nil other → false.
//   - This is approximate equality, not a metric: it is symmetric for equal
//     tolerances but not transitive along chains of near-equal values.
//
// Complexity:
//   - Time O(r*c), Space O(1). Early exit on the first violation.
func (m *Dense) Equal(other *Dense) bool {
	if other == nil {
		return false
	}

	return EqualWithin(m, other, m.eps)
}

// EqualWithin compares any two matrices element-wise with absolute tolerance
// eps (negative eps is normalized to |eps|). Nil inputs or different shapes
// yield false. NaN never equals anything.
//
// Determinism:
//   - Flat 0..n-1 walk for *Dense pairs; fixed i→j order otherwise.
func EqualWithin(a, b Matrix, eps float64) bool {
	if ValidateNotNil(a) != nil || ValidateNotNil(b) != nil {
		return false
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}
	eps = math.Abs(eps)

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !(math.Abs(da.data[idx]-db.data[idx]) <= eps) {
					return false
				}
			}

			return true
		}
	}

	// Fallback: interface path with fixed i→j order.
	rows, cols := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return false
			}
			if bv, err = b.At(i, j); err != nil {
				return false
			}
			if !(math.Abs(av-bv) <= eps) {
				return false
			}
		}
	}

	return true
}

// Sum adds other into m element-wise (m += other).
//
// Errors:
//   - ErrNilMatrix (nil other), ErrDimensionMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Sum(other *Dense) error {
	if err := ValidateBinarySameShape(m, other); err != nil {
		return matrixErrorf(opSum, err)
	}
	for idx := range m.data {
		m.data[idx] += other.data[idx]
	}

	return nil
}

// Difference subtracts other from m element-wise (m -= other).
//
// Errors:
//   - ErrNilMatrix (nil other), ErrDimensionMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Difference(other *Dense) error {
	if err := ValidateBinarySameShape(m, other); err != nil {
		return matrixErrorf(opDifference, err)
	}
	for idx := range m.data {
		m.data[idx] -= other.data[idx]
	}

	return nil
}

// Scale multiplies every element of m by alpha (m *= alpha). Always succeeds.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) Scale(alpha float64) {
	for idx := range m.data {
		m.data[idx] *= alpha
	}
}

// Multiply replaces m with the matrix product m × other (m *= other).
// MAIN DESCRIPTION:
//   - Result shape is (m.Rows, other.Cols); each element is Σ_k m[i,k]*other[k,j].
//
// Implementation:
//   - Stage 1: validate other non-nil and m.Cols == other.Rows.
//   - Stage 2: accumulate into a fresh buffer with i→k→j strides, reading the
//     original m throughout (m.Multiply(m) is therefore safe).
//   - Stage 3: swap the fresh buffer into m.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch. m is unchanged on error.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Dense) Multiply(other *Dense) error {
	if err := ValidateMulCompatible(m, other); err != nil {
		return matrixErrorf(opMultiply, err)
	}
	res := m.product(other)
	m.r, m.c, m.data = res.r, res.c, res.data

	return nil
}

// product computes m × b into a new Dense carrying m's policy.
// Callers guarantee m.c == b.r. For each (i,j) the terms are accumulated in
// ascending k, so the result matches the textbook dot product bit for bit.
func (m *Dense) product(b *Dense) *Dense {
	aRows, aCols, bCols := m.r, m.c, b.c
	res := m.newLike(aRows, bCols)

	// m.data layout: i*aCols + k; b.data layout: k*bCols + j.
	var i, j, k int
	var av float64
	var rowA, rowB, rowR int
	for i = 0; i < aRows; i++ {
		rowA = i * aCols
		rowR = i * bCols
		for k = 0; k < aCols; k++ {
			av = m.data[rowA+k]
			rowB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res
}

// Transpose returns a new (cols × rows) matrix with result[i,j] = m[j,i].
// Always succeeds; the transpose of a moved-from matrix is empty.
// transpose(transpose(M)) equals M exactly.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Transpose() *Dense {
	rows, cols := m.r, m.c
	res := m.newLike(cols, rows)

	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res
}
