// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, value-returning entry points for the binary operators
//     (+, -, ×, scalar ×) and builders to and from [][]float64.
//   - Avoid any logic duplication - each facade clones the left operand and
//     delegates to the canonical in-place kernel, so operands are never mutated.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of the kernels.
//   - The result inherits the numeric policy (eps, NaN/Inf guard) of the left operand.

package matrix

import "fmt"

// ---------- Constructors & Utilities ----------

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions when n <= 0.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	I, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewFromRows builds a Dense from a row-major [][]float64, copying the values.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or the first row is empty.
//   - ErrDimensionMismatch when rows are ragged.
//   - ErrNaNInf when WithValidateNaNInf is set and a value is not finite.
//
// Complexity: O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("NewFromRows: %w", ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewFromRows: %w", err)
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d columns, want %d: %w", i, len(row), c, ErrDimensionMismatch)
		}
		for j, v := range row {
			if err = m.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("NewFromRows: %w", err)
			}
		}
	}

	return m, nil
}

// ToRows exports m as a freshly allocated [][]float64 (nil when m is empty).
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	if m.IsEmpty() {
		return nil
	}
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// ---------- Binary operators (value-returning) ----------

// Add returns a + b without mutating either operand.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Add(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res := a.Clone()
	if err := res.Sum(b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return res, nil
}

// Sub returns a - b without mutating either operand.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Sub(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	res := a.Clone()
	if err := res.Difference(b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return res, nil
}

// Mul returns the matrix product a × b without mutating either operand.
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
// Complexity: O(r*n*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res := a.Clone()
	if err := res.Multiply(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return res, nil
}

// Scale returns alpha·m without mutating m.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := m.Clone()
	res.Scale(alpha)

	return res, nil
}

// Transpose returns mᵀ as a new matrix.
// Errors: ErrNilMatrix.
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return m.Transpose(), nil
}

// Equal compares a and b with a's tolerance when a is *Dense, DefaultEpsilon
// otherwise. Nil inputs or different shapes yield false.
func Equal(a, b Matrix) bool {
	eps := DefaultEpsilon
	if d, ok := a.(*Dense); ok && d != nil {
		eps = d.eps
	}

	return EqualWithin(a, b, eps)
}
