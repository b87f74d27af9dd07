// SPDX-License-Identifier: MIT
// Package matrix - element-wise helpers on *Dense.
//
// Purpose:
//   - Hadamard product, finite-value sanitizing, clamping, trace and a
//     relative+absolute closeness test.
//   - Helpers that produce a matrix return a fresh one; operands are never mutated.
//
// Determinism & Performance:
//   - Fixed row-major order, O(r*c) time.
//   - Results inherit the numeric policy (eps, NaN/Inf guard) of the first operand.

package matrix

import (
	"fmt"
	"math"
)

const (
	opHadamard      = "Hadamard"
	opReplaceInfNaN = "ReplaceInfNaN"
	opClip          = "Clip"
	opAllClose      = "AllClose"
	opTrace         = "Trace"
	opCheckFinite   = "CheckFinite"
)

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Hadamard returns the element-wise product a ∘ b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Hadamard(a, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	out := a.Clone()
	for idx := range out.data {
		out.data[idx] *= b.data[idx]
	}

	return out, nil
}

// ReplaceInfNaN returns a copy of m with every NaN or ±Inf replaced by val.
// Errors: ErrNilMatrix; ErrNaNInf when val itself is not finite.
func ReplaceInfNaN(m *Dense, val float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReplaceInfNaN, err)
	}
	if !isFinite(val) {
		return nil, matrixErrorf(opReplaceInfNaN, ErrNaNInf)
	}
	out := m.Clone()
	for idx, v := range out.data {
		if !isFinite(v) {
			out.data[idx] = val
		}
	}

	return out, nil
}

// Clip returns a copy of m with each entry clamped into [lo, hi].
// Bounds given in reverse order are swapped. NaN entries are kept as-is.
// Errors: ErrNilMatrix; ErrNaNInf when a bound is not finite.
func Clip(m *Dense, lo, hi float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opClip, err)
	}
	if !isFinite(lo) || !isFinite(hi) {
		return nil, matrixErrorf(opClip, ErrNaNInf)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	out := m.Clone()
	for idx, v := range out.data {
		if v < lo {
			out.data[idx] = lo
		} else if v > hi {
			out.data[idx] = hi
		}
	}

	return out, nil
}

// AllClose reports whether |a-b| <= atol + rtol*|b| holds element-wise.
// Negative tolerances are normalized to their absolute value.
//
// Errors:
//   - ErrNaNInf when rtol or atol is not finite.
//   - ErrNilMatrix, ErrDimensionMismatch.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if !isFinite(rtol) || !isFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	rows, cols := a.Rows(), a.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, err := a.At(i, j)
			if err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			bv, err := b.At(i, j)
			if err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
				return false, nil
			}
		}
	}

	return true, nil
}

// Trace returns the sum of the main diagonal of a square matrix.
// Errors: ErrNonSquare, ErrInvalidDimensions (moved-from).
func (m *Dense) Trace() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var sum float64
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+i]
	}

	return sum, nil
}

// CheckFinite returns a wrapped ErrNaNInf naming the first NaN or ±Inf in m.
// Errors: ErrNilMatrix, ErrNaNInf.
func CheckFinite(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opCheckFinite, err)
	}
	for idx, v := range m.data {
		if !isFinite(v) {
			return matrixErrorf(opCheckFinite, fmt.Errorf("(%d,%d): %w", idx/m.c, idx%m.c, ErrNaNInf))
		}
	}

	return nil
}
