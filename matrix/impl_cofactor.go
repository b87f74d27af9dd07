// SPDX-License-Identifier: MIT
// Package matrix - minors, determinant, cofactors and inverse by Laplace expansion.
//
// Purpose:
//   - Compute det(A) by recursive first-row cofactor expansion.
//   - Build the cofactor matrix and the inverse as adj(A)/det(A), where
//     adj(A) is the transpose of the cofactor matrix.
//
// Determinism & Policy:
//   - Expansion is O(n!) on purpose: exact integer fixtures stay exact, and the
//     matrices this type is meant for are small. No pivoting, no LU.
//   - Inverse treats only an exactly zero determinant as singular; near-singular
//     inputs are inverted as-is.
//   - A 1×1 matrix has cofactor matrix [[1]] regardless of its element, so
//     [[a]] inverts to [[1/a]] for any a != 0.
//   - Recursion depth equals n-1; each level reuses one preallocated
//     (k×k) scratch buffer, so a full expansion allocates O(n²) in total.

package matrix

import "fmt"

// ZeroPivot is the determinant value Inverse rejects with ErrSingular.
const ZeroPivot = 0.0

// minorInto fills dst with m after deleting row `row` and column `col`,
// preserving the relative order of the remaining entries.
// MAIN DESCRIPTION:
//   - Walk the (r-1)×(c-1) destination; once the destination row index reaches
//     `row`, read from the next source row, and likewise for columns.
//
// Errors:
//   - ErrOutOfRange when row/col is outside m.
//   - ErrDimensionMismatch when dst is not (r-1)×(c-1).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) minorInto(row, col int, dst *Dense) error {
	if err := ValidateIndex(m, row, col); err != nil {
		return matrixErrorf(opMinor, err)
	}
	if dst == nil || dst.r != m.r-1 || dst.c != m.c-1 {
		return matrixErrorf(opMinor, ErrDimensionMismatch)
	}

	var i, j, pastRow, pastCol, src, out int
	for i = 0; i < m.r-1; i++ {
		if i == row {
			pastRow = 1
		}
		pastCol = 0
		src = (i + pastRow) * m.c
		out = i * dst.c
		for j = 0; j < m.c-1; j++ {
			if j == col {
				pastCol = 1
			}
			dst.data[out+j] = m.data[src+j+pastCol]
		}
	}

	return nil
}

// minorScratch allocates one k×k buffer per expansion level, k = n-1 down to 1.
// scratch[0] receives minors of the n×n input, scratch[1] minors of those, etc.
func minorScratch(n int) []*Dense {
	scratch := make([]*Dense, 0, n-1)
	for k := n - 1; k >= 1; k-- {
		scratch = append(scratch, &Dense{r: k, c: k, data: make([]float64, k*k)})
	}

	return scratch
}

// determinant expands a along its first row:
//
//	det(a) = Σ_j (-1)^j · a[0,j] · det(minor(a, 0, j))
//
// Callers guarantee a is square and non-empty and that scratch was built by
// minorScratch(a.r).
func determinant(a *Dense, scratch []*Dense) float64 {
	if a.r == 1 {
		return a.data[0]
	}

	minor, rest := scratch[0], scratch[1:]
	var det float64
	sign := 1.0
	for j := 0; j < a.c; j++ {
		// Row 0 and j < a.c are always in range, so minorInto cannot fail here.
		_ = a.minorInto(0, j, minor)
		det += a.data[j] * determinant(minor, rest) * sign
		sign = -sign
	}

	return det
}

// Determinant returns det(m) via recursive first-row Laplace expansion.
//
// Errors:
//   - ErrNonSquare when Rows != Cols.
//   - ErrInvalidDimensions on a moved-from matrix.
//
// Complexity:
//   - Time O(n!), Space O(n²). Suitable for small n only.
func (m *Dense) Determinant() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return determinant(m, minorScratch(m.r)), nil
}

// Cofactors returns the cofactor matrix C with C[i,j] = (-1)^(i+j)·det(minor(i,j)).
// For a 1×1 input the result is [[1]].
//
// Errors:
//   - ErrNonSquare, ErrInvalidDimensions (moved-from).
//
// Complexity:
//   - Time O(n²·(n-1)!), Space O(n²).
func (m *Dense) Cofactors() (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}

	n := m.r
	res := m.newLike(n, n)
	if n == 1 {
		res.data[0] = 1
		return res, nil
	}

	scratch := minorScratch(n)
	minor, rest := scratch[0], scratch[1:]
	var sign float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err := m.minorInto(i, j, minor); err != nil {
				return nil, matrixErrorf(opCofactors, fmt.Errorf("(%d,%d): %w", i, j, err))
			}
			sign = 1
			if (i+j)%2 == 1 {
				sign = -1
			}
			res.data[i*n+j] = determinant(minor, rest) * sign
		}
	}

	return res, nil
}

// Inverse returns m⁻¹ = adj(m)·(1/det(m)).
// Implementation:
//   - Stage 1: det := Determinant(); exact zero → ErrSingular.
//   - Stage 2: adj := Cofactors().Transpose(); scale by 1/det.
//
// Errors:
//   - ErrNonSquare, ErrInvalidDimensions (moved-from), ErrSingular.
//
// Complexity:
//   - Dominated by Cofactors: Time O(n²·(n-1)!), Space O(n²).
func (m *Dense) Inverse() (*Dense, error) {
	det, err := m.Determinant()
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if det == ZeroPivot {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	cof, err := m.Cofactors()
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	adj := cof.Transpose()
	adj.Scale(1 / det)

	return adj, nil
}
