// Package matrix offers a dense, arbitrary-size float64 matrix with value
// semantics and a small, exact linear-algebra core.
//
// The matrix package provides:
//
//   - Dense: an owned row-major buffer with bounds-checked At/Set/Ref,
//     deep copy (Clone, CopyFrom), O(1) ownership transfer (Move, MoveFrom)
//     and shape-preserving resize (SetRows, SetCols).
//   - Arithmetic: in-place Sum, Difference, Scale and Multiply, plus the
//     value-returning facades Add, Sub, Scale and Mul.
//   - Transpose, Determinant (recursive Laplace expansion), Cofactors and
//     Inverse (adjugate over determinant).
//   - Approximate equality with an absolute tolerance (DefaultEpsilon = 1e-7).
//
// Every failure is a sentinel error (ErrInvalidDimensions, ErrOutOfRange,
// ErrDimensionMismatch, ErrNonSquare, ErrSingular, ErrNilMatrix) wrapped with
// call-site context; match with errors.Is. A failed call leaves its receiver
// and operands unchanged.
//
// Determinant and Cofactors are O(n!) by design and intended for small
// matrices.
//
// See the examples in this package for usage patterns.
package matrix
