// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & lifecycle.
//
// Purpose:
//   - Provide an owned row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Ref return errors instead of panicking.
//   - Model value semantics explicitly: Clone/CopyFrom deep-copy, Move/MoveFrom
//     transfer the buffer and leave the source empty (0×0, no buffer).
//   - Resize with SetRows/SetCols, preserving the overlapping top-left block and
//     zero-filling everything new.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Ref: O(1); Clone: O(r*c); Move: O(1);
//     SetRows: O(1) shrink, O(r*c) grow; SetCols: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxRef      = "Ref"      // method tag used in error wrappers
	ctxApply    = "Apply"    // method tag used in error wrappers
	ctxSetRows  = "SetRows"  // resize tag
	ctxSetCols  = "SetCols"  // resize tag
	ctxCopyFrom = "CopyFrom" // copy-assign tag
	ctxMoveFrom = "MoveFrom" // move-assign tag
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <err>"; the sentinel is preserved via %w.
// Complexity: Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix that exclusively owns its buffer.
//   - r,c hold dimensions (rows, cols); both are 0 only in the moved-from state.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - eps is the absolute tolerance used by Equal.
//   - validateNaNInf enables optional NaN/Inf rejection in Set and Apply.
//
// A Dense is a value, not a service: it carries no lock, so concurrent use of
// one instance needs external synchronization.
type Dense struct {
	r, c           int       // row and column counts (>0, or both 0 when moved-from)
	data           []float64 // contiguous row-major storage (len == r*c)
	eps            float64   // equality tolerance
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// New returns the default DefaultRows×DefaultCols (3×3) zero matrix.
// It cannot fail, so it returns no error.
func New(opts ...Option) *Dense {
	return newDenseWithOptions(DefaultRows, DefaultCols, gatherOptions(opts...))
}

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and resolved numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and apply options.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation), e.g. (0,0), (-2,-3), (3,-1).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return newDenseWithOptions(rows, cols, gatherOptions(opts...)), nil
}

// newDenseWithOptions allocates without validation; callers guarantee rows, cols >= 0.
func newDenseWithOptions(rows, cols int, o Options) *Dense {
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		eps:            o.eps,
		validateNaNInf: o.validateNaNInf,
	}
}

// newLike is an internal constructor that allows zero dimensions and copies
// the numeric policy of m. Used for results derived from m (transpose,
// product, cofactors) so that operations on a moved-from value stay total.
// A zero-area shape yields an empty matrix (no buffer).
func (m *Dense) newLike(rows, cols int) *Dense {
	if rows == 0 || cols == 0 {
		return &Dense{eps: m.eps, validateNaNInf: m.validateNaNInf}
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		eps:            m.eps,
		validateNaNInf: m.validateNaNInf,
	}
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsEmpty reports whether m is in the moved-from state (0×0, no buffer).
func (m *Dense) IsEmpty() bool { return m.data == nil }

// Epsilon returns the tolerance used by Equal on this instance.
func (m *Dense) Epsilon() float64 { return m.eps }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// On a moved-from matrix every index is out of range.
// Complexity: Time O(1), Space O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite v when the instance
//     was built WithValidateNaNInf.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Ref returns a pointer to the element at (row, col) for read-modify-write
// access, e.g. `*p += 1`. The pointer aliases the current buffer and is
// invalidated by SetRows (grow), SetCols, Multiply, CopyFrom, Move and MoveFrom.
// Writes through the pointer bypass the NaN/Inf policy.
//
// Errors:
//   - ErrOutOfRange when out of bounds (always, on a moved-from matrix).
func (m *Dense) Ref(row, col int) (*float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxRef, row, col, err)
	}

	return &m.data[off], nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Independence: mutations of the clone never affect m and vice versa.
// Cloning a moved-from matrix yields another empty matrix.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() *Dense {
	var cp []float64
	if m.data != nil {
		cp = make([]float64, len(m.data))
		copy(cp, m.data)
	}

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		eps:            m.eps,
		validateNaNInf: m.validateNaNInf,
	}
}

// CopyFrom replaces m with a deep copy of src (copy assignment).
// Self-assignment is a no-op. The previous buffer of m is released.
//
// Errors:
//   - ErrNilMatrix when src is nil; m is left unchanged.
func (m *Dense) CopyFrom(src *Dense) error {
	if src == nil {
		return matrixErrorf("Dense."+ctxCopyFrom, ErrNilMatrix)
	}
	if src == m {
		return nil
	}
	*m = *src.Clone()

	return nil
}

// Move transfers the buffer of m into a new Dense in O(1) (move construction).
// Afterwards m is empty: Rows()==Cols()==0 and every element access fails
// with ErrOutOfRange.
func (m *Dense) Move() *Dense {
	out := &Dense{
		r:              m.r,
		c:              m.c,
		data:           m.data,
		eps:            m.eps,
		validateNaNInf: m.validateNaNInf,
	}
	m.reset()

	return out
}

// MoveFrom takes ownership of src's buffer in O(1) (move assignment) and
// leaves src empty. Self-move is a no-op that leaves m unchanged.
//
// Errors:
//   - ErrNilMatrix when src is nil; m is left unchanged.
func (m *Dense) MoveFrom(src *Dense) error {
	if src == nil {
		return matrixErrorf("Dense."+ctxMoveFrom, ErrNilMatrix)
	}
	if src == m {
		return nil
	}
	*m = *src.Move()

	return nil
}

// reset puts m into the moved-from state. The numeric policy is kept.
func (m *Dense) reset() {
	m.r, m.c = 0, 0
	m.data = nil
}

// SetRows resizes m to n rows.
// MAIN DESCRIPTION:
//   - Shrinking discards trailing rows without touching the others.
//   - Growing allocates a new buffer, copies the existing rows and zero-fills
//     the new ones.
//
// Errors:
//   - ErrInvalidDimensions when n <= 0, or when m is moved-from (no columns).
//
// Complexity:
//   - Time O(1) when shrinking, O(n*c) when growing.
func (m *Dense) SetRows(n int) error {
	if n <= 0 || m.c <= 0 {
		return fmt.Errorf("Dense.%s(%d): %w", ctxSetRows, n, ErrInvalidDimensions)
	}

	switch {
	case n < m.r:
		// Cap the capacity so a later grow can never resurface discarded rows.
		keep := n * m.c
		m.data = m.data[:keep:keep]
	case n > m.r:
		// Row-major layout: the existing rows are a prefix of the new buffer.
		buf := make([]float64, n*m.c)
		copy(buf, m.data)
		m.data = buf
	}
	m.r = n

	return nil
}

// SetCols resizes m to n columns. It always reallocates (even when n equals
// the current column count), copies the overlapping columns of every row and
// zero-fills new columns.
//
// Errors:
//   - ErrInvalidDimensions when n <= 0, or when m is moved-from (no rows).
//
// Complexity:
//   - Time O(r*n), Space O(r*n).
func (m *Dense) SetCols(n int) error {
	if n <= 0 || m.r <= 0 {
		return fmt.Errorf("Dense.%s(%d): %w", ctxSetCols, n, ErrInvalidDimensions)
	}

	overlap := min(n, m.c)
	buf := make([]float64, m.r*n)
	for i := 0; i < m.r; i++ {
		copy(buf[i*n:i*n+overlap], m.data[i*m.c:i*m.c+overlap])
	}
	m.data = buf
	m.c = n

	return nil
}

// String renders rows as lines with comma-separated values, e.g.
// "[1, 2]\n[3, 4]\n". Intended for logs and debugging; a moved-from matrix
// renders as the empty string.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, in row-major order.
//
// Behavior highlights:
//   - Respects validateNaNInf (rejects NaN/±Inf when enabled).
//   - All-or-nothing: values are staged in a scratch buffer and committed only
//     when every element passed the policy, so m is unchanged on error.
//
// Errors:
//   - ErrNaNInf when f produced a non-finite value (policy ON).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the staging buffer.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	staged := make([]float64, len(m.data))
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			staged[base+j] = nv
		}
	}
	copy(m.data, staged)

	return nil
}
