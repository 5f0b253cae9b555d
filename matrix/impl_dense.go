// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide the runtime-shaped counterpart of Matrix for data whose extent is
//     only known at runtime (decoded files, CLI operands).
//   - Guarantee safety at the public surface: At/Set and every Dense operator
//     return errors instead of panicking.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Dense trades the compile-time shape guarantee of Matrix for runtime checks;
// use FromDense to move into a static type once the shape is known.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
)

// ---------- error context tags ----------

const (
	ctxDenseAt  = "At"
	ctxDenseSet = "Set"
	ctxIngest   = "Ingest"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a runtime-shaped row-major matrix.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set (policy default from options.go).
type Dense[E Number] struct {
	r, c           int
	data           []E
	validateNaNInf bool
}

var _ fmt.Stringer = (*Dense[int64])(nil)

// NewDense creates an r×c zero matrix.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and resolve the numeric policy.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[E Number](rows, cols int, opts ...Option) (*Dense[E], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opNewDense,
			fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions))
	}

	return newDense[E](rows, cols, gatherOptions(opts...)), nil
}

// newDense allocates without validation; callers guarantee rows, cols > 0.
func newDense[E Number](rows, cols int, o Options) *Dense[E] {
	return &Dense[E]{
		r:              rows,
		c:              cols,
		data:           make([]E, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}
}

// NewDenseFilled creates an r×c matrix with every element set to v.
// Errors: ErrInvalidDimensions; ErrNaNInf when v is not finite and the policy is on.
func NewDenseFilled[E Number](rows, cols int, v E, opts ...Option) (*Dense[E], error) {
	d, err := NewDense[E](rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if d.validateNaNInf && isNaNInf(v) {
		return nil, matrixErrorf(opNewDense, denseErrorf(ctxIngest, 0, 0, ErrNaNInf))
	}
	ewFill(d.data, v)

	return d, nil
}

// NewDenseFromRows builds a Dense from a row-major nested sequence; the shape
// is taken from the data. Every row must have the same non-zero length.
//
// Errors:
//   - ErrBadShape for empty or ragged input.
//   - ErrNaNInf (with coordinates) when the policy is on and a value is not finite.
//
// Complexity:
//   - Time O(r*c), Space O(r*c). The input is copied, never retained.
func NewDenseFromRows[E Number](rows [][]E, opts ...Option) (*Dense[E], error) {
	// Validate: non-empty and rectangular; the shape is inferred from row 0.
	if err := ValidateRows(rows, -1, -1); err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}

	// Allocate with the resolved numeric policy.
	r, c := len(rows), len(rows[0])
	d := newDense[E](r, c, gatherOptions(opts...))

	// Copy row by row; stop at the first non-finite value when the policy is on.
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if d.validateNaNInf && isNaNInf(rows[i][j]) {
				return nil, matrixErrorf(opFromRows, denseErrorf(ctxIngest, i, j, ErrNaNInf))
			}
			d.data[i*c+j] = rows[i][j]
		}
	}

	return d, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[E]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[E]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense[E]) Shape() (rows, cols int) { return m.r, m.c }

// ValidatesNaNInf reports whether Set rejects non-finite values.
func (m *Dense[E]) ValidatesNaNInf() bool { return m.validateNaNInf }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense[E]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange. Never panics.
func (m *Dense[E]) At(row, col int) (E, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero E
		return zero, denseErrorf(ctxDenseAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Errors: ErrOutOfRange for bounds; ErrNaNInf for non-finite v under the policy.
func (m *Dense[E]) Set(row, col int, v E) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxDenseSet, row, col, err)
	}
	if m.validateNaNInf && isNaNInf(v) {
		return denseErrorf(ctxDenseSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
func (m *Dense[E]) Clone() *Dense[E] {
	cp := make([]E, len(m.data))
	copy(cp, m.data)

	return &Dense[E]{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// ToRows returns a fresh row-major nested copy.
func (m *Dense[E]) ToRows() [][]E {
	return splitRows(m.data, m.r, m.c)
}

// String renders rows as "[a, b]\n" lines, identical to Matrix.String.
func (m *Dense[E]) String() string {
	return formatRows(m.data, m.r, m.c)
}
