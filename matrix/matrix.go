// SPDX-License-Identifier: MIT

// Package matrix - static Matrix storage (row-major) & fail-fast accessors.
//
// Purpose:
//   - Carry the row and column counts in the TYPE (Matrix[R, C, E]) so that shape
//     agreement between operands is checked by the compiler, not at runtime.
//   - Store elements in one flat row-major buffer with offset i*cols + j.
//   - Treat out-of-range indices as programmer errors: panic immediately, with an
//     error value wrapping ErrOutOfRange, instead of reading a neighbouring cell.
//
// Complexity quicksheet:
//   - New/Fill/FromRows: O(r*c); At/Set/Ref: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRef    = "Ref"
	ctxLookup = "Lookup"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is a dense R×C grid of E values whose extent is fixed by the type.
//
// The zero value is a valid all-zero matrix; storage is allocated on the first
// write. Read-only methods never modify m, so concurrent reads are safe; any
// write must be serialized with all other access.
// A Matrix exclusively owns its buffer: every constructor and every non-mutating
// operator returns fresh storage. Assigning a Matrix struct by value shares the
// buffer, so use Clone for an independent copy.
type Matrix[R, C Dim, E Number] struct {
	data []E // row-major, len == R.Len()*C.Len() once allocated
}

var _ fmt.Stringer = (*Matrix[D1, D1, int64])(nil)

// matrixPanicf panics with a wrapped sentinel carrying method context and coordinates.
func matrixPanicf(method string, row, col int, err error) {
	panic(fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err))
}

// New returns an R×C matrix with every element set to the zero value of E.
// Complexity: O(r*c).
func New[R, C Dim, E Number]() *Matrix[R, C, E] {
	return &Matrix[R, C, E]{data: make([]E, dimLen[R]()*dimLen[C]())}
}

// Fill returns an R×C matrix with every element set to v.
// Complexity: O(r*c).
func Fill[R, C Dim, E Number](v E) *Matrix[R, C, E] {
	m := New[R, C, E]()
	ewFill(m.data, v)

	return m
}

// FromRows builds an R×C matrix from a row-major nested sequence.
//
// Implementation:
//   - Stage 1: validate len(rows) == R and len(rows[i]) == C for every i.
//   - Stage 2: copy rows into a fresh flat buffer; the input is not retained.
//
// Errors:
//   - ErrBadShape (wrapped with the offending row) when the sequence does not
//     match the declared shape. Nothing is truncated or padded.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[R, C Dim, E Number](rows [][]E) (*Matrix[R, C, E], error) {
	// Stage 1: the nested shape must equal R×C exactly.
	r, c := dimLen[R](), dimLen[C]()
	if err := ValidateRows(rows, r, c); err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}

	// Stage 2: each row lands at offset i*c in the flat buffer.
	m := &Matrix[R, C, E]{data: make([]E, r*c)}
	for i, row := range rows {
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// MustFromRows is like FromRows but panics on a shape mismatch.
// Intended for literals whose shape is known to be right.
func MustFromRows[R, C Dim, E Number](rows [][]E) *Matrix[R, C, E] {
	m, err := FromRows[R, C](rows)
	if err != nil {
		panic(err)
	}

	return m
}

// buf returns the backing buffer for writing, allocating the zero matrix on
// first use. Only mutators call it.
func (m *Matrix[R, C, E]) buf() []E {
	if m == nil {
		panic(fmt.Errorf("Matrix: %w", ErrNilMatrix))
	}
	if m.data == nil {
		m.data = make([]E, dimLen[R]()*dimLen[C]())
	}

	return m.data
}

// view returns the backing buffer for reading and never writes to m.
// An unallocated zero value yields a fresh all-zero buffer.
func (m *Matrix[R, C, E]) view() []E {
	if m == nil {
		panic(fmt.Errorf("Matrix: %w", ErrNilMatrix))
	}
	if m.data == nil {
		return make([]E, dimLen[R]()*dimLen[C]())
	}

	return m.data
}

// Rows returns R. Complexity: O(1).
func (m *Matrix[R, C, E]) Rows() int { return dimLen[R]() }

// Cols returns C. Complexity: O(1).
func (m *Matrix[R, C, E]) Cols() int { return dimLen[C]() }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix[R, C, E]) Shape() (rows, cols int) { return dimLen[R](), dimLen[C]() }

// offset returns the flat index of (row, col) or false when out of range.
// Unsigned comparison rejects negative indices in the same test.
func (m *Matrix[R, C, E]) offset(row, col int) (int, bool) {
	r, c := dimLen[R](), dimLen[C]()
	if uint(row) >= uint(r) || uint(col) >= uint(c) {
		return 0, false
	}

	return row*c + col, true
}

// At returns the element at (row, col), zero-based.
// It panics with an error wrapping ErrOutOfRange when row ∉ [0,R) or col ∉ [0,C).
func (m *Matrix[R, C, E]) At(row, col int) E {
	data := m.view()
	off, ok := m.offset(row, col)
	if !ok {
		matrixPanicf(ctxAt, row, col, ErrOutOfRange)
	}

	return data[off]
}

// Set stores v at (row, col). Same bounds contract as At.
func (m *Matrix[R, C, E]) Set(row, col int, v E) {
	data := m.buf()
	off, ok := m.offset(row, col)
	if !ok {
		matrixPanicf(ctxSet, row, col, ErrOutOfRange)
	}
	data[off] = v
}

// Ref returns a pointer to the element at (row, col) for in-place updates
// such as *m.Ref(0, 1) += 3. Same bounds contract as At.
// The pointer stays valid for the lifetime of m.
func (m *Matrix[R, C, E]) Ref(row, col int) *E {
	data := m.buf()
	off, ok := m.offset(row, col)
	if !ok {
		matrixPanicf(ctxRef, row, col, ErrOutOfRange)
	}

	return &data[off]
}

// Lookup is the checked counterpart of At: it returns an error wrapping
// ErrOutOfRange instead of panicking.
func (m *Matrix[R, C, E]) Lookup(row, col int) (E, error) {
	data := m.view()
	off, ok := m.offset(row, col)
	if !ok {
		var zero E
		return zero, fmt.Errorf("Matrix.%s(%d,%d): %w", ctxLookup, row, col, ErrOutOfRange)
	}

	return data[off], nil
}

// Clone returns a deep copy; mutations on either side are not visible to the other.
// Complexity: O(r*c).
func (m *Matrix[R, C, E]) Clone() *Matrix[R, C, E] {
	src := m.view()
	cp := make([]E, len(src))
	copy(cp, src)

	return &Matrix[R, C, E]{data: cp}
}

// String renders rows as "[a, b]\n" lines for diagnostics.
func (m *Matrix[R, C, E]) String() string {
	return formatRows(m.view(), dimLen[R](), dimLen[C]())
}

// formatRows is shared by Matrix and Dense so both print identically.
func formatRows[E Number](data []E, rows, cols int) string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < rows; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * cols
		for j = 0; j < cols; j++ {
			fmt.Fprintf(&b, "%v", data[base+j])
			if j+1 < cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
