// SPDX-License-Identifier: MIT
// Package matrix provides the runtime-checked operator set on Dense:
// element-wise addition, subtraction, matrix multiplication, transpose, trace,
// scalar scaling and equality. Every function validates shapes first and
// returns wrapped sentinels on mismatch; none of them panics on user input.
//
// Notes:
//   - The loops live in ops_elementwise.go and are shared with the static Matrix,
//     so both forms produce bit-identical results for identical inputs.
//   - Results inherit the numeric policy of the left operand.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opTrace     = "Trace"
	opEqual     = "Equal"
	opNewDense  = "NewDense"
	opFromRows  = "FromRows"
	opFromDense = "FromDense"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// newDenseLike allocates an r×c result carrying src's numeric policy.
func newDenseLike[E Number](src *Dense[E], rows, cols int) *Dense[E] {
	return &Dense[E]{
		r:              rows,
		c:              cols,
		data:           make([]E, rows*cols),
		validateNaNInf: src.validateNaNInf,
	}
}

// AddDense computes the element-wise sum C = A + B into a fresh Dense.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func AddDense[E Number](a, b *Dense[E]) (*Dense[E], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res := newDenseLike(a, a.r, a.c)
	ewAddInto(res.data, a.data, b.data)

	return res, nil
}

// SubDense computes the element-wise difference C = A - B into a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func SubDense[E Number](a, b *Dense[E]) (*Dense[E], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	res := newDenseLike(a, a.r, a.c)
	ewSubInto(res.data, a.data, b.data)

	return res, nil
}

// MulDense performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: fixed i→j→k triple loop, each C[i,j] accumulated from zero.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func MulDense[E Number](a, b *Dense[E]) (*Dense[E], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res := newDenseLike(a, a.r, b.c)
	ewMulInto(res.data, a.data, b.data, a.r, a.c, b.c)

	return res, nil
}

// ScaleDense returns a new matrix whose elements are m[i,j] * s.
// Errors: ErrNilMatrix.
func ScaleDense[E Number](m *Dense[E], s E) (*Dense[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := newDenseLike(m, m.r, m.c)
	ewScaleInto(res.data, m.data, s)

	return res, nil
}

// TransposeDense returns a new c×r matrix with rows and columns swapped.
// Errors: ErrNilMatrix.
func TransposeDense[E Number](m *Dense[E]) (*Dense[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res := newDenseLike(m, m.c, m.r)
	ewTransposeInto(res.data, m.data, m.r, m.c)

	return res, nil
}

// TraceDense returns the sum of the main diagonal.
// This is the runtime fallback of Trace: a non-square receiver is an error
// here rather than a compile failure.
// Errors: ErrNilMatrix, ErrNonSquare.
func TraceDense[E Number](m *Dense[E]) (E, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		var zero E
		return zero, matrixErrorf(opTrace, err)
	}

	return ewTrace(m.data, m.r), nil
}

// EqualDense reports whether a(i,j) - b(i,j) is zero everywhere.
// Mismatched shapes are an error, not "false": comparing them is a caller bug.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func EqualDense[E Number](a, b *Dense[E]) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}

	return ewEqual(a.data, b.data), nil
}
