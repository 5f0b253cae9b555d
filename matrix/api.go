// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide the int64 default element type as a first-class spelling.
//   - Provide identity constructors for both forms.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.

package matrix

// Int64 is a Matrix with the default element type.
// Int64[D2, D2] is the same type as Matrix[D2, D2, int64].
type Int64[R, C Dim] = Matrix[R, C, int64]

// NewInt64 returns a zero R×C int64 matrix.
func NewInt64[R, C Dim]() *Int64[R, C] { return New[R, C, int64]() }

// FillInt64 returns an R×C int64 matrix with every element set to v.
func FillInt64[R, C Dim](v int64) *Int64[R, C] { return Fill[R, C](v) }

// Int64FromRows builds an R×C int64 matrix from a row-major nested sequence.
// Errors: ErrBadShape, as FromRows.
func Int64FromRows[R, C Dim](rows [][]int64) (*Int64[R, C], error) {
	return FromRows[R, C](rows)
}

// Identity returns I_N: ones on the diagonal, zeros elsewhere.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity[N Dim, E Number]() *Matrix[N, N, E] {
	m := New[N, N, E]()
	n := dimLen[N]()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m
}

// NewIdentityDense returns the runtime-shaped n×n identity.
// Errors: ErrInvalidDimensions when n <= 0.
func NewIdentityDense[E Number](n int, opts ...Option) (*Dense[E], error) {
	d, err := NewDense[E](n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 1
	}

	return d, nil
}
