// SPDX-License-Identifier: MIT

// Package matrix: converters between the static Matrix, the runtime Dense and
// plain row-major nested slices.
package matrix

import "fmt"

// ToRows returns a fresh row-major nested copy of m.
//
// Time Complexity: O(r*c)
func (m *Matrix[R, C, E]) ToRows() [][]E {
	return splitRows(m.view(), dimLen[R](), dimLen[C]())
}

// Dense returns an independent runtime-shaped copy of m with the default
// numeric policy.
//
// Time Complexity: O(r*c)
func (m *Matrix[R, C, E]) Dense() *Dense[E] {
	src := m.view()
	d := newDense[E](dimLen[R](), dimLen[C](), gatherOptions())
	copy(d.data, src)

	return d
}

// FromDense copies d into a static R×C matrix. It fails with
// ErrDimensionMismatch when d's runtime shape differs from R×C, which is the
// boundary where runtime shapes (decoded files, user input) meet static types.
//
// Time Complexity: O(r*c)
func FromDense[R, C Dim, E Number](d *Dense[E]) (*Matrix[R, C, E], error) {
	if err := ValidateNotNil(d); err != nil {
		return nil, matrixErrorf(opFromDense, err)
	}
	r, c := dimLen[R](), dimLen[C]()
	if d.r != r || d.c != c {
		return nil, matrixErrorf(opFromDense,
			fmt.Errorf("have %dx%d, want %dx%d: %w", d.r, d.c, r, c, ErrDimensionMismatch))
	}

	m := &Matrix[R, C, E]{data: make([]E, r*c)}
	copy(m.data, d.data)

	return m, nil
}

// splitRows copies a flat row-major buffer into rows×cols nested slices.
func splitRows[E Number](data []E, rows, cols int) [][]E {
	out := make([][]E, rows)
	for i := range out {
		out[i] = make([]E, cols)
		copy(out[i], data[i*cols:(i+1)*cols])
	}

	return out
}
