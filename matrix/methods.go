// SPDX-License-Identifier: MIT
// Package matrix provides the operator set of the static Matrix: in-place
// add/sub/scale, the free Add, Sub, Scale, ScaleLeft, Mul operators, Transposed,
// Trace and Equal.
//
// Shape agreement is encoded in the signatures. Add and Sub take two operands
// of the same Matrix[R, C, E] type; Mul shares its inner dimension P between
// the two operands; Trace only accepts Matrix[N, N, E]. A mismatched call does
// not compile, so none of these functions has an error path.
//
// Every free operator allocates its result; operands are never mutated.

package matrix

// AddInPlace adds o into m element-wise and returns m for chaining.
// o may be m itself.
// Complexity: O(r*c).
func (m *Matrix[R, C, E]) AddInPlace(o *Matrix[R, C, E]) *Matrix[R, C, E] {
	dst := m.buf()
	ewAddInto(dst, dst, o.view())

	return m
}

// SubInPlace subtracts o from m element-wise and returns m for chaining.
// Complexity: O(r*c).
func (m *Matrix[R, C, E]) SubInPlace(o *Matrix[R, C, E]) *Matrix[R, C, E] {
	dst := m.buf()
	ewSubInto(dst, dst, o.view())

	return m
}

// ScaleInPlace multiplies every element of m by s and returns m for chaining.
// Complexity: O(r*c).
func (m *Matrix[R, C, E]) ScaleInPlace(s E) *Matrix[R, C, E] {
	dst := m.buf()
	ewScaleInto(dst, dst, s)

	return m
}

// Add returns a + b.
func Add[R, C Dim, E Number](a, b *Matrix[R, C, E]) *Matrix[R, C, E] {
	return a.Clone().AddInPlace(b)
}

// Sub returns a - b.
func Sub[R, C Dim, E Number](a, b *Matrix[R, C, E]) *Matrix[R, C, E] {
	return a.Clone().SubInPlace(b)
}

// Scale returns m * s.
func Scale[R, C Dim, E Number](m *Matrix[R, C, E], s E) *Matrix[R, C, E] {
	out := New[R, C, E]()
	ewScaleInto(out.data, m.view(), s)

	return out
}

// ScaleLeft returns s * m. The result is identical to Scale(m, s).
func ScaleLeft[R, C Dim, E Number](s E, m *Matrix[R, C, E]) *Matrix[R, C, E] {
	return m.Clone().ScaleInPlace(s)
}

// Mul returns the N×M product of a (N×P) and b (P×M).
//
// Element (i,j) is the sum over k in [0,P) of a(i,k)*b(k,j), accumulated
// from zero in ascending k. No zero-skipping is done, so NaN and Inf propagate
// exactly as the arithmetic dictates.
//
// Complexity:
//   - Time O(N*P*M), Space O(N*M).
func Mul[N, P, M Dim, E Number](a *Matrix[N, P, E], b *Matrix[P, M, E]) *Matrix[N, M, E] {
	n, p, m := dimLen[N](), dimLen[P](), dimLen[M]()
	out := New[N, M, E]()
	ewMulInto(out.data, a.view(), b.view(), n, p, m)

	return out
}

// Transposed returns a new C×R matrix t with t(j,i) == m(i,j). m is unchanged.
// Complexity: O(r*c).
func (m *Matrix[R, C, E]) Transposed() *Matrix[C, R, E] {
	out := New[C, R, E]()
	ewTransposeInto(out.data, m.view(), dimLen[R](), dimLen[C]())

	return out
}

// Trace returns the sum of the main diagonal of a square matrix.
//
// Trace is a function rather than a method so that its parameter type can
// require equal row and column dimensions; passing a non-square Matrix is a
// compile error.
func Trace[N Dim, E Number](m *Matrix[N, N, E]) E {
	return ewTrace(m.view(), dimLen[N]())
}

// Equal reports whether a(i,j) - b(i,j) is zero at every position.
func Equal[R, C Dim, E Number](a, b *Matrix[R, C, E]) bool {
	return ewEqual(a.view(), b.view())
}

// Equal is the method form of the package-level Equal.
func (m *Matrix[R, C, E]) Equal(o *Matrix[R, C, E]) bool {
	return Equal(m, o)
}
