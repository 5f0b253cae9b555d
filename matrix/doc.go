// Package matrix offers a small dense matrix whose shape is part of its type.
//
// The matrix package provides:
//
//   - Matrix[R, C, E]: an R×C grid of E values. R and C are dimension types
//     (D1…D10, or any zero-size type with a Len method), so Add, Sub, Mul,
//     Equal and Trace reject mismatched shapes at compile time.
//   - Dense[E]: the runtime-shaped sibling for data whose extent is only known
//     at runtime. Its operators (AddDense, MulDense, TraceDense, …) check shapes
//     and return sentinel errors instead.
//   - FromDense and Matrix.Dense to move between the two.
//
// Element access on Matrix is fail-fast: At, Set and Ref panic with an error
// wrapping ErrOutOfRange on a bad index. Use Lookup, or Dense, when an error
// return is preferred.
//
// Equality is "difference is zero": a(i,j) - b(i,j) == 0 at every position.
//
// A quick tour:
//
//	a := matrix.MustFromRows[matrix.D2, matrix.D2]([][]int64{{1, 2}, {3, 4}})
//	b := matrix.MustFromRows[matrix.D2, matrix.D2]([][]int64{{5, 6}, {7, 8}})
//	matrix.Mul(a, b)         // [[19, 22], [43, 50]]
//	matrix.Trace(a)          // 5
//	a.Transposed()           // [[1, 3], [2, 4]]
//
// See the examples in this package for usage patterns.
package matrix
