// Package dimmat is a small dense-matrix toolkit whose matrix shapes live in
// the type system.
//
// 🚀 What is dimmat?
//
//	A generic, allocation-light library plus a command-line calculator:
//		• matrix/   Matrix[R, C, E] with compile-time shapes, and Dense[E]
//		            with runtime shapes and sentinel errors
//		• matrixio/ YAML/JSON reading and writing of row-major data
//		• cmd/matcalc/ add, sub, mul, scale, transpose, trace and equal
//		            on matrix files
//
// ✨ Why dimmat?
//
//   - Shape mistakes are compile errors: a 2×3 times a 2×3 does not build
//   - Any integer, float or complex element type, int64 by default
//   - Fail-fast element access, error returns everywhere else
//
// Quick example:
//
//	a := matrix.MustFromRows[matrix.D2, matrix.D2]([][]int64{{1, 2}, {3, 4}})
//	b := matrix.MustFromRows[matrix.D2, matrix.D2]([][]int64{{5, 6}, {7, 8}})
//	matrix.Mul(a, b) // [[19, 22], [43, 50]]
//
// From a shell:
//
//	go install github.com/katalvlaran/dimmat/cmd/matcalc@latest
//	matcalc mul a.yaml b.yaml
package dimmat
