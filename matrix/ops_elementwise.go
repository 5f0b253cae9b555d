// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* kernels (ew*) over flat row-major buffers so the
//     static Matrix and the runtime Dense share one implementation of every loop.
//   - Keep all loops deterministic: flat 0..n-1 for element-wise work, fixed
//     i→j→k for the product.
//
// Design:
//   - All ew* are UNEXPORTED. Shape checks happen before a kernel is called:
//     by the compiler for Matrix, by validators.go for Dense.
//   - Kernels never allocate; the caller owns dst.

package matrix

import (
	"math"
	"math/cmplx"
	"reflect"
)

// ewAddInto computes dst[i] = a[i] + b[i]. dst may alias a or b.
func ewAddInto[E Number](dst, a, b []E) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// ewSubInto computes dst[i] = a[i] - b[i]. dst may alias a or b.
func ewSubInto[E Number](dst, a, b []E) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// ewScaleInto computes dst[i] = src[i] * s. dst may alias src.
func ewScaleInto[E Number](dst, src []E, s E) {
	for i := range dst {
		dst[i] = src[i] * s
	}
}

// ewMulInto computes the (n×m) product of a (n×p) and b (p×m) into dst.
// Each dst element is accumulated from zero over k in ascending order.
// dst must not alias a or b.
// Complexity: O(n*p*m).
func ewMulInto[E Number](dst, a, b []E, n, p, m int) {
	var i, j, k int
	var sum, zero E
	// Iterate rows of a deterministically.
	for i = 0; i < n; i++ {
		rowA := a[i*p : i*p+p] // row i of a
		for j = 0; j < m; j++ {
			// Reset the accumulator for every output cell.
			sum = zero
			// Walk the shared dimension in ascending k; column j of b has stride m.
			for k = 0; k < p; k++ {
				sum += rowA[k] * b[k*m+j]
			}
			dst[i*m+j] = sum
		}
	}
}

// ewTransposeInto writes the (cols×rows) transpose of src (rows×cols) into dst.
func ewTransposeInto[E Number](dst, src []E, rows, cols int) {
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			dst[j*rows+i] = src[base+j]
		}
	}
}

// ewTrace sums the main diagonal of an n×n buffer, left to right from zero.
func ewTrace[E Number](src []E, n int) E {
	var sum E
	for i := 0; i < n; i++ {
		sum += src[i*n+i]
	}

	return sum
}

// ewEqual reports whether a[i] - b[i] is zero at every position.
// Unlike ==, NaN is never equal to itself here, and -0 equals +0.
func ewEqual[E Number](a, b []E) bool {
	var zero E
	for i := range a {
		if a[i]-b[i] != zero {
			return false
		}
	}

	return true
}

// ewFill sets every element of dst to v.
func ewFill[E Number](dst []E, v E) {
	for i := range dst {
		dst[i] = v
	}
}

// isNaNInf reports whether v is a float or complex value with a NaN or infinite part.
// Integer kinds always report false. Reflection is used so named float types
// (type Celsius float64) are covered too.
func isNaNInf[E Number](v E) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return math.IsNaN(f) || math.IsInf(f, 0)
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		return cmplx.IsNaN(c) || cmplx.IsInf(c)
	default:
		return false
	}
}
