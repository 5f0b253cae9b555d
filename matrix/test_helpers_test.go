// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared across the matrix tests.
//   • Classify panics by sentinel so fail-fast paths are asserted precisely.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/dimmat/matrix"
	"github.com/stretchr/testify/require"
)

// fixed seed keeps the randomized property tests reproducible.
const seed = 20240607

// D12 is a caller-defined dimension, used to check that Dim is open for extension.
type D12 struct{}

func (D12) Len() int { return 12 }

// dimZero is an invalid dimension; constructors must refuse it.
type dimZero struct{}

func (dimZero) Len() int { return 0 }

// scenarioA returns [[1,2],[3,4]].
func scenarioA(t *testing.T) *matrix.Int64[matrix.D2, matrix.D2] {
	t.Helper()
	a, err := matrix.Int64FromRows[matrix.D2, matrix.D2]([][]int64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	return a
}

// scenarioB returns [[5,6],[7,8]].
func scenarioB(t *testing.T) *matrix.Int64[matrix.D2, matrix.D2] {
	t.Helper()
	b, err := matrix.Int64FromRows[matrix.D2, matrix.D2]([][]int64{{5, 6}, {7, 8}})
	require.NoError(t, err)

	return b
}

// randomMatrix fills an R×C int64 matrix with small values in [-9, 9], so
// products of a few of them stay far from overflow.
func randomMatrix[R, C matrix.Dim](rng *rand.Rand) *matrix.Int64[R, C] {
	m := matrix.NewInt64[R, C]()
	r, c := m.Shape()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, rng.Int63n(19)-9)
		}
	}

	return m
}

// requirePanicsWith runs fn and asserts it panics with an error matching target.
func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, target), "panic %v does not wrap %v", err, target)
	}()
	fn()
}
