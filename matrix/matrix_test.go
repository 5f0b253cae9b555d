// Package matrix_test contains unit tests for construction and element access
// of the static Matrix type.
package matrix_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/dimmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewIsZero verifies that New yields all zeros and equals itself.
func TestNewIsZero(t *testing.T) {
	m := matrix.New[matrix.D3, matrix.D4, int64]()
	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.Zero(t, m.At(i, j))
		}
	}
	require.True(t, m.Equal(m))
}

// TestZeroValueUsable checks that a declared-but-unconstructed Matrix acts as zero.
func TestZeroValueUsable(t *testing.T) {
	var m matrix.Matrix[matrix.D2, matrix.D3, float64]
	require.Zero(t, m.At(1, 2))

	m.Set(1, 2, 4.5)
	require.Equal(t, 4.5, m.At(1, 2))
	require.True(t, m.Equal(m.Clone()))
}

// TestZeroValueConcurrentReads reads an unallocated Matrix from several
// goroutines; read-only methods must not write to it (run with -race).
func TestZeroValueConcurrentReads(t *testing.T) {
	var m matrix.Matrix[matrix.D2, matrix.D2, int64]

	const readers = 4
	var wg sync.WaitGroup
	results := make([]int64, readers)
	for g := 0; g < readers; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			v := m.At(0, 0)
			v += matrix.Trace(&m)
			if !m.Equal(&m) {
				v++
			}
			_ = m.Transposed()
			_ = m.ToRows()
			_ = m.String()
			_ = m.Clone()
			lv, err := m.Lookup(1, 1)
			if err != nil {
				v++
			}
			results[g] = v + lv
		}(g)
	}
	wg.Wait()

	require.Equal(t, make([]int64, readers), results)
	require.Equal(t, [][]int64{{0, 0}, {0, 0}}, m.ToRows())
}

// TestFill verifies every element equals the fill scalar.
func TestFill(t *testing.T) {
	m := matrix.Fill[matrix.D2, matrix.D5](int32(7))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			require.Equal(t, int32(7), m.At(i, j))
		}
	}

	f := matrix.FillInt64[matrix.D1, matrix.D1](-3)
	require.Equal(t, int64(-3), f.At(0, 0))
}

// TestFromRowsRoundTrip reads back [[1,2],[3,4]].
func TestFromRowsRoundTrip(t *testing.T) {
	a := scenarioA(t)
	require.Equal(t, int64(1), a.At(0, 0))
	require.Equal(t, int64(2), a.At(0, 1))
	require.Equal(t, int64(3), a.At(1, 0))
	require.Equal(t, int64(4), a.At(1, 1))
	require.Equal(t, [][]int64{{1, 2}, {3, 4}}, a.ToRows())
}

// TestFromRowsDoesNotRetainInput ensures the nested input is copied.
func TestFromRowsDoesNotRetainInput(t *testing.T) {
	rows := [][]int64{{1, 2}, {3, 4}}
	a, err := matrix.Int64FromRows[matrix.D2, matrix.D2](rows)
	require.NoError(t, err)

	rows[0][0] = 100
	require.Equal(t, int64(1), a.At(0, 0))
}

// TestFromRowsBadShape covers row-count, ragged and empty inputs.
func TestFromRowsBadShape(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int64
	}{
		{"nil", nil},
		{"too few rows", [][]int64{{1, 2}}},
		{"too many rows", [][]int64{{1, 2}, {3, 4}, {5, 6}}},
		{"short row", [][]int64{{1, 2}, {3}}},
		{"long row", [][]int64{{1, 2, 9}, {3, 4}}},
		{"empty row", [][]int64{{}, {}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.Int64FromRows[matrix.D2, matrix.D2](tc.rows)
			require.ErrorIs(t, err, matrix.ErrBadShape)
			require.Nil(t, m)
		})
	}
}

// TestMustFromRowsPanics checks the literal-friendly constructor fails fast.
func TestMustFromRowsPanics(t *testing.T) {
	requirePanicsWith(t, matrix.ErrBadShape, func() {
		matrix.MustFromRows[matrix.D2, matrix.D2]([][]int64{{1}})
	})
}

// TestOutOfRangePanics ensures out-of-bounds access never returns a value.
func TestOutOfRangePanics(t *testing.T) {
	a := scenarioA(t)

	requirePanicsWith(t, matrix.ErrOutOfRange, func() { _ = a.At(2, 0) })
	requirePanicsWith(t, matrix.ErrOutOfRange, func() { _ = a.At(0, 2) })
	requirePanicsWith(t, matrix.ErrOutOfRange, func() { _ = a.At(-1, 0) })
	requirePanicsWith(t, matrix.ErrOutOfRange, func() { a.Set(0, -1, 9) })
	requirePanicsWith(t, matrix.ErrOutOfRange, func() { _ = a.Ref(5, 5) })

	// nothing was written by the failed Set
	require.Equal(t, [][]int64{{1, 2}, {3, 4}}, a.ToRows())
}

// TestLookup is the checked counterpart of At.
func TestLookup(t *testing.T) {
	a := scenarioA(t)

	v, err := a.Lookup(1, 0)
	require.NoError(t, err)
	require.Equal(t, int64(3), v)

	_, err = a.Lookup(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestRefMutates verifies the handle returned by Ref writes through.
func TestRefMutates(t *testing.T) {
	a := scenarioA(t)
	*a.Ref(0, 1) += 10
	require.Equal(t, int64(12), a.At(0, 1))
}

// TestCloneIndependence ensures Clone returns a deep copy.
func TestCloneIndependence(t *testing.T) {
	a := scenarioA(t)
	cp := a.Clone()
	cp.Set(0, 0, 99)

	require.Equal(t, int64(1), a.At(0, 0))
	require.Equal(t, int64(99), cp.At(0, 0))
}

// TestNilMatrixPanics checks nil receivers are reported as ErrNilMatrix.
func TestNilMatrixPanics(t *testing.T) {
	var m *matrix.Int64[matrix.D2, matrix.D2]
	requirePanicsWith(t, matrix.ErrNilMatrix, func() { _ = m.At(0, 0) })
	requirePanicsWith(t, matrix.ErrNilMatrix, func() { scenarioA(t).AddInPlace(m) })
}

// TestCustomDim checks user-defined dimensions work like the predefined ones.
func TestCustomDim(t *testing.T) {
	m := matrix.New[D12, matrix.D1, float32]()
	require.Equal(t, 12, m.Rows())
	m.Set(11, 0, 1.5)
	require.Equal(t, float32(1.5), m.Transposed().At(0, 11))
}

// TestInvalidDimPanics checks a Dim with non-positive Len is rejected.
func TestInvalidDimPanics(t *testing.T) {
	requirePanicsWith(t, matrix.ErrInvalidDimensions, func() {
		matrix.New[dimZero, matrix.D2, int64]()
	})
}

// TestStringOutput checks String formats rows like Dense does.
func TestStringOutput(t *testing.T) {
	require.Equal(t, "[1, 2]\n[3, 4]\n", scenarioA(t).String())
}
