// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 6},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			rows, cols := m.Shape()
			require.Equal(t, tc.rows, rows)
			require.Equal(t, tc.cols, cols)
			for i := 0; i < tc.rows; i++ {
				for j := 0; j < tc.cols; j++ {
					require.Zero(t, MustAt(t, m, i, j))
				}
			}
		})
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFrom(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewDenseFrom_Ragged(t *testing.T) {
	_, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRagged)
}

func TestNewDenseFrom_RejectsNaN(t *testing.T) {
	_, err := matrix.NewDenseFrom([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_AtSetBounds(t *testing.T) {
	m := MustDense(t, 2, 2)
	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	c := m.CloneDense()
	MustSet(t, c, 0, 0, 42)
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
	assert.Equal(t, 42.0, MustAt(t, c, 0, 0))
}

func TestDense_RawRowAliases(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	row := m.RawRow(1)
	row[0] = 9
	assert.Equal(t, 9.0, MustAt(t, m, 1, 0))
	assert.Equal(t, []float64{2, 4}, m.Col(nil, 1))
}

func TestDense_String(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2}, {3, 4.5}})
	assert.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}

func TestMul_FastPathMatchesFallback(t *testing.T) {
	t.Parallel()
	a := RandDense(t, 4, 3, 1)
	b := RandDense(t, 3, 5, 2)

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	require.LessOrEqual(t, MaxAbsDiff(t, fast, slow), 1e-15)
}

func TestMul_DimensionMismatch(t *testing.T) {
	_, err := matrix.Mul(MustDense(t, 2, 3), MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTranspose(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	for _, in := range []matrix.Matrix{m, hide{m}} {
		tr, err := matrix.Transpose(in)
		require.NoError(t, err)
		CompareClose(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr, 0, 0)
	}
}

func TestMatVec(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	x := []float64{1, -1}
	for _, in := range []matrix.Matrix{m, hide{m}} {
		y, err := matrix.MatVec(in, x)
		require.NoError(t, err)
		assert.Equal(t, []float64{-1, -1, -1}, y)
	}
	_, err := matrix.MatVec(m, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(m, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
