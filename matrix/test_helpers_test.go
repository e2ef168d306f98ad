// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for the kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the interface (At/Set) fallback paths in code under test.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustFrom builds a *Dense from a row literal or fails the test.
func MustFrom(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// RandDense returns an r×c *Dense with entries uniform in [-1, 1).
// Deterministic for a given seed.
func RandDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, m, i, j, rng.Float64()*2-1)
		}
	}

	return m
}

// MustSet writes m[i,j] = v or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d)", i, j)
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// CompareClose asserts |want[i][j] - m[i,j]| ≤ atol + rtol·|want[i][j]| elementwise.
func CompareClose(t testing.TB, want [][]float64, m matrix.Matrix, rtol, atol float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	var i, j int
	var got float64
	for i = range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols of row %d", i)
		for j = range want[i] {
			got = MustAt(t, m, i, j)
			require.LessOrEqual(t, math.Abs(got-want[i][j]), atol+rtol*math.Abs(want[i][j]),
				"m[%d,%d]=%v want %v", i, j, got, want[i][j])
		}
	}
}

// MaxAbs returns max |m[i,j]|.
func MaxAbs(t testing.TB, m matrix.Matrix) float64 {
	t.Helper()
	var best float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			best = math.Max(best, math.Abs(MustAt(t, m, i, j)))
		}
	}

	return best
}

// MaxAbsDiff returns max |a[i,j] - b[i,j]| for equally shaped matrices.
func MaxAbsDiff(t testing.TB, a, b matrix.Matrix) float64 {
	t.Helper()
	require.Equal(t, a.Rows(), b.Rows())
	require.Equal(t, a.Cols(), b.Cols())
	var best float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			best = math.Max(best, math.Abs(MustAt(t, a, i, j)-MustAt(t, b, i, j)))
		}
	}

	return best
}

// RequireOrthonormalColumns asserts QᵗQ = I within tol.
func RequireOrthonormalColumns(t testing.TB, q *matrix.Dense, tol float64) {
	t.Helper()
	qt, err := matrix.Transpose(q)
	require.NoError(t, err)
	qtq, err := matrix.Mul(qt, q)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(q.Cols())
	require.NoError(t, err)
	require.LessOrEqual(t, MaxAbsDiff(t, qtq, id), tol)
}
