// SPDX-License-Identifier: MIT

// Package matrix - BLAS level-1 primitives on strided slices.
//
// Purpose:
//   - Give the LU/condition kernels the classic LINPACK vocabulary
//     (ddot, daxpy, dscal, dswap, idamax, dasum) over row-major storage,
//     where a column is a slice with stride = Cols().
//   - Double precision only; delegated to gonum's blas64 implementation.
//
// Conventions:
//   - n is the element count; inc the stride (must be > 0).
//   - n == 0 is always legal and a no-op (Iamax returns -1).
//   - The slice may be shorter than the full matrix tail; only
//     (n-1)*inc+1 elements are touched.

package matrix

import "gonum.org/v1/gonum/blas/blas64"

// vec packs a strided slice into a blas64.Vector, trimming data to the
// touched window so gonum's short-slice checks see exactly what is used.
func vec(n int, x []float64, inc int) blas64.Vector {
	if n <= 0 {
		return blas64.Vector{N: 0, Data: nil, Inc: inc}
	}

	return blas64.Vector{N: n, Data: x[:(n-1)*inc+1], Inc: inc}
}

// Dot returns Σ x[i*incX]·y[i*incY] for i < n.
func Dot(n int, x []float64, incX int, y []float64, incY int) float64 {
	if n <= 0 {
		return 0
	}

	return blas64.Dot(vec(n, x, incX), vec(n, y, incY))
}

// Axpy computes y += alpha·x over n strided elements.
func Axpy(n int, alpha float64, x []float64, incX int, y []float64, incY int) {
	if n <= 0 {
		return
	}
	blas64.Axpy(alpha, vec(n, x, incX), vec(n, y, incY))
}

// Scal computes x *= alpha over n strided elements.
func Scal(n int, alpha float64, x []float64, incX int) {
	if n <= 0 {
		return
	}
	blas64.Scal(alpha, vec(n, x, incX))
}

// Swap exchanges n strided elements of x and y.
func Swap(n int, x []float64, incX int, y []float64, incY int) {
	if n <= 0 {
		return
	}
	blas64.Swap(vec(n, x, incX), vec(n, y, incY))
}

// Iamax returns the index (in element units, not slice offset) of the first
// element with maximum magnitude, or -1 when n == 0.
func Iamax(n int, x []float64, incX int) int {
	if n <= 0 {
		return -1
	}

	return blas64.Iamax(vec(n, x, incX))
}

// Asum returns Σ |x[i*incX]| for i < n.
func Asum(n int, x []float64, incX int) float64 {
	if n <= 0 {
		return 0
	}

	return blas64.Asum(vec(n, x, incX))
}
