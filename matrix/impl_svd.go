// SPDX-License-Identifier: MIT

// Package matrix - Singular Value Decomposition (Golub–Reinsch).
//
// Purpose:
//   - SVD: A = U·diag(W)·Vᵗ for any m×n matrix; A is overwritten by U (m×n),
//     W (n) and V (n×n) are returned to the caller.
//   - SVBackSub / SVDSolve: least-squares solution x = V·diag(1/W)·Uᵗ·b, the
//     latter truncating small singular values first.
//
// Algorithm:
//   - Householder reduction to bidiagonal form.
//   - Accumulation of right-hand then left-hand transformations.
//   - Implicit-shift QR on the bidiagonal, at most svdMaxIterations sweeps per
//     singular value.
//
// Notes:
//   - Singular values are not sorted.
//   - Negative singular values are flipped positive by negating the matching
//     column of V.

package matrix

import (
	"fmt"
	"math"
)

// svdMaxIterations bounds the QR sweeps spent on one singular value.
const svdMaxIterations = 30

// DefaultSVDTolerance is the relative singular-value cut used by SVDSolve
// callers that have no better estimate of the noise level.
const DefaultSVDTolerance = 1e-12

// SVD decomposes a (m×n) in place into U·diag(W)·Vᵗ.
//
// Implementation:
//   - Stage 1: Householder bidiagonalization (column then row reflector per index).
//   - Stage 2: accumulate V from the row reflectors, U (in a) from the column reflectors.
//   - Stage 3: diagonalize the bidiagonal with shifted QR, splitting when a
//     super-diagonal element becomes negligible relative to anorm.
//
// Returns:
//   - w: the n singular values (non-negative, unsorted).
//   - v: the n×n right factor V (not Vᵗ).
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf when a holds a non-finite entry;
//     ErrNoConvergence after svdMaxIterations on one value.
//
// Complexity:
//   - Time O(m·n² + n³), Space O(n²).
func SVD(a *Dense) ([]float64, *Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, nil, matrixErrorf(opSVD, err)
	}
	for idx, x := range a.data {
		if isNonFinite(x) {
			return nil, nil, matrixErrorf(opSVD, fmt.Errorf("a[%d][%d]=%g: %w", idx/a.c, idx%a.c, x, ErrNaNInf))
		}
	}
	m, n := a.r, a.c
	vd, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opSVD, err)
	}
	u := rowViews(a)
	v := rowViews(vd)
	w := make([]float64, n)
	rv1 := make([]float64, n)

	var (
		i, j, k, l, its, jj, nm int
		flag                    bool
		anorm, c, f, g, h, s    float64
		scale, x, y, z          float64
	)

	// Householder reduction to bidiagonal form.
	for i = 0; i < n; i++ {
		l = i + 1
		rv1[i] = scale * g
		g, s, scale = 0, 0, 0
		if i < m {
			for k = i; k < m; k++ {
				scale += math.Abs(u[k][i])
			}
			if scale != 0 {
				for k = i; k < m; k++ {
					u[k][i] /= scale
					s += u[k][i] * u[k][i]
				}
				f = u[i][i]
				g = -math.Copysign(math.Sqrt(s), f)
				h = f*g - s
				u[i][i] = f - g
				for j = l; j < n; j++ {
					s = 0
					for k = i; k < m; k++ {
						s += u[k][i] * u[k][j]
					}
					f = s / h
					for k = i; k < m; k++ {
						u[k][j] += f * u[k][i]
					}
				}
				for k = i; k < m; k++ {
					u[k][i] *= scale
				}
			}
		}
		w[i] = scale * g
		g, s, scale = 0, 0, 0
		if i < m && i != n-1 {
			for k = l; k < n; k++ {
				scale += math.Abs(u[i][k])
			}
			if scale != 0 {
				for k = l; k < n; k++ {
					u[i][k] /= scale
					s += u[i][k] * u[i][k]
				}
				f = u[i][l]
				g = -math.Copysign(math.Sqrt(s), f)
				h = f*g - s
				u[i][l] = f - g
				for k = l; k < n; k++ {
					rv1[k] = u[i][k] / h
				}
				for j = l; j < m; j++ {
					s = 0
					for k = l; k < n; k++ {
						s += u[j][k] * u[i][k]
					}
					for k = l; k < n; k++ {
						u[j][k] += s * rv1[k]
					}
				}
				for k = l; k < n; k++ {
					u[i][k] *= scale
				}
			}
		}
		anorm = math.Max(anorm, math.Abs(w[i])+math.Abs(rv1[i]))
	}

	// Accumulation of right-hand transformations.
	for i = n - 1; i >= 0; i-- {
		if i < n-1 {
			if g != 0 {
				// double division avoids possible underflow
				for j = l; j < n; j++ {
					v[j][i] = (u[i][j] / u[i][l]) / g
				}
				for j = l; j < n; j++ {
					s = 0
					for k = l; k < n; k++ {
						s += u[i][k] * v[k][j]
					}
					for k = l; k < n; k++ {
						v[k][j] += s * v[k][i]
					}
				}
			}
			for j = l; j < n; j++ {
				v[i][j] = 0
				v[j][i] = 0
			}
		}
		v[i][i] = 1
		g = rv1[i]
		l = i
	}

	// Accumulation of left-hand transformations.
	for i = min(m, n) - 1; i >= 0; i-- {
		l = i + 1
		g = w[i]
		for j = l; j < n; j++ {
			u[i][j] = 0
		}
		if g != 0 {
			g = 1 / g
			for j = l; j < n; j++ {
				s = 0
				for k = l; k < m; k++ {
					s += u[k][i] * u[k][j]
				}
				f = (s / u[i][i]) * g
				for k = i; k < m; k++ {
					u[k][j] += f * u[k][i]
				}
			}
			for j = i; j < m; j++ {
				u[j][i] *= g
			}
		} else {
			for j = i; j < m; j++ {
				u[j][i] = 0
			}
		}
		u[i][i]++
	}

	// Diagonalization of the bidiagonal form: loop over singular values,
	// and over allowed iterations.
	for k = n - 1; k >= 0; k-- {
		for its = 1; its <= svdMaxIterations; its++ {
			flag = true
			// test for splitting; rv1[0] is always zero
			for l = k; l >= 0; l-- {
				nm = l - 1
				if math.Abs(rv1[l])+anorm == anorm {
					flag = false
					break
				}
				if math.Abs(w[nm])+anorm == anorm {
					break
				}
			}
			if flag {
				// cancellation of rv1[l], if l > 0
				c = 0
				s = 1
				for i = l; i <= k; i++ {
					f = s * rv1[i]
					rv1[i] = c * rv1[i]
					if math.Abs(f)+anorm == anorm {
						break
					}
					g = w[i]
					h = math.Hypot(f, g)
					w[i] = h
					h = 1 / h
					c = g * h
					s = -f * h
					for j = 0; j < m; j++ {
						y = u[j][nm]
						z = u[j][i]
						u[j][nm] = y*c + z*s
						u[j][i] = z*c - y*s
					}
				}
			}
			z = w[k]
			if l == k {
				// convergence: make the singular value non-negative
				if z < 0 {
					w[k] = -z
					for j = 0; j < n; j++ {
						v[j][k] = -v[j][k]
					}
				}
				break
			}
			if its == svdMaxIterations {
				return nil, nil, matrixErrorf(opSVD, fmt.Errorf("singular value %d after %d iterations: %w", k, svdMaxIterations, ErrNoConvergence))
			}
			// shift from bottom 2-by-2 minor
			x = w[l]
			nm = k - 1
			y = w[nm]
			g = rv1[nm]
			h = rv1[k]
			f = ((y-z)*(y+z) + (g-h)*(g+h)) / (2 * h * y)
			g = math.Hypot(f, 1)
			f = ((x-z)*(x+z) + h*((y/(f+math.Copysign(g, f)))-h)) / x
			// next QR transformation
			c = 1
			s = 1
			for j = l; j <= nm; j++ {
				i = j + 1
				g = rv1[i]
				y = w[i]
				h = s * g
				g = c * g
				z = math.Hypot(f, h)
				rv1[j] = z
				c = f / z
				s = h / z
				f = x*c + g*s
				g = g*c - x*s
				h = y * s
				y *= c
				for jj = 0; jj < n; jj++ {
					x = v[jj][j]
					z = v[jj][i]
					v[jj][j] = x*c + z*s
					v[jj][i] = z*c - x*s
				}
				z = math.Hypot(f, h)
				w[j] = z
				// rotation can be arbitrary if z == 0
				if z != 0 {
					z = 1 / z
					c = f * z
					s = h * z
				}
				f = c*g + s*y
				x = c*y - s*g
				for jj = 0; jj < m; jj++ {
					y = u[jj][j]
					z = u[jj][i]
					u[jj][j] = y*c + z*s
					u[jj][i] = z*c - y*s
				}
			}
			rv1[l] = 0
			rv1[k] = f
			w[k] = x
		}
	}

	return w, vd, nil
}

// SVBackSub solves A·x = b in the least-squares sense from the SVD factors,
// treating w[j] == 0 as an infinite reciprocal that contributes nothing.
//
// Inputs:
//   - u (m×n), w (n), v (n×n) from SVD; b of length m.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(m·n + n²), Space O(n).
func SVBackSub(u *Dense, w []float64, v *Dense, b []float64) ([]float64, error) {
	if err := validateSVDFactors(u, w, v); err != nil {
		return nil, matrixErrorf(opSVDSolve, err)
	}
	m, n := u.r, u.c
	if err := ValidateVecLen(b, m); err != nil {
		return nil, matrixErrorf(opSVDSolve, err)
	}
	tmp := make([]float64, n)
	var (
		j int
		s float64
	)
	// calculate Uᵗ·b
	for j = 0; j < n; j++ {
		s = 0
		// nonzero result only if w[j] is nonzero
		if w[j] != 0 {
			s = Dot(m, u.data[j:], n, b, 1) / w[j]
		}
		tmp[j] = s
	}
	// matrix multiply by V to get answer
	x := make([]float64, n)
	for j = 0; j < n; j++ {
		x[j] = Dot(n, v.data[j*n:], 1, tmp, 1)
	}

	return x, nil
}

// SVDSolve edits the singular values below tol·max(w) to zero (numerical
// rank truncation, in place on w) and then back-substitutes.
//
// Errors:
//   - as SVBackSub; ErrNaNInf when tol is negative or non-finite.
func SVDSolve(u *Dense, w []float64, v *Dense, b []float64, tol float64) ([]float64, error) {
	if isNonFinite(tol) || tol < 0 {
		return nil, matrixErrorf(opSVDSolve, ErrNaNInf)
	}
	TruncateSingular(w, tol)

	return SVBackSub(u, w, v, b)
}

// TruncateSingular zeroes every w[j] < tol·max(w) and returns the number of
// values kept (the numerical rank).
func TruncateSingular(w []float64, tol float64) int {
	wmax := 0.0
	for _, wj := range w {
		wmax = math.Max(wmax, wj)
	}
	thresh := tol * wmax
	rank := 0
	for j := range w {
		if w[j] < thresh {
			w[j] = 0
			continue
		}
		if w[j] != 0 {
			rank++
		}
	}

	return rank
}

// validateSVDFactors checks u (m×n), w (n), v (n×n) are mutually consistent.
func validateSVDFactors(u *Dense, w []float64, v *Dense) error {
	if err := ValidateNotNil(u); err != nil {
		return err
	}
	if err := ValidateSquare(v); err != nil {
		return err
	}
	if v.r != u.c || len(w) != u.c {
		return ErrDimensionMismatch
	}

	return nil
}

// rowViews exposes each row of d as a slice aliasing its storage, so the
// factorization code can use a[i][j] indexing.
func rowViews(d *Dense) [][]float64 {
	rows := make([][]float64, d.r)
	for i := range rows {
		rows[i] = d.RawRow(i)
	}

	return rows
}
