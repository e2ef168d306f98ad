// SPDX-License-Identifier: MIT

// Package matrix - LU factorization with partial pivoting and its consumers.
//
// Purpose:
//   - LU: in-place Gaussian elimination with row pivoting (LINPACK dgefa layout:
//     unit-lower multipliers stored negated below the diagonal, U on and above).
//   - LUSolve: forward elimination + back-substitution for A·x = b or Aᵗ·x = b.
//   - Condition: one-norm reciprocal condition estimate (dgeco).
//   - DeterminantLU / InverseLU and the non-mutating Det / Inverse / Solve.
//
// Storage:
//   - Row-major *Dense; column k below the diagonal is the strided slice
//     starting at (k+1, k) with stride n.
//
// Determinism:
//   - Fixed loop orders; ties in pivot magnitude go to the lowest row (Iamax).

package matrix

import (
	"fmt"
	"math"
)

// tail returns the storage from (r, c) to the end, or nil when (r, c) is past
// the last element. Strided BLAS calls with n == 0 accept the nil slice.
func (m *Dense) tail(r, c int) []float64 {
	off := r*m.c + c
	if off >= len(m.data) {
		return nil
	}

	return m.data[off:]
}

// LU factors the square matrix a in place as P·A = L·U.
//
// Implementation:
//   - Stage 1: validate a is square.
//   - Stage 2: for each column k choose the row l ≥ k with the largest |a[l][k]|,
//     record it in pivots[k] and swap it into place.
//   - Stage 3: scale the column below the pivot by −1/pivot and eliminate the
//     trailing columns with Axpy (row interchange applied lazily per column).
//
// Returns:
//   - pivots: pivots[k] is the row interchanged with row k at step k.
//   - singular: index of the first exactly-zero pivot, NoSingularPivot (−1)
//     when there is none. A zero pivot does not stop the factorization; it only
//     makes LUSolve / InverseLU meaningless.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Complexity:
//   - Time O(n³), Space O(n) for pivots.
func LU(a *Dense) ([]int, int, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, NoSingularPivot, matrixErrorf(opLU, err)
	}
	n := a.r
	pivots := make([]int, n)
	singular := NoSingularPivot

	var (
		k, j, l int
		t       float64
	)
	for k = 0; k < n-1; k++ {
		// find l = pivot index
		l = Iamax(n-k, a.tail(k, k), n) + k
		pivots[k] = l

		// zero pivot implies this column already triangularized
		if a.data[l*n+k] == ZeroPivot {
			if singular == NoSingularPivot {
				singular = k
			}
			continue
		}

		// interchange if necessary
		if l != k {
			a.data[l*n+k], a.data[k*n+k] = a.data[k*n+k], a.data[l*n+k]
		}

		// compute multipliers
		t = -1 / a.data[k*n+k]
		Scal(n-k-1, t, a.tail(k+1, k), n)

		// row elimination with column indexing
		for j = k + 1; j < n; j++ {
			t = a.data[l*n+j]
			if l != k {
				a.data[l*n+j] = a.data[k*n+j]
				a.data[k*n+j] = t
			}
			Axpy(n-k-1, t, a.tail(k+1, k), n, a.tail(k+1, j), n)
		}
	}
	pivots[n-1] = n - 1
	if a.data[(n-1)*n+n-1] == ZeroPivot && singular == NoSingularPivot {
		singular = n - 1
	}

	return pivots, singular, nil
}

// LUSolve solves A·x = b (trans == false) or Aᵗ·x = b (trans == true) using the
// factors produced by LU. b is overwritten with x.
//
// Implementation (trans == false):
//   - Stage 1: forward elimination L·y = P·b applying the recorded interchanges.
//   - Stage 2: back-substitution U·x = y.
//
// Implementation (trans == true):
//   - Stage 1: solve Uᵗ·y = b.
//   - Stage 2: solve Lᵗ·x = y, undoing interchanges in reverse order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shape/len(b)/len(pivots)),
//     ErrSingular when a diagonal element of U is exactly zero.
//
// Complexity:
//   - Time O(n²), Space O(1).
func LUSolve(lu *Dense, pivots []int, b []float64, trans bool) error {
	if err := ValidateSquare(lu); err != nil {
		return matrixErrorf(opLUSolve, err)
	}
	n := lu.r
	if err := ValidateVecLen(b, n); err != nil {
		return matrixErrorf(opLUSolve, err)
	}
	if err := ValidatePivots(pivots, n); err != nil {
		return matrixErrorf(opLUSolve, err)
	}
	for k := 0; k < n; k++ {
		if lu.data[k*n+k] == ZeroPivot {
			return matrixErrorf(opLUSolve, fmt.Errorf("zero pivot at %d: %w", k, ErrSingular))
		}
	}

	var (
		k, l int
		t    float64
	)
	if !trans {
		// first solve L*y = b
		for k = 0; k < n-1; k++ {
			l = pivots[k]
			t = b[l]
			if l != k {
				b[l] = b[k]
				b[k] = t
			}
			Axpy(n-k-1, t, lu.tail(k+1, k), n, b[k+1:], 1)
		}
		// now solve U*x = y
		for k = n - 1; k >= 0; k-- {
			b[k] /= lu.data[k*n+k]
			t = -b[k]
			Axpy(k, t, lu.tail(0, k), n, b, 1)
		}

		return nil
	}

	// first solve trans(U)*y = b
	for k = 0; k < n; k++ {
		t = Dot(k, lu.tail(0, k), n, b, 1)
		b[k] = (b[k] - t) / lu.data[k*n+k]
	}
	// now solve trans(L)*x = y
	for k = n - 2; k >= 0; k-- {
		b[k] += Dot(n-k-1, lu.tail(k+1, k), n, b[k+1:], 1)
		l = pivots[k]
		if l != k {
			b[l], b[k] = b[k], b[l]
		}
	}

	return nil
}

// Condition factors a in place (as LU does) and estimates the reciprocal
// condition number in the one-norm.
//
// Implementation (LINPACK dgeco):
//   - Stage 1: anorm = max column absolute sum of the original a.
//   - Stage 2: LU factorization.
//   - Stage 3: solve Uᵗ·w = e choosing e = ±1 greedily to make w large.
//   - Stage 4: solve Lᵗ·y = w, then L·v = y, then U·z = v, rescaling to avoid overflow.
//   - Stage 5: rcond = (‖y‖/‖z‖ tracking) / anorm.
//
// Returns:
//   - pivots: as LU.
//   - rcond: estimate in [0, 1]; treat IsSingular(rcond) as a hard singularity.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n³) (factorization) + O(n²) (estimate), Space O(n).
func Condition(a *Dense) ([]int, float64, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, 0, matrixErrorf(opCondition, err)
	}
	n := a.r

	// compute 1-norm of a
	anorm := 0.0
	var j int
	for j = 0; j < n; j++ {
		anorm = math.Max(anorm, Asum(n, a.tail(0, j), n))
	}

	pivots, _, err := LU(a)
	if err != nil {
		return nil, 0, matrixErrorf(opCondition, err)
	}

	z := make([]float64, n)
	var (
		k, l                  int
		ek, t, wk, wkm, s, sm float64
		akk, ynorm            float64
	)

	// solve trans(U)*w = e
	ek = 1
	for k = 0; k < n; k++ {
		if z[k] != 0 {
			ek = math.Copysign(ek, -z[k])
		}
		akk = a.data[k*n+k]
		if math.Abs(ek-z[k]) > math.Abs(akk) {
			s = math.Abs(akk) / math.Abs(ek-z[k])
			Scal(n, s, z, 1)
			ek *= s
		}
		wk = ek - z[k]
		wkm = -ek - z[k]
		s = math.Abs(wk)
		sm = math.Abs(wkm)
		if akk != ZeroPivot {
			wk /= akk
			wkm /= akk
		} else {
			wk = 1
			wkm = 1
		}
		if k+1 < n {
			row := a.data[k*n : (k+1)*n]
			for j = k + 1; j < n; j++ {
				sm += math.Abs(z[j] + wkm*row[j])
				z[j] += wk * row[j]
				s += math.Abs(z[j])
			}
			if s < sm {
				t = wkm - wk
				wk = wkm
				for j = k + 1; j < n; j++ {
					z[j] += t * row[j]
				}
			}
		}
		z[k] = wk
	}
	rescale(z)

	// solve trans(L)*y = w
	for k = n - 1; k >= 0; k-- {
		if k < n-1 {
			z[k] += Dot(n-k-1, a.tail(k+1, k), n, z[k+1:], 1)
		}
		if math.Abs(z[k]) > 1 {
			Scal(n, 1/math.Abs(z[k]), z, 1)
		}
		l = pivots[k]
		z[l], z[k] = z[k], z[l]
	}
	rescale(z)

	ynorm = 1

	// solve L*v = y
	for k = 0; k < n; k++ {
		l = pivots[k]
		t = z[l]
		z[l] = z[k]
		z[k] = t
		if k < n-1 {
			Axpy(n-k-1, t, a.tail(k+1, k), n, z[k+1:], 1)
		}
		if math.Abs(z[k]) > 1 {
			s = 1 / math.Abs(z[k])
			Scal(n, s, z, 1)
			ynorm *= s
		}
	}
	ynorm *= rescale(z)

	// solve U*z = v
	for k = n - 1; k >= 0; k-- {
		akk = a.data[k*n+k]
		if math.Abs(z[k]) > math.Abs(akk) {
			s = math.Abs(akk) / math.Abs(z[k])
			Scal(n, s, z, 1)
			ynorm *= s
		}
		if akk != ZeroPivot {
			z[k] /= akk
		} else {
			z[k] = 1
		}
		t = -z[k]
		Axpy(k, t, a.tail(0, k), n, z, 1)
	}
	// make znorm = 1.0
	ynorm *= rescale(z)

	if anorm == 0 {
		return pivots, 0, nil
	}

	return pivots, ynorm / anorm, nil
}

// rescale divides z by its one-norm and returns the factor applied.
// A zero vector is left untouched (factor 1).
func rescale(z []float64) float64 {
	sum := Asum(len(z), z, 1)
	if sum == 0 {
		return 1
	}
	s := 1 / sum
	Scal(len(z), s, z, 1)

	return s
}

// IsSingular reports whether the reciprocal condition estimate is
// indistinguishable from zero at working precision (1 + rcond == 1).
func IsSingular(rcond float64) bool {
	return 1+rcond == 1
}

// DeterminantLU returns det(A) from the factors produced by LU.
// A zero pivot yields 0 (not an error).
// Complexity: O(n).
func DeterminantLU(lu *Dense, pivots []int) (float64, error) {
	if err := ValidateSquare(lu); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	n := lu.r
	if err := ValidatePivots(pivots, n); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	det := 1.0
	for k := 0; k < n; k++ {
		if pivots[k] != k {
			det = -det
		}
		det *= lu.data[k*n+k]
	}

	return det, nil
}

// InverseLU assembles A⁻¹ column by column from the factors produced by LU.
//
// Errors:
//   - ErrSingular on an exactly-zero pivot; shape errors as LUSolve.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func InverseLU(lu *Dense, pivots []int) (*Dense, error) {
	if err := ValidateSquare(lu); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := lu.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	e := make([]float64, n)
	var i, col int
	for col = 0; col < n; col++ {
		for i = range e {
			e[i] = 0
		}
		e[col] = 1
		if err = LUSolve(lu, pivots, e, false); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = e[i]
		}
	}

	return inv, nil
}

// Det returns det(a) without mutating a.
// A singular matrix yields 0 with a nil error.
func Det(a *Dense) (float64, error) {
	if err := ValidateSquare(a); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	lu := a.CloneDense()
	pivots, _, err := LU(lu)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return DeterminantLU(lu, pivots)
}

// Inverse returns a⁻¹ without mutating a.
//
// Errors:
//   - ErrSingular when a pivot is exactly zero or IsSingular(rcond).
func Inverse(a *Dense) (*Dense, error) {
	lu, pivots, err := conditionedCopy(a, opInverse)
	if err != nil {
		return nil, err
	}

	return InverseLU(lu, pivots)
}

// Solve returns x with a·x = b without mutating a or b.
//
// Errors:
//   - ErrSingular when a pivot is exactly zero or IsSingular(rcond);
//     ErrDimensionMismatch when len(b) != a.Rows().
func Solve(a *Dense, b []float64) ([]float64, error) {
	lu, pivots, err := conditionedCopy(a, opSolve)
	if err != nil {
		return nil, err
	}
	x := make([]float64, len(b))
	copy(x, b)
	if err = LUSolve(lu, pivots, x, false); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return x, nil
}

// conditionedCopy factors a copy of a and rejects numerically singular input.
func conditionedCopy(a *Dense, op string) (*Dense, []int, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, nil, matrixErrorf(op, err)
	}
	lu := a.CloneDense()
	pivots, rcond, err := Condition(lu)
	if err != nil {
		return nil, nil, matrixErrorf(op, err)
	}
	if IsSingular(rcond) {
		return nil, nil, matrixErrorf(op, fmt.Errorf("rcond=%g: %w", rcond, ErrSingular))
	}

	return lu, pivots, nil
}
