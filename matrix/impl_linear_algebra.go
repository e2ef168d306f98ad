// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// matrixErrorf tags err with the failing operation. Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense, otherwise a row-major copy
// read through At. The products below run on the flat layout only.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < rows; i++ {
		row := d.RawRow(i)
		for j := range row {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			row[j] = v
		}
	}

	return d, nil
}

// Mul returns the product A·B as a new matrix.
//
// Implementation:
//   - Row i of the result accumulates A[i,k]·B[k,:] with Axpy over the
//     non-zero entries of row i of A.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (A.Cols != B.Rows).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	c, err := NewDense(da.r, db.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	for i := 0; i < da.r; i++ {
		ci := c.RawRow(i)
		for k, aik := range da.RawRow(i) {
			if aik != 0 {
				Axpy(db.c, aik, db.RawRow(k), 1, ci, 1)
			}
		}
	}

	return c, nil
}

// Transpose returns mᵗ as a new matrix; m is left untouched.
//
// Errors: ErrNilMatrix.
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	t, err := NewDense(d.c, d.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for j := 0; j < d.c; j++ {
		d.Col(t.RawRow(j), j)
	}

	return t, nil
}

// MatVec returns y = m·x.
//
// Errors: ErrNilMatrix (m or x nil), ErrDimensionMismatch (len(x) != m.Cols()).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, d.r)
	for i := range y {
		y[i] = Dot(d.c, d.RawRow(i), 1, x, 1)
	}

	return y, nil
}
