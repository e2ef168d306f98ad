// SPDX-License-Identifier: MIT

// Package matrix: public interface and shared constants.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Kernels fast-path on *Dense and fall back to At/Set for other implementations.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// ZeroPivot is the sentinel for detecting an exactly-zero pivot in LU.
const ZeroPivot = 0.0

// NoSingularPivot is the value LU reports when every pivot is non-zero.
const NoSingularPivot = -1

// DefaultValidateNaNInf toggles strict finite-value validation in Set.
const DefaultValidateNaNInf = true

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opLU        = "LU"
	opLUSolve   = "LUSolve"
	opCondition = "Condition"
	opInverse   = "Inverse"
	opDet       = "Det"
	opSolve     = "Solve"
	opSVD       = "SVD"
	opSVDSolve  = "SVDSolve"
)
