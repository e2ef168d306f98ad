// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Kernels wrap
// with an operation tag via matrixErrorf(opX, ErrY); callers still match with
// errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape/nil -> dimension mismatch -> numeric policy -> singular/convergence.

var (
	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Mul where a.Cols != b.Rows, or a right-hand side of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrRagged indicates that a row-slice literal has rows of different lengths.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrSingular is returned when an exactly-zero pivot is met by a solve or
	// inverse, or when the reciprocal condition estimate satisfies 1+rcond == 1.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNoConvergence is returned when the SVD's implicit-shift QR sweep needs
	// more than svdMaxIterations iterations for one singular value.
	ErrNoConvergence = errors.New("matrix: no convergence in svd")
)
