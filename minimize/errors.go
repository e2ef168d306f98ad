// SPDX-License-Identifier: MIT

package minimize

import (
	"errors"
	"fmt"
)

var (
	// ErrBracket indicates the downhill walk never turned uphill.
	ErrBracket = errors.New("minimize: cannot bracket a minimum")

	// ErrNoConvergence indicates the iteration cap was reached.
	ErrNoConvergence = errors.New("minimize: maximum number of iterations exceeded")

	// ErrDimensionMismatch indicates empty or inconsistent vectors.
	ErrDimensionMismatch = errors.New("minimize: dimension mismatch")
)

// minimizeErrorf wraps err with the operation tag.
func minimizeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
