// SPDX-License-Identifier: MIT

package quad

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInterval indicates a NaN or infinite integration bound.
	ErrInvalidInterval = errors.New("quad: invalid interval")

	// ErrNoConvergence indicates the refinement cap was reached.
	ErrNoConvergence = errors.New("quad: too many refinements")

	// ErrNoMachineNumber indicates an interval holds no representable midpoint
	// and the requested tolerance was not met.
	ErrNoMachineNumber = errors.New("quad: interval contains no more machine numbers")

	// ErrUnsupportedOrder indicates a Gauss–Legendre order without a table.
	ErrUnsupportedOrder = errors.New("quad: unsupported Gauss-Legendre order")
)

// quadErrorf wraps err with the operation tag.
func quadErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
