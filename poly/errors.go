// SPDX-License-Identifier: MIT

package poly

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty indicates a polynomial without coefficients.
	ErrEmpty = errors.New("poly: empty polynomial")

	// ErrLeadingZero indicates the highest-power coefficient is zero.
	ErrLeadingZero = errors.New("poly: leading coefficient is zero")

	// ErrNoConvergence indicates both shift passes failed for some root.
	ErrNoConvergence = errors.New("poly: found fewer than degree roots")

	// ErrNonFinite indicates a NaN or infinite coefficient.
	ErrNonFinite = errors.New("poly: non-finite coefficient")
)

// opZeros tags errors returned by Zeros.
const opZeros = "Zeros"

// polyErrorf wraps err with an operation tag.
func polyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
