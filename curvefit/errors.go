// SPDX-License-Identifier: MIT

package curvefit

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates x, y and sigma of different lengths.
	ErrDimensionMismatch = errors.New("curvefit: dimension mismatch")

	// ErrTooFewPoints indicates fewer data points than basis functions.
	ErrTooFewPoints = errors.New("curvefit: fewer points than coefficients")

	// ErrInvalidSigma indicates a non-positive or non-finite uncertainty.
	ErrInvalidSigma = errors.New("curvefit: sigma must be finite and > 0")

	// ErrInvalidData indicates a NaN or infinite x or y.
	ErrInvalidData = errors.New("curvefit: data must be finite")
)

// fitErrorf wraps err with the operation tag.
func fitErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
