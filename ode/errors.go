// SPDX-License-Identifier: MIT

package ode

import (
	"errors"
	"fmt"
)

var (
	// ErrNilDerivs indicates a missing right-hand side.
	ErrNilDerivs = errors.New("ode: nil derivatives")

	// ErrDimensionMismatch indicates a state length different from the
	// integrator dimension.
	ErrDimensionMismatch = errors.New("ode: dimension mismatch")

	// ErrInvalidStep indicates a zero, NaN or infinite step size, or an end
	// point that is NaN.
	ErrInvalidStep = errors.New("ode: invalid step size")

	// ErrStepUnderflow indicates the adaptive step shrank until x+h == x.
	ErrStepUnderflow = errors.New("ode: step size underflow")

	// ErrMinStep indicates the suggested step fell below the configured minimum.
	ErrMinStep = errors.New("ode: step size below minimum")

	// ErrMaxSteps indicates the step cap was reached.
	ErrMaxSteps = errors.New("ode: maximum number of steps exceeded")
)

// odeErrorf wraps err with the operation tag.
func odeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
