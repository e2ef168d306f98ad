// SPDX-License-Identifier: MIT

package quad

import "math"

const (
	// MaxRefinements caps the halvings of Trapezoid and Simpson.
	MaxRefinements = 20

	// MinRefinements is the number of halvings done before the first
	// convergence test.
	MinRefinements = 5
)

const (
	opTrapezoid     = "Trapezoid"
	opSimpson       = "Simpson"
	opGaussLegendre = "GaussLegendre"
	opAdaptLobatto  = "AdaptLobatto"
)

// checkInterval validates the bounds.
func checkInterval(tag string, a, b float64) error {
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return quadErrorf(tag, ErrInvalidInterval)
	}

	return nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
