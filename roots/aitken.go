// SPDX-License-Identifier: MIT

package roots

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnum/function"
)

// aitkenStart stands in for the residual before the first evaluation, so the
// first step is the plain iteration x ← x + f(x).
const aitkenStart = 1e99

// Aitken finds a root of f(x) = 0 near x0 without a bracket or derivative.
//
// Implementation:
//   - Iterates x ← x + fac·f(x), where fac is rescaled every step by the ratio
//     of consecutive residuals, fac ← fac·f₀/(f₀ − f₁). This is Aitken's Δ²
//     extrapolation applied to the residual sequence.
//   - Stops when two consecutive residuals differ by less than tol and
//     returns x + f(x).
//
// The method needs no bracket, but it can wander off or stall when x0 is far
// from a simple root. Prefer Find when a bracket is known.
//
// Errors:
//   - ErrNoConvergence after AitkenMaxIterations or on a non-finite residual.
func Aitken(f function.Func1D, x0, tol float64) (float64, error) {
	tol = function.ClampTolerance(tol, toleranceFloor)
	x, fx0, fac := x0, aitkenStart, 1.0

	for iter := 0; iter < AitkenMaxIterations; iter++ {
		fx1 := f.Value(x)
		if !isFinite(fx1) {
			return x, rootsErrorf(opAitken, fmt.Errorf("f(%g)=%g after %d steps: %w", x, fx1, iter, ErrNoConvergence))
		}
		d := fx0 - fx1
		if math.Abs(d) < tol {
			return x + fx1, nil
		}
		fac *= fx0 / d
		x += fac * fx1
		if !isFinite(x) {
			return x, rootsErrorf(opAitken, fmt.Errorf("non-finite iterate after %d steps: %w", iter, ErrNoConvergence))
		}
		fx0 = fx1
	}

	return x, rootsErrorf(opAitken, fmt.Errorf("after %d iterations at x=%g: %w", AitkenMaxIterations, x, ErrNoConvergence))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
