// SPDX-License-Identifier: MIT

package roots

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnum/function"
)

// Newton finds a zero of f in b by Newton–Raphson, falling back to bisection
// whenever a Newton step would leave the current bracket or the residual is
// not shrinking fast enough (|2·f| > |dxOld·f'|).
//
// The derivative is taken from f.Derivative after f.Value at each point; if it
// becomes unavailable mid-run the step degenerates to bisection.
//
// Implementation:
//   - Stage 1: orient the bracket so f(xl) < 0 < f(xh).
//   - Stage 2: start from the midpoint; per iteration take a Newton or a
//     bisection step, then tighten xl or xh on the sign of f at the new point.
//   - Stop when |dx| < tol, or when the step no longer changes the iterate.
//
// Errors:
//   - ErrNotBracketed, ErrNoConvergence after MaxIterations.
func Newton(f function.Func1D, b Bracket, tol float64) (float64, error) {
	tol = function.ClampTolerance(tol, toleranceFloor)
	x1, x2 := b.lower, b.upper
	fl, fh := f.Value(x1), f.Value(x2)
	if !straddles(fl, fh) {
		return 0, rootsErrorf(opNewton, fmt.Errorf("f(%g)=%g f(%g)=%g: %w", x1, fl, x2, fh, ErrNotBracketed))
	}
	if fl == 0 {
		return x1, nil
	}
	if fh == 0 {
		return x2, nil
	}

	xl, xh := x1, x2
	if fl > 0 {
		xl, xh = x2, x1
	}
	rts := 0.5 * (x1 + x2)
	dxOld := math.Abs(x2 - x1)
	dx := dxOld
	fv, df := valueAndSlope(f, rts)

	var prev float64
	for iter := 0; iter < MaxIterations; iter++ {
		if ((rts-xh)*df-fv)*((rts-xl)*df-fv) > 0 || math.Abs(2*fv) > math.Abs(dxOld*df) {
			// bisect: Newton out of range or too slow
			dxOld = dx
			dx = 0.5 * (xh - xl)
			rts = xl + dx
			if xl == rts {
				return rts, nil
			}
		} else {
			dxOld = dx
			dx = fv / df
			prev = rts
			rts -= dx
			if prev == rts {
				return rts, nil
			}
		}
		if math.Abs(dx) < tol {
			return rts, nil
		}
		fv, df = valueAndSlope(f, rts)
		if fv == 0 {
			return rts, nil
		}
		if fv < 0 {
			xl = rts
		} else {
			xh = rts
		}
	}

	return rts, rootsErrorf(opNewton, fmt.Errorf("after %d iterations at x=%g: %w", MaxIterations, rts, ErrNoConvergence))
}

// valueAndSlope evaluates f then f' at x; a missing derivative reads as 0,
// which forces the next Newton test to bisect.
func valueAndSlope(f function.Func1D, x float64) (float64, float64) {
	v := f.Value(x)
	d, ok := f.Derivative(x)
	if !ok {
		d = 0
	}

	return v, d
}
