// SPDX-License-Identifier: MIT

package roots

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnum/function"
)

// toleranceFloor keeps requested accuracies above a few ulps.
const toleranceFloor = 4 * function.Epsilon

// Find refines the root inside b to within tol.
//
// Dispatch:
//   - f.Derivative(b.Lower()) available → Newton (safeguarded Newton–Raphson).
//   - otherwise                         → Zeroin (Brent).
//
// Errors:
//   - ErrNotBracketed, ErrNoConvergence (both wrapped with the method tag).
func Find(f function.Func1D, b Bracket, tol float64) (float64, error) {
	f.Value(b.lower)
	if _, ok := f.Derivative(b.lower); ok {
		return Newton(f, b, tol)
	}

	return Zeroin(f, b, tol)
}

// Zeroin finds a zero of f in b with Brent's method.
//
// Implementation:
//   - Three abscissae: b (best estimate), a (previous b), c (confines the root
//     together with b). |f(b)| ≤ |f(c)| is restored at the top of each step.
//   - Inverse quadratic interpolation through (a, b, c) when all three differ,
//     secant through (b, c) otherwise.
//   - The interpolated step is accepted only if it lands inside
//     [tolAct, ¾·(c−b)] and shrinks faster than half the step before last;
//     bisection otherwise.
//   - Steps never smaller than tolAct = 2·eps·|b| + tol/2.
//
// Stops when |c−b|/2 ≤ tolAct or f(b) == 0.
//
// Errors:
//   - ErrNotBracketed when f(lower), f(upper) share a strict sign.
//   - ErrNoConvergence after MaxIterations.
//
// Complexity:
//   - Superlinear in the smooth case, never worse than bisection.
func Zeroin(f function.Func1D, br Bracket, tol float64) (float64, error) {
	tol = function.ClampTolerance(tol, toleranceFloor)
	a, b := br.lower, br.upper
	fa, fb := f.Value(a), f.Value(b)
	if !straddles(fa, fb) {
		return 0, rootsErrorf(opZeroin, fmt.Errorf("f(%g)=%g f(%g)=%g: %w", a, fa, b, fb, ErrNotBracketed))
	}

	var c, fc, d, e, tolAct, xm, p, q, r, s float64
	c, fc = a, fa
	d = b - a
	e = d
	for iter := 0; iter < MaxIterations; iter++ {
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}
		tolAct = 2*function.Epsilon*math.Abs(b) + 0.5*tol
		xm = 0.5 * (c - b)
		if math.Abs(xm) <= tolAct || fb == 0 {
			return b, nil
		}

		if math.Abs(e) < tolAct || math.Abs(fa) <= math.Abs(fb) {
			// bisection
			d, e = xm, xm
		} else {
			s = fb / fa
			if a == c {
				// secant
				p = 2 * xm * s
				q = 1 - s
			} else {
				// inverse quadratic interpolation
				q = fa / fc
				r = fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			if 2*p < 3*xm*q-math.Abs(tolAct*q) && p < math.Abs(0.5*e*q) {
				e = d
				d = p / q
			} else {
				d, e = xm, xm
			}
		}
		a, fa = b, fb
		if math.Abs(d) > tolAct {
			b += d
		} else {
			b += math.Copysign(tolAct, xm)
		}
		fb = f.Value(b)
		if !straddles(fb, fc) {
			c, fc = a, fa
			d = b - a
			e = d
		}
	}

	return b, rootsErrorf(opZeroin, fmt.Errorf("after %d iterations at x=%g: %w", MaxIterations, b, ErrNoConvergence))
}
