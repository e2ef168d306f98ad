// SPDX-License-Identifier: MIT

package minimize

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnum/function"
)

// Find locates a minimum of f starting from the points a and b, to the
// fractional tolerance tol.
//
// Dispatch after Bracket:
//   - f.Derivative(t.B) available → DBrent.
//   - otherwise                   → Brent.
//
// Errors:
//   - ErrBracket, ErrNoConvergence.
func Find(f function.Func1D, a, b, tol float64) (xmin, fmin float64, err error) {
	t, err := Bracket(f, a, b)
	if err != nil {
		return 0, 0, minimizeErrorf(opFind, err)
	}
	f.Value(t.B)
	if _, ok := f.Derivative(t.B); ok {
		return DBrent(f, t, tol)
	}

	return Brent(f, t, tol)
}

// Brent isolates the minimum inside t to a fractional precision of about tol.
//
// Implementation:
//   - Keeps x (best so far), w (second best), v (previous w) and the
//     interval [a, b] that contains the minimum.
//   - Tries a parabola through x, w, v; accepts its vertex if it falls inside
//     [a, b] and moves less than half the step before last, otherwise takes a
//     golden-section step into the larger half.
//   - Never evaluates closer than tol1 = tol·|x| + zeps to a known point.
//
// Stops when |x − (a+b)/2| ≤ 2·tol1 − (b − a)/2.
//
// Errors:
//   - ErrNoConvergence after MaxIterations.
func Brent(f function.Func1D, t Triple, tol float64) (xmin, fmin float64, err error) {
	tol = function.ClampTolerance(tol, function.SqrtEpsilon)
	a, b := math.Min(t.A, t.C), math.Max(t.A, t.C)
	x, w, v := t.B, t.B, t.B
	fx := t.FB
	fw, fv := fx, fx

	var d, e, xm, tol1, tol2, p, q, r, etemp, u, fu float64
	for iter := 0; iter < MaxIterations; iter++ {
		xm = 0.5 * (a + b)
		tol1 = tol*math.Abs(x) + zeps
		tol2 = 2 * tol1
		if math.Abs(x-xm) <= tol2-0.5*(b-a) {
			return x, fx, nil
		}
		if math.Abs(e) > tol1 {
			// trial parabolic fit
			r = (x - w) * (fx - fv)
			q = (x - v) * (fx - fw)
			p = (x-v)*q - (x-w)*r
			q = 2 * (q - r)
			if q > 0 {
				p = -p
			}
			q = math.Abs(q)
			etemp = e
			e = d
			if math.Abs(p) >= math.Abs(0.5*q*etemp) || p <= q*(a-x) || p >= q*(b-x) {
				e = goldenSide(x, xm, a, b)
				d = cgold * e
			} else {
				d = p / q
				u = x + d
				if u-a < tol2 || b-u < tol2 {
					d = sign(tol1, xm-x)
				}
			}
		} else {
			e = goldenSide(x, xm, a, b)
			d = cgold * e
		}
		if math.Abs(d) >= tol1 {
			u = x + d
		} else {
			u = x + sign(tol1, d)
		}
		fu = f.Value(u)
		if fu <= fx {
			if u >= x {
				a = x
			} else {
				b = x
			}
			v, w, x = w, x, u
			fv, fw, fx = fw, fx, fu
		} else {
			if u < x {
				a = u
			} else {
				b = u
			}
			if fu <= fw || w == x {
				v, w = w, u
				fv, fw = fw, fu
			} else if fu <= fv || v == x || v == w {
				v, fv = u, fu
			}
		}
	}

	return x, fx, minimizeErrorf(opBrent, fmt.Errorf("after %d iterations at x=%g: %w", MaxIterations, x, ErrNoConvergence))
}

// goldenSide returns the signed length of the larger segment of [a, b] as
// seen from x.
func goldenSide(x, xm, a, b float64) float64 {
	if x >= xm {
		return a - x
	}

	return b - x
}

// DBrent is Brent using first derivatives: the sign of f' at the best point
// picks the half-interval, and secant estimates of the derivative root from
// the two previous points replace the parabola.
//
// Errors:
//   - ErrNoConvergence after MaxIterations.
func DBrent(f function.Func1D, t Triple, tol float64) (xmin, fmin float64, err error) {
	tol = function.ClampTolerance(tol, function.SqrtEpsilon)
	a, b := math.Min(t.A, t.C), math.Max(t.A, t.C)
	x, w, v := t.B, t.B, t.B
	fx := f.Value(x)
	dx := slope(f, x)
	fw, fv := fx, fx
	dw, dv := dx, dx

	var (
		d, e, xm, tol1, tol2 float64
		d1, d2, u1, u2, olde float64
		u, fu, du            float64
		ok1, ok2             bool
	)
	for iter := 0; iter < MaxIterations; iter++ {
		xm = 0.5 * (a + b)
		tol1 = tol*math.Abs(x) + zeps
		tol2 = 2 * tol1
		if math.Abs(x-xm) <= tol2-0.5*(b-a) {
			return x, fx, nil
		}
		bisect := true
		if math.Abs(e) > tol1 {
			// out-of-range sentinel for the secant steps
			d1 = 2 * (b - a)
			d2 = d1
			if dw != dx {
				d1 = (w - x) * dx / (dx - dw)
			}
			if dv != dx {
				d2 = (v - x) * dx / (dx - dv)
			}
			// accept only steps inside the interval that go downhill
			u1 = x + d1
			u2 = x + d2
			ok1 = (a-u1)*(u1-b) > 0 && dx*d1 <= 0
			ok2 = (a-u2)*(u2-b) > 0 && dx*d2 <= 0
			olde = e
			e = d
			if ok1 || ok2 {
				switch {
				case ok1 && ok2:
					d = d2
					if math.Abs(d1) < math.Abs(d2) {
						d = d1
					}
				case ok1:
					d = d1
				default:
					d = d2
				}
				if math.Abs(d) <= math.Abs(0.5*olde) {
					bisect = false
					u = x + d
					if u-a < tol2 || b-u < tol2 {
						d = sign(tol1, xm-x)
					}
				}
			}
		}
		if bisect {
			// bisect into the downhill half
			if dx >= 0 {
				e = a - x
			} else {
				e = b - x
			}
			d = 0.5 * e
		}
		if math.Abs(d) >= tol1 {
			u = x + d
			fu = f.Value(u)
		} else {
			u = x + sign(tol1, d)
			fu = f.Value(u)
			// the minimum step went uphill: done
			if fu > fx {
				return x, fx, nil
			}
		}
		du = slope(f, u)
		if fu <= fx {
			if u >= x {
				a = x
			} else {
				b = x
			}
			v, fv, dv = w, fw, dw
			w, fw, dw = x, fx, dx
			x, fx, dx = u, fu, du
		} else {
			if u < x {
				a = u
			} else {
				b = u
			}
			if fu <= fw || w == x {
				v, fv, dv = w, fw, dw
				w, fw, dw = u, fu, du
			} else if fu < fv || v == x || v == w {
				v, fv, dv = u, fu, du
			}
		}
	}

	return x, fx, minimizeErrorf(opDBrent, fmt.Errorf("after %d iterations at x=%g: %w", MaxIterations, x, ErrNoConvergence))
}

// slope reads f'(x) after f.Value(x) has been called; a missing derivative
// reads as 0, which degrades DBrent to bisection toward a.
func slope(f function.Func1D, x float64) float64 {
	d, ok := f.Derivative(x)
	if !ok {
		return 0
	}

	return d
}
