// SPDX-License-Identifier: MIT

package minimize

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnum/function"
)

// Bracket searches downhill from a and b for a Triple enclosing a minimum.
//
// Implementation:
//   - Stage 1: orient so f(a) ≥ f(b) and step c = b + φ·(b − a).
//   - Stage 2: while f(b) > f(c), fit a parabola through a, b, c and try its
//     vertex u:
//   - u between b and c: accept (b, u, c) or (a, b, u) when it brackets;
//   - u between c and the limit b + GLimit·(c − b): take it and, if still
//     downhill, magnify once more;
//   - u past the limit: clamp to the limit;
//   - otherwise default golden magnification.
//   - Stage 3: shift (a, b, c) ← (b, c, u) and repeat.
//
// Errors:
//   - ErrBracket after MaxBracketSteps, on a non-finite value, or when
//     a == b.
func Bracket(f function.Func1D, a, b float64) (Triple, error) {
	if a == b || !isFinite(a) || !isFinite(b) {
		return Triple{}, minimizeErrorf(opBracket, fmt.Errorf("start points %g, %g: %w", a, b, ErrBracket))
	}
	fa, fb := f.Value(a), f.Value(b)
	if fb > fa {
		a, b = b, a
		fa, fb = fb, fa
	}
	c := b + gold*(b-a)
	fc := f.Value(c)

	var r, q, u, ulim, fu float64
	for step := 0; fb > fc; step++ {
		if step == MaxBracketSteps || !isFinite(fc) || !isFinite(c) {
			return Triple{}, minimizeErrorf(opBracket, fmt.Errorf("walked to x=%g f=%g after %d steps: %w", c, fc, step, ErrBracket))
		}
		// parabolic extrapolation; tiny prevents division by zero
		r = (b - a) * (fb - fc)
		q = (b - c) * (fb - fa)
		u = b - ((b-c)*q-(b-a)*r)/(2*sign(math.Max(math.Abs(q-r), tiny), q-r))
		ulim = b + GLimit*(c-b)

		switch {
		case (b-u)*(u-c) > 0:
			// parabolic u between b and c
			fu = f.Value(u)
			if fu < fc {
				return Triple{A: b, B: u, C: c, FA: fb, FB: fu, FC: fc}, nil
			}
			if fu > fb {
				return Triple{A: a, B: b, C: u, FA: fa, FB: fb, FC: fu}, nil
			}
			u = c + gold*(c-b)
			fu = f.Value(u)
		case (c-u)*(u-ulim) > 0:
			// parabolic u between c and its allowed limit
			fu = f.Value(u)
			if fu < fc {
				b, c, u = c, u, u+gold*(u-c)
				fb, fc, fu = fc, fu, f.Value(u)
			}
		case (u-ulim)*(ulim-c) >= 0:
			u = ulim
			fu = f.Value(u)
		default:
			u = c + gold*(c-b)
			fu = f.Value(u)
		}
		a, b, c = b, c, u
		fa, fb, fc = fb, fc, fu
	}

	return Triple{A: a, B: b, C: c, FA: fa, FB: fb, FC: fc}, nil
}
