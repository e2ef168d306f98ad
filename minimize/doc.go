// SPDX-License-Identifier: MIT

// Package minimize finds local minima of scalar functions of one and of n
// variables.
//
// 1-D:
//   - Bracket:  walk downhill from two points (golden-ratio steps with
//     parabolic extrapolation, bounded by GLimit) until a Triple with
//     f(B) < f(A) and f(B) ≤ f(C) is found.
//   - Brent:    golden section with inverse parabolic interpolation.
//   - DBrent:   Brent driven by derivative sign and secant extrapolation.
//   - Find:     Bracket, then DBrent when the function supplies a derivative
//     at the bracket midpoint, Brent otherwise.
//
// N-D:
//   - FindND:       Polak–Ribière conjugate gradients when f supplies a
//     gradient, Powell's direction-set method otherwise.
//   - LineMinimize: the shared 1-D reduction along a direction.
//
// Tolerances are fractional and floored at √eps: a minimum cannot be located
// to better than about √eps·|x| from function values alone.
//
// Errors: ErrBracket, ErrNoConvergence, ErrDimensionMismatch.
package minimize
