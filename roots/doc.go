// SPDX-License-Identifier: MIT

// Package roots locates zeros of scalar functions and of square nonlinear
// systems.
//
// What is here?
//
//   - FindBrackets: scan [x1, x2] in n equal segments and report every segment
//     whose end values differ in sign (touching zero counts).
//   - Find:        refine one bracket; Newton–bisection hybrid when the
//     function supplies a derivative, Brent's zeroin otherwise.
//   - Zeroin:      Brent/Dekker inverse-quadratic / secant / bisection.
//   - Newton:      safeguarded Newton–Raphson that bisects whenever the Newton
//     step leaves the bracket or does not halve the residual fast enough.
//   - Aitken:      bracket-free root of f(x) = 0 by Δ²-rescaled iteration.
//   - FindND:      globally convergent Newton for F(x) = 0 in ℝⁿ, LU step plus
//     backtracking line search on ½|F|².
//
// Guarantees:
//   - Bracketed methods never lose the bracket; every iteration shrinks it.
//   - Every loop is capped (MaxIterations, or the FindND option); exceeding the
//     cap is ErrNoConvergence, never a degraded answer.
//   - A missing derivative or Jacobian selects a different method; it is never
//     an error.
//
// Errors:
//   - ErrNotBracketed, ErrInvalidInterval, ErrNoConvergence,
//     ErrLocalMinimum, ErrSingular (wraps matrix.ErrSingular), ErrRoundoff,
//     ErrDimensionMismatch.
//
// Example:
//
//	f := function.Scalar(func(x float64) float64 { return x*x*x - 3*x + 2 })
//	bs, _ := roots.FindBrackets(f, -10, 10, 50, 0)
//	for _, b := range bs {
//		x, err := roots.Find(f, b, 1e-10)
//		...
//	}
package roots
