// SPDX-License-Identifier: MIT

// Package quad integrates a scalar function over a finite interval.
//
// Rules:
//   - Trapezoid, Simpson: successive halving of a trapezoid sum (Simpson by
//     Richardson extrapolation of two consecutive levels). Accepted once the
//     relative change is below tol, never before 5 refinements, at most 20.
//   - GaussLegendre (10, 20, 40 points): fixed weighted sums, no error
//     estimate. Nodes and weights are computed once at package init.
//   - AdaptLobatto: Gander–Gautschi adaptive Gauss–Lobatto. A 13-point
//     Kronrod estimate calibrates the termination threshold, then each
//     interval is split into six until the 4- and 7-point Lobatto rules agree.
//
// Integrands are function.Func1D; only Value is used. Reversed intervals
// (a > b) yield the negated integral and a == b yields 0.
//
// Errors:
//   - ErrInvalidInterval for NaN or infinite bounds,
//   - ErrNoConvergence when refinement is exhausted or the integrand turns
//     non-finite,
//   - ErrNoMachineNumber when an adaptive interval can no longer be split,
//   - ErrUnsupportedOrder for Gauss–Legendre orders other than 10, 20 and 40.
package quad
