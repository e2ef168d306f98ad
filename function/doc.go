// SPDX-License-Identifier: MIT

// Package function defines the problem contracts consumed by the numerical
// solvers: what a caller implements to hand a function, its derivatives, a
// curve-fitting basis, an ODE right-hand side or a stopping rule to lvnum.
//
// Contracts:
//   - Func1D        — f: ℝ → ℝ with an optional derivative (roots, minimize, quad).
//   - VectorFunc    — F: ℝⁿ → ℝⁿ with an optional Jacobian (roots.FindND).
//   - FuncND        — f: ℝⁿ → ℝ with an optional gradient (minimize.FindND).
//   - Basis         — basis functions for least-squares fits (curvefit).
//   - Derivs        — ODE right-hand side y' = f(x, y) (ode).
//   - StopPredicate — early termination test for ODE integration (ode).
//
// Optional derivatives are reported with an explicit ok flag rather than a
// magic value, so a derivative of exactly zero is always a real answer.
// Solvers use the flag for method dispatch only; "not available" is never an
// error.
//
// Adapters wrap plain Go funcs so callers rarely need a named type:
//
//	f := function.ScalarWithDerivative(
//		func(x float64) float64 { return x*x*x - 3*x + 2 },
//		func(x float64) float64 { return 3*x*x - 3 },
//	)
//	root, err := roots.Find(f, roots.NewBracket(-10, 0), 1e-8)
//
// Tolerances:
//   - ClampTolerance floors a requested tolerance at a machine-epsilon-scaled
//     minimum so callers cannot ask for meaningless precision.
package function
