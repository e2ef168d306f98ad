// SPDX-License-Identifier: MIT

package function

import "github.com/katalvlaran/lvnum/matrix"

// Func1D is a scalar function of one variable.
//
// Contract:
//   - Value(x) is always called before Derivative(x) at the same x, so an
//     implementation may cache intermediate results between the two.
//   - Derivative returns ok == false when no analytic derivative is supplied;
//     solvers then fall back to derivative-free methods.
type Func1D interface {
	Value(x float64) float64
	Derivative(x float64) (float64, bool)
}

// VectorFunc is F: ℝⁿ → ℝⁿ, the system solved by roots.FindND.
//
// Contract:
//   - Evaluate writes F(x) into y; len(x) == len(y) == Dim().
//   - Jacobian fills jac (Dim()×Dim(), jac[i][j] = ∂Fᵢ/∂xⱼ) and returns true,
//     or returns false without touching jac when it is not supplied.
type VectorFunc interface {
	Dim() int
	Evaluate(x, y []float64)
	Jacobian(x []float64, jac *matrix.Dense) bool
}

// FuncND is a scalar function of n variables.
//
// Gradient writes ∇f(x) into g and returns true, or returns false when no
// gradient is supplied.
type FuncND interface {
	Value(x []float64) float64
	Gradient(x, g []float64) bool
}

// Basis generates the basis functions of a linear least-squares model
// y(x) = Σ aₖ·Xₖ(x).
//
// MinimumCoefficients is the number of basis functions a fit needs at least;
// EvaluateBasis writes X₀(x) … X_{len(out)-1}(x) into out.
type Basis interface {
	MinimumCoefficients() int
	EvaluateBasis(x float64, out []float64)
}

// Derivs supplies the right-hand side of y' = f(x, y).
// ydot is caller-owned; implementations fill it in place and return it.
type Derivs interface {
	Derivatives(ydot []float64, x float64, y []float64) []float64
}

// StopPredicate ends an ODE integration early when ShouldStop returns true.
// step counts accepted steps, starting at 1 after the first one.
type StopPredicate interface {
	ShouldStop(x float64, y []float64, step int) bool
}
