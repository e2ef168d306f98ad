// SPDX-License-Identifier: MIT

package function

import "github.com/katalvlaran/lvnum/matrix"

// scalar adapts plain funcs to Func1D; df == nil means no derivative.
type scalar struct {
	f  func(float64) float64
	df func(float64) float64
}

// Scalar wraps f as a Func1D without a derivative.
func Scalar(f func(float64) float64) Func1D {
	return scalar{f: f}
}

// ScalarWithDerivative wraps f and its derivative df as a Func1D.
func ScalarWithDerivative(f, df func(float64) float64) Func1D {
	return scalar{f: f, df: df}
}

func (s scalar) Value(x float64) float64 { return s.f(x) }

func (s scalar) Derivative(x float64) (float64, bool) {
	if s.df == nil {
		return 0, false
	}

	return s.df(x), true
}

// vector adapts plain funcs to VectorFunc.
type vector struct {
	n   int
	f   func(x, y []float64)
	jac func(x []float64, jac *matrix.Dense)
}

// Vector wraps an n-dimensional system without a Jacobian.
func Vector(n int, f func(x, y []float64)) VectorFunc {
	return vector{n: n, f: f}
}

// VectorWithJacobian wraps an n-dimensional system and its Jacobian.
func VectorWithJacobian(n int, f func(x, y []float64), jac func(x []float64, jac *matrix.Dense)) VectorFunc {
	return vector{n: n, f: f, jac: jac}
}

func (v vector) Dim() int                { return v.n }
func (v vector) Evaluate(x, y []float64) { v.f(x, y) }

func (v vector) Jacobian(x []float64, jac *matrix.Dense) bool {
	if v.jac == nil {
		return false
	}
	v.jac(x, jac)

	return true
}

// objective adapts plain funcs to FuncND.
type objective struct {
	f    func([]float64) float64
	grad func(x, g []float64)
}

// Objective wraps f as a FuncND without a gradient.
func Objective(f func([]float64) float64) FuncND {
	return objective{f: f}
}

// ObjectiveWithGradient wraps f and its gradient.
func ObjectiveWithGradient(f func([]float64) float64, grad func(x, g []float64)) FuncND {
	return objective{f: f, grad: grad}
}

func (o objective) Value(x []float64) float64 { return o.f(x) }

func (o objective) Gradient(x, g []float64) bool {
	if o.grad == nil {
		return false
	}
	o.grad(x, g)

	return true
}

// DerivsFunc is an adapter to use an ordinary func as Derivs.
type DerivsFunc func(ydot []float64, x float64, y []float64)

// Derivatives calls d(ydot, x, y) and returns ydot.
func (d DerivsFunc) Derivatives(ydot []float64, x float64, y []float64) []float64 {
	d(ydot, x, y)

	return ydot
}

// StopFunc is an adapter to use an ordinary func as StopPredicate.
type StopFunc func(x float64, y []float64, step int) bool

// ShouldStop calls s(x, y, step).
func (s StopFunc) ShouldStop(x float64, y []float64, step int) bool { return s(x, y, step) }

// PowerBasis is the polynomial basis 1, x, x², … of degree n-1.
type PowerBasis int

// NewPowerBasis returns the basis for a polynomial of the given degree.
func NewPowerBasis(degree int) PowerBasis { return PowerBasis(degree + 1) }

// MinimumCoefficients returns the number of terms.
func (p PowerBasis) MinimumCoefficients() int { return int(p) }

// EvaluateBasis writes 1, x, x², … into out.
func (p PowerBasis) EvaluateBasis(x float64, out []float64) {
	if len(out) == 0 {
		return
	}
	out[0] = 1
	for k := 1; k < len(out); k++ {
		out[k] = out[k-1] * x
	}
}

// BasisFunc adapts a func to Basis with a fixed number of coefficients.
type BasisFunc struct {
	N  int
	Fn func(x float64, out []float64)
}

// MinimumCoefficients returns b.N.
func (b BasisFunc) MinimumCoefficients() int { return b.N }

// EvaluateBasis calls b.Fn.
func (b BasisFunc) EvaluateBasis(x float64, out []float64) { b.Fn(x, out) }
