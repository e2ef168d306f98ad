// SPDX-License-Identifier: MIT

package series

import (
	"fmt"
	"math"
	"strings"
)

// Taylor is an immutable truncated Taylor series about a center.
type Taylor struct {
	x0    float64
	deriv []float64 // f(x₀), f'(x₀), …, f⁽ⁿ⁾(x₀)
	tol   float64
}

// Evaluation is the outcome of one Taylor.Eval call.
type Evaluation struct {
	Value     float64
	Terms     int     // highest power reached
	LastTerm  float64 // magnitude of the last non-zero term added
	Converged bool    // LastTerm ≤ tolerance
}

// New returns the series about x0 with derivatives deriv[k] = f⁽ᵏ⁾(x0).
// deriv is copied.
//
// Errors: ErrNoDerivatives, ErrNonFinite.
func New(x0 float64, deriv []float64, opts ...Option) (*Taylor, error) {
	if len(deriv) == 0 {
		return nil, seriesErrorf(opNew, ErrNoDerivatives)
	}
	if !finite(x0) {
		return nil, seriesErrorf(opNew, fmt.Errorf("x0=%g: %w", x0, ErrNonFinite))
	}
	for k, d := range deriv {
		if !finite(d) {
			return nil, seriesErrorf(opNew, fmt.Errorf("deriv[%d]=%g: %w", k, d, ErrNonFinite))
		}
	}
	o := gatherOptions(opts...)

	return &Taylor{x0: x0, deriv: append([]float64(nil), deriv...), tol: o.tol}, nil
}

// Sin returns the series of sin x about 0 up to the given degree.
func Sin(degree int, opts ...Option) (*Taylor, error) {
	return cyclic(opSin, degree, [4]float64{0, 1, 0, -1}, opts)
}

// Cos returns the series of cos x about 0 up to the given degree.
func Cos(degree int, opts ...Option) (*Taylor, error) {
	return cyclic(opCos, degree, [4]float64{1, 0, -1, 0}, opts)
}

// Exp returns the series of eˣ about 0 up to the given degree.
func Exp(degree int, opts ...Option) (*Taylor, error) {
	return cyclic(opExp, degree, [4]float64{1, 1, 1, 1}, opts)
}

// cyclic builds a series about 0 whose derivatives repeat with period four.
func cyclic(tag string, degree int, period [4]float64, opts []Option) (*Taylor, error) {
	if degree < 0 {
		return nil, seriesErrorf(tag, ErrNegativeDegree)
	}
	d := make([]float64, degree+1)
	for k := range d {
		d[k] = period[k%4]
	}

	return New(0, d, opts...)
}

// Degree returns the highest power in the series.
func (t *Taylor) Degree() int { return len(t.deriv) - 1 }

// Center returns x₀.
func (t *Taylor) Center() float64 { return t.x0 }

// Tolerance returns the early-exit term magnitude.
func (t *Taylor) Tolerance() float64 { return t.tol }

// Eval sums the series at x.
//
// Implementation:
//   - The running factor (x − x₀)ᵏ/k! is updated incrementally.
//   - Zero derivatives are skipped without ending the sum.
//   - Stops after the first non-zero term with |term| < tol, or at Degree.
//
// Complexity: O(Degree).
func (t *Taylor) Eval(x float64) Evaluation {
	return evaluate(t.x0, t.deriv, x, t.tol)
}

// Value returns Eval(x).Value.
func (t *Taylor) Value(x float64) float64 { return t.Eval(x).Value }

// Derivative returns the value at x of the series for f', which needs at
// least degree 1.
func (t *Taylor) Derivative(x float64) (float64, bool) {
	if len(t.deriv) < 2 {
		return 0, false
	}

	return evaluate(t.x0, t.deriv[1:], x, t.tol).Value, true
}

// String formats the series as "P(x) = d0 + d1*(x - x0)^1/1! + …", leaving
// out zero terms.
func (t *Taylor) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "P(x) = %g", t.deriv[0])
	for k := 1; k < len(t.deriv); k++ {
		if t.deriv[k] == 0 {
			continue
		}
		fmt.Fprintf(&b, " + %g*", t.deriv[k])
		if t.x0 != 0 {
			fmt.Fprintf(&b, "(x - %g)", t.x0)
		} else {
			b.WriteString("x")
		}
		fmt.Fprintf(&b, "^%d/%d!", k, k)
	}

	return b.String()
}

func evaluate(x0 float64, deriv []float64, x, tol float64) Evaluation {
	n := len(deriv) - 1
	sum, prod := deriv[0], 1.0
	last := 1.0
	if x == x0 {
		last = 0
	}

	k := 0
	for last >= tol && k < n {
		k++
		prod *= (x - x0) / float64(k)
		for deriv[k] == 0 && k < n {
			k++
			prod *= (x - x0) / float64(k)
		}
		if term := deriv[k] * prod; term != 0 {
			last = math.Abs(term)
			sum += term
		}
	}

	return Evaluation{Value: sum, Terms: k, LastTerm: last, Converged: last <= tol}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
