// SPDX-License-Identifier: MIT

package minimize

import (
	"fmt"

	"github.com/katalvlaran/lvnum/function"
	"github.com/katalvlaran/lvnum/matrix"
)

// lineFunc restricts an N-D function to the line p + t·xi.
type lineFunc struct {
	f       function.FuncND
	p, xi   []float64
	xt, g   []float64
	hasGrad bool
}

func newLineFunc(f function.FuncND, p, xi []float64, hasGrad bool) *lineFunc {
	return &lineFunc{
		f:       f,
		p:       p,
		xi:      xi,
		xt:      make([]float64, len(p)),
		g:       make([]float64, len(p)),
		hasGrad: hasGrad,
	}
}

// Value evaluates f(p + t·xi).
func (l *lineFunc) Value(t float64) float64 {
	for j := range l.xt {
		l.xt[j] = l.p[j] + t*l.xi[j]
	}

	return l.f.Value(l.xt)
}

// Derivative is ∇f(p + t·xi)·xi, relying on Value(t) having set xt.
func (l *lineFunc) Derivative(t float64) (float64, bool) {
	if !l.hasGrad || !l.f.Gradient(l.xt, l.g) {
		return 0, false
	}

	return matrix.Dot(len(l.g), l.g, 1, l.xi, 1), true
}

// LineMinimize minimizes f along the direction xi from p and moves p there.
//
// On return p holds the minimizing point and xi the actual displacement
// taken (xi scaled by the step length). When useGradient is true and f
// supplies a gradient, DBrent drives the 1-D search; Brent otherwise.
//
// Errors:
//   - ErrDimensionMismatch, ErrBracket, ErrNoConvergence.
func LineMinimize(f function.FuncND, p, xi []float64, tol float64, useGradient bool) (float64, error) {
	n := len(p)
	if n == 0 || len(xi) != n {
		return 0, minimizeErrorf(opLine, fmt.Errorf("len(p)=%d len(xi)=%d: %w", n, len(xi), ErrDimensionMismatch))
	}
	lf := newLineFunc(f, p, xi, useGradient)
	t, err := Bracket(lf, 0, 1)
	if err != nil {
		return 0, minimizeErrorf(opLine, err)
	}
	var xmin, fret float64
	if useGradient {
		xmin, fret, err = DBrent(lf, t, tol)
	} else {
		xmin, fret, err = Brent(lf, t, tol)
	}
	if err != nil {
		return 0, minimizeErrorf(opLine, err)
	}
	matrix.Scal(n, xmin, xi, 1)
	matrix.Axpy(n, 1, xi, 1, p, 1)

	return fret, nil
}
