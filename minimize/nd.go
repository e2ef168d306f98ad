// SPDX-License-Identifier: MIT

package minimize

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnum/function"
	"github.com/katalvlaran/lvnum/matrix"
)

// cgEps guards the relative-decrease test at a minimum of exactly zero.
const cgEps = 1e-10

// powellTiny guards the Powell decrease test the same way.
const powellTiny = 1e-25

// FindND minimizes f from the starting point p to the fractional tolerance
// tol on the function value. p is not modified.
//
// Dispatch:
//   - f.Gradient(p) available → Polak–Ribière conjugate gradients.
//   - otherwise               → Powell's direction-set method.
//
// Errors:
//   - ErrDimensionMismatch on empty p; ErrBracket / ErrNoConvergence from the
//     line searches; ErrNoConvergence after MaxNDIterations.
func FindND(f function.FuncND, p []float64, tol float64) (Result, error) {
	n := len(p)
	if n == 0 {
		return Result{}, minimizeErrorf(opFindND, ErrDimensionMismatch)
	}
	tol = function.ClampTolerance(tol, function.Epsilon)
	x := append([]float64(nil), p...)

	g := make([]float64, n)
	f.Value(x)
	if f.Gradient(x, g) {
		return frprmn(f, x, g, tol)
	}

	return powell(f, x, tol)
}

// frprmn runs Polak–Ribière conjugate gradients from x (overwritten);
// xi holds ∇f(x) on entry.
//
// Each iteration line-minimizes along the conjugate direction h and updates
//
//	γ = ∇f_new·(∇f_new − ∇f_old) / ∇f_old·∇f_old,  h ← −∇f_new + γ·h.
//
// Stops when 2|Δf| ≤ tol·(|f_new| + |f_old| + ε) or the gradient vanishes.
func frprmn(f function.FuncND, x, xi []float64, tol float64) (Result, error) {
	n := len(x)
	fp := f.Value(x)
	g := make([]float64, n)
	h := make([]float64, n)
	for j := 0; j < n; j++ {
		g[j] = -xi[j]
		h[j] = g[j]
		xi[j] = h[j]
	}

	var fret, gg, dgg, gam float64
	var err error
	for iter := 1; iter <= MaxNDIterations; iter++ {
		fret, err = LineMinimize(f, x, xi, linTol, true)
		if err != nil {
			return Result{X: x, F: fp, Iterations: iter, Method: ConjugateGradient}, minimizeErrorf(opFRPRMN, err)
		}
		if 2*math.Abs(fret-fp) <= tol*(math.Abs(fret)+math.Abs(fp)+cgEps) {
			return Result{X: x, F: fret, Iterations: iter, Method: ConjugateGradient}, nil
		}
		fp = f.Value(x)
		f.Gradient(x, xi)
		gg = matrix.Dot(n, g, 1, g, 1)
		// Polak–Ribière: (xi + g)·xi, g holds −∇f_old
		dgg = matrix.Dot(n, xi, 1, xi, 1) + matrix.Dot(n, g, 1, xi, 1)
		if gg == 0 {
			// gradient exactly zero
			return Result{X: x, F: fp, Iterations: iter, Method: ConjugateGradient}, nil
		}
		gam = dgg / gg
		for j := 0; j < n; j++ {
			g[j] = -xi[j]
			h[j] = g[j] + gam*h[j]
			xi[j] = h[j]
		}
	}

	return Result{X: x, F: fp, Iterations: MaxNDIterations, Method: ConjugateGradient},
		minimizeErrorf(opFRPRMN, fmt.Errorf("after %d iterations: %w", MaxNDIterations, ErrNoConvergence))
}

// powell runs Powell's direction-set method from x (overwritten), starting
// with the coordinate directions.
//
// Each iteration line-minimizes along every direction, remembering the one
// with the largest single decrease (ibig). The average direction of the
// sweep replaces direction ibig only when the extrapolated point 2·x − x₀ is
// lower and the discriminant test
//
//	2(f₀ − 2f + f_E)(f₀ − f − Δf)² < Δf·(f₀ − f_E)²
//
// holds; otherwise the set is kept to avoid linear dependence.
func powell(f function.FuncND, x []float64, tol float64) (Result, error) {
	n := len(x)
	// xi[i] is direction i; starts as the unit vectors
	xi := make([][]float64, n)
	for i := range xi {
		xi[i] = make([]float64, n)
		xi[i][i] = 1
	}
	pt := append([]float64(nil), x...)
	ptt := make([]float64, n)
	xit := make([]float64, n)
	fret := f.Value(x)

	var (
		fp, fptt, del, t float64
		ibig, i, j       int
		err              error
	)
	for iter := 1; ; iter++ {
		fp = fret
		ibig = 0
		del = 0
		for i = 0; i < n; i++ {
			copy(xit, xi[i])
			fptt = fret
			fret, err = LineMinimize(f, x, xit, linTol, false)
			if err != nil {
				return Result{X: x, F: fptt, Iterations: iter, Method: Powell}, minimizeErrorf(opPowell, err)
			}
			if fptt-fret > del {
				del = fptt - fret
				ibig = i
			}
		}
		if 2*(fp-fret) <= tol*(math.Abs(fp)+math.Abs(fret))+powellTiny {
			return Result{X: x, F: fret, Iterations: iter, Method: Powell}, nil
		}
		if iter == MaxNDIterations {
			return Result{X: x, F: fret, Iterations: iter, Method: Powell},
				minimizeErrorf(opPowell, fmt.Errorf("after %d iterations: %w", MaxNDIterations, ErrNoConvergence))
		}
		// extrapolated point, average direction moved, save old start
		for j = 0; j < n; j++ {
			ptt[j] = 2*x[j] - pt[j]
			xit[j] = x[j] - pt[j]
			pt[j] = x[j]
		}
		fptt = f.Value(ptt)
		if fptt < fp {
			t = 2*(fp-2*fret+fptt)*(fp-fret-del)*(fp-fret-del) - del*(fp-fptt)*(fp-fptt)
			if t < 0 {
				fret, err = LineMinimize(f, x, xit, linTol, false)
				if err != nil {
					return Result{X: x, F: fp, Iterations: iter, Method: Powell}, minimizeErrorf(opPowell, err)
				}
				xi[ibig], xi[n-1] = xi[n-1], xi[ibig]
				copy(xi[n-1], xit)
			}
		}
	}
}
