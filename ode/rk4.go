// SPDX-License-Identifier: MIT

package ode

import (
	"math"

	"github.com/katalvlaran/lvnum/function"
)

// RungeKutta4 is the classic fixed-step fourth-order Runge–Kutta integrator.
// Not safe for concurrent use.
type RungeKutta4 struct {
	derivs function.Derivs
	n      int
	opts   Options

	dydx, dym, dyt, yt []float64
}

// NewRungeKutta4 returns an integrator for an n-dimensional system.
func NewRungeKutta4(derivs function.Derivs, n int, opts ...Option) (*RungeKutta4, error) {
	if derivs == nil {
		return nil, odeErrorf(opNew, ErrNilDerivs)
	}
	if n <= 0 {
		return nil, odeErrorf(opNew, ErrDimensionMismatch)
	}

	return &RungeKutta4{
		derivs: derivs,
		n:      n,
		opts:   gatherOptions(opts...),
		dydx:   make([]float64, n),
		dym:    make([]float64, n),
		dyt:    make([]float64, n),
		yt:     make([]float64, n),
	}, nil
}

// Dim returns the system dimension.
func (rk *RungeKutta4) Dim() int { return rk.n }

// Step advances y in place from x by h and returns x+h.
func (rk *RungeKutta4) Step(x float64, y []float64, h float64) (float64, error) {
	if len(y) != rk.n {
		return x, odeErrorf(opStep, ErrDimensionMismatch)
	}
	if math.IsNaN(h) || math.IsInf(h, 0) || h == 0 {
		return x, odeErrorf(opStep, ErrInvalidStep)
	}
	rk.derivs.Derivatives(rk.dydx, x, y)
	rk.step(x, y, h)

	return x + h, nil
}

// step applies one RK4 update given rk.dydx = f(x, y).
func (rk *RungeKutta4) step(x float64, y []float64, h float64) {
	hh := h * 0.5
	h6 := h / 6
	xh := x + hh
	dydx, dym, dyt, yt := rk.dydx, rk.dym, rk.dyt, rk.yt

	for i := range y {
		yt[i] = y[i] + hh*dydx[i]
	}
	rk.derivs.Derivatives(dyt, xh, yt)
	for i := range y {
		yt[i] = y[i] + hh*dyt[i]
	}
	rk.derivs.Derivatives(dym, xh, yt)
	for i := range y {
		yt[i] = y[i] + h*dym[i]
		dym[i] += dyt[i]
	}
	rk.derivs.Derivatives(dyt, x+h, yt)
	for i := range y {
		y[i] += h6 * (dydx[i] + dyt[i] + 2*dym[i])
	}
}

// Integrate advances y in place from x0 toward xEnd in steps of |h|, the
// last one shortened to land on xEnd exactly.
//
// When stop is non-nil it is consulted after every step and ends the
// integration early; xEnd may then be ±Inf. At least one step is taken
// unless x0 == xEnd.
func (rk *RungeKutta4) Integrate(x0 float64, y []float64, xEnd, h float64, stop function.StopPredicate) (Result, error) {
	h, err := checkIntegrate(rk.n, x0, y, xEnd, h)
	if err != nil {
		return Result{X: x0}, err
	}

	res := Result{X: x0, Reason: ReachedEnd}
	if x0 == xEnd {
		return res, nil
	}
	smp := newSampler(rk.opts, x0)
	finiteEnd := !math.IsInf(xEnd, 0)
	// snap to xEnd within this distance to absorb rounding in x0 + k·h
	snap := 1e-9 * math.Abs(h)

	x := x0
	for {
		if res.Steps >= rk.opts.maxSteps {
			res.Reason = MaxSteps
			err = odeErrorf(opIntegrate, ErrMaxSteps)

			break
		}
		smp.offer(x, y)

		next := x0 + float64(res.Steps+1)*h
		last := finiteEnd && ((next-xEnd)*(next-x0) >= 0 || math.Abs(next-xEnd) <= snap)
		if last {
			next = xEnd
		}

		rk.derivs.Derivatives(rk.dydx, x, y)
		rk.step(x, y, next-x)
		res.Evaluations += 4
		res.Steps++
		x = next

		if !allFinite(y) {
			res.Reason = NonFinite

			break
		}
		if stop != nil && stop.ShouldStop(x, y, res.Steps) {
			res.Reason = Predicate

			break
		}
		if last {
			break
		}
	}
	res.X = x
	smp.record(x, y)
	res.Samples = smp.samples

	return res, err
}
