// SPDX-License-Identifier: MIT

package ode

import (
	"math"

	"github.com/katalvlaran/lvnum/function"
)

// Step-size control.
const (
	safety = 0.9
	pGrow  = -0.2
	pShrnk = -0.25
	// errCon = (5/safety)^(1/pGrow): below it the step grows by the cap of 5.
	errCon = 1.89e-4
	tiny   = 1e-30
)

// Cash–Karp tableau.
const (
	a2, a3, a4, a5, a6      = 0.2, 0.3, 0.6, 1.0, 0.875
	b21                     = 0.2
	b31, b32                = 3.0 / 40.0, 9.0 / 40.0
	b41, b42, b43           = 0.3, -0.9, 1.2
	b51, b52, b53, b54      = -11.0 / 54.0, 2.5, -70.0 / 27.0, 35.0 / 27.0
	b61, b62, b63, b64, b65 = 1631.0 / 55296.0, 175.0 / 512.0, 575.0 / 13824.0, 44275.0 / 110592.0, 253.0 / 4096.0

	c1, c3, c4, c6 = 37.0 / 378.0, 250.0 / 621.0, 125.0 / 594.0, 512.0 / 1771.0

	// fifth minus embedded fourth order weights
	dc1 = c1 - 2825.0/27648.0
	dc3 = c3 - 18575.0/48384.0
	dc4 = c4 - 13525.0/55296.0
	dc5 = -277.0 / 14336.0
	dc6 = c6 - 0.25
)

// RungeKutta45 is an adaptive Cash–Karp Runge–Kutta integrator. LastStep,
// NextStep and MaxError expose the controller state after each step.
// Not safe for concurrent use.
type RungeKutta45 struct {
	derivs function.Derivs
	n      int
	opts   Options

	dydx, yscal, ytemp, yerr []float64
	yt, ak2, ak3, ak4, ak5   []float64
	ak6                      []float64

	lastStep, nextStep, maxError float64
	rejected, evaluations        int
}

// NewRungeKutta45 returns an adaptive integrator for an n-dimensional system.
func NewRungeKutta45(derivs function.Derivs, n int, opts ...Option) (*RungeKutta45, error) {
	if derivs == nil {
		return nil, odeErrorf(opNew, ErrNilDerivs)
	}
	if n <= 0 {
		return nil, odeErrorf(opNew, ErrDimensionMismatch)
	}
	buf := make([]float64, 11*n)
	next := func() []float64 {
		s := buf[:n:n]
		buf = buf[n:]

		return s
	}

	return &RungeKutta45{
		derivs: derivs,
		n:      n,
		opts:   gatherOptions(opts...),
		dydx:   next(),
		yscal:  next(),
		ytemp:  next(),
		yerr:   next(),
		yt:     next(),
		ak2:    next(),
		ak3:    next(),
		ak4:    next(),
		ak5:    next(),
		ak6:    next(),
	}, nil
}

// Dim returns the system dimension.
func (rk *RungeKutta45) Dim() int { return rk.n }

// LastStep returns the step size actually taken by the last Step.
func (rk *RungeKutta45) LastStep() float64 { return rk.lastStep }

// NextStep returns the step size suggested for the next Step.
func (rk *RungeKutta45) NextStep() float64 { return rk.nextStep }

// MaxError returns the scaled error of the last accepted step, in units of
// the tolerance (≤ 1).
func (rk *RungeKutta45) MaxError() float64 { return rk.maxError }

// Step attempts a step of htry from x, shrinking it until the embedded error
// estimate meets the tolerance, and advances y in place. It returns the new x.
//
// dydx must hold f(x, y); nil means Step evaluates it. yscal scales the error
// per component; nil means |y| + |h·y'| + 1e-30.
//
// Errors: ErrDimensionMismatch, ErrInvalidStep, ErrStepUnderflow when the
// step shrinks to x+h == x (y is left untouched).
func (rk *RungeKutta45) Step(x float64, y, dydx []float64, htry float64, yscal []float64) (float64, error) {
	if len(y) != rk.n || (dydx != nil && len(dydx) != rk.n) || (yscal != nil && len(yscal) != rk.n) {
		return x, odeErrorf(opStep, ErrDimensionMismatch)
	}
	if math.IsNaN(htry) || math.IsInf(htry, 0) || htry == 0 {
		return x, odeErrorf(opStep, ErrInvalidStep)
	}
	if dydx == nil {
		dydx = rk.dydx
		rk.derivs.Derivatives(dydx, x, y)
		rk.evaluations++
	}
	if yscal == nil {
		yscal = rk.yscal
		for i := range y {
			yscal[i] = math.Abs(y[i]) + math.Abs(dydx[i]*htry) + tiny
		}
	}

	xn, err := rk.adapt(x, y, dydx, htry, yscal)
	if err != nil {
		return x, odeErrorf(opStep, err)
	}

	return xn, nil
}

// adapt is the quality-controlled step loop behind Step and Integrate.
func (rk *RungeKutta45) adapt(x float64, y, dydx []float64, htry float64, yscal []float64) (float64, error) {
	tol := rk.opts.tol
	h := htry
	for {
		rk.cashKarp(x, y, dydx, h)
		var errmax float64
		for i := range y {
			errmax = math.Max(errmax, math.Abs(rk.yerr[i]/yscal[i]))
		}
		errmax /= tol

		if errmax > 1 {
			rk.rejected++
			htemp := safety * h * math.Pow(errmax, pShrnk)
			if h >= 0 {
				h = math.Max(htemp, 0.1*h)
			} else {
				h = math.Min(htemp, 0.1*h)
			}
			if x+h == x {
				return x, ErrStepUnderflow
			}

			continue
		}

		if errmax > errCon {
			rk.nextStep = safety * h * math.Pow(errmax, pGrow)
		} else {
			rk.nextStep = 5 * h
		}
		rk.lastStep = h
		rk.maxError = errmax
		copy(y, rk.ytemp)

		return x + h, nil
	}
}

// cashKarp evaluates the six stages, leaving the fifth-order solution in
// ytemp and the error estimate in yerr.
func (rk *RungeKutta45) cashKarp(x float64, y, dydx []float64, h float64) {
	yt, ak2, ak3, ak4, ak5, ak6 := rk.yt, rk.ak2, rk.ak3, rk.ak4, rk.ak5, rk.ak6
	d := rk.derivs

	for i := range y {
		yt[i] = y[i] + b21*h*dydx[i]
	}
	d.Derivatives(ak2, x+a2*h, yt)
	for i := range y {
		yt[i] = y[i] + h*(b31*dydx[i]+b32*ak2[i])
	}
	d.Derivatives(ak3, x+a3*h, yt)
	for i := range y {
		yt[i] = y[i] + h*(b41*dydx[i]+b42*ak2[i]+b43*ak3[i])
	}
	d.Derivatives(ak4, x+a4*h, yt)
	for i := range y {
		yt[i] = y[i] + h*(b51*dydx[i]+b52*ak2[i]+b53*ak3[i]+b54*ak4[i])
	}
	d.Derivatives(ak5, x+a5*h, yt)
	for i := range y {
		yt[i] = y[i] + h*(b61*dydx[i]+b62*ak2[i]+b63*ak3[i]+b64*ak4[i]+b65*ak5[i])
	}
	d.Derivatives(ak6, x+a6*h, yt)
	for i := range y {
		rk.ytemp[i] = y[i] + h*(c1*dydx[i]+c3*ak3[i]+c4*ak4[i]+c6*ak6[i])
		rk.yerr[i] = h * (dc1*dydx[i] + dc3*ak3[i] + dc4*ak4[i] + dc5*ak5[i] + dc6*ak6[i])
	}
	rk.evaluations += 5
}

// Integrate advances y in place from x0 toward xEnd with adaptive steps,
// starting from |h0|. The final step is clipped so x never passes xEnd.
//
// When stop is non-nil it is consulted after every accepted step and ends the
// integration early; xEnd may then be ±Inf.
//
// Errors: ErrInvalidStep, ErrDimensionMismatch, ErrStepUnderflow, ErrMinStep,
// ErrMaxSteps. On error y holds the last accepted state.
func (rk *RungeKutta45) Integrate(x0 float64, y []float64, xEnd, h0 float64, stop function.StopPredicate) (Result, error) {
	h, err := checkIntegrate(rk.n, x0, y, xEnd, h0)
	if err != nil {
		return Result{X: x0}, err
	}

	res := Result{X: x0, Reason: ReachedEnd}
	if x0 == xEnd {
		return res, nil
	}
	rk.rejected, rk.evaluations = 0, 0
	rk.nextStep = h
	smp := newSampler(rk.opts, x0)

	x := x0
	for (x-xEnd)*(xEnd-x0) < 0 {
		if res.Steps >= rk.opts.maxSteps {
			res.Reason = MaxSteps
			err = odeErrorf(opIntegrate, ErrMaxSteps)

			break
		}
		if math.Abs(rk.nextStep) <= rk.opts.minStep {
			err = odeErrorf(opIntegrate, ErrMinStep)

			break
		}
		h = rk.nextStep

		rk.derivs.Derivatives(rk.dydx, x, y)
		rk.evaluations++
		for i := range y {
			rk.yscal[i] = math.Abs(y[i]) + math.Abs(rk.dydx[i]*h) + tiny
		}
		smp.offer(x, y)

		clipped := (x+h-xEnd)*(x+h-x0) > 0
		if clipped {
			h = xEnd - x
		}
		xn, serr := rk.adapt(x, y, rk.dydx, h, rk.yscal)
		if serr != nil {
			err = odeErrorf(opIntegrate, serr)

			break
		}
		if clipped && rk.lastStep == h {
			xn = xEnd
		}
		x = xn
		res.Steps++

		if !allFinite(y) {
			res.Reason = NonFinite

			break
		}
		if stop != nil && stop.ShouldStop(x, y, res.Steps) {
			res.Reason = Predicate

			break
		}
	}
	res.X = x
	res.Rejected = rk.rejected
	res.Evaluations = rk.evaluations
	smp.record(x, y)
	res.Samples = smp.samples

	return res, err
}
