// SPDX-License-Identifier: MIT
package ode_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvnum/function"
	"github.com/katalvlaran/lvnum/ode"
)

// decay is y' = -y.
var decay = function.DerivsFunc(func(ydot []float64, _ float64, y []float64) {
	ydot[0] = -y[0]
})

// oscillator is y₀' = y₁, y₁' = -y₀.
var oscillator = function.DerivsFunc(func(ydot []float64, _ float64, y []float64) {
	ydot[0] = y[1]
	ydot[1] = -y[0]
})

func rk4Error(t *testing.T, h float64) float64 {
	t.Helper()
	rk, err := ode.NewRungeKutta4(decay, 1)
	require.NoError(t, err)
	y := []float64{1}
	res, err := rk.Integrate(0, y, 2, h, nil)
	require.NoError(t, err)
	require.Equal(t, ode.ReachedEnd, res.Reason)
	require.Equal(t, 2.0, res.X)

	return math.Abs(y[0] - math.Exp(-2))
}

func TestRungeKutta4_FourthOrderConvergence(t *testing.T) {
	e1 := rk4Error(t, 0.1)
	e2 := rk4Error(t, 0.05)
	assert.Less(t, e1, 1e-5)
	ratio := e1 / e2
	assert.InDelta(t, 16, ratio, 2, "error ratio %v", ratio)
}

func TestRungeKutta4_Step(t *testing.T) {
	rk, err := ode.NewRungeKutta4(decay, 1)
	require.NoError(t, err)
	y := []float64{1}
	x, err := rk.Step(0, y, 0.1)
	require.NoError(t, err)
	assert.Equal(t, 0.1, x)
	// RK4 reproduces the Taylor series of e^-h through h⁴
	h := 0.1
	assert.InDelta(t, 1-h+h*h/2-h*h*h/6+h*h*h*h/24, y[0], 1e-15)

	_, err = rk.Step(0, []float64{1, 2}, 0.1)
	require.ErrorIs(t, err, ode.ErrDimensionMismatch)
	_, err = rk.Step(0, y, 0)
	require.ErrorIs(t, err, ode.ErrInvalidStep)
}

func TestRungeKutta4_Backward(t *testing.T) {
	rk, err := ode.NewRungeKutta4(decay, 1)
	require.NoError(t, err)
	y := []float64{math.Exp(-1)}
	res, err := rk.Integrate(1, y, 0, 0.01, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.X)
	assert.Equal(t, 100, res.Steps)
	assert.InDelta(t, 1, y[0], 1e-9)
}

func TestRungeKutta4_Predicate(t *testing.T) {
	rk, err := ode.NewRungeKutta4(decay, 1)
	require.NoError(t, err)
	y := []float64{1}
	stop := function.StopFunc(func(_ float64, y []float64, _ int) bool { return y[0] < 0.5 })
	res, err := rk.Integrate(0, y, math.Inf(1), 0.01, stop)
	require.NoError(t, err)
	assert.Equal(t, ode.Predicate, res.Reason)
	assert.Less(t, y[0], 0.5)
	assert.InDelta(t, math.Ln2, res.X, 0.01)
}

func TestRungeKutta4_AtLeastOneStep(t *testing.T) {
	rk, err := ode.NewRungeKutta4(decay, 1)
	require.NoError(t, err)
	calls := 0
	stop := function.StopFunc(func(float64, []float64, int) bool { calls++; return true })
	res, err := rk.Integrate(0, []float64{1}, 10, 0.5, stop)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Steps)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0.5, res.X)
}

func TestRungeKutta4_NonFiniteStopsSilently(t *testing.T) {
	poisoned := function.DerivsFunc(func(ydot []float64, x float64, _ []float64) {
		if x > 0.5 {
			ydot[0] = math.NaN()
			return
		}
		ydot[0] = 1
	})
	rk, err := ode.NewRungeKutta4(poisoned, 1)
	require.NoError(t, err)
	res, err := rk.Integrate(0, []float64{0}, 2, 0.1, nil)
	require.NoError(t, err)
	assert.Equal(t, ode.NonFinite, res.Reason)
	assert.Less(t, res.X, 2.0)
}

func TestRungeKutta4_Samples(t *testing.T) {
	rk, err := ode.NewRungeKutta4(decay, 1, ode.WithSaveInterval(0.45))
	require.NoError(t, err)
	res, err := rk.Integrate(0, []float64{1}, 2, 0.1, nil)
	require.NoError(t, err)
	require.Len(t, res.Samples, 5)
	for i, want := range []float64{0, 0.5, 1, 1.5, 2} {
		assert.InDelta(t, want, res.Samples[i].X, 1e-12)
		assert.InDelta(t, math.Exp(-want), res.Samples[i].Y[0], 1e-6)
	}
}

func TestRungeKutta4_MaxSteps(t *testing.T) {
	rk, err := ode.NewRungeKutta4(decay, 1, ode.WithMaxSteps(10))
	require.NoError(t, err)
	res, err := rk.Integrate(0, []float64{1}, 2, 0.1, nil)
	require.ErrorIs(t, err, ode.ErrMaxSteps)
	assert.Equal(t, ode.MaxSteps, res.Reason)
	assert.Equal(t, 10, res.Steps)
}

type RK45Suite struct {
	suite.Suite
}

func (s *RK45Suite) TestDecayAccuracy() {
	for _, eps := range []float64{1e-6, 1e-9} {
		rk, err := ode.NewRungeKutta45(decay, 1, ode.WithTolerance(eps))
		s.Require().NoError(err)
		y := []float64{1}
		res, err := rk.Integrate(0, y, 2, 0.1, nil)
		s.Require().NoError(err)
		s.Equal(ode.ReachedEnd, res.Reason)
		s.Equal(2.0, res.X)
		// global error stays within a small multiple of the local target
		s.InDelta(math.Exp(-2), y[0], 100*eps, "eps=%g", eps)
		s.LessOrEqual(rk.MaxError(), 1.0)
		s.Greater(res.Evaluations, 6*res.Steps-1)
	}
}

func (s *RK45Suite) TestOscillatorPeriod() {
	rk, err := ode.NewRungeKutta45(oscillator, 2, ode.WithTolerance(1e-10))
	s.Require().NoError(err)
	y := []float64{1, 0}
	_, err = rk.Integrate(0, y, 2*math.Pi, 0.01, nil)
	s.Require().NoError(err)
	s.InDelta(1, y[0], 1e-7)
	s.InDelta(0, y[1], 1e-7)
}

func (s *RK45Suite) TestStepGrowsAndShrinks() {
	rk, err := ode.NewRungeKutta45(decay, 1, ode.WithTolerance(1e-6))
	s.Require().NoError(err)

	// a tiny trial step is accepted and the next one grows by the cap of 5
	y := []float64{1}
	x, err := rk.Step(0, y, nil, 1e-6, nil)
	s.Require().NoError(err)
	s.Equal(1e-6, x)
	s.Equal(1e-6, rk.LastStep())
	s.InDelta(5e-6, rk.NextStep(), 1e-20)

	// a huge trial step is shrunk before acceptance
	y = []float64{1}
	x, err = rk.Step(0, y, nil, 10, nil)
	s.Require().NoError(err)
	s.Less(rk.LastStep(), 10.0)
	s.Equal(rk.LastStep(), x)
	s.LessOrEqual(rk.MaxError(), 1.0)
	s.InDelta(math.Exp(-x), y[0], 1e-4)
}

func (s *RK45Suite) TestPredicateDoesNotOvershoot() {
	rk, err := ode.NewRungeKutta45(decay, 1, ode.WithTolerance(1e-8))
	s.Require().NoError(err)
	y := []float64{1}
	stop := function.StopFunc(func(x float64, _ []float64, _ int) bool { return x >= 1 })
	res, err := rk.Integrate(0, y, 1, 0.3, stop)
	s.Require().NoError(err)
	s.Equal(1.0, res.X)
	s.InDelta(math.Exp(-1), y[0], 1e-7)
}

func (s *RK45Suite) TestStepUnderflow() {
	// every stage but the first sees a huge slope: no step is ever accurate
	rough := function.DerivsFunc(func(ydot []float64, x float64, _ []float64) {
		if x == 1 {
			ydot[0] = 0
			return
		}
		ydot[0] = 1e300
	})
	rk, err := ode.NewRungeKutta45(rough, 1)
	s.Require().NoError(err)
	y := []float64{1}
	x, err := rk.Step(1, y, nil, 1, nil)
	s.Require().ErrorIs(err, ode.ErrStepUnderflow)
	s.Equal(1.0, x)
	s.Equal(1.0, y[0])
}

func (s *RK45Suite) TestMinStep() {
	rk, err := ode.NewRungeKutta45(decay, 1, ode.WithMinStep(0.5))
	s.Require().NoError(err)
	_, err = rk.Integrate(0, []float64{1}, 1, 0.1, nil)
	s.Require().ErrorIs(err, ode.ErrMinStep)
}

func (s *RK45Suite) TestInvalidArguments() {
	_, err := ode.NewRungeKutta45(nil, 1)
	s.Require().ErrorIs(err, ode.ErrNilDerivs)
	_, err = ode.NewRungeKutta45(decay, 0)
	s.Require().ErrorIs(err, ode.ErrDimensionMismatch)

	rk, err := ode.NewRungeKutta45(decay, 1)
	s.Require().NoError(err)
	_, err = rk.Integrate(0, []float64{1, 2}, 1, 0.1, nil)
	s.Require().ErrorIs(err, ode.ErrDimensionMismatch)
	_, err = rk.Integrate(0, []float64{1}, math.NaN(), 0.1, nil)
	s.Require().ErrorIs(err, ode.ErrInvalidStep)
	_, err = rk.Integrate(0, []float64{1}, 1, 0, nil)
	s.Require().ErrorIs(err, ode.ErrInvalidStep)
}

func TestRK45Suite(t *testing.T) {
	suite.Run(t, new(RK45Suite))
}

func TestReasonString(t *testing.T) {
	assert.Equal(t, "reached end", ode.ReachedEnd.String())
	assert.Equal(t, "predicate", ode.Predicate.String())
	assert.Equal(t, "non-finite state", ode.NonFinite.String())
	assert.Equal(t, "max steps", ode.MaxSteps.String())
	assert.Equal(t, "unknown", ode.Reason(42).String())
}

func TestOptionsPanics(t *testing.T) {
	assert.Panics(t, func() { ode.WithTolerance(0) })
	assert.Panics(t, func() { ode.WithMinStep(-1) })
	assert.Panics(t, func() { ode.WithMaxSteps(0) })
	assert.Panics(t, func() { ode.WithSaveInterval(math.NaN()) })
}
