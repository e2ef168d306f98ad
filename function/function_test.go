// SPDX-License-Identifier: MIT
package function_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/function"
	"github.com/katalvlaran/lvnum/matrix"
)

func TestScalar_DerivativeAvailability(t *testing.T) {
	f := function.Scalar(math.Sin)
	assert.Equal(t, math.Sin(1), f.Value(1))
	_, ok := f.Derivative(1)
	assert.False(t, ok)

	g := function.ScalarWithDerivative(math.Sin, math.Cos)
	d, ok := g.Derivative(0)
	require.True(t, ok)
	assert.Equal(t, 1.0, d)
}

func TestScalar_ZeroDerivativeIsReal(t *testing.T) {
	f := function.ScalarWithDerivative(
		func(x float64) float64 { return x * x },
		func(x float64) float64 { return 2 * x },
	)
	d, ok := f.Derivative(0)
	assert.True(t, ok)
	assert.Zero(t, d)
}

func TestVector_Jacobian(t *testing.T) {
	eval := func(x, y []float64) {
		y[0] = x[0] * x[1]
		y[1] = x[0] + x[1]
	}
	jac, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	plain := function.Vector(2, eval)
	assert.Equal(t, 2, plain.Dim())
	assert.False(t, plain.Jacobian([]float64{1, 2}, jac))

	full := function.VectorWithJacobian(2, eval, func(x []float64, j *matrix.Dense) {
		_ = j.Set(0, 0, x[1])
		_ = j.Set(0, 1, x[0])
		_ = j.Set(1, 0, 1)
		_ = j.Set(1, 1, 1)
	})
	require.True(t, full.Jacobian([]float64{3, 5}, jac))
	v, err := jac.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)

	y := make([]float64, 2)
	full.Evaluate([]float64{3, 5}, y)
	assert.Equal(t, []float64{15, 8}, y)
}

func TestObjective_Gradient(t *testing.T) {
	sq := func(x []float64) float64 { return x[0]*x[0] + x[1]*x[1] }
	g := make([]float64, 2)

	assert.False(t, function.Objective(sq).Gradient([]float64{1, 1}, g))

	o := function.ObjectiveWithGradient(sq, func(x, g []float64) {
		g[0], g[1] = 2*x[0], 2*x[1]
	})
	assert.Equal(t, 2.0, o.Value([]float64{1, 1}))
	require.True(t, o.Gradient([]float64{1, -2}, g))
	assert.Equal(t, []float64{2, -4}, g)
}

func TestDerivsAndStopAdapters(t *testing.T) {
	d := function.DerivsFunc(func(ydot []float64, x float64, y []float64) {
		ydot[0] = -y[0]
	})
	out := d.Derivatives(make([]float64, 1), 0, []float64{3})
	assert.Equal(t, []float64{-3}, out)

	s := function.StopFunc(func(x float64, y []float64, step int) bool { return step >= 3 })
	assert.False(t, s.ShouldStop(0, nil, 2))
	assert.True(t, s.ShouldStop(0, nil, 3))
}

func TestPowerBasis(t *testing.T) {
	b := function.NewPowerBasis(3)
	require.Equal(t, 4, b.MinimumCoefficients())
	out := make([]float64, 4)
	b.EvaluateBasis(2, out)
	assert.Equal(t, []float64{1, 2, 4, 8}, out)

	// a shorter buffer truncates the series
	short := make([]float64, 2)
	b.EvaluateBasis(2, short)
	assert.Equal(t, []float64{1, 2}, short)
}

func TestBasisFunc(t *testing.T) {
	b := function.BasisFunc{N: 2, Fn: func(x float64, out []float64) {
		out[0], out[1] = math.Sin(x), math.Cos(x)
	}}
	out := make([]float64, 2)
	b.EvaluateBasis(0, out)
	assert.Equal(t, 2, b.MinimumCoefficients())
	assert.Equal(t, []float64{0, 1}, out)
}

func TestClampTolerance(t *testing.T) {
	floor := 4 * function.Epsilon
	for _, tc := range []struct {
		name     string
		tol, out float64
	}{
		{"above floor", 1e-6, 1e-6},
		{"negative is absolute", -1e-6, 1e-6},
		{"zero", 0, floor},
		{"below floor", 1e-300, floor},
		{"nan", math.NaN(), floor},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, function.ClampTolerance(tc.tol, floor))
		})
	}
	assert.Equal(t, math.Sqrt(function.Epsilon), function.SqrtEpsilon)
}
