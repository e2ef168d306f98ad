// SPDX-License-Identifier: MIT
package curvefit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvnum/curvefit"
	"github.com/katalvlaran/lvnum/function"
	"github.com/katalvlaran/lvnum/matrix"
)

func linspace(a, b float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = a + (b-a)*float64(i)/float64(n-1)
	}

	return out
}

func TestFit_ExactQuadratic(t *testing.T) {
	x := linspace(-2, 3, 11)
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = 1 + 2*xi + 3*xi*xi
	}
	res, err := curvefit.Fit(x, y, nil, nil)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2, 3}, res.Coefficients, 1e-10)
	assert.Less(t, res.ChiSquare, 1e-18)
	assert.Equal(t, 3, res.Rank)
	assert.InDelta(t, 1+2*0.5+3*0.25, res.Eval(0.5), 1e-10)
}

func TestFit_WeightedLineMatchesGonum(t *testing.T) {
	x := linspace(0, 9, 10)
	y := make([]float64, len(x))
	sigma := make([]float64, len(x))
	weights := make([]float64, len(x))
	for i, xi := range x {
		// deterministic "noise"
		y[i] = 2 + 0.5*xi + 0.3*math.Sin(7*xi)
		sigma[i] = 0.5 + 0.1*float64(i%3)
		weights[i] = 1 / (sigma[i] * sigma[i])
	}
	res, err := curvefit.Fit(x, y, sigma, nil, curvefit.WithDegree(1))
	require.NoError(t, err)

	alpha, beta := stat.LinearRegression(x, y, weights, false)
	assert.InDelta(t, alpha, res.Coefficients[0], 1e-10)
	assert.InDelta(t, beta, res.Coefficients[1], 1e-10)

	var chi2 float64
	for i := range x {
		r := (y[i] - alpha - beta*x[i]) / sigma[i]
		chi2 += r * r
	}
	assert.InDelta(t, chi2, res.ChiSquare, 1e-9)
}

func TestFit_CovarianceIsInverseNormalMatrix(t *testing.T) {
	x := []float64{-1, 0, 1, 2, 4}
	y := []float64{0.5, 1.1, 2.2, 2.8, 5.1}
	res, err := curvefit.Fit(x, y, nil, nil, curvefit.WithDegree(1))
	require.NoError(t, err)

	// AᵗA for the basis (1, x)
	var sx, sxx float64
	for _, xi := range x {
		sx += xi
		sxx += xi * xi
	}
	ata, err := matrix.NewDenseFrom([][]float64{{float64(len(x)), sx}, {sx, sxx}})
	require.NoError(t, err)
	inv, err := matrix.Inverse(ata)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want, _ := inv.At(i, j)
			got, _ := res.Covariance.At(i, j)
			assert.InDelta(t, want, got, 1e-12, "cov[%d][%d]", i, j)
		}
	}
	want00, _ := inv.At(0, 0)
	assert.InDelta(t, math.Sqrt(want00), res.StdErr(0), 1e-12)
	assert.True(t, math.IsNaN(res.StdErr(5)))
}

func TestFit_RankDeficientBasisGivesMinimumNorm(t *testing.T) {
	// columns x and 2x are collinear
	basis := function.BasisFunc{N: 3, Fn: func(x float64, out []float64) {
		out[0], out[1], out[2] = 1, x, 2*x
	}}
	x := linspace(0, 1, 6)
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = 1 + 5*xi
	}
	res, err := curvefit.Fit(x, y, nil, basis)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Rank)
	// a1 + 2·a2 = 5 with minimal a1² + a2²
	assert.InDeltaSlice(t, []float64{1, 1, 2}, res.Coefficients, 1e-9)
	assert.Less(t, res.ChiSquare, 1e-18)
	assert.Zero(t, res.SingularValues[indexOfMin(res.SingularValues)])

	// the discarded direction (0, 2, −1) carries no variance
	null, err := matrix.MatVec(res.Covariance, []float64{0, 2, -1})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0, 0}, null, 1e-9)
	for j := 0; j < 3; j++ {
		assert.False(t, math.IsNaN(res.StdErr(j)))
	}
}

func TestFit_CustomBasis(t *testing.T) {
	basis := function.BasisFunc{N: 2, Fn: func(x float64, out []float64) {
		out[0], out[1] = math.Sin(x), math.Cos(x)
	}}
	x := linspace(0, 2*math.Pi, 25)
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = 3*math.Sin(xi) - 0.5*math.Cos(xi)
	}
	res, err := curvefit.Fit(x, y, nil, basis)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3, -0.5}, res.Coefficients, 1e-12)
	assert.InDelta(t, 3*math.Sin(1)-0.5*math.Cos(1), res.Eval(1), 1e-12)
}

func TestFit_Errors(t *testing.T) {
	_, err := curvefit.Fit([]float64{1, 2, 3}, []float64{1, 2}, nil, nil)
	require.ErrorIs(t, err, curvefit.ErrDimensionMismatch)
	_, err = curvefit.Fit([]float64{1, 2, 3}, []float64{1, 2, 3}, []float64{1}, nil)
	require.ErrorIs(t, err, curvefit.ErrDimensionMismatch)
	_, err = curvefit.Fit([]float64{1, 2}, []float64{1, 2}, nil, nil)
	require.ErrorIs(t, err, curvefit.ErrTooFewPoints)
	_, err = curvefit.Fit([]float64{1, 2, 3}, []float64{1, 2, 3}, []float64{1, 0, 1}, nil)
	require.ErrorIs(t, err, curvefit.ErrInvalidSigma)
	_, err = curvefit.Fit([]float64{1, math.NaN(), 3}, []float64{1, 2, 3}, nil, nil)
	require.ErrorIs(t, err, curvefit.ErrInvalidData)

	assert.Panics(t, func() { curvefit.WithDegree(-1) })
	assert.Panics(t, func() { curvefit.WithTolerance(math.Inf(1)) })
	assert.True(t, math.IsNaN(curvefit.Result{}.Eval(1)))
}

func indexOfMin(s []float64) int {
	best := 0
	for i, v := range s {
		if v < s[best] {
			best = i
		}
	}

	return best
}
