// SPDX-License-Identifier: MIT
package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/stats"
)

var sample = []float64{4, 1, 3, 2, 5}

func TestMoments(t *testing.T) {
	m, err := stats.Mean(sample)
	require.NoError(t, err)
	assert.Equal(t, 3.0, m)

	v, err := stats.Variance(sample)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, v, 1e-15)

	sd, err := stats.StdDev(sample)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(2.5), sd, 1e-15)

	rms, err := stats.RMS([]float64{3, -4})
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(12.5), rms, 1e-15)

	assert.Equal(t, 15.0, stats.Sum(sample))

	sk, err := stats.Skew(sample)
	require.NoError(t, err)
	assert.InDelta(t, 0, sk, 1e-15)
}

func TestPercentile(t *testing.T) {
	for _, tc := range []struct {
		p, want float64
	}{
		{0, 1},
		{0.25, 2},
		{0.5, 3},
		{0.6, 3.4},
		{0.9, 4.6},
		{1, 5},
	} {
		got, err := stats.Percentile(sample, tc.p)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 1e-12, "p=%v", tc.p)
	}
	// input untouched
	assert.Equal(t, []float64{4, 1, 3, 2, 5}, sample)

	med, err := stats.Median([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2.5, med)

	q1, q3, err := stats.Quartiles(sample)
	require.NoError(t, err)
	assert.Equal(t, 2.0, q1)
	assert.Equal(t, 4.0, q3)
}

func TestEmpiricalQuantile(t *testing.T) {
	got, err := stats.EmpiricalQuantile(sample, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
	got, err = stats.EmpiricalQuantile(sample, 1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)
}

func TestMinMaxRange(t *testing.T) {
	lo, hi, err := stats.MinMax(sample)
	require.NoError(t, err)
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 5.0, hi)
	r, err := stats.Range(sample)
	require.NoError(t, err)
	assert.Equal(t, 4.0, r)
}

func TestErrors(t *testing.T) {
	_, err := stats.Mean(nil)
	require.ErrorIs(t, err, stats.ErrEmpty)
	_, err = stats.Variance([]float64{1})
	require.ErrorIs(t, err, stats.ErrTooFewValues)
	_, err = stats.Percentile(sample, 1.5)
	require.ErrorIs(t, err, stats.ErrPercentileRange)
	_, err = stats.Percentile(sample, math.NaN())
	require.ErrorIs(t, err, stats.ErrPercentileRange)
	_, _, err = stats.MinMax(nil)
	require.ErrorIs(t, err, stats.ErrEmpty)
	_, err = stats.Skew([]float64{2, 2, 2})
	require.ErrorIs(t, err, stats.ErrZeroVariance)
	_, err = stats.ExKurtosis([]float64{1})
	require.ErrorIs(t, err, stats.ErrTooFewValues)
	_, err = stats.Skew([]float64{1})
	require.ErrorIs(t, err, stats.ErrTooFewValues)
}

func TestShapeMoments(t *testing.T) {
	for _, tc := range []struct {
		name       string
		data       []float64
		skew, kurt float64
	}{
		// deviations −3, −2, −1, 6; s² = 50/3
		{"right tail", []float64{1, 2, 3, 10}, 0.6613622305514579, -1.7454},
		{"mirrored", []float64{-1, -2, -3, -10}, -0.6613622305514579, -1.7454},
		{"two values", []float64{1, 2}, 0, -2.75},
	} {
		t.Run(tc.name, func(t *testing.T) {
			sk, err := stats.Skew(tc.data)
			require.NoError(t, err)
			assert.InDelta(t, tc.skew, sk, 1e-12)
			assert.False(t, math.IsNaN(sk))

			ku, err := stats.ExKurtosis(tc.data)
			require.NoError(t, err)
			assert.InDelta(t, tc.kurt, ku, 1e-12)
		})
	}
}

func TestLinearSlope(t *testing.T) {
	b, err := stats.LinearSlope([]float64{0, 1, 2, 3, 4}, []float64{1, 3, 5, 7, 9})
	require.NoError(t, err)
	assert.InDelta(t, 2, b, 1e-14)

	// more than four points, noisy: Σ(x−x̄)(y−ȳ) / Σ(x−x̄)² = 155/185
	b, err = stats.LinearSlope([]float64{1, 2, 3, 4, 5, 8}, []float64{2, 1, 4, 3, 6, 7})
	require.NoError(t, err)
	assert.InDelta(t, 0.8378378378378378, b, 1e-12)

	_, err = stats.LinearSlope([]float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, stats.ErrLengthMismatch)
	_, err = stats.LinearSlope([]float64{1}, []float64{1})
	require.ErrorIs(t, err, stats.ErrTooFewValues)
	_, err = stats.LinearSlope([]float64{3, 3, 3}, []float64{1, 2, 3})
	require.ErrorIs(t, err, stats.ErrZeroVariance)
}
