// SPDX-License-Identifier: MIT

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sum returns Σ data (0 for an empty sample).
func Sum(data []float64) float64 { return floats.Sum(data) }

// Mean returns the arithmetic mean.
func Mean(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmpty
	}

	return stat.Mean(data, nil), nil
}

// Variance returns the unbiased sample variance (n − 1 denominator).
func Variance(data []float64) (float64, error) {
	if len(data) < 2 {
		return 0, ErrTooFewValues
	}

	return stat.Variance(data, nil), nil
}

// StdDev returns the unbiased sample standard deviation.
func StdDev(data []float64) (float64, error) {
	v, err := Variance(data)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(v), nil
}

// RMS returns √(Σ x²/n).
func RMS(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmpty
	}

	return floats.Norm(data, 2) / math.Sqrt(float64(len(data))), nil
}

// Skew returns the moment coefficient of skewness Σ(x−μ)³ / (n·s³), where
// s² is the unbiased (n − 1) sample variance.
func Skew(data []float64) (float64, error) {
	v, err := spread(data)
	if err != nil {
		return 0, err
	}

	return stat.Moment(3, data, nil) / (v * math.Sqrt(v)), nil
}

// ExKurtosis returns the excess kurtosis Σ(x−μ)⁴ / (n·s⁴) − 3, with s² the
// unbiased (n − 1) sample variance.
func ExKurtosis(data []float64) (float64, error) {
	v, err := spread(data)
	if err != nil {
		return 0, err
	}

	return stat.Moment(4, data, nil)/(v*v) - 3, nil
}

// spread returns the unbiased variance of a sample of at least two values
// that are not all equal.
func spread(data []float64) (float64, error) {
	if len(data) < 2 {
		return 0, ErrTooFewValues
	}
	_, v := stat.MeanVariance(data, nil)
	if v == 0 {
		return 0, ErrZeroVariance
	}

	return v, nil
}

// MinMax returns the smallest and largest value.
func MinMax(data []float64) (lo, hi float64, err error) {
	if len(data) == 0 {
		return 0, 0, ErrEmpty
	}

	return floats.Min(data), floats.Max(data), nil
}

// Range returns max − min.
func Range(data []float64) (float64, error) {
	lo, hi, err := MinMax(data)

	return hi - lo, err
}

// Percentile returns the p-th percentile, p ∈ [0, 1], interpolating linearly
// between order statistics: with t = p·(n − 1) and i = ⌊t⌋ the result is
// (i + 1 − t)·x₍ᵢ₎ + (t − i)·x₍ᵢ₊₁₎.
func Percentile(data []float64, p float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmpty
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, ErrPercentileRange
	}
	sorted := sortedCopy(data)

	t := p * float64(len(sorted)-1)
	i := int(t)
	if i >= len(sorted)-1 {
		return sorted[len(sorted)-1], nil
	}

	return (float64(i)+1-t)*sorted[i] + (t-float64(i))*sorted[i+1], nil
}

// Median is Percentile(data, 0.5).
func Median(data []float64) (float64, error) { return Percentile(data, 0.5) }

// Quartiles returns the 25th and 75th percentiles.
func Quartiles(data []float64) (q1, q3 float64, err error) {
	if q1, err = Percentile(data, 0.25); err != nil {
		return 0, 0, err
	}
	q3, err = Percentile(data, 0.75)

	return q1, q3, err
}

// EmpiricalQuantile returns the smallest sample value whose empirical CDF
// reaches p (no interpolation).
func EmpiricalQuantile(data []float64, p float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmpty
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, ErrPercentileRange
	}

	return stat.Quantile(p, stat.Empirical, sortedCopy(data), nil), nil
}

func sortedCopy(data []float64) []float64 {
	s := append([]float64(nil), data...)
	sort.Float64s(s)

	return s
}

// LinearSlope returns the least-squares slope b of y ≈ a + b·x.
//
// Errors: ErrLengthMismatch, ErrTooFewValues (fewer than two points),
// ErrZeroVariance (all x equal).
func LinearSlope(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, ErrLengthMismatch
	}
	if len(x) < 2 {
		return 0, ErrTooFewValues
	}
	if stat.Variance(x, nil) == 0 {
		return 0, ErrZeroVariance
	}
	_, b := stat.LinearRegression(x, y, nil, false)

	return b, nil
}
