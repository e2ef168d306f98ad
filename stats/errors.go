// SPDX-License-Identifier: MIT

package stats

import "errors"

var (
	// ErrEmpty indicates an empty sample.
	ErrEmpty = errors.New("stats: empty sample")

	// ErrTooFewValues indicates a sample too small for the statistic.
	ErrTooFewValues = errors.New("stats: too few values")

	// ErrPercentileRange indicates a percentile outside [0, 1].
	ErrPercentileRange = errors.New("stats: percentile out of range")

	// ErrZeroVariance indicates a shape statistic of a constant sample.
	ErrZeroVariance = errors.New("stats: zero variance")

	// ErrLengthMismatch indicates paired samples of different lengths.
	ErrLengthMismatch = errors.New("stats: paired samples differ in length")
)
