// SPDX-License-Identifier: MIT

// Package stats provides the descriptive statistics consumed by callers that
// compare computed quantities against reference samples: mean, spread,
// percentiles and extremes.
//
// Inputs are never modified; functions that need ordered data sort a copy.
// Moments delegate to gonum's stat package.
package stats
