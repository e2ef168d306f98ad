// SPDX-License-Identifier: MIT

package series

import "math"

// DefaultTolerance is the magnitude below which a term ends the evaluation.
const DefaultTolerance = 1e-8

// Option mutates Options.
type Option func(*Options)

// Options is the resolved Taylor configuration.
type Options struct {
	tol float64
}

// WithTolerance sets the early-exit term magnitude. Zero disables early exit.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic("series: WithTolerance requires a finite tol ≥ 0")
	}

	return func(o *Options) { o.tol = tol }
}

func gatherOptions(user ...Option) Options {
	o := Options{tol: DefaultTolerance}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
