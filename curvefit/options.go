// SPDX-License-Identifier: MIT

package curvefit

import (
	"math"

	"github.com/katalvlaran/lvnum/matrix"
)

// DefaultDegree is the polynomial degree used when no basis is given.
const DefaultDegree = 2

// Option mutates Options.
type Option func(*Options)

// Options is the resolved Fit configuration.
type Options struct {
	degree int
	tol    float64
}

// WithDegree sets the polynomial degree used when basis is nil.
func WithDegree(d int) Option {
	if d < 0 {
		panic("curvefit: WithDegree requires d ≥ 0")
	}

	return func(o *Options) { o.degree = d }
}

// WithTolerance sets the relative singular-value cut.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic("curvefit: WithTolerance requires a finite tol ≥ 0")
	}

	return func(o *Options) { o.tol = tol }
}

func gatherOptions(user ...Option) Options {
	o := Options{degree: DefaultDegree, tol: matrix.DefaultSVDTolerance}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
