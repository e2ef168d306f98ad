// SPDX-License-Identifier: MIT

// Package ode: functional configuration shared by both integrators.
package ode

import "math"

const (
	// DefaultTolerance is the RungeKutta45 relative accuracy target.
	DefaultTolerance = 1e-6

	// DefaultMaxSteps caps the steps of one Integrate call.
	DefaultMaxSteps = 100000
)

const (
	panicTolInvalid      = "ode: WithTolerance requires a finite tol > 0"
	panicMinStepInvalid  = "ode: WithMinStep requires a finite h ≥ 0"
	panicMaxStepsInvalid = "ode: WithMaxSteps requires n > 0"
	panicIntervalInvalid = "ode: WithSaveInterval requires a finite dx ≥ 0"
)

// Option mutates Options.
type Option func(*Options)

// Options is the resolved integrator configuration.
type Options struct {
	tol      float64
	minStep  float64
	maxSteps int
	save     bool
	saveDx   float64
}

// WithTolerance sets the accuracy target of RungeKutta45; the scaled error of
// every accepted step is at most tol. Ignored by RungeKutta4.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicTolInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMinStep makes RungeKutta45.Integrate fail with ErrMinStep once the
// suggested step magnitude drops to h or below.
func WithMinStep(h float64) Option {
	if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		panic(panicMinStepInvalid)
	}

	return func(o *Options) { o.minStep = h }
}

// WithMaxSteps caps the steps of one Integrate call.
func WithMaxSteps(n int) Option {
	if n <= 0 {
		panic(panicMaxStepsInvalid)
	}

	return func(o *Options) { o.maxSteps = n }
}

// WithSaveInterval records Result.Samples: the initial state, every state
// farther than dx from the previously recorded one, and the final state.
func WithSaveInterval(dx float64) Option {
	if math.IsNaN(dx) || math.IsInf(dx, 0) || dx < 0 {
		panic(panicIntervalInvalid)
	}

	return func(o *Options) {
		o.save = true
		o.saveDx = dx
	}
}

// gatherOptions applies user setters over the defaults (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		tol:      DefaultTolerance,
		maxSteps: DefaultMaxSteps,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
