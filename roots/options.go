// SPDX-License-Identifier: MIT

// Package roots: functional configuration for FindND.
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions (internal) applying setters over the defaults.
package roots

import (
	"context"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxNDIterations caps FindND Newton iterations.
	DefaultMaxNDIterations = 200

	// DefaultFTol is the convergence threshold on max |Fᵢ(x)|.
	DefaultFTol = 1e-4

	// DefaultXTol is the convergence threshold on the relative change of x.
	DefaultXTol = 1e-7

	// DefaultMinTol decides a stalled line search is at a spurious minimum:
	// scaled ‖∇½|F|²‖ below it means a local minimum, not a root.
	DefaultMinTol = 1e-6

	// DefaultMaxStep scales the largest Newton step: MaxStep·max(|x|, n).
	DefaultMaxStep = 100.0

	// alf is the Armijo sufficient-decrease fraction of the line search.
	alf = 1e-4
)

// DefaultJacobianStep is the relative forward-difference step, √eps.
var DefaultJacobianStep = math.Sqrt(0x1p-52)

// Panic messages for invalid option values.
const (
	panicIterationsInvalid = "roots: WithMaxIterations requires n > 0"
	panicTolInvalid        = "roots: tolerance must be finite and > 0"
	panicStepInvalid       = "roots: step must be finite and > 0"
	panicNilContext        = "roots: WithContext requires a non-nil context"
)

// Option mutates Options.
type Option func(*Options)

// Options is the resolved FindND configuration.
type Options struct {
	maxIter int
	fTol    float64
	xTol    float64
	minTol  float64
	maxStep float64
	jacStep float64
	ctx     context.Context
}

// WithMaxIterations sets the Newton iteration cap.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicIterationsInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithFTol sets the residual convergence threshold on max |Fᵢ|.
func WithFTol(tol float64) Option {
	mustPositive(tol, panicTolInvalid)

	return func(o *Options) { o.fTol = tol }
}

// WithXTol sets the step convergence threshold on max |Δxᵢ|/max(|xᵢ|, 1).
func WithXTol(tol float64) Option {
	mustPositive(tol, panicTolInvalid)

	return func(o *Options) { o.xTol = tol }
}

// WithMinTol sets the spurious-minimum gradient threshold.
func WithMinTol(tol float64) Option {
	mustPositive(tol, panicTolInvalid)

	return func(o *Options) { o.minTol = tol }
}

// WithMaxStep sets the line-search step bound multiplier.
func WithMaxStep(s float64) Option {
	mustPositive(s, panicStepInvalid)

	return func(o *Options) { o.maxStep = s }
}

// WithJacobianStep sets the relative forward-difference step used when the
// system does not supply its Jacobian.
func WithJacobianStep(h float64) Option {
	mustPositive(h, panicStepInvalid)

	return func(o *Options) { o.jacStep = h }
}

// WithContext makes FindND check ctx before each Newton iteration.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic(panicNilContext)
	}

	return func(o *Options) { o.ctx = ctx }
}

// gatherOptions applies user setters over the defaults (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		maxIter: DefaultMaxNDIterations,
		fTol:    DefaultFTol,
		xTol:    DefaultXTol,
		minTol:  DefaultMinTol,
		maxStep: DefaultMaxStep,
		jacStep: DefaultJacobianStep,
		ctx:     context.Background(),
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

func mustPositive(v float64, msg string) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		panic(msg)
	}
}
