// SPDX-License-Identifier: MIT

package ode

import "math"

// Reason tells why Integrate returned.
type Reason int

const (
	// ReachedEnd means x arrived at the requested end point.
	ReachedEnd Reason = iota
	// Predicate means the StopPredicate fired.
	Predicate
	// NonFinite means some component of y became NaN or infinite.
	NonFinite
	// MaxSteps means the step cap was reached.
	MaxSteps
)

// String implements fmt.Stringer.
func (r Reason) String() string {
	switch r {
	case ReachedEnd:
		return "reached end"
	case Predicate:
		return "predicate"
	case NonFinite:
		return "non-finite state"
	case MaxSteps:
		return "max steps"
	default:
		return "unknown"
	}
}

// Sample is one recorded point of a trajectory.
type Sample struct {
	X float64
	Y []float64
}

// Result summarizes an Integrate call. The final state is left in the y
// passed to Integrate.
type Result struct {
	X           float64  // final independent variable
	Steps       int      // accepted steps
	Rejected    int      // rejected trial steps (RungeKutta45 only)
	Evaluations int      // calls to Derivatives
	Reason      Reason   // why integration stopped
	Samples     []Sample // recorded trajectory, see WithSaveInterval
}

const (
	opStep      = "Step"
	opIntegrate = "Integrate"
	opNew       = "New"
)

func allFinite(y []float64) bool {
	for _, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// sampler implements the save-interval recording.
type sampler struct {
	on      bool
	dx      float64
	last    float64
	samples []Sample
}

func newSampler(o Options, x0 float64) sampler {
	return sampler{on: o.save, dx: o.saveDx, last: x0 - 2*o.saveDx}
}

// offer records (x, y) when x moved more than dx since the last record.
func (s *sampler) offer(x float64, y []float64) {
	if s.on && (len(s.samples) == 0 || math.Abs(x-s.last) > s.dx) {
		s.record(x, y)
	}
}

func (s *sampler) record(x float64, y []float64) {
	if !s.on {
		return
	}
	s.samples = append(s.samples, Sample{X: x, Y: append([]float64(nil), y...)})
	s.last = x
}

// checkIntegrate validates the common Integrate arguments and returns h
// pointing from x0 toward xEnd.
func checkIntegrate(n int, x0 float64, y []float64, xEnd, h float64) (float64, error) {
	if len(y) != n {
		return 0, odeErrorf(opIntegrate, ErrDimensionMismatch)
	}
	if math.IsNaN(x0) || math.IsNaN(xEnd) || math.IsNaN(h) || math.IsInf(h, 0) || h == 0 || x0+h == x0 {
		return 0, odeErrorf(opIntegrate, ErrInvalidStep)
	}
	if xEnd < x0 {
		return -math.Abs(h), nil
	}

	return math.Abs(h), nil
}
