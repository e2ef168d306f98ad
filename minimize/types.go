// SPDX-License-Identifier: MIT

package minimize

import "math"

const (
	// MaxIterations caps Brent and DBrent.
	MaxIterations = 100

	// MaxNDIterations caps the outer loop of FRPRMN and Powell.
	MaxNDIterations = 200

	// MaxBracketSteps caps the downhill walk of Bracket.
	MaxBracketSteps = 100

	// GLimit bounds parabolic extrapolation to GLimit × the current interval.
	GLimit = 100.0

	// gold is the default magnification of successive bracket intervals.
	gold = 1.618034

	// cgold is the golden-section fraction 1 − 1/φ.
	cgold = 0.3819660

	// tiny guards the parabolic denominator.
	tiny = 1e-20

	// zeps protects tolerance tests around a minimum at exactly zero.
	zeps = 1e-10

	// linTol is the fractional tolerance of line minimizations inside FindND.
	linTol = 2e-4
)

// Operation tags for error wrapping.
const (
	opBracket = "Bracket"
	opBrent   = "Brent"
	opDBrent  = "DBrent"
	opFind    = "Find"
	opFindND  = "FindND"
	opLine    = "LineMinimize"
	opPowell  = "Powell"
	opFRPRMN  = "FRPRMN"
)

// Triple is a bracketed minimum: B lies between A and C (in either order)
// with FB < FA and FB ≤ FC.
type Triple struct {
	A, B, C    float64
	FA, FB, FC float64
}

// Method names the N-D algorithm FindND ran.
type Method int

const (
	// ConjugateGradient is the Polak–Ribière method (gradient available).
	ConjugateGradient Method = iota

	// Powell is the direction-set method (no gradient).
	Powell
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case ConjugateGradient:
		return "conjugate-gradient"
	case Powell:
		return "powell"
	default:
		return "unknown"
	}
}

// Result reports an N-D minimum.
type Result struct {
	X          []float64 // location of the minimum
	F          float64   // f(X)
	Iterations int       // outer iterations performed
	Method     Method
}

// sign returns |a| with the sign of b (Fortran SIGN).
func sign(a, b float64) float64 {
	if b >= 0 {
		return math.Abs(a)
	}

	return -math.Abs(a)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
