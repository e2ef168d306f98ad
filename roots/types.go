// SPDX-License-Identifier: MIT

package roots

import "math"

// MaxIterations caps the bracketing root-finding loops.
const MaxIterations = 100

// AitkenMaxIterations caps Aitken, which converges more slowly from a poor guess.
const AitkenMaxIterations = 500

// Operation tags for error wrapping.
const (
	opFindBrackets = "FindBrackets"
	opZeroin       = "Zeroin"
	opNewton       = "Newton"
	opAitken       = "Aitken"
	opFindND       = "FindND"
)

// Bracket is an interval [Lower, Upper] expected to contain a root.
// The zero value is the degenerate interval [0, 0].
type Bracket struct {
	lower, upper float64
}

// NewBracket returns the bracket spanning a and b in either order.
func NewBracket(a, b float64) Bracket {
	if a > b {
		a, b = b, a
	}

	return Bracket{lower: a, upper: b}
}

// Lower returns the left endpoint.
func (b Bracket) Lower() float64 { return b.lower }

// Upper returns the right endpoint.
func (b Bracket) Upper() float64 { return b.upper }

// Width returns Upper - Lower.
func (b Bracket) Width() float64 { return b.upper - b.lower }

// Mid returns the midpoint.
func (b Bracket) Mid() float64 { return 0.5 * (b.lower + b.upper) }

// Contains reports lower ≤ x ≤ upper.
func (b Bracket) Contains(x float64) bool { return x >= b.lower && x <= b.upper }

// straddles reports whether fa and fb differ in sign or either is zero.
func straddles(fa, fb float64) bool {
	if fa == 0 || fb == 0 {
		return true
	}

	return math.Signbit(fa) != math.Signbit(fb)
}
