// SPDX-License-Identifier: MIT

package quad

import (
	"math"

	"github.com/katalvlaran/lvnum/function"
)

// legendreRule holds the non-negative half of a symmetric Gauss–Legendre
// rule on [-1, 1].
type legendreRule struct {
	x, w []float64
}

// legendreRules maps order → rule; filled at init, read-only afterwards.
var legendreRules = map[int]legendreRule{
	10: newLegendreRule(10),
	20: newLegendreRule(20),
	40: newLegendreRule(40),
}

// newLegendreRule computes the nodes of an even-order rule as the positive
// roots of Pₙ by Newton iteration from the asymptotic initial guesses.
func newLegendreRule(n int) legendreRule {
	m := n / 2
	r := legendreRule{x: make([]float64, m), w: make([]float64, m)}
	for i := 0; i < m; i++ {
		z := math.Cos(math.Pi * (float64(i) + 0.75) / (float64(n) + 0.5))
		var pp float64
		for it := 0; it < 100; it++ {
			// three-term recurrence for Pₙ(z) and Pₙ₋₁(z)
			p1, p2 := 1.0, 0.0
			for j := 1; j <= n; j++ {
				p1, p2 = ((2*float64(j)-1)*z*p1-(float64(j)-1)*p2)/float64(j), p1
			}
			pp = float64(n) * (z*p1 - p2) / (z*z - 1)
			z1 := z
			z = z1 - p1/pp
			if math.Abs(z-z1) <= 1e-15 {
				break
			}
		}
		r.x[i] = z
		r.w[i] = 2 / ((1 - z*z) * pp * pp)
	}

	return r
}

// GaussLegendre integrates f over [a, b] with the points-point
// Gauss–Legendre rule, points ∈ {10, 20, 40}. Exact for polynomials of
// degree below 2·points.
func GaussLegendre(f function.Func1D, a, b float64, points int) (float64, error) {
	rule, ok := legendreRules[points]
	if !ok {
		return 0, quadErrorf(opGaussLegendre, ErrUnsupportedOrder)
	}
	if err := checkInterval(opGaussLegendre, a, b); err != nil {
		return 0, err
	}

	xm := 0.5 * (b + a)
	xr := 0.5 * (b - a)
	var s float64
	for j, xj := range rule.x {
		dx := xr * xj
		s += rule.w[j] * (f.Value(xm+dx) + f.Value(xm-dx))
	}

	return s * xr, nil
}

// GaussLegendre10 is GaussLegendre with 10 points.
func GaussLegendre10(f function.Func1D, a, b float64) (float64, error) {
	return GaussLegendre(f, a, b, 10)
}

// GaussLegendre20 is GaussLegendre with 20 points.
func GaussLegendre20(f function.Func1D, a, b float64) (float64, error) {
	return GaussLegendre(f, a, b, 20)
}

// GaussLegendre40 is GaussLegendre with 40 points.
func GaussLegendre40(f function.Func1D, a, b float64) (float64, error) {
	return GaussLegendre(f, a, b, 40)
}
