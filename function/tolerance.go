// SPDX-License-Identifier: MIT

package function

import "math"

// Epsilon is the float64 machine epsilon, 2⁻⁵².
const Epsilon = 0x1p-52

// SqrtEpsilon is √Epsilon, the best relative accuracy a minimum can be located
// to by function values alone.
var SqrtEpsilon = math.Sqrt(Epsilon)

// ClampTolerance returns |tol| floored at floor. A NaN tol yields floor.
//
// Typical floors: 4·Epsilon for roots, SqrtEpsilon for 1-D minimization.
func ClampTolerance(tol, floor float64) float64 {
	tol = math.Abs(tol)
	if math.IsNaN(tol) || tol < floor {
		return floor
	}

	return tol
}
