// SPDX-License-Identifier: MIT

package poly

import "math"

// Div returns a/b by Smith's method, which avoids the overflow of forming
// |b|² explicitly. Division by zero yields (+Inf, +Inf).
func Div(a, b complex128) complex128 {
	ar, ai := real(a), imag(a)
	br, bi := real(b), imag(b)
	if br == 0 && bi == 0 {
		return complex(math.Inf(1), math.Inf(1))
	}
	if math.Abs(br) >= math.Abs(bi) {
		r := bi / br
		d := br + r*bi

		return complex((ar+ai*r)/d, (ai-ar*r)/d)
	}
	r := br / bi
	d := bi + r*br

	return complex((ar*r+ai)/d, (ai*r-ar)/d)
}
