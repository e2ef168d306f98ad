// SPDX-License-Identifier: MIT

package roots

import (
	"fmt"

	"github.com/katalvlaran/lvnum/function"
)

// FindBrackets subdivides [x1, x2] into n equal segments and returns every
// segment whose endpoint values straddle zero, in ascending order.
//
// Behavior:
//   - A node where f is exactly zero closes one bracket and opens the next,
//     so that root is reported twice (once per adjacent segment).
//   - limit > 0 stops the scan after limit brackets; limit ≤ 0 is unbounded.
//   - No bracket found is a nil slice and a nil error.
//
// Errors:
//   - ErrInvalidInterval when n < 1 or x1 == x2.
//
// Complexity:
//   - Time O(n) evaluations of f, Space O(brackets).
func FindBrackets(f function.Func1D, x1, x2 float64, n, limit int) ([]Bracket, error) {
	if n < 1 || x1 == x2 {
		return nil, rootsErrorf(opFindBrackets, fmt.Errorf("n=%d [%g, %g]: %w", n, x1, x2, ErrInvalidInterval))
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	dx := (x2 - x1) / float64(n)

	var out []Bracket
	xPrev, fPrev := x1, f.Value(x1)
	var x, fx float64
	for i := 1; i <= n; i++ {
		x = x1 + float64(i)*dx
		if i == n {
			x = x2
		}
		fx = f.Value(x)
		if straddles(fPrev, fx) {
			out = append(out, Bracket{lower: xPrev, upper: x})
			if limit > 0 && len(out) == limit {
				break
			}
		}
		xPrev, fPrev = x, fx
	}

	return out, nil
}
