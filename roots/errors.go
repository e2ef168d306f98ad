// SPDX-License-Identifier: MIT

package roots

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnum/matrix"
)

var (
	// ErrNotBracketed indicates f(lower) and f(upper) have the same strict sign.
	ErrNotBracketed = errors.New("roots: root not bracketed")

	// ErrInvalidInterval indicates a degenerate scan interval or segment count.
	ErrInvalidInterval = errors.New("roots: invalid interval")

	// ErrNoConvergence indicates the iteration cap was reached.
	ErrNoConvergence = errors.New("roots: maximum number of iterations exceeded")

	// ErrLocalMinimum indicates FindND stalled at a local minimum of ½|F|²
	// that is not a root. The returned point is still meaningful.
	ErrLocalMinimum = errors.New("roots: converged to a local minimum of |F|, not a root")

	// ErrRoundoff indicates the Newton direction is not a descent direction
	// for ½|F|², which only happens through roundoff in the Jacobian or step.
	ErrRoundoff = errors.New("roots: roundoff problem in line search")

	// ErrDimensionMismatch indicates len(x) != f.Dim() or Dim() < 1.
	ErrDimensionMismatch = errors.New("roots: dimension mismatch")

	// ErrSingular indicates the Jacobian LU has an exactly-zero pivot.
	ErrSingular = fmt.Errorf("roots: singular jacobian: %w", matrix.ErrSingular)
)

// rootsErrorf wraps err with the operation tag, "roots: <tag>: err".
func rootsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
