// SPDX-License-Identifier: MIT

package series

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDerivatives indicates an empty derivative list.
	ErrNoDerivatives = errors.New("series: at least one derivative required")

	// ErrNegativeDegree indicates a degree below zero.
	ErrNegativeDegree = errors.New("series: degree must be ≥ 0")

	// ErrNonFinite indicates a NaN or infinite center or derivative.
	ErrNonFinite = errors.New("series: non-finite input")
)

const (
	opNew = "New"
	opSin = "Sin"
	opCos = "Cos"
	opExp = "Exp"
)

func seriesErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
