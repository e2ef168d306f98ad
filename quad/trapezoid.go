// SPDX-License-Identifier: MIT

package quad

import (
	"math"

	"github.com/katalvlaran/lvnum/function"
)

// trapezoidSum refines the extended trapezoid rule one level per call.
// Level 1 uses the endpoints; level n adds 2ⁿ⁻² interior midpoints.
type trapezoidSum struct {
	f     function.Func1D
	a, b  float64
	level int
	sum   float64
}

func (t *trapezoidSum) next() float64 {
	t.level++
	if t.level == 1 {
		t.sum = 0.5 * (t.b - t.a) * (t.f.Value(t.a) + t.f.Value(t.b))

		return t.sum
	}
	it := 1 << (t.level - 2)
	tnm := float64(it)
	del := (t.b - t.a) / tnm
	x := t.a + 0.5*del
	var s float64
	for j := 0; j < it; j++ {
		s += t.f.Value(x)
		x += del
	}
	t.sum = 0.5 * (t.sum + (t.b-t.a)*s/tnm)

	return t.sum
}

// Trapezoid integrates f over [a, b] by the extended trapezoid rule, halving
// the step until two successive sums agree to tol relative to the previous
// one. tol is floored at machine epsilon.
//
// Complexity: O(2^k) evaluations for k refinements, k ≤ MaxRefinements.
func Trapezoid(f function.Func1D, a, b, tol float64) (float64, error) {
	if err := checkInterval(opTrapezoid, a, b); err != nil {
		return 0, err
	}
	if a == b {
		return 0, nil
	}
	tol = function.ClampTolerance(tol, function.Epsilon)

	t := trapezoidSum{f: f, a: a, b: b}
	var old float64
	for j := 1; j <= MaxRefinements; j++ {
		s := t.next()
		if !isFinite(s) {
			return s, quadErrorf(opTrapezoid, ErrNoConvergence)
		}
		if j > MinRefinements && (math.Abs(s-old) < tol*math.Abs(old) || (s == 0 && old == 0)) {
			return s, nil
		}
		old = s
	}

	return old, quadErrorf(opTrapezoid, ErrNoConvergence)
}

// Simpson integrates f over [a, b] with Simpson's rule obtained from two
// consecutive trapezoid levels, s = (4·Tₙ − Tₙ₋₁)/3. Acceptance mirrors
// Trapezoid.
func Simpson(f function.Func1D, a, b, tol float64) (float64, error) {
	if err := checkInterval(opSimpson, a, b); err != nil {
		return 0, err
	}
	if a == b {
		return 0, nil
	}
	tol = function.ClampTolerance(tol, function.Epsilon)

	t := trapezoidSum{f: f, a: a, b: b}
	var ost, os float64
	for j := 1; j <= MaxRefinements; j++ {
		st := t.next()
		s := (4*st - ost) / 3
		if !isFinite(s) {
			return s, quadErrorf(opSimpson, ErrNoConvergence)
		}
		if j > MinRefinements && (math.Abs(s-os) < tol*math.Abs(os) || (s == 0 && os == 0)) {
			return s, nil
		}
		os, ost = s, st
	}

	return os, quadErrorf(opSimpson, ErrNoConvergence)
}
