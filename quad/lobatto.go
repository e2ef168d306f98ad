// SPDX-License-Identifier: MIT

package quad

import (
	"math"

	"github.com/katalvlaran/lvnum/function"
)

// Lobatto and Kronrod abscissae on [-1, 1].
var (
	lobAlpha = math.Sqrt(2.0 / 3.0)
	lobBeta  = 1 / math.Sqrt(5.0)
)

const (
	kronX1 = .942882415695480
	kronX2 = .641853342345781
	kronX3 = .236383199662150
)

// AdaptLobatto integrates f over [a, b] by adaptive Gauss–Lobatto quadrature
// (Gander & Gautschi, 2000).
//
// Implementation:
//   - Stage 1: a 13-point Kronrod rule gives a reference estimate is. The
//     ratio of the 7-point and 4-point Lobatto errors against it relaxes tol
//     when the rules already agree well.
//   - Stage 2: recursively split into six subintervals at the Lobatto nodes,
//     accepting an interval once is + (i7 − i4) == is in floating point.
//
// Errors: ErrInvalidInterval, ErrNoMachineNumber when an interval can no longer
// be split, ErrNoConvergence when the integrand is not finite.
func AdaptLobatto(f function.Func1D, a, b, tol float64) (float64, error) {
	if err := checkInterval(opAdaptLobatto, a, b); err != nil {
		return 0, err
	}
	switch {
	case a == b:
		return 0, nil
	case a > b:
		v, err := AdaptLobatto(f, b, a, tol)

		return -v, err
	}
	tol = function.ClampTolerance(tol, function.Epsilon)

	m := (a + b) / 2
	h := (b - a) / 2
	x := [13]float64{
		a, m - kronX1*h, m - lobAlpha*h, m - kronX2*h, m - lobBeta*h, m - kronX3*h, m,
		m + kronX3*h, m + lobBeta*h, m + kronX2*h, m + lobAlpha*h, m + kronX1*h, b,
	}
	var y [13]float64
	for i, xi := range x {
		y[i] = f.Value(xi)
	}
	fa, fb := y[0], y[12]

	i2 := h / 6 * (fa + fb + 5*(y[4]+y[8]))
	i1 := h / 1470 * (77*(fa+fb) + 432*(y[2]+y[10]) + 625*(y[4]+y[8]) + 672*y[6])
	is := h * (.0158271919734802*(fa+fb) + .0942738402188500*(y[1]+y[11]) +
		.155071987336585*(y[2]+y[10]) + .188821573960182*(y[3]+y[9]) +
		.199773405226859*(y[4]+y[8]) + .224926465333340*(y[5]+y[7]) +
		.242611071901408*y[6])
	if !isFinite(is) {
		return is, quadErrorf(opAdaptLobatto, ErrNoConvergence)
	}

	s := 1.0
	if is < 0 {
		s = -1
	}
	erri1 := math.Abs(i1 - is)
	erri2 := math.Abs(i2 - is)
	if r := erri1 / erri2; r > 0 && r < 1 {
		tol /= r
	}
	is = s * math.Abs(is) * tol / function.Epsilon
	if is == 0 {
		is = b - a
	}

	v, err := lobattoStep(f, a, b, fa, fb, is)
	if err != nil {
		return v, quadErrorf(opAdaptLobatto, err)
	}

	return v, nil
}

// lobattoStep integrates over [a, b] given f(a), f(b) and the scaled
// reference magnitude is.
func lobattoStep(f function.Func1D, a, b, fa, fb, is float64) (float64, error) {
	h := (b - a) / 2
	m := (a + b) / 2
	mll := m - lobAlpha*h
	ml := m - lobBeta*h
	mr := m + lobBeta*h
	mrr := m + lobAlpha*h

	fmll := f.Value(mll)
	fml := f.Value(ml)
	fm := f.Value(m)
	fmr := f.Value(mr)
	fmrr := f.Value(mrr)

	i2 := h / 6 * (fa + fb + 5*(fml+fmr))
	i1 := h / 1470 * (77*(fa+fb) + 432*(fmll+fmrr) + 625*(fml+fmr) + 672*fm)
	if !isFinite(i1) || !isFinite(i2) {
		return i1, ErrNoConvergence
	}
	if is+(i1-i2) == is || mll <= a || b <= mr {
		if m <= a || b <= m {
			return i1, ErrNoMachineNumber
		}

		return i1, nil
	}

	var total float64
	for _, seg := range [6][4]float64{
		{a, mll, fa, fmll},
		{mll, ml, fmll, fml},
		{ml, m, fml, fm},
		{m, mr, fm, fmr},
		{mr, mrr, fmr, fmrr},
		{mrr, b, fmrr, fb},
	} {
		v, err := lobattoStep(f, seg[0], seg[1], seg[2], seg[3], is)
		total += v
		if err != nil {
			return total, err
		}
	}

	return total, nil
}
