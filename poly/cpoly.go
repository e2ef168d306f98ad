// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"
	"math"
	"math/cmplx"
)

const (
	// cos/sin of the 94° rotation applied between fixed shifts.
	cosr = -0.060756474
	sinr = 0.99756405

	// initial shift direction (45° below the real axis)
	shiftDir = 0.70710678

	noShiftSteps  = 5  // stage-1 iterations
	fixedShiftLen = 10 // stage-2 base length, grows with each attempt
	varShiftSteps = 10 // stage-3 iteration cap
	shiftAttempts = 9  // fixed shifts per pass
	shiftPasses   = 2

	// cap on the decades cauchy chops off its starting bound
	maxChops = 400

	// relative machine precision
	eta    = 0x1p-52
	infin  = math.MaxFloat64
	smalno = 0x1p-1022

	// rounding bounds for complex addition and multiplication
	are = eta
	mre = 2 * math.Sqrt2 * eta
)

// jenkinsTraub carries the working state for one Zeros call. Coefficient
// slices are in decreasing power: p[0] is the leading coefficient.
type jenkinsTraub struct {
	nn int // number of live coefficients (degree + 1)

	p, qp []complex128 // deflated polynomial and its Horner partial sums
	h, qh []complex128 // H-polynomial and its Horner partial sums
	sh    []complex128 // saved H-polynomial
	mod   []float64    // coefficient moduli scratch
	q     []float64    // Cauchy bound scratch

	s  complex128 // current shift
	pv complex128 // p(s)
	t  complex128 // −p(s)/h(s)
}

// Zeros returns all Degree() zeros of p.
//
// A constant polynomial yields an empty slice. Zeros at the origin are
// reported first. On ErrNoConvergence the returned slice holds the roots that
// were found before the failure.
//
// Errors: ErrEmpty, ErrNonFinite, ErrLeadingZero, ErrNoConvergence.
func (p Polynomial) Zeros() ([]complex128, error) {
	if len(p) == 0 {
		return nil, polyErrorf(opZeros, ErrEmpty)
	}
	for i, c := range p {
		if cmplx.IsNaN(c) || cmplx.IsInf(c) {
			return nil, polyErrorf(opZeros, fmt.Errorf("c%d=%v: %w", i, c, ErrNonFinite))
		}
	}
	degree := len(p) - 1
	if p[degree] == 0 {
		return nil, polyErrorf(opZeros, ErrLeadingZero)
	}
	zeros := make([]complex128, degree)
	if degree == 0 {
		return zeros, nil
	}

	jt := newJenkinsTraub(p)
	found := 0

	// origin zeros: trailing (constant-end) coefficients equal to zero
	for jt.nn > 1 && jt.p[jt.nn-1] == 0 {
		zeros[found] = 0
		found++
		jt.nn--
	}
	if jt.nn == 1 {
		return zeros, nil
	}

	jt.scaleCoefficients()

	xx, yy := shiftDir, -shiftDir
	for jt.nn > 2 {
		for i := 0; i < jt.nn; i++ {
			jt.mod[i] = cmplx.Abs(jt.p[i])
		}
		bnd := jt.cauchy()

		var (
			z    complex128
			conv bool
		)
	passes:
		for pass := 0; pass < shiftPasses; pass++ {
			jt.noShift(noShiftSteps)
			for attempt := 1; attempt <= shiftAttempts; attempt++ {
				xx, yy = cosr*xx-sinr*yy, sinr*xx+cosr*yy
				jt.s = complex(bnd*xx, bnd*yy)
				if z, conv = jt.fixedShift(fixedShiftLen * attempt); conv {
					break passes
				}
			}
		}
		if !conv {
			return zeros[:found], polyErrorf(opZeros, fmt.Errorf("%w: %d of %d", ErrNoConvergence, found, degree))
		}

		zeros[found] = z
		found++
		jt.nn--
		copy(jt.p[:jt.nn], jt.qp[:jt.nn])
	}
	zeros[found] = Div(-jt.p[1], jt.p[0])

	return zeros, nil
}

func newJenkinsTraub(p Polynomial) *jenkinsTraub {
	nn := len(p)
	jt := &jenkinsTraub{
		nn:  nn,
		p:   make([]complex128, nn),
		qp:  make([]complex128, nn),
		h:   make([]complex128, nn),
		qh:  make([]complex128, nn),
		sh:  make([]complex128, nn),
		mod: make([]float64, nn),
		q:   make([]float64, nn),
	}
	for i := range p {
		jt.p[i] = p[nn-1-i]
	}

	return jt
}

// scaleCoefficients multiplies p by a power of two when its coefficient
// moduli are close to overflow or underflow.
func (jt *jenkinsTraub) scaleCoefficients() {
	hi := math.Sqrt(infin)
	lo := smalno / eta
	maxMod, minMod := 0.0, infin
	for i := 0; i < jt.nn; i++ {
		x := cmplx.Abs(jt.p[i])
		if x > maxMod {
			maxMod = x
		}
		if x != 0 && x < minMod {
			minMod = x
		}
	}
	if minMod >= lo && maxMod <= hi {
		return
	}

	var sc float64
	if x := lo / minMod; x > 1 {
		sc = x
		if maxMod > infin/sc {
			sc = 1
		}
	} else {
		sc = 1 / (math.Sqrt(maxMod) * math.Sqrt(minMod))
	}
	l := int(math.Log2(sc) + 0.5)
	if l == 0 {
		return
	}
	f := complex(math.Ldexp(1, l), 0)
	for i := 0; i < jt.nn; i++ {
		jt.p[i] *= f
	}
}

// cauchy returns a lower bound on the moduli of the zeros: the positive root
// of |p₀|xⁿ + … + |pₙ₋₁|x − |pₙ| found by Newton to two decimal places.
func (jt *jenkinsTraub) cauchy() float64 {
	nn, pt, q := jt.nn, jt.mod, jt.q
	n := nn - 1
	pt[nn-1] = -pt[nn-1]

	x := math.Exp((math.Log(-pt[nn-1]) - math.Log(pt[0])) / float64(n))
	if pt[n-1] != 0 {
		// Newton step at the origin
		if xm := -pt[nn-1] / pt[n-1]; xm < x {
			x = xm
		}
	}

	// chop the interval (0, x) until f(x) ≤ 0
	for chop := 0; chop < maxChops; chop++ {
		xm := x * 0.1
		f := pt[0]
		for i := 1; i < nn; i++ {
			f = f*xm + pt[i]
		}
		if f <= 0 {
			break
		}
		x = xm
	}

	dx := x
	for math.Abs(dx/x) > 0.005 {
		q[0] = pt[0]
		for i := 1; i < nn; i++ {
			q[i] = q[i-1]*x + pt[i]
		}
		f := q[nn-1]
		df := q[0]
		for i := 1; i < n; i++ {
			df = df*x + q[i]
		}
		dx = f / df
		x -= dx
	}

	return x
}

// noShift computes the stage-1 H-polynomials, starting from the scaled
// derivative of p.
func (jt *jenkinsTraub) noShift(steps int) {
	nn, p, h := jt.nn, jt.p, jt.h
	n := nn - 1
	for i := 0; i < n; i++ {
		h[i] = complex(float64(nn-1-i)/float64(n), 0) * p[i]
	}

	for jj := 0; jj < steps; jj++ {
		if cmplx.Abs(h[n-1]) <= eta*10*cmplx.Abs(p[n-1]) {
			// constant term essentially zero: shift h
			for j := n - 1; j > 0; j-- {
				h[j] = h[j-1]
			}
			h[0] = 0

			continue
		}
		t := Div(-p[nn-1], h[n-1])
		for j := n - 1; j > 0; j-- {
			h[j] = t*h[j-1] + p[j]
		}
		h[0] = p[0]
	}
}

// fixedShift runs stage 2 with the shift in jt.s for up to steps iterations,
// handing over to stage 3 once t has settled twice in a row.
func (jt *jenkinsTraub) fixedShift(steps int) (complex128, bool) {
	n := jt.nn - 1
	jt.pv = evaluate(jt.nn, jt.s, jt.p, jt.qp)
	test, passed := true, false
	hZero := jt.calcT()

	var z complex128
	for j := 1; j <= steps; j++ {
		ot := jt.t
		jt.nextH(hZero)
		hZero = jt.calcT()
		z = jt.s + jt.t

		if hZero || !test || j == steps {
			continue
		}
		if cmplx.Abs(jt.t-ot) >= 0.5*cmplx.Abs(z) {
			passed = false

			continue
		}
		if !passed {
			passed = true

			continue
		}

		copy(jt.sh[:n], jt.h[:n])
		saved := jt.s
		zz, conv := jt.variableShift(varShiftSteps, z)
		if conv {
			return zz, true
		}

		// stage 3 diverged: restore and keep iterating without the test
		test = false
		copy(jt.h[:n], jt.sh[:n])
		jt.s = saved
		jt.pv = evaluate(jt.nn, jt.s, jt.p, jt.qp)
		hZero = jt.calcT()
	}

	return jt.variableShift(varShiftSteps, z)
}

// variableShift runs stage 3 from z. It reports convergence when |p(s)| is
// within the rounding-error bound of its evaluation.
func (jt *jenkinsTraub) variableShift(steps int, z complex128) (complex128, bool) {
	var (
		omp, relstp float64
		stalled     bool
	)
	jt.s = z
	for i := 1; i <= steps; i++ {
		jt.pv = evaluate(jt.nn, jt.s, jt.p, jt.qp)
		mp := cmplx.Abs(jt.pv)
		ms := cmplx.Abs(jt.s)
		if mp <= 20*errorBound(jt.nn, jt.qp, ms, mp) {
			return jt.s, true
		}

		switch {
		case i == 1:
			omp = mp
		case !stalled && mp >= omp && relstp < 0.05:
			// probably a cluster of zeros: a few fixed-shift steps let one dominate
			tp := math.Max(relstp, eta)
			stalled = true
			r1 := math.Sqrt(tp)
			sr, si := real(jt.s), imag(jt.s)
			jt.s = complex(sr*(r1+1)-si*r1, sr*r1+si*(r1+1))
			jt.pv = evaluate(jt.nn, jt.s, jt.p, jt.qp)
			for j := 0; j < 5; j++ {
				jt.nextH(jt.calcT())
			}
			omp = infin
		default:
			if mp*0.1 > omp {
				return z, false
			}
			omp = mp
		}

		jt.nextH(jt.calcT())
		if jt.calcT() {
			continue
		}
		relstp = cmplx.Abs(jt.t) / cmplx.Abs(jt.s)
		jt.s += jt.t
	}

	return z, false
}

// calcT sets t = −p(s)/h(s) and reports whether h(s) is essentially zero,
// in which case t is zero.
func (jt *jenkinsTraub) calcT() bool {
	n := jt.nn - 1
	hv := evaluate(n, jt.s, jt.h, jt.qh)
	if cmplx.Abs(hv) <= are*10*cmplx.Abs(jt.h[n-1]) {
		jt.t = 0

		return true
	}
	jt.t = Div(-jt.pv, hv)

	return false
}

// nextH forms the next H-polynomial from the Horner partial sums of p and h.
func (jt *jenkinsTraub) nextH(hZero bool) {
	n := jt.nn - 1
	h, qh, qp := jt.h, jt.qh, jt.qp
	if hZero {
		for j := n - 1; j > 0; j-- {
			h[j] = qh[j-1]
		}
		h[0] = 0

		return
	}
	for j := 1; j < n; j++ {
		h[j] = jt.t*qh[j-1] + qp[j]
	}
	h[0] = qp[0]
}

// evaluate computes the first nn coefficients of p at s by Horner's rule,
// storing the partial sums in q.
func evaluate(nn int, s complex128, p, q []complex128) complex128 {
	pv := p[0]
	q[0] = pv
	for i := 1; i < nn; i++ {
		pv = pv*s + p[i]
		q[i] = pv
	}

	return pv
}

// errorBound bounds the rounding error of the Horner evaluation whose
// partial sums are in q.
func errorBound(nn int, q []complex128, ms, mp float64) float64 {
	e := cmplx.Abs(q[0]) * mre / (are + mre)
	for i := 0; i < nn; i++ {
		e = e*ms + cmplx.Abs(q[i])
	}

	return e*(are+mre) - mp*mre
}
