// SPDX-License-Identifier: MIT

package roots

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnum/function"
	"github.com/katalvlaran/lvnum/matrix"
)

// NDResult is the outcome of FindND.
type NDResult struct {
	X          []float64 // final point
	F          []float64 // F(X)
	Iterations int       // Newton iterations performed
	HalfNorm   float64   // ½|F(X)|²
}

// FindND solves F(x) = 0 for a square system by globally convergent Newton.
//
// Implementation:
//   - Stage 1: Jacobian J from f.Jacobian, or by forward differences when the
//     system reports it unavailable.
//   - Stage 2: Newton step p from J·p = −F via matrix.LU / matrix.LUSolve.
//   - Stage 3: backtracking line search along p on g(x) = ½|F|² with the
//     sufficient-decrease test g(x+λp) ≤ g(x) + α·λ·∇g·p (α = 1e-4), using
//     quadratic then cubic models of g(λ), λ ∈ [0.1·λ_prev, 0.5·λ_prev].
//   - Stage 4: convergence tests in order: max|Fᵢ| < FTol (root), stalled
//     line search (root or local minimum, decided on the scaled gradient),
//     max relative |Δxᵢ| < XTol.
//
// Returns:
//   - NDResult with the last point even on ErrLocalMinimum / ErrNoConvergence.
//
// Errors:
//   - ErrDimensionMismatch, ErrSingular, ErrRoundoff, ErrLocalMinimum,
//     ErrNoConvergence, or ctx.Err() when cancelled via WithContext.
//
// Complexity:
//   - Per iteration O(n³) for LU plus O(n) evaluations of F when the
//     Jacobian is differenced.
func FindND(f function.VectorFunc, x0 []float64, opts ...Option) (NDResult, error) {
	o := gatherOptions(opts...)
	n := f.Dim()
	if n < 1 || len(x0) != n {
		return NDResult{}, rootsErrorf(opFindND, fmt.Errorf("dim=%d len(x)=%d: %w", n, len(x0), ErrDimensionMismatch))
	}

	s := newNDState(f, x0)
	res := func(iter int) NDResult {
		return NDResult{X: s.x, F: s.fvec, Iterations: iter, HalfNorm: s.fmin}
	}

	// initial point already a root (stricter test than FTol)
	if maxAbs(s.fvec) < 0.01*o.fTol {
		return res(0), nil
	}
	stpmax := o.maxStep * math.Max(math.Sqrt(matrix.Dot(n, s.x, 1, s.x, 1)), float64(n))

	jac, err := matrix.NewDense(n, n)
	if err != nil {
		return res(0), rootsErrorf(opFindND, err)
	}
	p := make([]float64, n)
	xOld := make([]float64, n)

	var (
		fOld, test, den float64
		check           bool
		i, j            int
	)
	for iter := 1; iter <= o.maxIter; iter++ {
		if err = o.ctx.Err(); err != nil {
			return res(iter - 1), rootsErrorf(opFindND, err)
		}
		if !f.Jacobian(s.x, jac) {
			s.forwardJacobian(jac, o.jacStep)
		}
		g, gErr := gradient(jac, s.fvec)
		if gErr != nil {
			return res(iter), rootsErrorf(opFindND, gErr)
		}
		copy(xOld, s.x)
		fOld = s.fmin
		for i = range p {
			p[i] = -s.fvec[i]
		}

		pivots, singular, luErr := matrix.LU(jac)
		if luErr != nil {
			return res(iter), rootsErrorf(opFindND, luErr)
		}
		if singular != matrix.NoSingularPivot {
			return res(iter), rootsErrorf(opFindND, fmt.Errorf("zero pivot %d: %w", singular, ErrSingular))
		}
		if err = matrix.LUSolve(jac, pivots, p, false); err != nil {
			return res(iter), rootsErrorf(opFindND, fmt.Errorf("%w: %w", ErrSingular, err))
		}

		check, err = s.lineSearch(xOld, fOld, g, p, stpmax, o.xTol)
		if err != nil {
			return res(iter), rootsErrorf(opFindND, err)
		}

		if maxAbs(s.fvec) < o.fTol {
			return res(iter), nil
		}
		if check {
			// stalled: spurious minimum when the scaled gradient vanishes
			test = 0
			den = math.Max(s.fmin, 0.5*float64(n))
			for i = 0; i < n; i++ {
				test = math.Max(test, math.Abs(g[i])*math.Max(math.Abs(s.x[i]), 1)/den)
			}
			if test < o.minTol {
				return res(iter), rootsErrorf(opFindND, ErrLocalMinimum)
			}

			return res(iter), nil
		}
		test = 0
		for j = 0; j < n; j++ {
			test = math.Max(test, math.Abs(s.x[j]-xOld[j])/math.Max(math.Abs(s.x[j]), 1))
		}
		if test < o.xTol {
			return res(iter), nil
		}
	}

	return res(o.maxIter), rootsErrorf(opFindND, fmt.Errorf("after %d iterations: %w", o.maxIter, ErrNoConvergence))
}

// gradient returns ∇(½|F|²) = Jᵗ·F.
func gradient(jac *matrix.Dense, fvec []float64) ([]float64, error) {
	jt, err := matrix.Transpose(jac)
	if err != nil {
		return nil, err
	}

	return matrix.MatVec(jt, fvec)
}

// ndState holds the current point, F at that point and ½|F|².
type ndState struct {
	f    function.VectorFunc
	x    []float64
	fvec []float64
	fmin float64
	tmp  []float64
}

func newNDState(f function.VectorFunc, x0 []float64) *ndState {
	n := len(x0)
	s := &ndState{
		f:    f,
		x:    append([]float64(nil), x0...),
		fvec: make([]float64, n),
		tmp:  make([]float64, n),
	}
	s.fmin = s.eval(s.x, s.fvec)

	return s
}

// eval fills y = F(x) and returns ½|y|².
func (s *ndState) eval(x, y []float64) float64 {
	s.f.Evaluate(x, y)

	return 0.5 * matrix.Dot(len(y), y, 1, y, 1)
}

// forwardJacobian fills jac[i][j] ≈ ∂Fᵢ/∂xⱼ at s.x using s.fvec = F(s.x).
func (s *ndState) forwardJacobian(jac *matrix.Dense, step float64) {
	n := len(s.x)
	var h, xj float64
	var i int
	for j := 0; j < n; j++ {
		xj = s.x[j]
		h = step * math.Abs(xj)
		if h == 0 {
			h = step
		}
		s.x[j] = xj + h
		// exactly representable step
		h = s.x[j] - xj
		s.f.Evaluate(s.x, s.tmp)
		s.x[j] = xj
		for i = 0; i < n; i++ {
			jac.RawRow(i)[j] = (s.tmp[i] - s.fvec[i]) / h
		}
	}
}

// lineSearch moves s.x from xOld along p until ½|F|² decreases sufficiently.
// It returns check == true when the step became negligible and x was reset
// to xOld.
func (s *ndState) lineSearch(xOld []float64, fOld float64, g, p []float64, stpmax, xTol float64) (bool, error) {
	n := len(xOld)
	if norm := math.Sqrt(matrix.Dot(n, p, 1, p, 1)); norm > stpmax {
		// scale if attempted step is too big
		matrix.Scal(n, stpmax/norm, p, 1)
	}
	slope := matrix.Dot(n, g, 1, p, 1)
	if slope >= 0 {
		return false, fmt.Errorf("slope=%g: %w", slope, ErrRoundoff)
	}
	test := 0.0
	for i := 0; i < n; i++ {
		test = math.Max(test, math.Abs(p[i])/math.Max(math.Abs(xOld[i]), 1))
	}
	alamin := xTol / test

	fvecOld := append([]float64(nil), s.fvec...)
	alam := 1.0
	havePrev := false
	var alam2, f2, tmplam, a, b, rhs1, rhs2, disc float64
	for {
		for i := 0; i < n; i++ {
			s.x[i] = xOld[i] + alam*p[i]
		}
		s.fmin = s.eval(s.x, s.fvec)

		if alam < alamin {
			// convergence on Δx; caller decides root vs spurious minimum
			copy(s.x, xOld)
			copy(s.fvec, fvecOld)
			s.fmin = fOld

			return true, nil
		}
		if s.fmin <= fOld+alf*alam*slope {
			return false, nil
		}

		switch {
		case math.IsNaN(s.fmin) || math.IsInf(s.fmin, 0):
			tmplam = 0.1 * alam
		case !havePrev:
			// first backtrack: minimum of the quadratic model
			tmplam = -slope / (2 * (s.fmin - fOld - slope))
		default:
			rhs1 = s.fmin - fOld - alam*slope
			rhs2 = f2 - fOld - alam2*slope
			a = (rhs1/(alam*alam) - rhs2/(alam2*alam2)) / (alam - alam2)
			b = (-alam2*rhs1/(alam*alam) + alam*rhs2/(alam2*alam2)) / (alam - alam2)
			if a == 0 {
				tmplam = -slope / (2 * b)
			} else {
				disc = b*b - 3*a*slope
				switch {
				case disc < 0:
					tmplam = 0.5 * alam
				case b <= 0:
					tmplam = (-b + math.Sqrt(disc)) / (3 * a)
				default:
					tmplam = -slope / (b + math.Sqrt(disc))
				}
			}
			if tmplam > 0.5*alam {
				tmplam = 0.5 * alam
			}
		}
		if !math.IsNaN(s.fmin) && !math.IsInf(s.fmin, 0) {
			alam2, f2 = alam, s.fmin
			havePrev = true
		}
		alam = math.Max(tmplam, 0.1*alam)
	}
}

// maxAbs returns max |vᵢ|.
func maxAbs(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}

	return math.Abs(v[matrix.Iamax(len(v), v, 1)])
}
