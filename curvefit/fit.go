// SPDX-License-Identifier: MIT

package curvefit

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvnum/function"
	"github.com/katalvlaran/lvnum/matrix"
)

const opFit = "Fit"

// Result is a fitted model.
type Result struct {
	// Coefficients aⱼ of the basis functions.
	Coefficients []float64
	// ChiSquare is the weighted residual sum of squares.
	ChiSquare float64
	// SingularValues of the weighted design matrix, after truncation.
	SingularValues []float64
	// Covariance of the coefficients (len×len).
	Covariance *matrix.Dense
	// Rank is the number of singular values kept.
	Rank int

	basis function.Basis
}

// Eval returns the fitted model at x.
func (r Result) Eval(x float64) float64 {
	if r.basis == nil || len(r.Coefficients) == 0 {
		return math.NaN()
	}
	row := make([]float64, len(r.Coefficients))
	r.basis.EvaluateBasis(x, row)

	return floats.Dot(row, r.Coefficients)
}

// StdErr returns √Covariance[j][j], the standard error of coefficient j.
func (r Result) StdErr(j int) float64 {
	v, err := r.Covariance.At(j, j)
	if err != nil {
		return math.NaN()
	}

	return math.Sqrt(v)
}

// Fit performs a weighted linear least-squares fit of basis to (x, y).
//
// sigma holds per-point standard deviations; nil means unit weights.
// basis nil means function.NewPowerBasis(degree).
//
// Errors: ErrDimensionMismatch, ErrTooFewPoints, ErrInvalidSigma,
// ErrInvalidData, and matrix.ErrNoConvergence from the decomposition.
func Fit(x, y, sigma []float64, basis function.Basis, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	if basis == nil {
		basis = function.NewPowerBasis(o.degree)
	}

	ndata := len(x)
	if len(y) != ndata || (sigma != nil && len(sigma) != ndata) {
		return Result{}, fitErrorf(opFit, ErrDimensionMismatch)
	}
	ma := basis.MinimumCoefficients()
	if ma <= 0 || ndata < ma {
		return Result{}, fitErrorf(opFit, ErrTooFewPoints)
	}
	if hasNonFinite(x) || hasNonFinite(y) {
		return Result{}, fitErrorf(opFit, ErrInvalidData)
	}
	for _, s := range sigma {
		if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
			return Result{}, fitErrorf(opFit, ErrInvalidSigma)
		}
	}

	u, err := matrix.NewDense(ndata, ma)
	if err != nil {
		return Result{}, fitErrorf(opFit, err)
	}
	b := make([]float64, ndata)
	for i := 0; i < ndata; i++ {
		row := u.RawRow(i)
		basis.EvaluateBasis(x[i], row)
		tmp := 1.0
		if sigma != nil {
			tmp = 1 / sigma[i]
		}
		floats.Scale(tmp, row)
		if hasNonFinite(row) {
			return Result{}, fitErrorf(opFit, ErrInvalidData)
		}
		b[i] = y[i] * tmp
	}

	w, v, err := matrix.SVD(u)
	if err != nil {
		return Result{}, fitErrorf(opFit, err)
	}
	rank := matrix.TruncateSingular(w, o.tol)
	a, err := matrix.SVBackSub(u, w, v, b)
	if err != nil {
		return Result{}, fitErrorf(opFit, err)
	}

	cvm, err := covariance(v, w)
	if err != nil {
		return Result{}, fitErrorf(opFit, err)
	}

	res := Result{
		Coefficients:   a,
		SingularValues: w,
		Covariance:     cvm,
		Rank:           rank,
		basis:          basis,
	}

	row := make([]float64, ma)
	resid := make([]float64, ndata)
	for i := 0; i < ndata; i++ {
		basis.EvaluateBasis(x[i], row)
		resid[i] = y[i] - floats.Dot(row, a)
		if sigma != nil {
			resid[i] /= sigma[i]
		}
	}
	res.ChiSquare = floats.Dot(resid, resid)

	return res, nil
}

// covariance returns V·diag(1/w²)·Vᵗ, skipping zeroed singular values.
func covariance(v *matrix.Dense, w []float64) (*matrix.Dense, error) {
	wti := make([]float64, len(w))
	for k, wk := range w {
		if wk != 0 {
			wti[k] = 1 / (wk * wk)
		}
	}
	scaled := v.CloneDense()
	for i := 0; i < scaled.Rows(); i++ {
		floats.Mul(scaled.RawRow(i), wti)
	}
	vt, err := matrix.Transpose(v)
	if err != nil {
		return nil, err
	}

	return matrix.Mul(scaled, vt)
}

func hasNonFinite(s []float64) bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}

	return false
}
