// Package lvnum is a small numerical-methods toolkit: root finding,
// minimization, polynomial zeros, quadrature, ODE integration, dense
// linear algebra and least-squares fitting on plain float64 slices.
//
// 🚀 What is lvnum?
//
//	A deterministic, allocation-aware kernel set that brings together:
//		• Function contracts: Func1D, FuncND, VectorFunc, Basis, Derivs
//		• Linear algebra: LU with condition estimate, SVD, least squares
//		• Roots: bracket search, Brent, safeguarded Newton, Aitken, N-D Newton
//		• Minimization: bracketing, Brent (with and without derivative), Powell, CG
//		• Polynomials: all complex zeros by Jenkins–Traub
//		• Quadrature: trapezoid, Simpson, Gauss–Legendre, adaptive Gauss–Lobatto
//		• ODEs: fixed-step RK4 and adaptive Cash–Karp RK45 drivers
//		• Curve fitting: weighted linear least squares over any basis via SVD
//		• Stats: moments, percentiles, quartiles and regression slope of a sample
//		• Series: truncated Taylor series with a convergence report
//
// Everything is organized under one package per concern:
//
//	function/ — callable contracts and adapters shared by every solver
//	matrix/   — Dense, BLAS level-1 helpers, LU, SVD
//	roots/    — one-dimensional and N-dimensional root finders
//	minimize/ — one-dimensional and N-dimensional minimizers
//	poly/     — complex polynomials and their zeros
//	quad/     — definite integrals of Func1D
//	ode/      — Runge–Kutta integrators
//	curvefit/ — linear least-squares fits
//	stats/    — descriptive statistics
//	series/   — Taylor series usable as a Func1D
//	cmd/lvnum — command-line front end (zeros, fit, integrate, solve, stats)
//
// Quick example:
//
//	f := function.Scalar(func(x float64) float64 { return x*x - 2 })
//	r, _ := roots.Find(f, roots.NewBracket(1, 2), 1e-12)
//	// r ≈ 1.41421356237
//
// Every solver is a pure function of its inputs: nothing is cached between
// calls and independent goroutines may call any of them concurrently.
//
//	go get github.com/katalvlaran/lvnum
package lvnum
