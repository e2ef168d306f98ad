// Package matrix is the dense linear-algebra kernel of lvnum.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with error-returning accessors.
//   - BLAS level-1 primitives on strided slices (Dot, Axpy, Scal, Swap, Iamax,
//     Asum), backed by gonum's blas64.
//   - LU factorization with partial pivoting (LU), forward/back substitution
//     for A·x = b and Aᵗ·x = b (LUSolve), a one-norm reciprocal condition
//     estimate (Condition), and determinant/inverse extraction.
//   - Singular Value Decomposition A = U·W·Vᵗ (SVD) with a rank-truncating
//     back-substitution solve (SVDSolve).
//   - Mul, Transpose and MatVec for assembling and checking results.
//
// Factorizations overwrite the matrix passed in and hand auxiliary outputs
// (pivots, singular values, V) back to the caller. Nothing is retained across
// calls, so independent goroutines may use the package concurrently as long as
// they do not share a *Dense.
package matrix
