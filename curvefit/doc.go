// SPDX-License-Identifier: MIT

// Package curvefit fits a linear combination of basis functions to weighted
// data in the least-squares sense:
//
//	minimize χ² = Σᵢ ((yᵢ − Σⱼ aⱼ·Xⱼ(xᵢ)) / σᵢ)²
//
// The design matrix Aᵢⱼ = Xⱼ(xᵢ)/σᵢ is decomposed by matrix.SVD; singular
// values below tol·max(w) are zeroed before back-substitution, so a
// rank-deficient basis yields the minimum-norm solution instead of garbage.
// The coefficient covariance is V·diag(1/w²)·Vᵗ over the kept values.
//
// A nil basis means a polynomial of the configured degree (default 2).
package curvefit
