// SPDX-License-Identifier: MIT

// Package series evaluates truncated Taylor series
//
//	P(x) = Σₖ f⁽ᵏ⁾(x₀)/k! · (x − x₀)ᵏ,  k = 0..degree
//
// from the derivatives of f at the center x₀. Evaluation stops early once a
// non-zero term falls below the tolerance, and reports how many terms were
// used and whether that happened (Evaluation).
//
// A *Taylor satisfies function.Func1D: its derivative is the series built
// from the shifted derivative list, so it can be handed straight to the root
// finders and minimizers.
//
// Ready-made expansions about 0: Sin, Cos and Exp.
package series
