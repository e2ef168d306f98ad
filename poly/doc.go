// SPDX-License-Identifier: MIT

// Package poly represents polynomials with complex coefficients and finds all
// of their zeros with the three-stage Jenkins–Traub algorithm.
//
// A Polynomial stores coefficients in increasing power:
//
//	p(z) = c[0] + c[1]·z + … + c[n]·zⁿ
//
// Zeros returns the n roots of p as a fresh slice, leaving p untouched.
// Roots exactly at the origin are stripped before the iteration and reported
// first; the remaining roots follow in the order they were deflated (roughly
// smallest modulus first).
//
// Algorithm (per root):
//  1. scale the coefficients by a power of two when they are extreme,
//  2. stage 1: five no-shift H-polynomials,
//  3. stage 2: fixed shifts of modulus equal to a Cauchy lower bound, rotated
//     94° per attempt, at most 9 attempts in each of 2 passes, with a weak
//     convergence test on successive t = −p(s)/h(s),
//  4. stage 3: variable-shift iteration s ← s + t, stopped by a rounding-error
//     bound on the Horner evaluation of p(s),
//  5. deflate and repeat; the last root of a linear factor is explicit.
//
// The computation keeps all state in a per-call value; concurrent calls on
// the same Polynomial are safe.
//
// Errors: ErrEmpty, ErrLeadingZero, ErrNoConvergence.
package poly
