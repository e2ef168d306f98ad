// SPDX-License-Identifier: MIT

// Package ode integrates systems of first-order ordinary differential
// equations y' = f(x, y) with explicit Runge–Kutta methods.
//
//   - RungeKutta4: classic fixed-step fourth-order scheme.
//   - RungeKutta45: adaptive Cash–Karp fifth-order scheme with an embedded
//     fourth-order error estimate driving the step size.
//
// Both integrators keep scratch buffers and step-size history as instance
// state so a stream of calls does not allocate. An instance must not be used
// from more than one goroutine at a time; create one per integration stream.
//
// Integrate advances y in place to an end point, or until a StopPredicate
// fires, and reports why it returned in Result.Reason. A state that turns NaN
// or infinite ends the integration early without an error (Reason NonFinite);
// exceeding the step cap is an error (ErrMaxSteps, Reason MaxSteps).
package ode
