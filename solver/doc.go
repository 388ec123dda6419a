// SPDX-License-Identifier: MIT

// Package solver is the public surface of sketchsolve: a registry of points
// and constraints that searches for an assignment satisfying all of them and
// reports, per point, whether the result pins it down.
//
// A Solver owns an expr.Arena, so variables from different solvers never
// collide. Points are pairs of fresh variables; constraints are residual
// expressions (usually built with expr.Equals) differentiated once, when
// they are added, against the points registered at that time.
//
// Solve combines every constraint into one objective, runs the local
// minimizer from the supplied starting assignment and classifies each point
// with the second-derivative test
//
//	h = fxx·fyy - fxy²
//
// Under when |h| is negligible next to (|fxx|+|fyy|)², Stable otherwise.
//
// When the combined system does not reach Solved, Solve retries once per
// constraint with exactly that constraint left out, all retries starting
// from the same assignment and running concurrently. If exactly one retry
// solves, its Solution is returned with the left-out constraint recorded and
// every point that constraint references marked Over. If none or several
// solve, the system is ambiguous and no Solution is returned.
//
// Solve reports evaluation failures and context cancellation as errors.
// StartAt keeps the older contract: it never fails, logs the error and
// returns an empty list instead.
//
// Configuration comes from functional options (WithMaxIterations,
// WithEpsilon, ...) or from a YAML file plus SKETCHSOLVE_* environment
// overrides via LoadConfig. Solves are traced and measured through
// OpenTelemetry; inject providers with WithTracerProvider and
// WithMeterProvider.
//
// A Solver is safe for concurrent use.
package solver
