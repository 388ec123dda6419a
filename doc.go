// SPDX-License-Identifier: MIT

// Package sketchsolve is a small 2D geometric-constraint solver core: points,
// equality constraints among their coordinates, and a search for an
// assignment that satisfies them.
//
// What is inside?
//
//	expr/       - immutable expression graphs, exact evaluation and exact
//	              symbolic differentiation, simplified while they are built
//	constraint/ - a residual plus its first and second partials, combined
//	              into one objective and evaluated numerically
//	minimize/   - damped per-coordinate Newton search with an iteration cap
//	              and typed termination conditions
//	solver/     - the registry users talk to: points, constraints, Solve,
//	              rigidity classification, single-constraint exclusion search,
//	              YAML/env configuration and OpenTelemetry instrumentation
//
// Quick example:
//
//	s := solver.New()
//	p := s.AddPoint()
//	s.AddConstraint(expr.Equals(expr.VarOf(p.X), expr.Num(3)))
//	s.AddConstraint(expr.Equals(expr.VarOf(p.Y), expr.Num(2)))
//	sols, err := s.Solve(ctx, expr.Assignment{p.X: 1, p.Y: 1})
//	// sols[0].Def[p.X] ≈ 3, sols[0].PointStatus[p] == solver.Stable
//
// Constraints are residual expressions: zero where the constraint holds and
// positive elsewhere. expr.Equals(a, b) = (a-b)² is the usual way to write
// one. There is no parser; expressions are built with the expr constructors.
package sketchsolve
