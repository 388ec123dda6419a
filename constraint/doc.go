// SPDX-License-Identifier: MIT

// Package constraint turns a scalar residual expression into the symbolic
// bundle the minimizer consumes, and evaluates that bundle numerically.
//
// A Constraint carries, next to the residual Fx, three derivative maps built
// against a Universe of points:
//
//	Dfdx[v]  = ∂Fx/∂v              for every variable v
//	Dfdxx[v] = ∂²Fx/∂v²            for every variable v
//	Dfdxy[p] = ∂²Fx/∂p.X∂p.Y       for every point p
//
// Entries are present for every variable of the universe, not only the ones
// Fx mentions; an unrelated variable simply maps to the literal 0. Variables
// that Fx references but that belong to no point (free scalars) get Dfdx and
// Dfdxx entries too.
//
// Combine sums constraints key by key, a missing key counting as zero, which
// is how a system of constraints becomes the single objective the minimizer
// drives to zero. Combining nothing yields the zero constraint.
//
// Evaluate and Cost never propagate NaN or Inf: expression errors come back
// wrapped with the map entry that failed, so errors.Is still matches the
// expr sentinels.
//
// Example:
//
//	u := constraint.Universe{p}
//	c := constraint.Build(expr.Equals(expr.VarOf(p.X), expr.Num(3)), u)
//	r, err := constraint.Evaluate(c, expr.Assignment{p.X: 1, p.Y: 1})
package constraint
