// SPDX-License-Identifier: MIT

// Package minimize drives a combined constraint towards zero residual with a
// damped, per-coordinate Newton search.
//
// Each iteration moves every variable independently along its own axis,
//
//	v' = v - step * fx / (∂fx/∂v)      (unchanged where the slope is 0)
//
// starting from step = 1 and halving until the observed cost change is
// within step·‖∇fx‖. This is a one-dimensional Newton step per coordinate,
// not a full Hessian solve, and the acceptance bound is a size bound rather
// than a sufficient-decrease condition.
//
// Termination is tested before every iteration, in this order:
//
//	Solved                 |fx| < ε
//	Local                  every |∂fx/∂v| < ε
//	NoProgress             the last accepted step changed the cost by less than ε
//	MaxIterationsExceeded  the iteration cap was reached
//
// Run honours context cancellation between iterations, opens one trace span
// per call and emits debug records through the configured slog.Logger.
package minimize
