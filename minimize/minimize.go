// SPDX-License-Identifier: MIT

package minimize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/sketchsolve/constraint"
	"github.com/katalvlaran/sketchsolve/expr"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Outcome is the final state of a Run.
type Outcome struct {
	// Assignment is the last accepted assignment. It never aliases the
	// initial assignment passed to Run.
	Assignment expr.Assignment

	// Result is the constraint evaluated at Assignment.
	Result constraint.Result

	// Condition is why the search stopped.
	Condition Condition

	// Iterations counts accepted steps.
	Iterations int

	// Cost is Result.Fx.
	Cost float64
}

// Run searches for an assignment that zeroes c, starting from initial.
//
// Every variable bound by initial is moved; variables without a Dfdx entry
// keep their value. initial itself is never modified.
//
// Errors:
//
//   - ErrNilConstraint when c is nil.
//   - expr.ErrMissingVariable, expr.ErrDivisionByZero or expr.ErrNonFinite
//     (wrapped) when the constraint cannot be evaluated at an accepted
//     assignment.
//   - ctx.Err() when the context is done between iterations.
//
// A proposed step whose cost cannot be evaluated is treated as too long and
// the step is halved again; once the step underflows to zero the current
// assignment is kept, which the NoProgress test then reports.
func Run(ctx context.Context, initial expr.Assignment, c *constraint.Constraint, opts Options) (Outcome, error) {
	opts.Validate()

	ctx, span := opts.Tracer.Start(ctx, "minimize.Run",
		trace.WithAttributes(
			attribute.Int("variable_count", len(initial)),
			attribute.Int("max_iterations", opts.MaxIterations),
			attribute.Float64("epsilon", opts.Epsilon),
		),
	)
	defer span.End()

	if c == nil {
		return fail(span, ErrNilConstraint)
	}

	cur := initial.Clone()
	res, err := constraint.Evaluate(c, cur)
	if err != nil {
		return fail(span, fmt.Errorf("minimize: initial assignment: %w", err))
	}

	vars := cur.Variables()
	diff := math.MaxFloat64
	debug := opts.Logger.Enabled(ctx, slog.LevelDebug)

	for iter := 0; ; iter++ {
		if cond := terminal(res, diff, opts.Epsilon); cond != running {
			return finish(ctx, span, opts.Logger, cur, res, cond, iter), nil
		}
		if err := ctx.Err(); err != nil {
			return fail(span, err)
		}
		if iter >= opts.MaxIterations {
			return finish(ctx, span, opts.Logger, cur, res, MaxIterationsExceeded, iter), nil
		}

		next, d, step, err := backtrack(c, cur, vars, res)
		if err != nil {
			return fail(span, fmt.Errorf("minimize: iteration %d: %w", iter, err))
		}
		nextRes, err := constraint.Evaluate(c, next)
		if err != nil {
			return fail(span, fmt.Errorf("minimize: iteration %d: %w", iter, err))
		}
		cur, res, diff = next, nextRes, d

		if debug {
			opts.Logger.DebugContext(ctx, "minimize step",
				slog.Int("iteration", iter+1),
				slog.Float64("fx", res.Fx),
				slog.Float64("diff", diff),
				slog.Float64("step", step),
			)
		}
	}
}

// backtrack halves the step from 1 until the observed cost change is within
// step·‖∇fx‖, returning the accepted assignment, the cost change and the
// step that produced it.
func backtrack(c *constraint.Constraint, cur expr.Assignment, vars []expr.Variable, res constraint.Result) (expr.Assignment, float64, float64, error) {
	threshold := constraint.GradientNorm(res)

	for step := 1.0; step > 0; {
		next := make(expr.Assignment, len(vars))
		for _, v := range vars {
			val := cur[v]
			if slope := res.Dfdx[v]; slope != 0 {
				val -= step * (res.Fx / slope)
			}
			next[v] = val
		}

		tried := step
		step /= 2

		cost, err := constraint.Cost(c, next)
		switch {
		case errors.Is(err, expr.ErrNonFinite), errors.Is(err, expr.ErrDivisionByZero):
			continue
		case err != nil:
			return nil, 0, 0, err
		}

		diff := math.Abs(res.Fx - cost)
		if diff <= step*threshold {
			return next, diff, tried, nil
		}
	}

	return cur.Clone(), 0, 0, nil
}

// terminal applies the termination tests in priority order.
func terminal(res constraint.Result, diff, eps float64) Condition {
	if math.Abs(res.Fx) < eps {
		return Solved
	}
	flat := true
	for _, g := range res.Dfdx {
		if math.Abs(g) >= eps {
			flat = false
			break
		}
	}
	if flat {
		return Local
	}
	if diff < eps {
		return NoProgress
	}

	return running
}

func finish(ctx context.Context, span trace.Span, logger *slog.Logger, a expr.Assignment, res constraint.Result, cond Condition, iter int) Outcome {
	span.SetAttributes(
		attribute.String("condition", cond.String()),
		attribute.Int("iterations", iter),
		attribute.Float64("cost", res.Fx),
	)
	logger.DebugContext(ctx, "minimize finished",
		slog.String("condition", cond.String()),
		slog.Int("iterations", iter),
		slog.Float64("cost", res.Fx),
	)

	return Outcome{
		Assignment: a,
		Result:     res,
		Condition:  cond,
		Iterations: iter,
		Cost:       res.Fx,
	}
}

func fail(span trace.Span, err error) (Outcome, error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	return Outcome{}, err
}
