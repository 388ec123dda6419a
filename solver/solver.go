// SPDX-License-Identifier: MIT

package solver

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/katalvlaran/sketchsolve/constraint"
	"github.com/katalvlaran/sketchsolve/expr"
	"github.com/katalvlaran/sketchsolve/minimize"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Solution is one satisfying assignment together with the per-point verdict.
type Solution struct {
	// Def is the final assignment.
	Def expr.Assignment

	// PointStatus holds the verdict for every point registered at Solve time.
	PointStatus map[constraint.Point]Status

	// Excluded lists the constraints dropped to reach this solution.
	Excluded []Handle

	// ExcludedConstraints holds the dropped constraints, parallel to Excluded.
	ExcludedConstraints []*constraint.Constraint

	// Condition is the minimizer condition of the run that produced Def.
	Condition minimize.Condition

	// Iterations counts the accepted steps of that run.
	Iterations int

	// Cost is the residual at Def.
	Cost float64
}

type entry struct {
	handle Handle
	c      *constraint.Constraint
}

// Solver is a registry of points and constraints.
type Solver struct {
	mu      sync.RWMutex
	arena   *expr.Arena
	points  constraint.Universe
	entries []entry

	opts Options
	tel  *telemetry
}

// New returns an empty Solver configured by opts.
func New(opts ...Option) *Solver {
	o := gatherOptions(opts...)

	return &Solver{
		arena: expr.NewArena(),
		opts:  o,
		tel:   newTelemetry(o),
	}
}

// AddPoint allocates two fresh variables and registers them as a point.
func (s *Solver) AddPoint() constraint.Point {
	p := constraint.Point{X: s.arena.NewVariable(), Y: s.arena.NewVariable()}

	s.mu.Lock()
	s.points = append(s.points, p)
	s.mu.Unlock()

	return p
}

// Points returns the registered points in registration order.
func (s *Solver) Points() []constraint.Point {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]constraint.Point, len(s.points))
	copy(out, s.points)

	return out
}

// NewVariable allocates a free scalar variable that belongs to no point, for
// auxiliary unknowns such as a shared radius. The starting assignment must
// bind it like any point coordinate.
func (s *Solver) NewVariable() expr.Variable { return s.arena.NewVariable() }

// AddConstraint differentiates e against the current points and stores it.
// e is a residual: zero where the constraint holds, positive elsewhere.
// A nil e panics.
func (s *Solver) AddConstraint(e expr.Expr) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := newHandle()
	s.entries = append(s.entries, entry{handle: h, c: constraint.Build(e, s.points)})

	return h
}

// RemoveConstraint drops the constraint behind h and reports whether it was
// present.
func (s *Solver) RemoveConstraint(h Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.handle == h {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}

	return false
}

// Constraints returns the number of stored constraints.
func (s *Solver) Constraints() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// snapshot copies the registry so a solve runs without holding the lock.
func (s *Solver) snapshot() ([]constraint.Point, []entry) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	points := make([]constraint.Point, len(s.points))
	copy(points, s.points)
	entries := make([]entry, len(s.entries))
	copy(entries, s.entries)

	return points, entries
}

// Solve searches from initial for an assignment satisfying every
// constraint. initial must bind every variable the constraints reference.
//
// It returns one Solution when the full system, or exactly one
// single-constraint exclusion, solves; an empty slice when the exclusion
// search is ambiguous. With no constraints the initial assignment is
// returned as Solved with every point Under.
//
// Errors wrap expr.ErrMissingVariable, expr.ErrDivisionByZero,
// expr.ErrNonFinite or the context's error.
func (s *Solver) Solve(ctx context.Context, initial expr.Assignment) ([]Solution, error) {
	start := time.Now()
	points, entries := s.snapshot()

	ctx, span := s.tel.tracer.Start(ctx, "Solver.Solve",
		trace.WithAttributes(
			attribute.Int("point_count", len(points)),
			attribute.Int("constraint_count", len(entries)),
		),
	)
	defer span.End()

	sols, result, err := s.solve(ctx, initial, points, entries)
	s.tel.recordSolve(ctx, time.Since(start), result)
	span.SetAttributes(
		attribute.String("result", result),
		attribute.Int("solution_count", len(sols)),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return sols, nil
}

func (s *Solver) solve(ctx context.Context, initial expr.Assignment, points []constraint.Point, entries []entry) ([]Solution, string, error) {
	if len(entries) == 0 {
		status := make(map[constraint.Point]Status, len(points))
		for _, p := range points {
			status[p] = Under
		}
		return []Solution{{
			Def:         initial.Clone(),
			PointStatus: status,
			Condition:   minimize.Solved,
		}}, resultSolved, nil
	}

	out, err := minimize.Run(ctx, initial, combineExcept(entries, -1), s.opts.minimizeOptions())
	if err != nil {
		return nil, resultError, fmt.Errorf("solver: %w", err)
	}
	s.tel.recordRun(ctx, out.Iterations, out.Condition.String(), false)

	if out.Condition == minimize.Solved {
		return []Solution{s.solution(out, points)}, resultSolved, nil
	}

	s.opts.logger.DebugContext(ctx, "solver starting exclusion search",
		slog.String("condition", out.Condition.String()),
		slog.Float64("cost", out.Cost),
		slog.Int("constraints", len(entries)),
	)

	return s.exclusionSearch(ctx, initial, points, entries)
}

// StartAt is Solve without an error return: failures are logged and yield
// an empty list.
func (s *Solver) StartAt(initial expr.Assignment) []Solution {
	sols, err := s.Solve(context.Background(), initial)
	if err != nil {
		s.opts.logger.Warn("solver: solve failed", slog.String("error", err.Error()))
		return []Solution{}
	}

	return sols
}

// solution classifies the points at a Solved outcome.
func (s *Solver) solution(out minimize.Outcome, points []constraint.Point) Solution {
	return Solution{
		Def:         out.Assignment,
		PointStatus: classify(out.Result, points, s.opts.rigidityTolerance),
		Condition:   out.Condition,
		Iterations:  out.Iterations,
		Cost:        out.Cost,
	}
}

// combineExcept combines every entry but the one at skip.
func combineExcept(entries []entry, skip int) *constraint.Constraint {
	cs := make([]*constraint.Constraint, 0, len(entries))
	for i, e := range entries {
		if i != skip {
			cs = append(cs, e.c)
		}
	}

	return constraint.Combine(cs...)
}
