// SPDX-License-Identifier: MIT

package solver_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"testing"

	"github.com/katalvlaran/sketchsolve/constraint"
	"github.com/katalvlaran/sketchsolve/expr"
	"github.com/katalvlaran/sketchsolve/minimize"
	"github.com/katalvlaran/sketchsolve/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)) }

func newSolver(opts ...solver.Option) *solver.Solver {
	return solver.New(append([]solver.Option{solver.WithLogger(discard())}, opts...)...)
}

func pinX(p constraint.Point, v float64) expr.Expr { return expr.Equals(expr.VarOf(p.X), expr.Num(v)) }
func pinY(p constraint.Point, v float64) expr.Expr { return expr.Equals(expr.VarOf(p.Y), expr.Num(v)) }

func unitCircle(p constraint.Point) expr.Expr {
	return expr.Equals(expr.AddOf(expr.Squared(expr.VarOf(p.X)), expr.Squared(expr.VarOf(p.Y))), expr.Num(1))
}

func at(p constraint.Point, x, y float64) expr.Assignment {
	return expr.Assignment{p.X: x, p.Y: y}
}

func TestSolve_FixedPointIsStable(t *testing.T) {
	s := newSolver()
	p := s.AddPoint()
	s.AddConstraint(pinX(p, 3))
	s.AddConstraint(pinY(p, 2))

	sols, err := s.Solve(context.Background(), at(p, 1, 1))
	require.NoError(t, err)
	require.Len(t, sols, 1)
	sol := sols[0]
	assert.Equal(t, minimize.Solved, sol.Condition)
	assert.InDelta(t, 3, sol.Def[p.X], 1e-6)
	assert.InDelta(t, 2, sol.Def[p.Y], 1e-6)
	assert.Equal(t, solver.Stable, sol.PointStatus[p])
	assert.Empty(t, sol.Excluded)
	assert.Positive(t, sol.Iterations)
}

func TestSolve_CircleIsUnder(t *testing.T) {
	s := newSolver()
	p := s.AddPoint()
	s.AddConstraint(unitCircle(p))

	sols, err := s.Solve(context.Background(), at(p, 1, 1))
	require.NoError(t, err)
	require.Len(t, sols, 1)
	x, y := sols[0].Def[p.X], sols[0].Def[p.Y]
	assert.Equal(t, minimize.Solved, sols[0].Condition)
	assert.InDelta(t, 1, x*x+y*y, 1e-7)
	assert.InDelta(t, 1/math.Sqrt2, x, 1e-6)
	assert.InDelta(t, 1/math.Sqrt2, y, 1e-6)
	assert.Equal(t, solver.Under, sols[0].PointStatus[p])
}

// TestSolve_ContradictionExcludesCircle pins the exclusion verdict for
// x=3, y=2, x²+y²=1 from (1,1): only dropping the circle solves, so the
// circle is reported and the point is Over.
func TestSolve_ContradictionExcludesCircle(t *testing.T) {
	s := newSolver()
	p := s.AddPoint()
	s.AddConstraint(pinX(p, 3))
	s.AddConstraint(pinY(p, 2))
	circle := s.AddConstraint(unitCircle(p))

	sols, err := s.Solve(context.Background(), at(p, 1, 1))
	require.NoError(t, err)
	require.Len(t, sols, 1)
	sol := sols[0]
	assert.Equal(t, minimize.Solved, sol.Condition)
	assert.Equal(t, []solver.Handle{circle}, sol.Excluded)
	require.Len(t, sol.ExcludedConstraints, 1)
	assert.Equal(t, []constraint.Point{p}, sol.ExcludedConstraints[0].Points())
	assert.InDelta(t, 3, sol.Def[p.X], 1e-6)
	assert.InDelta(t, 2, sol.Def[p.Y], 1e-6)
	assert.Equal(t, solver.Over, sol.PointStatus[p])
}

// TestSolve_AmbiguousExclusion uses x=3, x=4, y=2 from (3.5, 2.5): dropping
// either pin on x solves, so no Solution is returned.
func TestSolve_AmbiguousExclusion(t *testing.T) {
	s := newSolver()
	p := s.AddPoint()
	s.AddConstraint(pinX(p, 3))
	s.AddConstraint(pinX(p, 4))
	s.AddConstraint(pinY(p, 2))

	sols, err := s.Solve(context.Background(), at(p, 3.5, 2.5))
	require.NoError(t, err)
	assert.NotNil(t, sols)
	assert.Empty(t, sols)

	assert.Empty(t, s.StartAt(at(p, 3.5, 2.5)))
}

func TestSolve_SinglePinLeavesPointUnder(t *testing.T) {
	s := newSolver()
	p := s.AddPoint()
	s.AddConstraint(pinX(p, 3))

	sols, err := s.Solve(context.Background(), at(p, 2.5, 1))
	require.NoError(t, err)
	require.Len(t, sols, 1)
	assert.Equal(t, minimize.Solved, sols[0].Condition)
	assert.InDelta(t, 3, sols[0].Def[p.X], 1e-6)
	assert.Equal(t, 1.0, sols[0].Def[p.Y], "unconstrained coordinate does not move")
	assert.Equal(t, solver.Under, sols[0].PointStatus[p])
}

// TestSolve_TwoPointsRelative pins p to (1,2) and q to p + (3,0).
func TestSolve_TwoPointsRelative(t *testing.T) {
	s := newSolver()
	p, q := s.AddPoint(), s.AddPoint()
	s.AddConstraint(pinX(p, 1))
	s.AddConstraint(pinY(p, 2))
	s.AddConstraint(expr.Equals(expr.SubOf(expr.VarOf(q.X), expr.VarOf(p.X)), expr.Num(3)))
	s.AddConstraint(expr.Equals(expr.VarOf(q.Y), expr.VarOf(p.Y)))

	initial := expr.Assignment{p.X: 1, p.Y: 2, q.X: 4, q.Y: 2.5}
	sols, err := s.Solve(context.Background(), initial)
	require.NoError(t, err)
	require.Len(t, sols, 1)
	sol := sols[0]
	assert.Equal(t, minimize.Solved, sol.Condition)
	assert.InDelta(t, 4, sol.Def[q.X], 1e-6)
	assert.InDelta(t, 2, sol.Def[q.Y], 1e-6)
	assert.Equal(t, solver.Stable, sol.PointStatus[p])
	assert.Equal(t, solver.Stable, sol.PointStatus[q])
}

func TestSolve_FreeVariable(t *testing.T) {
	s := newSolver()
	p := s.AddPoint()
	r := s.NewVariable()
	s.AddConstraint(expr.Equals(expr.VarOf(r), expr.Num(3)))

	sols, err := s.Solve(context.Background(), expr.Assignment{p.X: 0, p.Y: 0, r: 2.5})
	require.NoError(t, err)
	require.Len(t, sols, 1)
	assert.InDelta(t, 3, sols[0].Def[r], 1e-6)
	assert.Equal(t, solver.Under, sols[0].PointStatus[p])
	assert.Len(t, s.Points(), 1, "free variables are not points")
}

func TestSolve_NoConstraints(t *testing.T) {
	s := newSolver()
	p := s.AddPoint()

	sols, err := s.Solve(context.Background(), at(p, 5, 6))
	require.NoError(t, err)
	require.Len(t, sols, 1)
	assert.Equal(t, minimize.Solved, sols[0].Condition)
	assert.Equal(t, at(p, 5, 6), sols[0].Def)
	assert.Equal(t, solver.Under, sols[0].PointStatus[p])
}

// TestRemoveConstraint_MatchesFreshSolver removes the circle from the
// contradictory system and compares with a solver that never had it.
func TestRemoveConstraint_MatchesFreshSolver(t *testing.T) {
	s := newSolver()
	p := s.AddPoint()
	s.AddConstraint(pinX(p, 3))
	s.AddConstraint(pinY(p, 2))
	circle := s.AddConstraint(unitCircle(p))

	assert.True(t, s.RemoveConstraint(circle))
	assert.False(t, s.RemoveConstraint(circle), "second removal finds nothing")
	assert.False(t, s.RemoveConstraint(solver.Handle{}))
	assert.Equal(t, 2, s.Constraints())

	fresh := newSolver()
	fp := fresh.AddPoint()
	fresh.AddConstraint(pinX(fp, 3))
	fresh.AddConstraint(pinY(fp, 2))

	got, err := s.Solve(context.Background(), at(p, 1, 1))
	require.NoError(t, err)
	want, err := fresh.Solve(context.Background(), at(fp, 1, 1))
	require.NoError(t, err)

	require.Len(t, got, 1)
	require.Len(t, want, 1)
	assert.Equal(t, want[0].Condition, got[0].Condition)
	assert.Equal(t, want[0].Iterations, got[0].Iterations)
	assert.Equal(t, want[0].Def[fp.X], got[0].Def[p.X])
	assert.Equal(t, want[0].Def[fp.Y], got[0].Def[p.Y])
	assert.Equal(t, want[0].PointStatus[fp], got[0].PointStatus[p])
	assert.Empty(t, got[0].Excluded)
}

// TestSolve_MaxIterations caps every run at one step; neither the full
// system nor any exclusion solves.
func TestSolve_MaxIterations(t *testing.T) {
	s := newSolver(solver.WithMaxIterations(1))
	p := s.AddPoint()
	s.AddConstraint(pinX(p, 3))
	s.AddConstraint(pinY(p, 2))

	sols, err := s.Solve(context.Background(), at(p, 1, 1))
	require.NoError(t, err)
	assert.Empty(t, sols)
}

func TestSolve_Errors(t *testing.T) {
	s := newSolver()
	p := s.AddPoint()
	s.AddConstraint(unitCircle(p))

	_, err := s.Solve(context.Background(), expr.Assignment{p.X: 1})
	assert.ErrorIs(t, err, expr.ErrMissingVariable)

	inv := newSolver()
	q := inv.AddPoint()
	inv.AddConstraint(expr.DivOf(expr.Num(1), expr.VarOf(q.X)))
	_, err = inv.Solve(context.Background(), at(q, 0, 0))
	assert.ErrorIs(t, err, expr.ErrDivisionByZero)

	pinned := newSolver()
	r := pinned.AddPoint()
	pinned.AddConstraint(expr.VarOf(r.X))
	sols, err := pinned.Solve(context.Background(), at(r, math.NaN(), 0))
	assert.ErrorIs(t, err, expr.ErrNonFinite)
	assert.Empty(t, sols)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Solve(ctx, at(p, 1, 1))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStartAt_LogsAndReturnsEmpty(t *testing.T) {
	var buf bytes.Buffer
	s := solver.New(solver.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	p := s.AddPoint()
	s.AddConstraint(unitCircle(p))

	sols := s.StartAt(expr.Assignment{})
	assert.NotNil(t, sols)
	assert.Empty(t, sols)
	assert.Contains(t, buf.String(), "solve failed")
	assert.Contains(t, buf.String(), "variable missing from assignment")

	ok := s.StartAt(at(p, 1, 1))
	require.Len(t, ok, 1)
	assert.Equal(t, solver.Under, ok[0].PointStatus[p])
}

func TestSolver_Registry(t *testing.T) {
	s := newSolver()
	p, q := s.AddPoint(), s.AddPoint()
	assert.Equal(t, []constraint.Point{p, q}, s.Points())
	assert.NoError(t, p.Validate())
	assert.NotEqual(t, p.X, q.X)

	h1 := s.AddConstraint(pinX(p, 1))
	h2 := s.AddConstraint(pinX(q, 1))
	assert.NotEqual(t, h1, h2)
	assert.False(t, h1.IsZero())
	assert.True(t, solver.Handle{}.IsZero())
	assert.Equal(t, 2, s.Constraints())

	assert.True(t, s.RemoveConstraint(h1))
	assert.Equal(t, 1, s.Constraints())
	assert.True(t, s.RemoveConstraint(h2))
	assert.Zero(t, s.Constraints())
}

// TestSolver_IndependentArenas checks two solvers issue the same variable ids
// without sharing state.
func TestSolver_IndependentArenas(t *testing.T) {
	a, b := newSolver(), newSolver()
	pa, pb := a.AddPoint(), b.AddPoint()
	assert.Equal(t, pa, pb)
	a.AddPoint()
	assert.Len(t, b.Points(), 1)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "UNDER", solver.Under.String())
	assert.Equal(t, "STABLE", solver.Stable.String())
	assert.Equal(t, "OVER", solver.Over.String())
	assert.Equal(t, "Status(9)", solver.Status(9).String())
}
