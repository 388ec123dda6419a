// SPDX-License-Identifier: MIT

package solver

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/sketchsolve/constraint"
	"github.com/katalvlaran/sketchsolve/expr"
	"github.com/katalvlaran/sketchsolve/minimize"
	"golang.org/x/sync/errgroup"
)

// retry is the outcome of one exclusion run.
type retry struct {
	out minimize.Outcome
	err error
}

// exclusionSearch reruns the minimizer once per entry with that entry left
// out. Retries run concurrently, bounded by the parallelism option, and are
// gathered by index so the verdict does not depend on scheduling.
//
// A retry that fails to evaluate counts as not solved. Only cancellation of
// ctx aborts the search.
func (s *Solver) exclusionSearch(ctx context.Context, initial expr.Assignment, points []constraint.Point, entries []entry) ([]Solution, string, error) {
	retries := make([]retry, len(entries))
	opts := s.opts.minimizeOptions()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.parallelism)
	for i := range entries {
		g.Go(func() error {
			out, err := minimize.Run(gctx, initial, combineExcept(entries, i), opts)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				retries[i].err = err
				return nil
			}
			retries[i].out = out
			s.tel.recordRun(gctx, out.Iterations, out.Condition.String(), true)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, resultError, err
	}

	solved := -1
	count := 0
	for i, r := range retries {
		if r.err != nil {
			s.opts.logger.WarnContext(ctx, "solver: exclusion retry failed",
				slog.String("excluded", entries[i].handle.String()),
				slog.String("error", r.err.Error()),
			)
			continue
		}
		if r.out.Condition == minimize.Solved {
			solved = i
			count++
		}
	}

	if count != 1 {
		s.opts.logger.InfoContext(ctx, "solver: exclusion search ambiguous",
			slog.Int("constraints", len(entries)),
			slog.Int("solving_exclusions", count),
		)
		return []Solution{}, resultAmbiguous, nil
	}

	dropped := entries[solved]
	sol := s.solution(retries[solved].out, points)
	sol.Excluded = []Handle{dropped.handle}
	sol.ExcludedConstraints = []*constraint.Constraint{dropped.c}
	for _, p := range dropped.c.Points() {
		sol.PointStatus[p] = Over
	}
	s.opts.logger.InfoContext(ctx, "solver: solved by excluding one constraint",
		slog.String("excluded", dropped.handle.String()),
		slog.Int("iterations", sol.Iterations),
	)

	return []Solution{sol}, resultExcluded, nil
}
