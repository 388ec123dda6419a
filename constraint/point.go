// SPDX-License-Identifier: MIT

package constraint

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/sketchsolve/expr"
)

// Point is an ordered pair of distinct variables standing for the
// coordinates of a 2D point. Points compare by their variables, so they can
// key a map.
type Point struct {
	X expr.Variable
	Y expr.Variable
}

// Variables returns X and Y, in that order.
func (p Point) Variables() []expr.Variable { return []expr.Variable{p.X, p.Y} }

// Validate reports ErrDegeneratePoint for zero or repeated coordinates.
func (p Point) Validate() error {
	if !p.X.Valid() || !p.Y.Valid() || p.X == p.Y {
		return fmt.Errorf("%s: %w", p, ErrDegeneratePoint)
	}

	return nil
}

func (p Point) String() string { return "(" + p.X.String() + ", " + p.Y.String() + ")" }

// Universe is the ordered set of points a constraint is built against. Its
// order fixes the iteration order of everything derived from it.
type Universe []Point

// Variables returns every coordinate in point order, X before Y.
func (u Universe) Variables() []expr.Variable {
	out := make([]expr.Variable, 0, 2*len(u))
	for _, p := range u {
		out = append(out, p.X, p.Y)
	}

	return out
}

// sortPoints orders points by the id of X, then Y.
func sortPoints(ps []Point) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].X != ps[j].X {
			return ps[i].X.ID() < ps[j].X.ID()
		}
		return ps[i].Y.ID() < ps[j].Y.ID()
	})
}
