// SPDX-License-Identifier: MIT

package constraint

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sketchsolve/expr"
)

// Constraint is a residual expression plus its symbolic derivatives.
//
// Fx is non-negative by construction in normal use (see expr.Equals) and is
// zero exactly where the constraint holds. Constraints are immutable once
// built; Combine returns a new value.
type Constraint struct {
	// Fx is the residual.
	Fx expr.Expr

	// Dfdx holds ∂Fx/∂v per variable.
	Dfdx map[expr.Variable]expr.Expr

	// Dfdxx holds ∂²Fx/∂v² per variable.
	Dfdxx map[expr.Variable]expr.Expr

	// Dfdxy holds the mixed partial ∂²Fx/∂X∂Y per point.
	Dfdxy map[Point]expr.Expr

	points []Point
}

// Build differentiates e against every variable and point of u.
//
// Every coordinate of u gets Dfdx and Dfdxx entries, as does any variable e
// references outside u. Every point gets a Dfdxy entry, taken as the
// derivative of Dfdx[p.X] with respect to p.Y. A nil e or a point of u that
// fails Validate panics.
func Build(e expr.Expr, u Universe) *Constraint {
	if e == nil {
		panic("constraint: Build called with nil expression")
	}
	for _, p := range u {
		if err := p.Validate(); err != nil {
			panic(fmt.Sprintf("constraint: Build: %v", err))
		}
	}

	mentioned := expr.Variables(e)
	vars := u.Variables()
	seen := make(expr.Set, len(vars))
	for _, v := range vars {
		seen.Add(v)
	}
	for _, v := range mentioned.Sorted() {
		if !seen.Has(v) {
			vars = append(vars, v)
			seen.Add(v)
		}
	}

	c := &Constraint{
		Fx:    e,
		Dfdx:  make(map[expr.Variable]expr.Expr, len(vars)),
		Dfdxx: make(map[expr.Variable]expr.Expr, len(vars)),
		Dfdxy: make(map[Point]expr.Expr, len(u)),
	}
	for _, v := range vars {
		d := e.Derivative(v)
		c.Dfdx[v] = d
		c.Dfdxx[v] = d.Derivative(v)
	}
	for _, p := range u {
		c.Dfdxy[p] = c.Dfdx[p.X].Derivative(p.Y)
		if mentioned.Has(p.X) || mentioned.Has(p.Y) {
			c.points = append(c.points, p)
		}
	}

	return c
}

// Combine sums constraints into one objective. Derivative maps are summed
// key by key with a missing key counting as zero. No arguments yield the zero
// constraint.
func Combine(cs ...*Constraint) *Constraint {
	acc := &Constraint{
		Fx:    expr.Num(0),
		Dfdx:  map[expr.Variable]expr.Expr{},
		Dfdxx: map[expr.Variable]expr.Expr{},
		Dfdxy: map[Point]expr.Expr{},
	}
	for _, c := range cs {
		if c == nil {
			continue
		}
		acc = combine2(acc, c)
	}

	return acc
}

func combine2(a, b *Constraint) *Constraint {
	out := &Constraint{
		Fx:    expr.AddOf(a.Fx, b.Fx),
		Dfdx:  sumMaps(a.Dfdx, b.Dfdx),
		Dfdxx: sumMaps(a.Dfdxx, b.Dfdxx),
		Dfdxy: sumMaps(a.Dfdxy, b.Dfdxy),
	}
	out.points = append(out.points, a.points...)
	for _, p := range b.points {
		if !containsPoint(out.points, p) {
			out.points = append(out.points, p)
		}
	}

	return out
}

func sumMaps[K comparable](a, b map[K]expr.Expr) map[K]expr.Expr {
	out := make(map[K]expr.Expr, len(a)+len(b))
	for k, e := range a {
		out[k] = e
	}
	for k, e := range b {
		if prev, ok := out[k]; ok {
			out[k] = expr.AddOf(prev, e)
		} else {
			out[k] = e
		}
	}

	return out
}

func containsPoint(ps []Point, p Point) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}

	return false
}

// Points returns the points whose coordinates Fx references, in universe
// order. The slice is a copy.
func (c *Constraint) Points() []Point {
	out := make([]Point, len(c.points))
	copy(out, c.points)

	return out
}

// Variables returns the keys of Dfdx ordered by ID.
func (c *Constraint) Variables() []expr.Variable {
	s := make(expr.Set, len(c.Dfdx))
	for v := range c.Dfdx {
		s.Add(v)
	}

	return s.Sorted()
}

// String dumps the residual and every derivative entry, one per line, in
// variable and point order.
func (c *Constraint) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "fx = %s\n", c.Fx)
	for _, v := range c.Variables() {
		fmt.Fprintf(&b, "dfdx[%s] = %s\n", v, c.Dfdx[v])
	}
	for _, v := range c.Variables() {
		if d, ok := c.Dfdxx[v]; ok {
			fmt.Fprintf(&b, "dfdxx[%s] = %s\n", v, d)
		}
	}
	for _, p := range c.sortedPoints() {
		fmt.Fprintf(&b, "dfdxy[%s] = %s\n", p, c.Dfdxy[p])
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func (c *Constraint) sortedPoints() []Point {
	ps := make([]Point, 0, len(c.Dfdxy))
	for p := range c.Dfdxy {
		ps = append(ps, p)
	}
	sortPoints(ps)

	return ps
}
