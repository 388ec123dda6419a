// SPDX-License-Identifier: MIT

package constraint

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sketchsolve/expr"
)

// Result is the numeric image of a Constraint at one assignment.
type Result struct {
	Fx    float64
	Dfdx  map[expr.Variable]float64
	Dfdxx map[expr.Variable]float64
	Dfdxy map[Point]float64
}

// Evaluate computes every entry of c at a. The first failing entry, in
// Fx, Dfdx, Dfdxx, Dfdxy order (variables by ID), aborts the evaluation.
func Evaluate(c *Constraint, a expr.Assignment) (Result, error) {
	if c == nil {
		return Result{}, ErrNilConstraint
	}

	fx, err := c.Fx.Eval(a)
	if err != nil {
		return Result{}, fmt.Errorf("constraint: fx: %w", err)
	}
	r := Result{
		Fx:    fx,
		Dfdx:  make(map[expr.Variable]float64, len(c.Dfdx)),
		Dfdxx: make(map[expr.Variable]float64, len(c.Dfdxx)),
		Dfdxy: make(map[Point]float64, len(c.Dfdxy)),
	}

	vars := c.Variables()
	for _, v := range vars {
		if r.Dfdx[v], err = c.Dfdx[v].Eval(a); err != nil {
			return Result{}, fmt.Errorf("constraint: dfdx[%s]: %w", v, err)
		}
	}
	for _, v := range vars {
		d, ok := c.Dfdxx[v]
		if !ok {
			continue
		}
		if r.Dfdxx[v], err = d.Eval(a); err != nil {
			return Result{}, fmt.Errorf("constraint: dfdxx[%s]: %w", v, err)
		}
	}
	for _, p := range c.sortedPoints() {
		if r.Dfdxy[p], err = c.Dfdxy[p].Eval(a); err != nil {
			return Result{}, fmt.Errorf("constraint: dfdxy[%s]: %w", p, err)
		}
	}

	return r, nil
}

// Cost evaluates only the residual of c at a.
func Cost(c *Constraint, a expr.Assignment) (float64, error) {
	if c == nil {
		return 0, ErrNilConstraint
	}
	fx, err := c.Fx.Eval(a)
	if err != nil {
		return 0, fmt.Errorf("constraint: fx: %w", err)
	}

	return fx, nil
}

// GradientNorm returns the Euclidean norm of r.Dfdx, summed in variable ID
// order so the result does not depend on map iteration.
func GradientNorm(r Result) float64 {
	s := make(expr.Set, len(r.Dfdx))
	for v := range r.Dfdx {
		s.Add(v)
	}
	var sum float64
	for _, v := range s.Sorted() {
		sum += r.Dfdx[v] * r.Dfdx[v]
	}

	return math.Sqrt(sum)
}
