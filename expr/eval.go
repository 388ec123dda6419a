// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"math"
)

// checked turns a NaN/±Inf produced by op into ErrNonFinite.
func checked(op string, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s = %v: %w", op, v, ErrNonFinite)
	}

	return v, nil
}

// operands evaluates a pair of children, stopping at the first error.
func operands(a, b Expr, asg Assignment) (float64, float64, error) {
	x, err := a.Eval(asg)
	if err != nil {
		return 0, 0, err
	}
	y, err := b.Eval(asg)
	if err != nil {
		return 0, 0, err
	}

	return x, y, nil
}

func (c *Const) Eval(Assignment) (float64, error) { return checked("const", c.val) }

func (r *Ref) Eval(asg Assignment) (float64, error) {
	v, err := asg.Lookup(r.v)
	if err != nil {
		return 0, err
	}

	return checked(r.v.String(), v)
}

func (n *Add) Eval(asg Assignment) (float64, error) {
	x, y, err := operands(n.a, n.b, asg)
	if err != nil {
		return 0, err
	}

	return checked("add", x+y)
}

func (n *Sub) Eval(asg Assignment) (float64, error) {
	x, y, err := operands(n.a, n.b, asg)
	if err != nil {
		return 0, err
	}

	return checked("sub", x-y)
}

func (n *Mul) Eval(asg Assignment) (float64, error) {
	x, y, err := operands(n.a, n.b, asg)
	if err != nil {
		return 0, err
	}

	return checked("mul", x*y)
}

func (n *Div) Eval(asg Assignment) (float64, error) {
	x, y, err := operands(n.a, n.b, asg)
	if err != nil {
		return 0, err
	}
	if y == 0 {
		return 0, fmt.Errorf("%s / %s: %w", n.a, n.b, ErrDivisionByZero)
	}

	return checked("div", x/y)
}

func (n *Sin) Eval(asg Assignment) (float64, error) {
	x, err := n.a.Eval(asg)
	if err != nil {
		return 0, err
	}

	return checked("sin", math.Sin(x))
}

func (n *Cos) Eval(asg Assignment) (float64, error) {
	x, err := n.a.Eval(asg)
	if err != nil {
		return 0, err
	}

	return checked("cos", math.Cos(x))
}
