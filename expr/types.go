// SPDX-License-Identifier: MIT

package expr

// Expr is an immutable node of a scalar expression graph.
//
// The set of implementations is closed (see the unexported marker method):
// *Const, *Ref, *Add, *Sub, *Mul, *Div, *Sin, *Cos. Children are shared and
// the graph is acyclic because nodes are only ever built from existing ones.
type Expr interface {
	// Eval computes the value under a. It fails with ErrMissingVariable,
	// ErrDivisionByZero or ErrNonFinite.
	Eval(a Assignment) (float64, error)

	// Derivative returns the exact partial derivative with respect to v,
	// built through the smart constructors.
	Derivative(v Variable) Expr

	// CollectVariables adds every referenced Variable to into.
	CollectVariables(into Set)

	// String renders the expression in infix form.
	String() string

	node()
}

// Const is a numeric literal.
type Const struct{ val float64 }

// Ref is a reference to a Variable.
type Ref struct{ v Variable }

// Add is a + b.
type Add struct{ a, b Expr }

// Sub is a - b.
type Sub struct{ a, b Expr }

// Mul is a * b.
type Mul struct{ a, b Expr }

// Div is a / b.
type Div struct{ a, b Expr }

// Sin is sin(a).
type Sin struct{ a Expr }

// Cos is cos(a).
type Cos struct{ a Expr }

func (*Const) node() {}
func (*Ref) node()   {}
func (*Add) node()   {}
func (*Sub) node()   {}
func (*Mul) node()   {}
func (*Div) node()   {}
func (*Sin) node()   {}
func (*Cos) node()   {}

// Value returns the literal.
func (c *Const) Value() float64 { return c.val }

// Variable returns the referenced variable.
func (r *Ref) Variable() Variable { return r.v }

// Operands returns the two children.
func (n *Add) Operands() (Expr, Expr) { return n.a, n.b }

// Operands returns the two children.
func (n *Sub) Operands() (Expr, Expr) { return n.a, n.b }

// Operands returns the two children.
func (n *Mul) Operands() (Expr, Expr) { return n.a, n.b }

// Operands returns numerator and denominator.
func (n *Div) Operands() (Expr, Expr) { return n.a, n.b }

// Arg returns the argument.
func (n *Sin) Arg() Expr { return n.a }

// Arg returns the argument.
func (n *Cos) Arg() Expr { return n.a }

// Shared literals. Num returns these for 0, 1, -1 and 2 so identity checks
// stay cheap.
var (
	zero   = &Const{val: 0}
	one    = &Const{val: 1}
	negOne = &Const{val: -1}
	two    = &Const{val: 2}
)
