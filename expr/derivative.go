// SPDX-License-Identifier: MIT

package expr

// Derivative rules. Each result is assembled with the smart constructors, so
// zero and unit factors vanish as the derivative is built. The chain rule for
// Sin and Cos multiplies by the inner derivative obtained recursively.

func (c *Const) Derivative(Variable) Expr { return zero }

func (r *Ref) Derivative(v Variable) Expr {
	if r.v == v {
		return one
	}

	return zero
}

func (n *Add) Derivative(v Variable) Expr {
	return AddOf(n.a.Derivative(v), n.b.Derivative(v))
}

func (n *Sub) Derivative(v Variable) Expr {
	return SubOf(n.a.Derivative(v), n.b.Derivative(v))
}

// Derivative applies the product rule: (ab)' = a'b + b'a.
func (n *Mul) Derivative(v Variable) Expr {
	da := n.a.Derivative(v)
	db := n.b.Derivative(v)

	return AddOf(MulOf(da, n.b), MulOf(db, n.a))
}

// Derivative applies the quotient rule: (a/b)' = (a'b - ab') / b².
func (n *Div) Derivative(v Variable) Expr {
	da := n.a.Derivative(v)
	db := n.b.Derivative(v)

	return DivOf(SubOf(MulOf(da, n.b), MulOf(n.a, db)), MulOf(n.b, n.b))
}

func (n *Sin) Derivative(v Variable) Expr {
	return MulOf(CosOf(n.a), n.a.Derivative(v))
}

func (n *Cos) Derivative(v Variable) Expr {
	return MulOf(MulOf(negOne, SinOf(n.a)), n.a.Derivative(v))
}

func (c *Const) CollectVariables(Set) {}

func (r *Ref) CollectVariables(into Set) { into.Add(r.v) }

func (n *Add) CollectVariables(into Set) {
	n.a.CollectVariables(into)
	n.b.CollectVariables(into)
}

func (n *Sub) CollectVariables(into Set) {
	n.a.CollectVariables(into)
	n.b.CollectVariables(into)
}

func (n *Mul) CollectVariables(into Set) {
	n.a.CollectVariables(into)
	n.b.CollectVariables(into)
}

func (n *Div) CollectVariables(into Set) {
	n.a.CollectVariables(into)
	n.b.CollectVariables(into)
}

func (n *Sin) CollectVariables(into Set) { n.a.CollectVariables(into) }

func (n *Cos) CollectVariables(into Set) { n.a.CollectVariables(into) }
