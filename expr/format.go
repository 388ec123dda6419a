// SPDX-License-Identifier: MIT

package expr

import "strconv"

func (c *Const) String() string { return strconv.FormatFloat(c.val, 'g', -1, 64) }

func (r *Ref) String() string { return r.v.String() }

func (n *Add) String() string { return n.a.String() + " + " + n.b.String() }

func (n *Sub) String() string { return n.a.String() + " - " + group(n.b, false) }

func (n *Mul) String() string { return group(n.a, false) + "*" + group(n.b, false) }

func (n *Div) String() string { return group(n.a, false) + "/" + group(n.b, true) }

func (n *Sin) String() string { return "sin(" + n.a.String() + ")" }

func (n *Cos) String() string { return "cos(" + n.a.String() + ")" }

// group parenthesises sums and differences; strict also wraps products and
// quotients (the right side of a division).
func group(e Expr, strict bool) string {
	switch e.(type) {
	case *Add, *Sub:
		return "(" + e.String() + ")"
	case *Mul, *Div:
		if strict {
			return "(" + e.String() + ")"
		}
	}

	return e.String()
}
