// SPDX-License-Identifier: MIT

package expr

// Equal reports whether a and b are structurally identical: same node kinds,
// same literals, same variables, in the same positions. It does not try to
// prove mathematical equality (x+y and y+x are not Equal).
func Equal(a, b Expr) bool {
	if a == b {
		return true
	}
	switch x := a.(type) {
	case *Const:
		y, ok := b.(*Const)
		return ok && x.val == y.val
	case *Ref:
		y, ok := b.(*Ref)
		return ok && x.v == y.v
	case *Add:
		y, ok := b.(*Add)
		return ok && Equal(x.a, y.a) && Equal(x.b, y.b)
	case *Sub:
		y, ok := b.(*Sub)
		return ok && Equal(x.a, y.a) && Equal(x.b, y.b)
	case *Mul:
		y, ok := b.(*Mul)
		return ok && Equal(x.a, y.a) && Equal(x.b, y.b)
	case *Div:
		y, ok := b.(*Div)
		return ok && Equal(x.a, y.a) && Equal(x.b, y.b)
	case *Sin:
		y, ok := b.(*Sin)
		return ok && Equal(x.a, y.a)
	case *Cos:
		y, ok := b.(*Cos)
		return ok && Equal(x.a, y.a)
	}

	return false
}
