// SPDX-License-Identifier: MIT

package expr

import "math"

// Num returns the literal v. The common literals 0, 1, -1 and 2 are shared.
func Num(v float64) *Const {
	switch v {
	case 0:
		return zero
	case 1:
		return one
	case -1:
		return negOne
	case 2:
		return two
	}

	return &Const{val: v}
}

// VarOf returns a reference to v.
func VarOf(v Variable) *Ref { return &Ref{v: v} }

// AddOf returns a + b.
//
// Rewrites: x+0 → x, 0+x → x, c1+c2 → c, c+x → x+c, x+x → 2*x
// (structurally identical operands).
func AddOf(a, b Expr) Expr {
	if isConst(a, 0) {
		return b
	}
	if isConst(b, 0) {
		return a
	}
	if ca, ok := constOf(a); ok {
		if cb, ok := constOf(b); ok {
			return Num(ca + cb)
		}
		a, b = b, a
	}
	if Equal(a, b) {
		return MulOf(two, b)
	}

	return &Add{a: a, b: b}
}

// SubOf returns a - b.
//
// Rewrites: 0-x → -1*x, x-0 → x, c1-c2 → c, x-x → 0.
func SubOf(a, b Expr) Expr {
	if isConst(a, 0) {
		return MulOf(negOne, b)
	}
	if isConst(b, 0) {
		return a
	}
	if ca, ok := constOf(a); ok {
		if cb, ok := constOf(b); ok {
			return Num(ca - cb)
		}
	}
	if Equal(a, b) {
		return zero
	}

	return &Sub{a: a, b: b}
}

// MulOf returns a * b.
//
// Rewrites: 0*x → 0, 1*x → x, a*(b+c) → a*b + a*c (either side),
// c1*c2 → c, x*c → c*x, c1*(c2*x) → (c1*c2)*x.
func MulOf(a, b Expr) Expr {
	if isConst(a, 0) || isConst(b, 0) {
		return zero
	}
	if isConst(a, 1) {
		return b
	}
	if isConst(b, 1) {
		return a
	}
	if s, ok := a.(*Add); ok {
		return AddOf(MulOf(s.a, b), MulOf(s.b, b))
	}
	if s, ok := b.(*Add); ok {
		return AddOf(MulOf(a, s.a), MulOf(a, s.b))
	}
	if cb, ok := constOf(b); ok {
		if ca, ok := constOf(a); ok {
			return Num(ca * cb)
		}
		a, b = b, a
	}
	if ca, ok := constOf(a); ok {
		if m, ok := b.(*Mul); ok {
			if cm, ok := constOf(m.a); ok {
				return MulOf(Num(ca*cm), m.b)
			}
		}
	}

	return &Mul{a: a, b: b}
}

// DivOf returns a / b.
//
// Rewrites: 0/x → 0, x/1 → x, x/-1 → -1*x, c1/c2 → c when c2 ≠ 0.
// A literal zero denominator is kept so Eval reports ErrDivisionByZero.
func DivOf(a, b Expr) Expr {
	if isConst(a, 0) {
		return zero
	}
	if isConst(b, 1) {
		return a
	}
	if isConst(b, -1) {
		return MulOf(negOne, a)
	}
	if ca, ok := constOf(a); ok {
		if cb, ok := constOf(b); ok && cb != 0 {
			return Num(ca / cb)
		}
	}

	return &Div{a: a, b: b}
}

// SinOf returns sin(a); a literal argument is folded.
func SinOf(a Expr) Expr {
	if c, ok := constOf(a); ok {
		return Num(math.Sin(c))
	}

	return &Sin{a: a}
}

// CosOf returns cos(a); a literal argument is folded.
func CosOf(a Expr) Expr {
	if c, ok := constOf(a); ok {
		return Num(math.Cos(c))
	}

	return &Cos{a: a}
}

func constOf(e Expr) (float64, bool) {
	c, ok := e.(*Const)
	if !ok {
		return 0, false
	}

	return c.val, true
}

func isConst(e Expr, v float64) bool {
	c, ok := e.(*Const)

	return ok && c.val == v
}
