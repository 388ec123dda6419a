// SPDX-License-Identifier: MIT

// Package expr is the scalar expression engine behind sketchsolve: an
// immutable expression graph with exact evaluation and exact symbolic
// differentiation.
//
// What lives here:
//
//   - Variable / Arena - opaque integer handles issued by an arena that owns
//     its own id counter (no process-wide state), usable as map keys.
//   - Assignment       - the numeric state of a search: Variable → float64.
//   - Expr             - a closed set of node kinds: Const, Ref, Add, Sub,
//     Mul, Div, Sin, Cos. The interface is sealed, so every operation
//     (Eval, Derivative, CollectVariables, String) is implemented by every
//     kind and checked by the compiler.
//
// Construction goes through smart constructors (AddOf, SubOf, MulOf, DivOf,
// SinOf, CosOf, Num, VarOf) which apply local rewrites while the graph is
// built bottom-up:
//
//	x+0 = x      0-x = -1*x    x-0 = x     c1+c2 = c        x+x = 2*x
//	0*x = 0      1*x = x       a*(b+c) = a*b + a*c          c1*(c2*x) = c*x
//	x/1 = x      x/-1 = -1*x   0/x = 0
//
// Without them repeated product/quotient-rule expansion grows the term count
// too fast to be usable in an iterative solver. The rewrites are local and
// best effort: two equal functions built differently may stay different.
//
// Errors surface instead of propagating NaN/Inf:
//
//   - ErrMissingVariable - Eval hit a variable the Assignment does not bind.
//   - ErrDivisionByZero  - a Div node evaluated its denominator to exactly 0.
//   - ErrNonFinite       - any node produced NaN or ±Inf.
//
// Usage:
//
//	arena := expr.NewArena()
//	x, y := arena.NewVariable(), arena.NewVariable()
//	// (x² + y² - 1)²
//	circle := expr.Equals(expr.AddOf(expr.Squared(expr.VarOf(x)), expr.Squared(expr.VarOf(y))), expr.Num(1))
//	dx := circle.Derivative(x)
//	v, err := dx.Eval(expr.Assignment{x: 1, y: 1})
//
// Expressions are never mutated after construction, so a graph may be
// evaluated and differentiated from several goroutines at once.
package expr
