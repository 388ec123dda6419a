// SPDX-License-Identifier: MIT

package expr

// Convenience builders used to phrase constraints as non-negative residuals.

// Neg returns -e.
func Neg(e Expr) Expr { return MulOf(negOne, e) }

// Squared returns e*e.
func Squared(e Expr) Expr { return MulOf(e, e) }

// Equals returns (a-b)², which is zero exactly when a = b and never negative.
func Equals(a, b Expr) Expr { return Squared(SubOf(a, b)) }

// SumOf folds terms left to right with AddOf; no terms yields 0.
func SumOf(terms ...Expr) Expr {
	var acc Expr = zero
	for _, t := range terms {
		acc = AddOf(acc, t)
	}

	return acc
}
