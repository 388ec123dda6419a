// SPDX-License-Identifier: MIT

package expr

import "errors"

// Sentinel errors returned by Eval. Callers match them with errors.Is; the
// returned error is wrapped with the offending variable or operation.
var (
	// ErrMissingVariable indicates the Assignment does not bind a variable
	// referenced by the expression (or by one of its derivatives).
	ErrMissingVariable = errors.New("expr: variable missing from assignment")

	// ErrDivisionByZero indicates a Div node whose denominator evaluated to 0.
	ErrDivisionByZero = errors.New("expr: division by zero")

	// ErrNonFinite indicates a node evaluated to NaN or ±Inf.
	ErrNonFinite = errors.New("expr: non-finite result")
)
