// SPDX-License-Identifier: MIT

package constraint

import "errors"

var (
	// ErrNilConstraint is returned when a nil *Constraint is evaluated.
	ErrNilConstraint = errors.New("constraint: nil constraint")

	// ErrDegeneratePoint indicates a Point whose two coordinates are the same
	// variable, or an invalid (zero) variable.
	ErrDegeneratePoint = errors.New("constraint: degenerate point")
)
