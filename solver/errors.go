// SPDX-License-Identifier: MIT

package solver

import "errors"

var (
	// ErrInvalidConfig wraps every configuration load or validation failure.
	ErrInvalidConfig = errors.New("solver: invalid config")
)
