// SPDX-License-Identifier: MIT

package minimize

import "strconv"

// Condition is the reason a Run stopped.
type Condition int

const (
	running Condition = iota

	// Solved means the residual fell below epsilon.
	Solved

	// Local means the gradient vanished while the residual did not: a
	// stationary point that does not satisfy the constraints.
	Local

	// NoProgress means the last accepted step changed the cost by less
	// than ε.
	NoProgress

	// MaxIterationsExceeded means the iteration cap stopped the search.
	MaxIterationsExceeded
)

func (c Condition) String() string {
	switch c {
	case Solved:
		return "Solved"
	case Local:
		return "Local"
	case NoProgress:
		return "NoProgress"
	case MaxIterationsExceeded:
		return "MaxIterationsExceeded"
	}

	return "Condition(" + strconv.Itoa(int(c)) + ")"
}
