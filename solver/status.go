// SPDX-License-Identifier: MIT

package solver

import "strconv"

// Status classifies a point in a Solution.
type Status int

const (
	// Under means the point keeps at least one free direction.
	Under Status = iota

	// Stable means the constraints pin the point down locally.
	Stable

	// Over means the point is referenced by the constraint the exclusion
	// search had to drop.
	Over
)

func (s Status) String() string {
	switch s {
	case Under:
		return "UNDER"
	case Stable:
		return "STABLE"
	case Over:
		return "OVER"
	}

	return "Status(" + strconv.Itoa(int(s)) + ")"
}
