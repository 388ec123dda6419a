// SPDX-License-Identifier: MIT

package solver

import "github.com/google/uuid"

// Handle identifies a constraint inside the Solver that issued it. Its only
// use is RemoveConstraint; the zero Handle matches nothing.
type Handle struct {
	id uuid.UUID
}

func newHandle() Handle { return Handle{id: uuid.New()} }

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool { return h.id == uuid.Nil }

func (h Handle) String() string { return h.id.String() }
