// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"strings"
)

// Assignment maps each Variable to its current value. A search never mutates
// an Assignment it has handed out; every step builds a fresh one.
type Assignment map[Variable]float64

// Lookup returns the value bound to v, or ErrMissingVariable.
func (a Assignment) Lookup(v Variable) (float64, error) {
	val, ok := a[v]
	if !ok {
		return 0, fmt.Errorf("%s: %w", v, ErrMissingVariable)
	}

	return val, nil
}

// Clone returns an independent copy of a.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	for v, val := range a {
		out[v] = val
	}

	return out
}

// Variables returns the bound variables ordered by ID.
func (a Assignment) Variables() []Variable {
	out := make([]Variable, 0, len(a))
	for v := range a {
		out = append(out, v)
	}
	sortVariables(out)

	return out
}

// String renders the assignment as "{x1=3, x2=2}" in ID order.
func (a Assignment) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, v := range a.Variables() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%g", v, a[v])
	}
	b.WriteByte('}')

	return b.String()
}
