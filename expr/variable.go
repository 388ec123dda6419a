// SPDX-License-Identifier: MIT

package expr

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// Variable is an opaque identity used as an evaluation placeholder and as a
// map key. Equality is identity: two Variables are equal only when they were
// issued as the same handle by the same Arena. The zero Variable is never
// issued and is reported as invalid.
type Variable struct {
	id uint64
}

// ID returns the arena-local numeric identity (≥ 1 for issued variables).
func (v Variable) ID() uint64 { return v.id }

// Valid reports whether v was issued by an Arena.
func (v Variable) Valid() bool { return v.id != 0 }

// String renders v as "x<id>".
func (v Variable) String() string { return "x" + strconv.FormatUint(v.id, 10) }

// Arena issues unique Variables. The id counter lives on the arena itself,
// so independent solvers never share or disturb each other's identities.
// Variables from different arenas must not be mixed in one expression.
//
// Arena is safe for concurrent use.
type Arena struct {
	next atomic.Uint64 // last issued id
}

// NewArena returns an empty arena; the first Variable it issues has ID 1.
func NewArena() *Arena { return &Arena{} }

// NewVariable issues a fresh Variable.
// Complexity: O(1).
func (a *Arena) NewVariable() Variable {
	return Variable{id: a.next.Add(1)}
}

// Set is a set of Variables, filled by CollectVariables.
type Set map[Variable]struct{}

// Add inserts v.
func (s Set) Add(v Variable) { s[v] = struct{}{} }

// Has reports membership.
func (s Set) Has(v Variable) bool {
	_, ok := s[v]

	return ok
}

// Sorted returns the members ordered by ID, for deterministic iteration.
func (s Set) Sorted() []Variable {
	out := make([]Variable, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sortVariables(out)

	return out
}

// Variables returns the set of variables referenced by e.
func Variables(e Expr) Set {
	s := make(Set)
	e.CollectVariables(s)

	return s
}

func sortVariables(vs []Variable) {
	sort.Slice(vs, func(i, j int) bool { return vs[i].id < vs[j].id })
}
