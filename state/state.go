// Package state implements the abstract (and concrete) program state the
// interpreter in package interp and the executor in package concrete
// thread through a While program: an immutable map from variable name to
// domain value, plus a state-level "unreachable" marker distinct from any
// individual value being Bottom.
package state

import (
	"sort"

	"github.com/whilelang/interp/domain"
)

// State maps variable names to values of an abstract (or concrete)
// domain. The zero value is not meaningful; use New.
//
// State is a persistent value: Store returns a new State with its own
// copy of the map and leaves the old one untouched, mirroring the
// copy-on-write semantics of the reference implementation's state, and making it safe
// to keep a State around (e.g. as a fixpoint's "previous iteration")
// while building the next one from it.
type State[T any] struct {
	dom    domain.Domain[T]
	vars   map[string]T
	unreach bool
}

// New returns an empty, reachable state over dom.
func New[T any](dom domain.Domain[T]) State[T] {
	return State[T]{dom: dom, vars: map[string]T{}}
}

// Unreachable returns the state-level bottom: the state of a program
// point that cannot be reached under any concretization, distinct from
// any variable individually holding the domain's Bottom() value. A While
// statement interpreted from an Unreachable state returns it unchanged.
func Unreachable[T any](dom domain.Domain[T]) State[T] {
	return State[T]{dom: dom, vars: map[string]T{}, unreach: true}
}

// IsUnreachable reports whether s is the state-level bottom.
func (s State[T]) IsUnreachable() bool { return s.unreach }

// Load returns the value bound to name, or the domain's Default (which
// equals Bottom, see domain.Domain) if name has never been stored.
func (s State[T]) Load(name string) T {
	if v, ok := s.vars[name]; ok {
		return v
	}
	return s.dom.Default()
}

// Store returns a new state with name bound to v. s itself is unchanged.
func (s State[T]) Store(name string, v T) State[T] {
	next := make(map[string]T, len(s.vars)+1)
	for k, val := range s.vars {
		next[k] = val
	}
	next[name] = v
	return State[T]{dom: s.dom, vars: next, unreach: s.unreach}
}

// Names returns the bound variable names in sorted order, for
// deterministic CLI output.
func (s State[T]) Names() []string {
	names := make([]string, 0, len(s.vars))
	for k := range s.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Lub computes the least upper bound of two states: variables bound in
// both are joined pointwise; a variable bound in only one operand is
// copied across unchanged, since in the other operand it is implicitly
// Default (= Bottom), and Lub(v, Bottom) = v for every v.
func (s State[T]) Lub(other State[T]) State[T] {
	if s.unreach {
		return other
	}
	if other.unreach {
		return s
	}
	next := make(map[string]T, len(s.vars)+len(other.vars))
	for k, v := range s.vars {
		next[k] = v
	}
	for k, v := range other.vars {
		if cur, ok := next[k]; ok {
			next[k] = s.dom.Lub(cur, v)
		} else {
			next[k] = v
		}
	}
	return State[T]{dom: s.dom, vars: next}
}

// Widen accelerates convergence from s (the previous iteration) to curr
// (the current one). It ranges over the union of both states' keys: a
// variable assigned on some loop iterations and not others must still be
// widened using its Default on the iterations it is missing, or the
// chain the widening operator sees is incomplete and may never stabilize.
func (s State[T]) Widen(curr State[T]) State[T] {
	if s.unreach {
		return curr
	}
	if curr.unreach {
		return s
	}
	seen := make(map[string]bool, len(s.vars)+len(curr.vars))
	next := make(map[string]T, len(s.vars)+len(curr.vars))
	for k := range s.vars {
		seen[k] = true
	}
	for k := range curr.vars {
		seen[k] = true
	}
	for k := range seen {
		next[k] = s.dom.Widen(s.Load(k), curr.Load(k))
	}
	return State[T]{dom: s.dom, vars: next}
}

// Equal reports whether s and other bind the same variables to equal
// values and agree on reachability.
func (s State[T]) Equal(other State[T]) bool {
	if s.unreach != other.unreach {
		return false
	}
	if s.unreach {
		return true
	}
	if len(s.vars) != len(other.vars) {
		return false
	}
	for k, v := range s.vars {
		ov, ok := other.vars[k]
		if !ok || !s.dom.Equal(v, ov) {
			return false
		}
	}
	return true
}

// LessEq reports whether s sits below or at other in the state lattice:
// s is unreachable, or every variable's value in s is <= its value in
// other. The domain comparisons (Leq etc.) answer "could x <= y hold",
// not the lattice order, so the check goes through Lub and Equal
// instead: s <= other iff Lub(s, other) == other.
func (s State[T]) LessEq(other State[T]) bool {
	return s.Lub(other).Equal(other)
}

// Dump renders s as "[name1 -> value1, name2 -> value2]" with variables
// in sorted order, the CLI's per-domain output line format.
func (s State[T]) Dump() string {
	if s.unreach {
		return "[unreachable]"
	}
	out := "["
	for i, name := range s.Names() {
		if i > 0 {
			out += ", "
		}
		out += name + " -> " + s.dom.String(s.vars[name])
	}
	return out + "]"
}
