// Package interp is the abstract interpretation engine: given a domain
// instance and a While AST, it computes the abstract state reachable at
// the end of the program (or at any sub-statement, via Interpret on a
// sub-tree), using each Domain[T]'s Lub/Widen to drive loops to a
// fixpoint.
//
// Interpret is generic over the value type T; the domain is passed as a
// domain.Domain[T] interface value, so each domain operation it performs
// is an interface method call.
package interp

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/whilelang/interp/ast"
	"github.com/whilelang/interp/domain"
	"github.com/whilelang/interp/state"
)

// ErrMalformedAST is returned when a node defeats the invariants the ast
// package's constructors are supposed to guarantee (e.g. an Assign or
// Input referencing a variable with an empty name). The AST's typed
// constructors make this effectively unreachable for a tree built by
// package parser, but Interpret still checks it at the boundary rather
// than silently producing a nonsense state.
var ErrMalformedAST = errors.New("interp: malformed AST")

// logger receives a debug-level trace of each While loop's
// fixpoint-iteration count, useful for confirming widening actually
// converges on a given program. It defaults to discarding everything;
// the CLI wires in its real logger via SetLogger at startup.
var logger = zap.NewNop()

// SetLogger replaces the logger Interpret traces widening to. Passing
// nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// InterpretFresh runs tree from the empty state.
func InterpretFresh[T any](dom domain.Domain[T], tree ast.Stm) (state.State[T], error) {
	return Interpret(dom, tree, state.New(dom))
}

// Interpret runs statement tree starting from s and returns the
// resulting state.
func Interpret[T any](dom domain.Domain[T], tree ast.Stm, s state.State[T]) (state.State[T], error) {
	if s.IsUnreachable() {
		return s, nil
	}
	switch n := tree.(type) {
	case *ast.Skip:
		return s, nil

	case *ast.Assign:
		if n.Var == nil || n.Var.Name == "" {
			return s, fmt.Errorf("%w: assignment to unnamed variable", ErrMalformedAST)
		}
		v, err := A(dom, n.X, s)
		if err != nil {
			return s, err
		}
		return s.Store(n.Var.Name, v), nil

	case *ast.Input:
		if n.Var == nil || n.Var.Name == "" {
			return s, fmt.Errorf("%w: input into unnamed variable", ErrMalformedAST)
		}
		return s.Store(n.Var.Name, dom.Top()), nil

	case *ast.Print:
		_, err := A(dom, n.X, s)
		return s, err

	case *ast.Seq:
		s1, err := Interpret(dom, n.S1, s)
		if err != nil {
			return s, err
		}
		return Interpret(dom, n.S2, s1)

	case *ast.If:
		thenState, err := B(dom, n.Cond, s)
		if err != nil {
			return s, err
		}
		elseState, err := B(dom, negate(n.Cond), s)
		if err != nil {
			return s, err
		}
		thenResult, err := Interpret(dom, n.Then, thenState)
		if err != nil {
			return s, err
		}
		elseResult, err := Interpret(dom, n.Else, elseState)
		if err != nil {
			return s, err
		}
		return thenResult.Lub(elseResult), nil

	case *ast.While:
		return interpretWhile(dom, n, s)

	default:
		return s, fmt.Errorf("%w: unknown statement node %T", ErrMalformedAST, tree)
	}
}

// interpretWhile computes the fixpoint of the loop's transfer function
// by iterating with Lub until two consecutive states agree, then applies
// Widen across iterations where Lub alone hasn't stabilized after one
// pass, guaranteeing termination even for lattices of infinite height
// (Interval, SInterval). Once stable, the result is narrowed to the
// states that fail the guard (the state the loop exits in).
func interpretWhile[T any](dom domain.Domain[T], n *ast.While, s state.State[T]) (state.State[T], error) {
	prev := s
	for i := 0; ; i++ {
		entry, err := B(dom, n.Cond, prev)
		if err != nil {
			return s, err
		}
		bodyResult, err := Interpret(dom, n.Body, entry)
		if err != nil {
			return s, err
		}
		curr := prev.Lub(bodyResult)

		if curr.Equal(prev) {
			logger.Debug("while fixpoint reached", zap.Int("iterations", i+1))
			exit, err := B(dom, negate(n.Cond), curr)
			if err != nil {
				return s, err
			}
			return exit, nil
		}

		if i == 0 {
			prev = curr
			continue
		}
		prev = prev.Widen(curr)
	}
}

// negate returns the negation-normal-form of b, reusing ast.Tree's
// stateless rewrite (it only needs to pair up opcodes, no ID allocation).
func negate(b ast.BExp) ast.BExp {
	return (&ast.Tree{}).Negate(b)
}
