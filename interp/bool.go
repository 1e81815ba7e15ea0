package interp

import (
	"fmt"

	"github.com/whilelang/interp/ast"
	"github.com/whilelang/interp/domain"
	"github.com/whilelang/interp/state"
)

// B evaluates a boolean expression as a state filter: it returns the
// subset of s consistent with b possibly holding, or state.Unreachable
// if b can never hold given s. It does not narrow individual variables'
// values, only whether the branch as a whole is live -- matching the
// reference implementation's guard semantics, which is simpler than full
// value-range refinement but still eliminates the common case of a
// provably-dead branch (e.g. `if x > 0 ... ` when x's abstract value is
// already known to be non-positive).
func B[T any](dom domain.Domain[T], b ast.BExp, s state.State[T]) (state.State[T], error) {
	if s.IsUnreachable() {
		return s, nil
	}
	switch n := b.(type) {
	case *ast.BoolLit:
		if n.Value {
			return s, nil
		}
		return state.Unreachable(dom), nil

	case *ast.Not:
		return B(dom, negate(n.X), s)

	case *ast.Compare:
		l, err := A(dom, n.L, s)
		if err != nil {
			return s, err
		}
		r, err := A(dom, n.R, s)
		if err != nil {
			return s, err
		}
		holds, err := compare(dom, n.Op, l, r)
		if err != nil {
			return s, err
		}
		if !holds {
			return state.Unreachable(dom), nil
		}
		return s, nil

	case *ast.BinLogic:
		return bLogic(dom, n, s)

	default:
		return s, fmt.Errorf("%w: unknown boolean node %T", ErrMalformedAST, b)
	}
}

func compare[T any](dom domain.Domain[T], op ast.CompareOp, l, r T) (bool, error) {
	switch op {
	case ast.Lt:
		return dom.Lt(l, r), nil
	case ast.Leq:
		return dom.Leq(l, r), nil
	case ast.Eq:
		return dom.Eq(l, r), nil
	case ast.Geq:
		return dom.Geq(l, r), nil
	case ast.Gt:
		return dom.Gt(l, r), nil
	case ast.Neq:
		return dom.Neq(l, r), nil
	default:
		return false, fmt.Errorf("%w: unknown comparison operator %v", ErrMalformedAST, op)
	}
}

// bLogic filters s through a binary boolean expression by rewriting it
// in terms of the two cases B already knows how to sequence: conjunction
// (filter, then filter again) and disjunction (filter two ways, join the
// results). Nand/Nor/Xor/Xnor are expanded inline in terms of And/Or and
// negated operands, building those negations with ast.Tree's Negate.
func bLogic[T any](dom domain.Domain[T], n *ast.BinLogic, s state.State[T]) (state.State[T], error) {
	switch n.Op {
	case ast.And:
		s1, err := B(dom, n.L, s)
		if err != nil || s1.IsUnreachable() {
			return s1, err
		}
		return B(dom, n.R, s1)

	case ast.Or:
		s1, err := B(dom, n.L, s)
		if err != nil {
			return s, err
		}
		s2, err := B(dom, n.R, s)
		if err != nil {
			return s, err
		}
		return s1.Lub(s2), nil

	case ast.Nand: // not (l and r) = (not l) or (not r)
		s1, err := B(dom, negate(n.L), s)
		if err != nil {
			return s, err
		}
		s2, err := B(dom, negate(n.R), s)
		if err != nil {
			return s, err
		}
		return s1.Lub(s2), nil

	case ast.Nor: // not (l or r) = (not l) and (not r)
		s1, err := B(dom, negate(n.L), s)
		if err != nil || s1.IsUnreachable() {
			return s1, err
		}
		return B(dom, negate(n.R), s1)

	case ast.Xor: // (l and not r) or (not l and r)
		left, err := B(dom, n.L, s)
		if err != nil {
			return s, err
		}
		left, err = B(dom, negate(n.R), left)
		if err != nil {
			return s, err
		}
		right, err := B(dom, negate(n.L), s)
		if err != nil {
			return s, err
		}
		right, err = B(dom, n.R, right)
		if err != nil {
			return s, err
		}
		return left.Lub(right), nil

	case ast.Xnor: // (l and r) or (not l and not r)
		left, err := B(dom, n.L, s)
		if err != nil {
			return s, err
		}
		left, err = B(dom, n.R, left)
		if err != nil {
			return s, err
		}
		right, err := B(dom, negate(n.L), s)
		if err != nil {
			return s, err
		}
		right, err = B(dom, negate(n.R), right)
		if err != nil {
			return s, err
		}
		return left.Lub(right), nil

	default:
		return s, fmt.Errorf("%w: unknown logic operator %v", ErrMalformedAST, n.Op)
	}
}
