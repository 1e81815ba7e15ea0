package interp

import (
	"fmt"

	"github.com/whilelang/interp/ast"
	"github.com/whilelang/interp/domain"
	"github.com/whilelang/interp/state"
)

// A evaluates an arithmetic expression under dom in state s.
func A[T any](dom domain.Domain[T], e ast.AExp, s state.State[T]) (T, error) {
	switch n := e.(type) {
	case *ast.Num:
		return dom.Alpha(n.Value), nil

	case *ast.Var:
		if n.Name == "" {
			var zero T
			return zero, fmt.Errorf("%w: read of unnamed variable", ErrMalformedAST)
		}
		return s.Load(n.Name), nil

	case *ast.Id:
		x, err := A(dom, n.X, s)
		if err != nil {
			var zero T
			return zero, err
		}
		return dom.Pos(x), nil

	case *ast.Neg:
		x, err := A(dom, n.X, s)
		if err != nil {
			var zero T
			return zero, err
		}
		return dom.Neg(x), nil

	case *ast.BinArith:
		l, err := A(dom, n.L, s)
		if err != nil {
			var zero T
			return zero, err
		}
		r, err := A(dom, n.R, s)
		if err != nil {
			var zero T
			return zero, err
		}
		switch n.Op {
		case ast.Add:
			return dom.Add(l, r), nil
		case ast.Sub:
			return dom.Sub(l, r), nil
		case ast.Mul:
			return dom.Mul(l, r), nil
		case ast.Div:
			return dom.Div(l, r), nil
		case ast.Rem:
			return dom.Rem(l, r), nil
		case ast.Pow:
			return dom.Pow(l, r), nil
		default:
			var zero T
			return zero, fmt.Errorf("%w: unknown arithmetic operator %v", ErrMalformedAST, n.Op)
		}

	default:
		var zero T
		return zero, fmt.Errorf("%w: unknown arithmetic node %T", ErrMalformedAST, e)
	}
}
