// Package concrete executes a While program over actual int64 values
// instead of an abstract domain: it has its own expression and
// statement-level walk (using domain.Concrete for its State and for
// Pow) rather than package interp's, since a concrete While loop runs until its guard
// is literally false rather than to a widened fixpoint, and division or
// remainder by zero is a hard error rather than a lattice value.
package concrete

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/whilelang/interp/ast"
	"github.com/whilelang/interp/domain"
	"github.com/whilelang/interp/state"
)

// ErrDivByZero is returned when a While program divides or takes the
// remainder by zero during concrete execution.
var ErrDivByZero = errors.New("concrete: division or remainder by zero")

// State is the concrete program state: a mapping from variable name to
// int64, reusing state.State[int64] over the degenerate domain.Concrete
// so Load/Store/Dump/Names behave identically to the abstract side.
type State = state.State[int64]

// NewState returns an empty concrete state.
func NewState() State { return state.New[int64](domain.Concrete{}) }

// IO is the input/output surface a concrete run reads from and writes
// to. Threading it explicitly (rather than reaching for os.Stdin and
// os.Stdout from inside the executor) keeps Interpret testable with
// in-memory buffers. Logger receives diagnostics that are not part of
// the program's own output -- an Input read failure, say -- so that Out
// stays reserved for exactly what the While program itself prints.
type IO struct {
	In     *bufio.Reader
	Out    io.Writer
	Logger *zap.Logger
}

// NewIO wraps r and w as an IO pair, buffering r for line-based input.
// Logger defaults to a no-op; see WithLogger.
func NewIO(r io.Reader, w io.Writer) IO {
	return IO{In: bufio.NewReader(r), Out: w, Logger: zap.NewNop()}
}

// WithLogger returns io with its Logger replaced by l. Passing nil
// restores the no-op logger.
func (io IO) WithLogger(l *zap.Logger) IO {
	if l == nil {
		l = zap.NewNop()
	}
	io.Logger = l
	return io
}

func (io IO) logger() *zap.Logger {
	if io.Logger != nil {
		return io.Logger
	}
	return zap.NewNop()
}

// Interpret executes tree starting from s, returning the resulting state.
func Interpret(tree ast.Stm, s State, io IO) (State, error) {
	dom := domain.Concrete{}
	switch n := tree.(type) {
	case *ast.Skip:
		return s, nil

	case *ast.Assign:
		v, err := eval(dom, n.X, s)
		if err != nil {
			return s, err
		}
		return s.Store(n.Var.Name, v), nil

	case *ast.Input:
		var v int64
		_, err := fmt.Fscan(io.In, &v)
		if err != nil {
			io.logger().Warn("input read failed, using 0",
				zap.String("var", n.Var.Name), zap.Error(err))
			v = 0
		}
		return s.Store(n.Var.Name, v), nil

	case *ast.Print:
		v, err := eval(dom, n.X, s)
		if err != nil {
			return s, err
		}
		if _, err := fmt.Fprintln(io.Out, v); err != nil {
			io.logger().Warn("print failed", zap.Error(err))
		}
		return s, nil

	case *ast.Seq:
		s1, err := Interpret(n.S1, s, io)
		if err != nil {
			return s, err
		}
		return Interpret(n.S2, s1, io)

	case *ast.If:
		cond, err := evalBool(dom, n.Cond, s)
		if err != nil {
			return s, err
		}
		if cond {
			return Interpret(n.Then, s, io)
		}
		return Interpret(n.Else, s, io)

	case *ast.While:
		cur := s
		for {
			cond, err := evalBool(dom, n.Cond, cur)
			if err != nil {
				return s, err
			}
			if !cond {
				return cur, nil
			}
			cur, err = Interpret(n.Body, cur, io)
			if err != nil {
				return s, err
			}
		}

	default:
		return s, fmt.Errorf("concrete: unknown statement node %T", tree)
	}
}

// eval walks an arithmetic expression directly rather than delegating to
// interp.A: every Div/Rem node, however deeply nested, must be checked
// for a zero divisor here, since domain.Concrete's own Div/Rem panic
// instead of erroring (see domain.Concrete's doc comment).
func eval(dom domain.Concrete, e ast.AExp, s State) (int64, error) {
	switch n := e.(type) {
	case *ast.Num:
		return n.Value, nil
	case *ast.Var:
		return s.Load(n.Name), nil
	case *ast.Id:
		v, err := eval(dom, n.X, s)
		return v, err
	case *ast.Neg:
		v, err := eval(dom, n.X, s)
		return -v, err
	case *ast.BinArith:
		l, err := eval(dom, n.L, s)
		if err != nil {
			return 0, err
		}
		r, err := eval(dom, n.R, s)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case ast.Add:
			return l + r, nil
		case ast.Sub:
			return l - r, nil
		case ast.Mul:
			return l * r, nil
		case ast.Div:
			if r == 0 {
				return 0, fmt.Errorf("%w", ErrDivByZero)
			}
			return l / r, nil
		case ast.Rem:
			if r == 0 {
				return 0, fmt.Errorf("%w", ErrDivByZero)
			}
			return l % r, nil
		case ast.Pow:
			return dom.Pow(l, r), nil
		default:
			return 0, fmt.Errorf("concrete: unknown arithmetic operator %v", n.Op)
		}
	default:
		return 0, fmt.Errorf("concrete: unknown arithmetic node %T", e)
	}
}

func evalBool(dom domain.Concrete, b ast.BExp, s State) (bool, error) {
	switch n := b.(type) {
	case *ast.BoolLit:
		return n.Value, nil
	case *ast.Not:
		v, err := evalBool(dom, n.X, s)
		return !v, err
	case *ast.Compare:
		l, err := eval(dom, n.L, s)
		if err != nil {
			return false, err
		}
		r, err := eval(dom, n.R, s)
		if err != nil {
			return false, err
		}
		switch n.Op {
		case ast.Lt:
			return l < r, nil
		case ast.Leq:
			return l <= r, nil
		case ast.Eq:
			return l == r, nil
		case ast.Geq:
			return l >= r, nil
		case ast.Gt:
			return l > r, nil
		case ast.Neq:
			return l != r, nil
		default:
			return false, fmt.Errorf("concrete: unknown comparison operator %v", n.Op)
		}
	case *ast.BinLogic:
		l, err := evalBool(dom, n.L, s)
		if err != nil {
			return false, err
		}
		r, err := evalBool(dom, n.R, s)
		if err != nil {
			return false, err
		}
		switch n.Op {
		case ast.And:
			return l && r, nil
		case ast.Or:
			return l || r, nil
		case ast.Xor:
			return l != r, nil
		case ast.Nand:
			return !(l && r), nil
		case ast.Nor:
			return !(l || r), nil
		case ast.Xnor:
			return l == r, nil
		default:
			return false, fmt.Errorf("concrete: unknown logic operator %v", n.Op)
		}
	default:
		return false, fmt.Errorf("concrete: unknown boolean node %T", b)
	}
}
