// Package dot renders a package ast tree as Graphviz DOT, for the CLI's
// -a/--ast flag.
package dot

import (
	"fmt"
	"io"

	"github.com/whilelang/interp/ast"
)

// Write renders tree as a `strict digraph` to w.
func Write(w io.Writer, tree ast.Stm) error {
	fmt.Fprintln(w, `strict digraph AST {`)
	fmt.Fprintln(w, `  splines=true;`)
	fmt.Fprintln(w, `  node [fontname="Times", fontcolor="#333333", color="#333333", style="solid"];`)
	fmt.Fprintln(w, `  edge [fontname="Times", fontcolor="#222222", color="#222222", arrowhead="open"];`)

	walkStm(w, tree)

	fmt.Fprintln(w, `}`)
	return nil
}

func node(w io.Writer, id int, label string) {
	fmt.Fprintf(w, "  %d [label=%q];\n", id, label)
}

func edge(w io.Writer, from, to int) {
	fmt.Fprintf(w, "  %d -> %d;\n", from, to)
}

func walkStm(w io.Writer, s ast.Stm) {
	switch n := s.(type) {
	case *ast.Skip:
		node(w, n.ID(), "skip")

	case *ast.Assign:
		node(w, n.ID(), ":=")
		edge(w, n.ID(), n.Var.ID())
		walkAExp(w, n.Var)
		edge(w, n.ID(), n.X.ID())
		walkAExp(w, n.X)

	case *ast.Seq:
		node(w, n.ID(), ";")
		edge(w, n.ID(), n.S1.ID())
		walkStm(w, n.S1)
		edge(w, n.ID(), n.S2.ID())
		walkStm(w, n.S2)

	case *ast.If:
		node(w, n.ID(), "if-then-else")
		edge(w, n.ID(), n.Cond.ID())
		walkBExp(w, n.Cond)
		edge(w, n.ID(), n.Then.ID())
		walkStm(w, n.Then)
		edge(w, n.ID(), n.Else.ID())
		walkStm(w, n.Else)

	case *ast.While:
		node(w, n.ID(), "while")
		edge(w, n.ID(), n.Cond.ID())
		walkBExp(w, n.Cond)
		edge(w, n.ID(), n.Body.ID())
		walkStm(w, n.Body)

	case *ast.Print:
		node(w, n.ID(), "print")
		edge(w, n.ID(), n.X.ID())
		walkAExp(w, n.X)

	case *ast.Input:
		node(w, n.ID(), "input")
		edge(w, n.ID(), n.Var.ID())
		walkAExp(w, n.Var)
	}
}

func walkAExp(w io.Writer, e ast.AExp) {
	switch n := e.(type) {
	case *ast.Num:
		node(w, n.ID(), fmt.Sprintf("Num\n%d", n.Value))

	case *ast.Var:
		node(w, n.ID(), fmt.Sprintf("Var\n%s", n.Name))

	case *ast.Id:
		node(w, n.ID(), "AExp\npos")
		edge(w, n.ID(), n.X.ID())
		walkAExp(w, n.X)

	case *ast.Neg:
		node(w, n.ID(), "AExp\nneg")
		edge(w, n.ID(), n.X.ID())
		walkAExp(w, n.X)

	case *ast.BinArith:
		node(w, n.ID(), fmt.Sprintf("AExp\n%s", n.Op))
		edge(w, n.ID(), n.L.ID())
		walkAExp(w, n.L)
		edge(w, n.ID(), n.R.ID())
		walkAExp(w, n.R)
	}
}

func walkBExp(w io.Writer, b ast.BExp) {
	switch n := b.(type) {
	case *ast.BoolLit:
		label := "false"
		if n.Value {
			label = "true"
		}
		node(w, n.ID(), label)

	case *ast.Not:
		node(w, n.ID(), "BExp\nnot")
		edge(w, n.ID(), n.X.ID())
		walkBExp(w, n.X)

	case *ast.Compare:
		node(w, n.ID(), fmt.Sprintf("BExp\n%s", n.Op))
		edge(w, n.ID(), n.L.ID())
		walkAExp(w, n.L)
		edge(w, n.ID(), n.R.ID())
		walkAExp(w, n.R)

	case *ast.BinLogic:
		node(w, n.ID(), fmt.Sprintf("BExp\n%s", n.Op))
		edge(w, n.ID(), n.L.ID())
		walkBExp(w, n.L)
		edge(w, n.ID(), n.R.ID())
		walkBExp(w, n.R)
	}
}
