package dot_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whilelang/interp/ast"
	"github.com/whilelang/interp/dot"
)

func TestWriteEmitsWellFormedDigraph(t *testing.T) {
	tree := ast.NewTree()
	x := tree.Var("x")
	prog := tree.Assign(x, tree.Num(5))

	var buf bytes.Buffer
	require.NoError(t, dot.Write(&buf, prog))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "strict digraph AST {\n"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, `label=":="`)
	assert.Contains(t, out, `label="Var\nx"`)
	assert.Contains(t, out, `label="Num\n5"`)
}

func TestWriteEmitsOneEdgePerChild(t *testing.T) {
	tree := ast.NewTree()
	assign := tree.Assign(tree.Var("x"), tree.Num(1))

	var buf bytes.Buffer
	require.NoError(t, dot.Write(&buf, assign))
	out := buf.String()

	edge1 := assign.ID()
	assert.Contains(t, out, formatEdge(edge1, assign.Var.ID()))
	assert.Contains(t, out, formatEdge(edge1, assign.X.ID()))
}

func TestWriteWalksWhileLoop(t *testing.T) {
	tree := ast.NewTree()
	cond := tree.Compare(ast.Lt, tree.Var("x"), tree.Num(10))
	body := tree.Assign(tree.Var("x"), tree.BinArith(ast.Add, tree.Var("x"), tree.Num(1)))
	loop := tree.While(cond, body)

	var buf bytes.Buffer
	require.NoError(t, dot.Write(&buf, loop))
	out := buf.String()

	assert.Contains(t, out, `label="while"`)
	assert.Contains(t, out, `label="BExp\n<"`)
	assert.Contains(t, out, `label="AExp\n+"`)
}

func formatEdge(from, to int) string {
	return fmt.Sprintf("%d -> %d;", from, to)
}
