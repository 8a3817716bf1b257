package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/gnolang/asciimath/ast"
)

var (
	nodeStyle    = color.New(color.FgCyan, color.Bold)
	operandStyle = color.New(color.FgYellow)
	leafStyle    = color.New(color.FgWhite)
)

// FormatTree draws the expression tree rooted at n:
//
//	Expression
//	└── Pow
//	    ├── base: Symbol("x")
//	    └── exp: Number("2")
func FormatTree(n ast.Node) string {
	var b strings.Builder
	b.WriteString(label(n) + "\n")
	writeOperands(&b, n, "")
	return b.String()
}

func writeOperands(b *strings.Builder, n ast.Node, prefix string) {
	operands := ast.Operands(n)
	for i, op := range operands {
		branch, indent := "├── ", "│   "
		if i == len(operands)-1 {
			branch, indent = "└── ", "    "
		}
		b.WriteString(lineStyle.Sprint(prefix + branch))

		_, isExpr := op.Node.(ast.Expression)
		switch {
		case op.Name != "" && isExpr:
			// the operand is a plain list; its name is enough
			b.WriteString(operandStyle.Sprint(op.Name))
		case op.Name != "":
			b.WriteString(operandStyle.Sprint(op.Name+": ") + label(op.Node))
		default:
			b.WriteString(label(op.Node))
		}
		b.WriteString("\n")
		writeOperands(b, op.Node, prefix+indent)
	}
}

// label names a node without its operands.
func label(n ast.Node) string {
	switch e := n.(type) {
	case nil:
		return leafStyle.Sprint("<nil>")
	case ast.Expression:
		return nodeStyle.Sprint("Expression")
	case ast.Literal, ast.MSep, ast.Null:
		return leafStyle.Sprint(e.String())
	case ast.GenericAccent:
		return nodeStyle.Sprint(e.Kind.String())
	case ast.Color:
		return nodeStyle.Sprint("Color(" + strconv.Quote(e.Color) + ")")
	case ast.Matrix:
		rows, cols := e.Dims()
		return nodeStyle.Sprintf("Matrix %dx%d", rows, cols)
	case ast.Vector:
		rows, cols := e.Dims()
		return nodeStyle.Sprintf("Vector %dx%d", rows, cols)
	}
	return nodeStyle.Sprint(strings.TrimPrefix(fmt.Sprintf("%T", n), "ast."))
}
