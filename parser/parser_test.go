package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/asciimath/ast"
	"github.com/gnolang/asciimath/lexer"
	"github.com/gnolang/asciimath/token"
)

func num(v string) ast.Number { return ast.Number{Value: v} }
func sym(v string) ast.Symbol { return ast.Symbol{Value: v} }

func ex(children ...ast.Element) ast.Expression {
	return ast.Expression{Children: children}
}

func parse(input string) ast.Expression {
	return Parse(lexer.Tokenize(input))
}

func TestParsePostfix(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected ast.Expression
	}{
		{"power", "2^3", ex(ast.Pow{Base: num("2"), Exp: num("3")})},
		{"subscript", "2_3", ex(ast.Sub{Base: num("2"), Lower: num("3")})},
		{"fraction", "1/2", ex(ast.Frac{Top: num("1"), Bottom: num("2")})},
		{
			name:  "grouped base loses its parentheses",
			input: "(a+b)^2",
			expected: ex(ast.Pow{
				Base: ast.NonEnclosed{Inner: ex(sym("a"), ast.Operation{Kind: token.Plus}, sym("b"))},
				Exp:  num("2"),
			}),
		},
		{
			name:  "grouped exponent loses its parentheses",
			input: "x^(n+1)",
			expected: ex(ast.Pow{
				Base: sym("x"),
				Exp:  ast.NonEnclosed{Inner: ex(sym("n"), ast.Operation{Kind: token.Plus}, num("1"))},
			}),
		},
		{
			name:  "braces and brackets are stripped too",
			input: "{a}/[b]",
			expected: ex(ast.Frac{
				Top:    ast.NonEnclosed{Inner: ex(sym("a"))},
				Bottom: ast.NonEnclosed{Inner: ex(sym("b"))},
			}),
		},
		{
			name:     "angles are kept",
			input:    "(:a:)_1",
			expected: ex(ast.Sub{Base: ast.Angles{Inner: ex(sym("a"))}, Lower: num("1")}),
		},
		{"missing exponent", "2^", ex(ast.Pow{Base: num("2"), Exp: ast.Null{}})},
		{
			name:     "binding is single level",
			input:    "a^b^c",
			expected: ex(ast.Pow{Base: sym("a"), Exp: sym("b")}, ast.Misc{Kind: token.Pow}, sym("c")),
		},
		{
			name:     "fractions do not chain",
			input:    "a/b/c",
			expected: ex(ast.Frac{Top: sym("a"), Bottom: sym("b")}, ast.Misc{Kind: token.AsciiFrac}, sym("c")),
		},
		{
			name:     "dangling marker is a literal",
			input:    "^2",
			expected: ex(ast.Misc{Kind: token.Pow}, num("2")),
		},
		{
			name:  "postfix after a closed group binds outside",
			input: "(sqrt)^2",
			expected: ex(ast.Pow{
				Base: ast.NonEnclosed{Inner: ex(ast.Sqrt{Inner: ast.Null{}})},
				Exp:  num("2"),
			}),
		},
		{
			name:     "operand cut off by a closing delimiter",
			input:    "(a^)b",
			expected: ex(ast.Parentheses{Inner: ex(ast.Pow{Base: sym("a"), Exp: ast.Null{}})}, sym("b")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, parse(tt.input))
		})
	}
}

func TestParseLimits(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		expected ast.Expression
	}{
		{"sum_1^2", ex(ast.Sum{Bottom: num("1"), Top: num("2")})},
		{"sum^2", ex(ast.Sum{Top: num("2")})},
		{"sum_1", ex(ast.Sum{Bottom: num("1")})},
		{"sum", ex(ast.Sum{})},
		{"sum_2^3", ex(ast.Sum{Bottom: num("2"), Top: num("3")})},
		{"prod_1^2", ex(ast.Prod{Bottom: num("1"), Top: num("2")})},
		{"oint", ex(ast.OIntegral{})},
		{"sum_", ex(ast.Sum{Bottom: ast.Null{}})},
		{
			"sum_(i=1)^n i",
			ex(
				ast.Sum{
					Bottom: ast.NonEnclosed{Inner: ex(sym("i"), ast.Relation{Kind: token.Eq}, num("1"))},
					Top:    sym("n"),
				},
				sym("i"),
			),
		},
		{
			"int_0^1 f(x) dx",
			ex(
				ast.Integral{Bottom: num("0"), Top: num("1")},
				ast.Function{Kind: token.F},
				ast.Parentheses{Inner: ex(sym("x"))},
				sym("d"),
				sym("x"),
			),
		},
		{"(sum_)", ex(ast.Parentheses{Inner: ex(ast.Sum{Bottom: ast.Null{}})})},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, parse(tt.input))
		})
	}
}

func TestParsePrefix(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		expected ast.Expression
	}{
		{"root 3 16", ex(ast.Root{Base: num("3"), Inner: num("16")})},
		{"root 3", ex(ast.Root{Base: num("3"), Inner: ast.Null{}})},
		{"sqrt x", ex(ast.Sqrt{Inner: sym("x")})},
		{"sqrt(x)", ex(ast.Sqrt{Inner: ast.Parentheses{Inner: ex(sym("x"))}})},
		{"sqrt", ex(ast.Sqrt{Inner: ast.Null{}})},
		{"frac a b", ex(ast.Frac{Top: sym("a"), Bottom: sym("b")})},
		{
			"frac(a)(b)",
			ex(ast.Frac{
				Top:    ast.Parentheses{Inner: ex(sym("a"))},
				Bottom: ast.Parentheses{Inner: ex(sym("b"))},
			}),
		},
		{"(root)", ex(ast.Parentheses{Inner: ex(ast.Root{Base: ast.Null{}, Inner: ast.Null{}})})},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, parse(tt.input))
		})
	}
}

func TestParseAccents(t *testing.T) {
	t.Parallel()
	nx := ast.NonEnclosed{Inner: ex(sym("x"))}
	tests := []struct {
		input    string
		expected ast.Expression
	}{
		{"hat(x)", ex(ast.GenericAccent{Kind: token.Hat, Inner: nx})},
		{"bar x", ex(ast.GenericAccent{Kind: token.Overline, Inner: sym("x")})},
		{"cancel", ex(ast.GenericAccent{Kind: token.Cancel, Inner: ast.Null{}})},
		{
			"overset(a)(b)",
			ex(ast.OverSet{
				Top:    ast.NonEnclosed{Inner: ex(sym("a"))},
				Bottom: ast.NonEnclosed{Inner: ex(sym("b"))},
			}),
		},
		{
			"underset(a)(b)",
			ex(ast.UnderSet{
				Bottom: ast.NonEnclosed{Inner: ex(sym("a"))},
				Top:    ast.NonEnclosed{Inner: ex(sym("b"))},
			}),
		},
		{"color(red)(x)", ex(ast.Color{Color: "red", Inner: nx})},
		{"color x", ex(ast.Color{Color: "", Inner: sym("x")})},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, parse(tt.input))
		})
	}
}

func TestParseLiterals(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		expected ast.Expression
	}{
		{"", ast.Expression{}},
		{"   ", ast.Expression{}},
		{"alpha", ex(ast.Greek{Kind: token.Alpha})},
		{"a <= b", ex(sym("a"), ast.Relation{Kind: token.Le}, sym("b"))},
		{"sin x", ex(ast.Function{Kind: token.Sin}, sym("x"))},
		{"AA x => y", ex(ast.Logical{Kind: token.ForAll}, sym("x"), ast.Logical{Kind: token.Implies}, sym("y"))},
		{"x |-> y", ex(sym("x"), ast.Arrow{Kind: token.MapsTo}, sym("y"))},
		{"oo", ex(ast.Misc{Kind: token.Infty})},
		{"a xx b", ex(sym("a"), ast.Operation{Kind: token.Times}, sym("b"))},
		{`"hello world"`, ex(ast.Text{Value: "hello world"})},
		{"text(hi)", ex(ast.Text{Value: "hi"})},
		{"a\\\nb", ex(sym("a"), ast.NewLine{}, sym("b"))},
		{`bb "A"`, ex(ast.Text{Value: "A", Font: token.Bold})},
		{`bbb "R"`, ex(ast.Text{Value: "R", Font: token.DoubleStruck})},
		{"bb x", ex(sym("bb"), sym("x"))},
		{"1.5e3", ex(num("1.5e3"))},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, parse(tt.input))
		})
	}
}

func TestParseGroups(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		expected ast.Expression
	}{
		{"(x)", ex(ast.Parentheses{Inner: ex(sym("x"))})},
		{"[x]", ex(ast.Brackets{Inner: ex(sym("x"))})},
		{"{x}", ex(ast.Braces{Inner: ex(sym("x"))})},
		{"(:x:)", ex(ast.Angles{Inner: ex(sym("x"))})},
		{"{:x:}", ex(ast.XGroup{Inner: ex(sym("x"))})},
		{"()", ex(ast.Parentheses{})},
		{"abs(x)", ex(ast.Abs{Inner: ex(sym("x"))})},
		{"floor(x)", ex(ast.Floor{Inner: ex(sym("x"))})},
		{"ceil(x)", ex(ast.Ceil{Inner: ex(sym("x"))})},
		{"norm[v]", ex(ast.Norm{Inner: ex(sym("v"))})},
		{"abs x", ex(sym("abs"), sym("x"))},
		{"(a", ex(ast.Parentheses{Inner: ex(sym("a"))})},
		{")", ex(sym(")"))},
		{"a)b", ex(sym("a"), sym(")"), sym("b"))},
		{"(a]b", ex(ast.Parentheses{Inner: ex(sym("a"))}, sym("b"))},
		{"a,b", ex(sym("a"), ast.MSep{}, sym("b"))},
		{
			"((1), (2))(1,2) - f",
			ex(
				ast.Vector{Rows: [][]ast.Expression{{ex(num("1"))}, {ex(num("2"))}}},
				ast.Parentheses{Inner: ex(num("1"), ast.MSep{}, num("2"))},
				ast.Operation{Kind: token.Minus},
				ast.Function{Kind: token.F},
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, parse(tt.input))
		})
	}
}

func TestParseGrids(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected ast.Expression
	}{
		{
			name:  "matrix",
			input: "[[1,2],[3,4]]",
			expected: ex(ast.Matrix{Rows: [][]ast.Expression{
				{ex(num("1")), ex(num("2"))},
				{ex(num("3")), ex(num("4"))},
			}}),
		},
		{
			name:  "matrix with spaces",
			input: "[[1, 2],[3,4]]",
			expected: ex(ast.Matrix{Rows: [][]ast.Expression{
				{ex(num("1")), ex(num("2"))},
				{ex(num("3")), ex(num("4"))},
			}}),
		},
		{
			name:  "vector",
			input: "((1, 3), (2, 5))",
			expected: ex(ast.Vector{Rows: [][]ast.Expression{
				{ex(num("1")), ex(num("3"))},
				{ex(num("2")), ex(num("5"))},
			}}),
		},
		{
			name:  "single row",
			input: "[[a,b]]",
			expected: ex(ast.Matrix{Rows: [][]ast.Expression{
				{ex(sym("a")), ex(sym("b"))},
			}}),
		},
		{
			name:  "rows without separators",
			input: "[[a][b]]",
			expected: ex(ast.Brackets{Inner: ex(
				ast.Brackets{Inner: ex(sym("a"))},
				ast.Brackets{Inner: ex(sym("b"))},
			)}),
		},
		{
			name:     "scalar is not a matrix",
			input:    "[[1]]",
			expected: ex(ast.Brackets{Inner: ex(ast.Brackets{Inner: ex(num("1"))})}),
		},
		{
			name:  "ragged rows fall back to groups",
			input: "[[1, 3, 4],[3,4]]",
			expected: ex(ast.Brackets{Inner: ex(
				ast.Brackets{Inner: ex(num("1"), ast.MSep{}, num("3"), ast.MSep{}, num("4"))},
				ast.MSep{},
				ast.Brackets{Inner: ex(num("3"), ast.MSep{}, num("4"))},
			)}),
		},
		{
			name:  "unterminated grid",
			input: "[[1,2],[3,4]",
			expected: ex(ast.Brackets{Inner: ex(
				ast.Brackets{Inner: ex(num("1"), ast.MSep{}, num("2"))},
				ast.MSep{},
				ast.Brackets{Inner: ex(num("3"), ast.MSep{}, num("4"))},
			)}),
		},
		{
			name:  "trailing separator",
			input: "((a),(b),)",
			expected: ex(ast.Parentheses{Inner: ex(
				ast.Parentheses{Inner: ex(sym("a"))},
				ast.MSep{},
				ast.Parentheses{Inner: ex(sym("b"))},
				ast.MSep{},
			)}),
		},
		{
			name:  "mixed delimiters are not a grid",
			input: "[(1,2),(3,4)]",
			expected: ex(ast.Brackets{Inner: ex(
				ast.Parentheses{Inner: ex(num("1"), ast.MSep{}, num("2"))},
				ast.MSep{},
				ast.Parentheses{Inner: ex(num("3"), ast.MSep{}, num("4"))},
			)}),
		},
		{
			name:  "cells keep their groups",
			input: "[[(a),b],[c,d]]",
			expected: ex(ast.Matrix{Rows: [][]ast.Expression{
				{ex(ast.Parentheses{Inner: ex(sym("a"))}), ex(sym("b"))},
				{ex(sym("c")), ex(sym("d"))},
			}}),
		},
		{
			name:  "empty cells",
			input: "[[],[]]",
			expected: ex(ast.Matrix{Rows: [][]ast.Expression{
				{{}},
				{{}},
			}}),
		},
		{
			name:  "nested matrix",
			input: "[[a,[[1,2],[3,4]]],[b,c]]",
			expected: ex(ast.Matrix{Rows: [][]ast.Expression{
				{ex(sym("a")), ex(ast.Matrix{Rows: [][]ast.Expression{
					{ex(num("1")), ex(num("2"))},
					{ex(num("3")), ex(num("4"))},
				}})},
				{ex(sym("b")), ex(sym("c"))},
			}}),
		},
		{
			name:  "matrix as a base",
			input: "[[1,2],[3,4]]^T",
			expected: ex(ast.Pow{
				Base: ast.Matrix{Rows: [][]ast.Expression{
					{ex(num("1")), ex(num("2"))},
					{ex(num("3")), ex(num("4"))},
				}},
				Exp: sym("T"),
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, parse(tt.input))
		})
	}
}

func TestGridShapes(t *testing.T) {
	t.Parallel()
	for rows := 1; rows <= 4; rows++ {
		for cols := 1; cols <= 4; cols++ {
			if rows*cols == 1 {
				continue
			}
			lines := make([]string, rows)
			for i := range lines {
				cells := make([]string, cols)
				for j := range cells {
					cells[j] = "x"
				}
				lines[i] = "[" + strings.Join(cells, ",") + "]"
			}
			input := "[" + strings.Join(lines, ",") + "]"

			expr := parse(input)
			require.Len(t, expr.Children, 1, input)
			m, ok := expr.Children[0].(ast.Matrix)
			require.True(t, ok, input)
			r, c := m.Dims()
			assert.Equal(t, rows, r, input)
			assert.Equal(t, cols, c, input)

			vector := strings.NewReplacer("[", "(", "]", ")").Replace(input)
			expr = parse(vector)
			require.Len(t, expr.Children, 1, vector)
			v, ok := expr.Children[0].(ast.Vector)
			require.True(t, ok, vector)
			r, c = v.Dims()
			assert.Equal(t, rows, r, vector)
			assert.Equal(t, cols, c, vector)
		}
	}
}

func TestParseDeepNesting(t *testing.T) {
	t.Parallel()
	const depth = 300

	input := strings.Repeat("(", depth) + "x" + strings.Repeat(")", depth)
	expr := parse(input)

	groups := 0
	ast.Walk(expr, func(n ast.Node) bool {
		if _, ok := n.(ast.Parentheses); ok {
			groups++
		}
		return true
	})
	assert.Equal(t, depth, groups)

	// unbalanced openers must not trigger repeated speculative parsing
	expr = parse(strings.Repeat("((", depth) + "x")
	assert.Len(t, expr.Children, 1)
}

func TestParseIsTotal(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"", ")", "]]]", "((", "[[", ",", "^", "_", "/", "sum_^", "int^_",
		"root", "frac", "overset", "underset(", "color(", "bb", "abs",
		"abs(", "[[1,2],[3", "((1),(2)", "(:", ":)", "{:", "\"", "text(",
		"[[1,2],(3,4)]", "[(1,2],[3,4)]", "a^b_c/d", "\\", "€",
		"sqrt sqrt sqrt", "hat hat", ",,,,", "(,)", "[[,],[,]]",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			assert.NotPanics(t, func() {
				expr := parse(input)
				ast.Walk(expr, func(n ast.Node) bool {
					assert.NotNil(t, n)
					return true
				})
			})
		})
	}
}

func TestParserReuse(t *testing.T) {
	t.Parallel()
	p := NewParser(lexer.Tokenize("[[1,2],[3,4]] + (a)^2"))
	first := p.Parse()
	assert.Equal(t, first, p.Parse())
}

func TestParseRepairs(t *testing.T) {
	t.Parallel()
	type repair struct {
		kind    RepairKind
		lit     string
		operand int
	}
	tests := []struct {
		name     string
		input    string
		expected []repair
	}{
		{"well formed", "sum_(i=1)^n x_i", nil},
		{"missing exponent", "x^", []repair{{MissingOperand, "^", 0}}},
		{"missing radicand", "root 3", []repair{{MissingOperand, "root", 1}}},
		{"both fraction operands", "frac", []repair{{MissingOperand, "frac", 0}, {MissingOperand, "frac", 1}}},
		{"missing lower limit", "sum_", []repair{{MissingOperand, "_", 0}}},
		{"closed group ends the operand", "(x^)", []repair{{MissingOperand, "^", 0}}},
		{"leading marker", "^2", []repair{{LiteralMarker, "^", 0}}},
		{"marker as operand", "root 3 /", []repair{{LiteralMarker, "/", 0}}},
		{"chained marker", "x_i^2", []repair{{ChainedMarker, "^", 0}}},
		{"marker after comma", "a,/b", []repair{{SeparatorBase, "/", 0}}},
		{"stray closer", "a)", []repair{{StrayCloser, ")", 0}}},
		{
			name:  "stray closer as fraction top",
			input: "overset a / ] /",
			expected: []repair{
				{LiteralMarker, "/", 0},
				{StrayCloser, "]", 0},
				{MissingOperand, "/", 0},
			},
		},
		{"rolled back grid keeps one copy", "[[(a^),b],[c]]", []repair{{MissingOperand, "^", 0}}},
		{"rejected grid row", "((1,2),(3,^))", []repair{{SeparatorBase, "^", 0}, {MissingOperand, "^", 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := NewParser(lexer.Tokenize(tt.input))
			p.Parse()

			var got []repair
			for _, r := range p.Repairs() {
				got = append(got, repair{r.Kind, r.Token.Lit, r.Operand})
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseResetsRepairs(t *testing.T) {
	t.Parallel()
	p := NewParser(lexer.Tokenize("[[(a^),b],[c]] + x^"))
	p.Parse()
	first := p.Repairs()
	require.Len(t, first, 2)

	p.Parse()
	assert.Equal(t, first, p.Repairs())
	assert.Equal(t, "MissingOperand", first[0].Kind.String())
}
