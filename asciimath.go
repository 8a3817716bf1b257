// Package asciimath converts AsciiMath markup into an expression tree and
// renders it as presentation MathML.
//
// Parsing never fails: characters without a meaning become symbols,
// missing operands become ast.Null, and malformed matrices fall back to
// nested groups.
package asciimath

import (
	"github.com/gnolang/asciimath/ast"
	"github.com/gnolang/asciimath/lexer"
	"github.com/gnolang/asciimath/mathml"
	"github.com/gnolang/asciimath/parser"
	"github.com/gnolang/asciimath/token"
)

// Tokenize splits content into tokens.
func Tokenize(content string) []token.Token {
	return lexer.Tokenize(content)
}

// Parse tokenizes content and builds its expression tree.
func Parse(content string) ast.Expression {
	return parser.Parse(lexer.Tokenize(content))
}

// ToMathML parses content and renders it as MathML.
func ToMathML(content string, opts ...mathml.Option) string {
	return mathml.Render(Parse(content), opts...)
}
