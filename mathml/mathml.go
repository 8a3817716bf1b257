// Package mathml renders expression trees as presentation MathML.
package mathml

import (
	"html"
	"strings"

	"github.com/gnolang/asciimath/ast"
	"github.com/gnolang/asciimath/token"
)

// Namespace is the MathML XML namespace used on the <math> root.
const Namespace = "http://www.w3.org/1998/Math/MathML"

// Display selects how a formula is laid out inside its document.
type Display int

const (
	Inline Display = iota
	Block
)

func (d Display) String() string {
	if d == Block {
		return "block"
	}
	return "inline"
}

// ParseDisplay maps "inline" and "block" to a Display. Anything else is
// reported as not ok.
func ParseDisplay(s string) (Display, bool) {
	switch strings.ToLower(s) {
	case "", "inline":
		return Inline, true
	case "block":
		return Block, true
	}
	return Inline, false
}

type options struct {
	wrap    bool
	display Display
}

// Option configures Render.
type Option func(*options)

// WithWrap wraps the output in a <math> root element.
func WithWrap(wrap bool) Option {
	return func(o *options) { o.wrap = wrap }
}

// WithDisplay sets the display attribute of the <math> root. Block
// display implies WithWrap(true).
func WithDisplay(d Display) Option {
	return func(o *options) {
		o.display = d
		if d == Block {
			o.wrap = true
		}
	}
}

// Render converts expr to MathML. Without options the result is a single
// <mrow> that the caller embeds in its own <math> element.
func Render(expr ast.Expression, opts ...Option) string {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	r := &renderer{}
	if o.wrap {
		r.sb.WriteString(`<math xmlns="` + Namespace + `"`)
		if o.display == Block {
			r.sb.WriteString(` display="block"`)
		}
		r.sb.WriteString(">")
	}
	r.expression(expr)
	if o.wrap {
		r.sb.WriteString("</math>")
	}
	return r.sb.String()
}

// RenderElement converts a single element to MathML.
func RenderElement(e ast.Element) string {
	r := &renderer{}
	r.element(e)
	return r.sb.String()
}

type renderer struct {
	sb strings.Builder
}

func (r *renderer) open(tag string, attrs ...string) {
	r.sb.WriteString("<" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		r.sb.WriteString(" " + attrs[i] + `="` + html.EscapeString(attrs[i+1]) + `"`)
	}
	r.sb.WriteString(">")
}

func (r *renderer) close(tag string) {
	r.sb.WriteString("</" + tag + ">")
}

// leaf writes <tag>text</tag> with text escaped.
func (r *renderer) leaf(tag, text string, attrs ...string) {
	r.open(tag, attrs...)
	r.sb.WriteString(html.EscapeString(text))
	r.close(tag)
}

func (r *renderer) expression(expr ast.Expression) {
	r.open("mrow")
	for _, child := range expr.Children {
		r.element(child)
	}
	r.close("mrow")
}

// wrapped writes tag around the given operands.
func (r *renderer) wrapped(tag string, operands ...ast.Element) {
	r.open(tag)
	for _, op := range operands {
		r.element(op)
	}
	r.close(tag)
}

func (r *renderer) fenced(left, right string, inner ast.Expression) {
	r.open("mrow")
	if left != "" {
		r.leaf("mo", left)
	}
	for _, child := range inner.Children {
		r.element(child)
	}
	if right != "" {
		r.leaf("mo", right)
	}
	r.close("mrow")
}

func (r *renderer) element(e ast.Element) {
	switch e := e.(type) {
	case nil, ast.Null:
		r.sb.WriteString("<mrow/>")

	// literals
	case ast.Symbol:
		r.leaf("mi", e.Value)
	case ast.Number:
		r.leaf("mn", e.Value)
	case ast.Text:
		if e.Font == token.FontNone {
			r.leaf("mtext", e.Value)
		} else {
			r.leaf("mtext", e.Value, "mathvariant", lookup(mathVariants[:], e.Font))
		}
	case ast.NewLine:
		r.sb.WriteString(`<mspace linebreak="newline"/>`)
	case ast.Greek:
		r.leaf("mi", lookup(greekSymbols[:], e.Kind))
	case ast.Operation:
		r.leaf("mo", lookup(operationSymbols[:], e.Kind))
	case ast.Relation:
		r.leaf("mo", lookup(relationSymbols[:], e.Kind))
	case ast.Logical:
		r.leaf("mo", lookup(logicalSymbols[:], e.Kind))
	case ast.Arrow:
		r.leaf("mo", lookup(arrowSymbols[:], e.Kind))
	case ast.Function:
		r.leaf("mi", lookup(functionNames[:], e.Kind))
	case ast.Misc:
		r.misc(e.Kind)

	// specials
	case ast.Sum:
		r.underOver(operationSymbols[token.Sum], e.Bottom, e.Top)
	case ast.Prod:
		r.underOver(operationSymbols[token.Prod], e.Bottom, e.Top)
	case ast.Integral:
		r.subSup(miscSymbols[token.Int].text, e.Bottom, e.Top)
	case ast.OIntegral:
		r.subSup(miscSymbols[token.OInt].text, e.Bottom, e.Top)
	case ast.Frac:
		r.wrapped("mfrac", ast.ToNonEnclosed(e.Top), ast.ToNonEnclosed(e.Bottom))
	case ast.Pow:
		r.wrapped("msup", e.Base, e.Exp)
	case ast.Sub:
		r.wrapped("msub", e.Base, e.Lower)
	case ast.Sqrt:
		r.wrapped("msqrt", ast.ToNonEnclosed(e.Inner))
	case ast.Root:
		// the radicand comes first in <mroot>
		r.wrapped("mroot", ast.ToNonEnclosed(e.Inner), ast.ToNonEnclosed(e.Base))

	// groups
	case ast.MSep:
		r.leaf("mo", ",")
	case ast.Parentheses:
		r.fenced("(", ")", e.Inner)
	case ast.Brackets:
		r.fenced("[", "]", e.Inner)
	case ast.Braces:
		r.fenced("{", "}", e.Inner)
	case ast.Angles:
		r.fenced("⟨", "⟩", e.Inner)
	case ast.XGroup, ast.NonEnclosed:
		inner, _ := ast.Inner(e)
		r.fenced("", "", inner)
	case ast.Abs:
		r.fenced("|", "|", e.Inner)
	case ast.Floor:
		r.fenced("⌊", "⌋", e.Inner)
	case ast.Ceil:
		r.fenced("⌈", "⌉", e.Inner)
	case ast.Norm:
		r.fenced("‖", "‖", e.Inner)
	case ast.Matrix:
		r.table("[", "]", e.Rows)
	case ast.Vector:
		r.table("(", ")", e.Rows)

	// accents
	case ast.GenericAccent:
		r.accent(e)
	case ast.OverSet:
		r.wrapped("mover", e.Bottom, e.Top)
	case ast.UnderSet:
		r.wrapped("munder", e.Top, e.Bottom)
	case ast.Color:
		r.open("mstyle", "mathcolor", e.Color)
		r.element(e.Inner)
		r.close("mstyle")
	}
}

func (r *renderer) misc(kind token.Misc) {
	if width, ok := spaceWidths[kind]; ok {
		r.sb.WriteString(`<mspace width="` + width + `"/>`)
		return
	}
	sym, ok := miscSymbols[kind]
	switch {
	case !ok:
		r.sb.WriteString("<mrow/>")
	case sym.ident:
		r.leaf("mi", sym.text)
	default:
		r.leaf("mo", sym.text)
	}
}

// underOver renders a big operator with limits above and below it.
func (r *renderer) underOver(op string, bottom, top ast.Element) {
	r.limits(op, bottom, top, "munder", "mover", "munderover")
}

// subSup renders an integral sign with limits beside it.
func (r *renderer) subSup(op string, bottom, top ast.Element) {
	r.limits(op, bottom, top, "msub", "msup", "msubsup")
}

func (r *renderer) limits(op string, bottom, top ast.Element, lower, upper, both string) {
	var tag string
	switch {
	case bottom != nil && top != nil:
		tag = both
	case bottom != nil:
		tag = lower
	case top != nil:
		tag = upper
	default:
		r.leaf("mo", op)
		return
	}

	r.open(tag)
	r.leaf("mo", op)
	if bottom != nil {
		r.element(bottom)
	}
	if top != nil {
		r.element(top)
	}
	r.close(tag)
}

func (r *renderer) table(left, right string, rows [][]ast.Expression) {
	r.open("mrow")
	r.leaf("mo", left)
	r.open("mtable")
	for _, row := range rows {
		r.open("mtr")
		for _, cell := range row {
			r.open("mtd")
			r.expression(cell)
			r.close("mtd")
		}
		r.close("mtr")
	}
	r.close("mtable")
	r.leaf("mo", right)
	r.close("mrow")
}

func (r *renderer) accent(a ast.GenericAccent) {
	if a.Kind == token.Cancel {
		r.open("menclose", "notation", "updiagonalstrike")
		r.element(a.Inner)
		r.close("menclose")
		return
	}

	mark, ok := accentMarks[a.Kind]
	if !ok {
		r.element(a.Inner)
		return
	}
	if mark.under {
		r.open("munder", "accentunder", "true")
	} else {
		r.open("mover", "accent", "true")
	}
	r.element(a.Inner)
	r.leaf("mo", mark.mark)
	if mark.under {
		r.close("munder")
	} else {
		r.close("mover")
	}
}
