package ast

import (
	"strconv"
	"strings"

	"github.com/gnolang/asciimath/token"
)

// Node is anything the tree is made of: an Element or an Expression.
type Node interface {
	String() string
}

// Element is one node of a parsed formula. The set of implementations is
// closed; switch over the concrete types to handle them.
type Element interface {
	Node
	isElement()
}

// Literal is a terminal element.
type Literal interface {
	Element
	isLiteral()
}

// Special is a structural construct with fixed operands.
type Special interface {
	Element
	isSpecial()
}

// Group is a delimited construct or a grid.
type Group interface {
	Element
	isGroup()
}

// Accent decorates its operand.
type Accent interface {
	Element
	isAccent()
}

// Expression is a sequence of elements in reading order.
type Expression struct {
	Children []Element
}

func (e Expression) String() string {
	parts := make([]string, len(e.Children))
	for i, child := range e.Children {
		parts[i] = child.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Len returns the number of children.
func (e Expression) Len() int { return len(e.Children) }

////////////////////////////////////////////////////////////////////////////////
// Literals

// Symbol is a character or word without a special meaning.
type Symbol struct {
	Value string
}

// Number is a numeric literal kept as written.
type Number struct {
	Value string
}

// Text is verbatim text. Font is token.FontNone for unformatted text.
type Text struct {
	Value string
	Font  token.FontCommand
}

// NewLine is an explicit line break.
type NewLine struct{}

type Greek struct{ Kind token.Greek }

type Operation struct{ Kind token.Operation }

type Misc struct{ Kind token.Misc }

type Relation struct{ Kind token.Relation }

type Logical struct{ Kind token.Logical }

type Arrow struct{ Kind token.Arrow }

type Function struct{ Kind token.Function }

func (Symbol) isElement()    {}
func (Number) isElement()    {}
func (Text) isElement()      {}
func (NewLine) isElement()   {}
func (Greek) isElement()     {}
func (Operation) isElement() {}
func (Misc) isElement()      {}
func (Relation) isElement()  {}
func (Logical) isElement()   {}
func (Arrow) isElement()     {}
func (Function) isElement()  {}

func (Symbol) isLiteral()    {}
func (Number) isLiteral()    {}
func (Text) isLiteral()      {}
func (NewLine) isLiteral()   {}
func (Greek) isLiteral()     {}
func (Operation) isLiteral() {}
func (Misc) isLiteral()      {}
func (Relation) isLiteral()  {}
func (Logical) isLiteral()   {}
func (Arrow) isLiteral()     {}
func (Function) isLiteral()  {}

func (s Symbol) String() string { return "Symbol(" + strconv.Quote(s.Value) + ")" }
func (n Number) String() string { return "Number(" + strconv.Quote(n.Value) + ")" }
func (t Text) String() string {
	if t.Font == token.FontNone {
		return "Text(" + strconv.Quote(t.Value) + ")"
	}
	return "Text(" + t.Font.String() + " " + strconv.Quote(t.Value) + ")"
}
func (NewLine) String() string     { return "NewLine" }
func (g Greek) String() string     { return "Greek(" + g.Kind.String() + ")" }
func (o Operation) String() string { return "Operation(" + o.Kind.String() + ")" }
func (m Misc) String() string      { return "Misc(" + m.Kind.String() + ")" }
func (r Relation) String() string  { return "Relation(" + r.Kind.String() + ")" }
func (l Logical) String() string   { return "Logical(" + l.Kind.String() + ")" }
func (a Arrow) String() string     { return "Arrow(" + a.Kind.String() + ")" }
func (f Function) String() string  { return "Function(" + f.Kind.String() + ")" }

////////////////////////////////////////////////////////////////////////////////
// Specials

// Limits are optional: Top and Bottom are nil when absent.
type (
	Sum       struct{ Top, Bottom Element }
	Prod      struct{ Top, Bottom Element }
	Integral  struct{ Top, Bottom Element }
	OIntegral struct{ Top, Bottom Element }
)

// Frac is a fraction, from either "a/b" or "frac a b".
type Frac struct {
	Top    Element
	Bottom Element
}

// Pow is a superscript.
type Pow struct {
	Base Element
	Exp  Element
}

// Sub is a subscript.
type Sub struct {
	Base  Element
	Lower Element
}

// Sqrt is a square root.
type Sqrt struct {
	Inner Element
}

// Root is an n-th root: Base is the index, Inner the radicand.
type Root struct {
	Base  Element
	Inner Element
}

func (Sum) isElement()       {}
func (Prod) isElement()      {}
func (Integral) isElement()  {}
func (OIntegral) isElement() {}
func (Frac) isElement()      {}
func (Pow) isElement()       {}
func (Sub) isElement()       {}
func (Sqrt) isElement()      {}
func (Root) isElement()      {}

func (Sum) isSpecial()       {}
func (Prod) isSpecial()      {}
func (Integral) isSpecial()  {}
func (OIntegral) isSpecial() {}
func (Frac) isSpecial()      {}
func (Pow) isSpecial()       {}
func (Sub) isSpecial()       {}
func (Sqrt) isSpecial()      {}
func (Root) isSpecial()      {}

func (s Sum) String() string       { return "Sum" + limits(s.Bottom, s.Top) }
func (p Prod) String() string      { return "Prod" + limits(p.Bottom, p.Top) }
func (i Integral) String() string  { return "Integral" + limits(i.Bottom, i.Top) }
func (o OIntegral) String() string { return "OIntegral" + limits(o.Bottom, o.Top) }
func (f Frac) String() string      { return "Frac" + operands(f.Top, f.Bottom) }
func (p Pow) String() string       { return "Pow" + operands(p.Base, p.Exp) }
func (s Sub) String() string       { return "Sub" + operands(s.Base, s.Lower) }
func (s Sqrt) String() string      { return "Sqrt" + operands(s.Inner) }
func (r Root) String() string      { return "Root" + operands(r.Base, r.Inner) }

////////////////////////////////////////////////////////////////////////////////
// Groups

// MSep separates matrix cells. Outside a grid it stays in the tree as is.
type MSep struct{}

type (
	Parentheses struct{ Inner Expression }
	Brackets    struct{ Inner Expression }
	Braces      struct{ Inner Expression }
	Angles      struct{ Inner Expression }
	XGroup      struct{ Inner Expression }
	Abs         struct{ Inner Expression }
	Floor       struct{ Inner Expression }
	Ceil        struct{ Inner Expression }
	Norm        struct{ Inner Expression }
)

// NonEnclosed is a group whose delimiters are not rendered. It only
// appears as the operand of a postfix marker or an accent.
type NonEnclosed struct {
	Inner Expression
}

// Matrix is a bracketed grid: rows ≥ 1, every row the same length, and
// more than one cell.
type Matrix struct {
	Rows [][]Expression
}

// Vector is the parenthesized form of Matrix.
type Vector struct {
	Rows [][]Expression
}

func (MSep) isElement()        {}
func (Parentheses) isElement() {}
func (Brackets) isElement()    {}
func (Braces) isElement()      {}
func (Angles) isElement()      {}
func (XGroup) isElement()      {}
func (Abs) isElement()         {}
func (Floor) isElement()       {}
func (Ceil) isElement()        {}
func (Norm) isElement()        {}
func (NonEnclosed) isElement() {}
func (Matrix) isElement()      {}
func (Vector) isElement()      {}

func (MSep) isGroup()        {}
func (Parentheses) isGroup() {}
func (Brackets) isGroup()    {}
func (Braces) isGroup()      {}
func (Angles) isGroup()      {}
func (XGroup) isGroup()      {}
func (Abs) isGroup()         {}
func (Floor) isGroup()       {}
func (Ceil) isGroup()        {}
func (Norm) isGroup()        {}
func (NonEnclosed) isGroup() {}
func (Matrix) isGroup()      {}
func (Vector) isGroup()      {}

func (MSep) String() string          { return "MSep" }
func (g Parentheses) String() string { return "Parentheses" + g.Inner.String() }
func (g Brackets) String() string    { return "Brackets" + g.Inner.String() }
func (g Braces) String() string      { return "Braces" + g.Inner.String() }
func (g Angles) String() string      { return "Angles" + g.Inner.String() }
func (g XGroup) String() string      { return "XGroup" + g.Inner.String() }
func (g Abs) String() string         { return "Abs" + g.Inner.String() }
func (g Floor) String() string       { return "Floor" + g.Inner.String() }
func (g Ceil) String() string        { return "Ceil" + g.Inner.String() }
func (g Norm) String() string        { return "Norm" + g.Inner.String() }
func (g NonEnclosed) String() string { return "NonEnclosed" + g.Inner.String() }
func (m Matrix) String() string      { return "Matrix" + grid(m.Rows) }
func (v Vector) String() string      { return "Vector" + grid(v.Rows) }

// Dims returns the number of rows and columns of the grid.
func (m Matrix) Dims() (rows, cols int) { return dims(m.Rows) }

// Dims returns the number of rows and columns of the grid.
func (v Vector) Dims() (rows, cols int) { return dims(v.Rows) }

////////////////////////////////////////////////////////////////////////////////
// Accents

// GenericAccent is any accent with a single operand (hat, bar, cancel, ...).
type GenericAccent struct {
	Kind  token.Accent
	Inner Element
}

// OverSet places Top above Bottom.
type OverSet struct {
	Top    Element
	Bottom Element
}

// UnderSet places Bottom below Top.
type UnderSet struct {
	Top    Element
	Bottom Element
}

// Color paints its operand. Color holds the name as written.
type Color struct {
	Color string
	Inner Element
}

func (GenericAccent) isElement() {}
func (OverSet) isElement()       {}
func (UnderSet) isElement()      {}
func (Color) isElement()         {}

func (GenericAccent) isAccent() {}
func (OverSet) isAccent()       {}
func (UnderSet) isAccent()      {}
func (Color) isAccent()         {}

func (a GenericAccent) String() string { return a.Kind.String() + operands(a.Inner) }
func (a OverSet) String() string       { return "OverSet" + operands(a.Top, a.Bottom) }
func (a UnderSet) String() string      { return "UnderSet" + operands(a.Top, a.Bottom) }
func (a Color) String() string         { return "Color(" + strconv.Quote(a.Color) + ")" + operands(a.Inner) }

////////////////////////////////////////////////////////////////////////////////
// Null

// Null stands in for an operand the input did not provide.
type Null struct{}

func (Null) isElement()     {}
func (Null) String() string { return "Null" }

////////////////////////////////////////////////////////////////////////////////
// helpers

func str(e Element) string {
	if e == nil {
		return "_"
	}
	return e.String()
}

func operands(elems ...Element) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = str(e)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func limits(bottom, top Element) string {
	return "{" + str(bottom) + ", " + str(top) + "}"
}

func grid(rows [][]Expression) string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, row := range rows {
		if i > 0 {
			sb.WriteString("; ")
		}
		for j, cell := range row {
			if j > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(cell.String())
		}
	}
	sb.WriteString("}")
	return sb.String()
}

func dims(rows [][]Expression) (int, int) {
	if len(rows) == 0 {
		return 0, 0
	}
	return len(rows), len(rows[0])
}
