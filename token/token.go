package token

import (
	"fmt"
	"strconv"
)

// Kind is the category of a token.
type Kind int

const (
	KindOperation Kind = iota // binary operators and big operators (sum, prod)
	KindMisc                  // structural markers and named constants
	KindRelation              // =, <, in, sub, ...
	KindLogical               // and, or, =>, AA, ...
	KindGrouping              // brackets, abs/floor/ceil/norm, matrix separator
	KindArrow                 // ->, |->, uarr, ...
	KindAccent                // hat, bar, overset, color, ...
	KindGreek                 // alpha, Gamma, ...
	KindFont                  // bb, bbb, cc, tt, fr, sf
	KindFunction              // sin, log, f, g, ...
	KindText                  // numbers, symbols, plain text, whitespace, newlines
	KindEnd                   // end of the token stream
)

var kindNames = [...]string{
	KindOperation: "Operation",
	KindMisc:      "Misc",
	KindRelation:  "Relation",
	KindLogical:   "Logical",
	KindGrouping:  "Grouping",
	KindArrow:     "Arrow",
	KindAccent:    "Accent",
	KindGreek:     "Greek",
	KindFont:      "Font",
	KindFunction:  "Function",
	KindText:      "Text",
	KindEnd:       "End",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Text is the variant of a KindText token.
type Text int

const (
	Number Text = iota
	Symbol
	Plain
	Whitespace
	NewLine
)

var textNames = [...]string{"Number", "Symbol", "Plain", "Whitespace", "NewLine"}

func (t Text) String() string { return enumName(textNames[:], int(t), "Text") }

// Token represents a single lexical token.
//
// Code holds the variant inside Kind and must be read through the typed
// accessor matching Kind (Operation, Misc, Relation, ...).
type Token struct {
	Kind  Kind   // category of this token
	Code  int    // variant within the category
	Lit   string // source text the token was scanned from
	Value string // payload: text of Number/Symbol/Plain tokens, colour of a Color accent
	Pos   int    // byte offset of the first character in the input
	End   int    // byte offset just past the last character
}

// EOF is the sentinel appended by the tree parser.
var EOF = Token{Kind: KindEnd}

func (t Token) Operation() Operation { return Operation(t.Code) }
func (t Token) Misc() Misc           { return Misc(t.Code) }
func (t Token) Relation() Relation   { return Relation(t.Code) }
func (t Token) Logical() Logical     { return Logical(t.Code) }
func (t Token) Grouping() Grouping   { return Grouping(t.Code) }
func (t Token) Arrow() Arrow         { return Arrow(t.Code) }
func (t Token) Accent() Accent       { return Accent(t.Code) }
func (t Token) Greek() Greek         { return Greek(t.Code) }
func (t Token) Font() FontCommand    { return FontCommand(t.Code) }
func (t Token) Function() Function   { return Function(t.Code) }
func (t Token) Text() Text           { return Text(t.Code) }

// Is reports whether t has the given kind and variant code.
func (t Token) Is(kind Kind, code int) bool {
	return t.Kind == kind && t.Code == code
}

// IsMisc reports whether t is the given Misc marker.
func (t Token) IsMisc(m Misc) bool { return t.Is(KindMisc, int(m)) }

// IsGrouping reports whether t is the given Grouping token.
func (t Token) IsGrouping(g Grouping) bool { return t.Is(KindGrouping, int(g)) }

// IsText reports whether t is a Text token of the given variant.
func (t Token) IsText(v Text) bool { return t.Is(KindText, int(v)) }

// Variant returns the name of the variant inside the token's category.
func (t Token) Variant() string {
	switch t.Kind {
	case KindOperation:
		return t.Operation().String()
	case KindMisc:
		return t.Misc().String()
	case KindRelation:
		return t.Relation().String()
	case KindLogical:
		return t.Logical().String()
	case KindGrouping:
		return t.Grouping().String()
	case KindArrow:
		return t.Arrow().String()
	case KindAccent:
		return t.Accent().String()
	case KindGreek:
		return t.Greek().String()
	case KindFont:
		return t.Font().String()
	case KindFunction:
		return t.Function().String()
	case KindText:
		return t.Text().String()
	}
	return ""
}

// String renders the token without its position, e.g. Operation(Sum),
// Number("5.16e6") or Accent(Color "red").
func (t Token) String() string {
	switch {
	case t.Kind == KindEnd:
		return "End"
	case t.Kind == KindText:
		switch t.Text() {
		case Whitespace, NewLine:
			return t.Text().String()
		}
		return fmt.Sprintf("%s(%q)", t.Text(), t.Value)
	case t.Kind == KindAccent && t.Accent() == Color:
		return fmt.Sprintf("Accent(Color %q)", t.Value)
	}
	return t.Kind.String() + "(" + t.Variant() + ")"
}

func enumName(names []string, v int, typ string) string {
	if v >= 0 && v < len(names) && names[v] != "" {
		return names[v]
	}
	return typ + "(" + strconv.Itoa(v) + ")"
}
