package parser

import "github.com/gnolang/asciimath/token"

// RepairKind identifies how the parser got past input it could not read
// as written.
type RepairKind int

const (
	// MissingOperand: an operand was absent and ast.Null took its place.
	MissingOperand RepairKind = iota
	// LiteralMarker: a "^", "_" or "/" with no element before it was
	// kept as a literal.
	LiteralMarker
	// ChainedMarker: a marker directly after the operand of another
	// marker was kept as a literal.
	ChainedMarker
	// SeparatorBase: a marker was bound to a column separator.
	SeparatorBase
	// StrayCloser: a closing delimiter outside any group became a symbol.
	StrayCloser
)

var repairKindNames = [...]string{
	MissingOperand: "MissingOperand",
	LiteralMarker:  "LiteralMarker",
	ChainedMarker:  "ChainedMarker",
	SeparatorBase:  "SeparatorBase",
	StrayCloser:    "StrayCloser",
}

func (k RepairKind) String() string {
	if k >= 0 && int(k) < len(repairKindNames) {
		return repairKindNames[k]
	}
	return "RepairKind(?)"
}

// Repair records one place where the tree differs from what the input
// literally says.
type Repair struct {
	Kind RepairKind
	// Token is the operator, marker or delimiter the repair is about.
	Token token.Token
	// Operand is the index of the missing operand among the Arity
	// operands Token takes. Both are zero for other kinds.
	Operand int
	Arity   int
}

func (p *Parser) repair(r Repair) {
	p.repairs = append(p.repairs, r)
}
