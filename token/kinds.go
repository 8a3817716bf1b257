package token

// Operation is the variant of a KindOperation token.
type Operation int

const (
	Plus Operation = iota
	Minus
	CDot
	Ast
	Star
	Slash
	Backslash
	Times
	Div
	LTimes
	RTimes
	Bowtie
	Circ
	OPlus
	OTimes
	ODot
	Sum
	Prod
	Wedge
	BigWedge
	Vee
	BigVee
	Cap
	BigCap
	Cup
	BigCup
)

var operationNames = [...]string{
	"Plus", "Minus", "CDot", "Ast", "Star", "Slash", "Backslash", "Times", "Div",
	"LTimes", "RTimes", "Bowtie", "Circ", "OPlus", "OTimes", "ODot", "Sum", "Prod",
	"Wedge", "BigWedge", "Vee", "BigVee", "Cap", "BigCap", "Cup", "BigCup",
}

func (o Operation) String() string { return enumName(operationNames[:], int(o), "Operation") }

// Misc is the variant of a KindMisc token: the postfix and prefix markers
// the tree parser gives structure to, and named constants.
type Misc int

const (
	AsciiFrac Misc = iota // "/"
	LatexFrac             // "frac"
	Pow                   // "^"
	Sub                   // "_"
	Sqrt
	Root
	Int
	OInt
	Del
	Grad
	PlusMinus
	EmptySet
	Infty
	Aleph
	Therefore
	Because
	LDots
	CDots
	VDots
	DDots
	Space
	Quad
	QQuad
	Angle
	Frown
	Triangle
	Diamond
	Square
	LFloor
	RFloor
	LCeiling
	RCeiling
	Complex
	Natural
	Rational
	Real
	Integer
)

var miscNames = [...]string{
	"AsciiFrac", "LatexFrac", "Pow", "Sub", "Sqrt", "Root", "Int", "OInt", "Del",
	"Grad", "PlusMinus", "EmptySet", "Infty", "Aleph", "Therefore", "Because",
	"LDots", "CDots", "VDots", "DDots", "Space", "Quad", "QQuad", "Angle", "Frown",
	"Triangle", "Diamond", "Square", "LFloor", "RFloor", "LCeiling", "RCeiling",
	"Complex", "Natural", "Rational", "Real", "Integer",
}

func (m Misc) String() string { return enumName(miscNames[:], int(m), "Misc") }

// Relation is the variant of a KindRelation token.
type Relation int

const (
	Eq Relation = iota
	Ne
	Lt
	Gt
	Le
	Ge
	Prec
	PrecEq
	Succ
	SuccEq
	In
	NotIn
	SubSet
	SupSet
	SubSetEq
	SupSetEq
	Equiv
	Cong
	Approx
	PropTo
)

var relationNames = [...]string{
	"Eq", "Ne", "Lt", "Gt", "Le", "Ge", "Prec", "PrecEq", "Succ", "SuccEq", "In",
	"NotIn", "SubSet", "SupSet", "SubSetEq", "SupSetEq", "Equiv", "Cong", "Approx",
	"PropTo",
}

func (r Relation) String() string { return enumName(relationNames[:], int(r), "Relation") }

// Logical is the variant of a KindLogical token.
type Logical int

const (
	And Logical = iota
	Or
	Not
	Implies
	If
	Iff
	ForAll
	Exists
	Bot
	Top
	VDash
	Models
)

var logicalNames = [...]string{
	"And", "Or", "Not", "Implies", "If", "Iff", "ForAll", "Exists", "Bot", "Top",
	"VDash", "Models",
}

func (l Logical) String() string { return enumName(logicalNames[:], int(l), "Logical") }

// Grouping is the variant of a KindGrouping token.
type Grouping int

const (
	LParen   Grouping = iota // (
	RParen                   // )
	LBracket                 // [
	RBracket                 // ]
	LBrace                   // {
	RBrace                   // }
	LAngle                   // (: << langle
	RAngle                   // :) >> rangle
	LXPar                    // {:
	RXPar                    // :}
	Abs
	Floor
	Ceil
	Norm
	MSep // ,
)

var groupingNames = [...]string{
	"LParen", "RParen", "LBracket", "RBracket", "LBrace", "RBrace", "LAngle",
	"RAngle", "LXPar", "RXPar", "Abs", "Floor", "Ceil", "Norm", "MSep",
}

func (g Grouping) String() string { return enumName(groupingNames[:], int(g), "Grouping") }

// IsOpen reports whether g opens a bracket group.
func (g Grouping) IsOpen() bool {
	switch g {
	case LParen, LBracket, LBrace, LAngle, LXPar:
		return true
	}
	return false
}

// IsClose reports whether g closes a bracket group.
func (g Grouping) IsClose() bool {
	switch g {
	case RParen, RBracket, RBrace, RAngle, RXPar:
		return true
	}
	return false
}

// Arrow is the variant of a KindArrow token.
type Arrow int

const (
	UpArrow Arrow = iota
	DownArrow
	RightArrow
	To
	RightArrowTail
	TwoHeadRightArrow
	TwoHeadRightArrowTail
	MapsTo
	LeftArrow
	LeftRightArrow
	BigRightArrow
	BigLeftArrow
	BigLeftRightArrow
)

var arrowNames = [...]string{
	"UpArrow", "DownArrow", "RightArrow", "To", "RightArrowTail", "TwoHeadRightArrow",
	"TwoHeadRightArrowTail", "MapsTo", "LeftArrow", "LeftRightArrow", "BigRightArrow",
	"BigLeftArrow", "BigLeftRightArrow",
}

func (a Arrow) String() string { return enumName(arrowNames[:], int(a), "Arrow") }

// Accent is the variant of a KindAccent token.
type Accent int

const (
	Hat Accent = iota
	Overline
	Underline
	Vec
	Tilde
	Dot
	DDot
	OverSet
	UnderSet
	UnderBrace
	OverBrace
	Color
	Cancel
)

var accentNames = [...]string{
	"Hat", "Overline", "Underline", "Vec", "Tilde", "Dot", "DDot", "OverSet",
	"UnderSet", "UnderBrace", "OverBrace", "Color", "Cancel",
}

func (a Accent) String() string { return enumName(accentNames[:], int(a), "Accent") }

// Greek is the variant of a KindGreek token.
type Greek int

const (
	Alpha Greek = iota
	Beta
	Gamma
	BigGamma
	Delta
	BigDelta
	Epsilon
	VarEpsilon
	Zeta
	Eta
	Theta
	BigTheta
	VarTheta
	Iota
	Kappa
	Lambda
	BigLambda
	Mu
	Nu
	Xi
	BigXi
	Pi
	BigPi
	Rho
	Sigma
	BigSigma
	Tau
	Upsilon
	Phi
	BigPhi
	VarPhi
	Chi
	Psi
	BigPsi
	Omega
	BigOmega
)

var greekNames = [...]string{
	"Alpha", "Beta", "Gamma", "BigGamma", "Delta", "BigDelta", "Epsilon", "VarEpsilon",
	"Zeta", "Eta", "Theta", "BigTheta", "VarTheta", "Iota", "Kappa", "Lambda",
	"BigLambda", "Mu", "Nu", "Xi", "BigXi", "Pi", "BigPi", "Rho", "Sigma", "BigSigma",
	"Tau", "Upsilon", "Phi", "BigPhi", "VarPhi", "Chi", "Psi", "BigPsi", "Omega",
	"BigOmega",
}

func (g Greek) String() string { return enumName(greekNames[:], int(g), "Greek") }

// FontCommand is the variant of a KindFont token. FontNone is never
// produced by the lexer; it marks plain text without formatting.
type FontCommand int

const (
	FontNone FontCommand = iota
	Bold
	DoubleStruck
	Script
	Monospace
	Fraktur
	SansSerif
)

var fontNames = [...]string{
	"None", "Bold", "DoubleStruck", "Script", "Monospace", "Fraktur", "SansSerif",
}

func (f FontCommand) String() string { return enumName(fontNames[:], int(f), "FontCommand") }

// Function is the variant of a KindFunction token.
type Function int

const (
	Sin Function = iota
	Cos
	Tan
	Sec
	Csc
	Cot
	ArcSin
	ArcCos
	ArcTan
	Sinh
	Cosh
	Tanh
	Sech
	Csch
	Coth
	Exp
	Log
	Ln
	Det
	Dim
	Mod
	Gcd
	Lcm
	Lub
	Glb
	Min
	Max
	F
	G
)

var functionNames = [...]string{
	"Sin", "Cos", "Tan", "Sec", "Csc", "Cot", "ArcSin", "ArcCos", "ArcTan", "Sinh",
	"Cosh", "Tanh", "Sech", "Csch", "Coth", "Exp", "Log", "Ln", "Det", "Dim", "Mod",
	"Gcd", "Lcm", "Lub", "Glb", "Min", "Max", "F", "G",
}

func (f Function) String() string { return enumName(functionNames[:], int(f), "Function") }
