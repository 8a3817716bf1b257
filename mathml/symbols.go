package mathml

import "github.com/gnolang/asciimath/token"

var greekSymbols = [...]string{
	token.Alpha:      "α",
	token.Beta:       "β",
	token.Gamma:      "γ",
	token.BigGamma:   "Γ",
	token.Delta:      "δ",
	token.BigDelta:   "Δ",
	token.Epsilon:    "ε",
	token.VarEpsilon: "ɛ",
	token.Zeta:       "ζ",
	token.Eta:        "η",
	token.Theta:      "θ",
	token.BigTheta:   "Θ",
	token.VarTheta:   "ϑ",
	token.Iota:       "ι",
	token.Kappa:      "κ",
	token.Lambda:     "λ",
	token.BigLambda:  "Λ",
	token.Mu:         "μ",
	token.Nu:         "ν",
	token.Xi:         "ξ",
	token.BigXi:      "Ξ",
	token.Pi:         "π",
	token.BigPi:      "Π",
	token.Rho:        "ρ",
	token.Sigma:      "σ",
	token.BigSigma:   "Σ",
	token.Tau:        "τ",
	token.Upsilon:    "υ",
	token.Phi:        "ϕ",
	token.BigPhi:     "Φ",
	token.VarPhi:     "φ",
	token.Chi:        "χ",
	token.Psi:        "ψ",
	token.BigPsi:     "Ψ",
	token.Omega:      "ω",
	token.BigOmega:   "Ω",
}

var operationSymbols = [...]string{
	token.Plus:      "+",
	token.Minus:     "−",
	token.CDot:      "⋅",
	token.Ast:       "∗",
	token.Star:      "⋆",
	token.Slash:     "/",
	token.Backslash: "\\",
	token.Times:     "×",
	token.Div:       "÷",
	token.LTimes:    "⋉",
	token.RTimes:    "⋊",
	token.Bowtie:    "⋈",
	token.Circ:      "∘",
	token.OPlus:     "⊕",
	token.OTimes:    "⊗",
	token.ODot:      "⊙",
	token.Sum:       "∑",
	token.Prod:      "∏",
	token.Wedge:     "∧",
	token.BigWedge:  "⋀",
	token.Vee:       "∨",
	token.BigVee:    "⋁",
	token.Cap:       "∩",
	token.BigCap:    "⋂",
	token.Cup:       "∪",
	token.BigCup:    "⋃",
}

var relationSymbols = [...]string{
	token.Eq:       "=",
	token.Ne:       "≠",
	token.Lt:       "<",
	token.Gt:       ">",
	token.Le:       "≤",
	token.Ge:       "≥",
	token.Prec:     "≺",
	token.PrecEq:   "⪯",
	token.Succ:     "≻",
	token.SuccEq:   "⪰",
	token.In:       "∈",
	token.NotIn:    "∉",
	token.SubSet:   "⊂",
	token.SupSet:   "⊃",
	token.SubSetEq: "⊆",
	token.SupSetEq: "⊇",
	token.Equiv:    "≡",
	token.Cong:     "≅",
	token.Approx:   "≈",
	token.PropTo:   "∝",
}

var logicalSymbols = [...]string{
	token.And:     "and",
	token.Or:      "or",
	token.Not:     "¬",
	token.Implies: "⇒",
	token.If:      "if",
	token.Iff:     "⇔",
	token.ForAll:  "∀",
	token.Exists:  "∃",
	token.Bot:     "⊥",
	token.Top:     "⊤",
	token.VDash:   "⊢",
	token.Models:  "⊨",
}

var arrowSymbols = [...]string{
	token.UpArrow:               "↑",
	token.DownArrow:             "↓",
	token.RightArrow:            "→",
	token.To:                    "→",
	token.RightArrowTail:        "↣",
	token.TwoHeadRightArrow:     "↠",
	token.TwoHeadRightArrowTail: "⤖",
	token.MapsTo:                "↦",
	token.LeftArrow:             "←",
	token.LeftRightArrow:        "↔",
	token.BigRightArrow:         "⇒",
	token.BigLeftArrow:          "⇐",
	token.BigLeftRightArrow:     "⇔",
}

// miscSymbols holds the Misc variants that render as a single character.
// Identifiers go into <mi>, everything else into <mo>.
var miscSymbols = map[token.Misc]struct {
	text  string
	ident bool
}{
	token.AsciiFrac: {"/", false},
	token.LatexFrac: {"frac", true},
	token.Pow:       {"^", false},
	token.Sub:       {"_", false},
	token.Sqrt:      {"√", false},
	token.Root:      {"√", false},
	token.Int:       {"∫", false},
	token.OInt:      {"∮", false},
	token.Del:       {"∂", true},
	token.Grad:      {"∇", true},
	token.PlusMinus: {"±", false},
	token.EmptySet:  {"∅", true},
	token.Infty:     {"∞", true},
	token.Aleph:     {"ℵ", true},
	token.Therefore: {"∴", false},
	token.Because:   {"∵", false},
	token.LDots:     {"…", false},
	token.CDots:     {"⋯", false},
	token.VDots:     {"⋮", false},
	token.DDots:     {"⋱", false},
	token.Angle:     {"∠", false},
	token.Frown:     {"⌢", false},
	token.Triangle:  {"△", false},
	token.Diamond:   {"⋄", false},
	token.Square:    {"□", false},
	token.LFloor:    {"⌊", false},
	token.RFloor:    {"⌋", false},
	token.LCeiling:  {"⌈", false},
	token.RCeiling:  {"⌉", false},
	token.Complex:   {"ℂ", true},
	token.Natural:   {"ℕ", true},
	token.Rational:  {"ℚ", true},
	token.Real:      {"ℝ", true},
	token.Integer:   {"ℤ", true},
}

// spaceWidths are the widths of the spacing commands.
var spaceWidths = map[token.Misc]string{
	token.Space: "1ex",
	token.Quad:  "1em",
	token.QQuad: "2em",
}

var functionNames = [...]string{
	token.Sin:    "sin",
	token.Cos:    "cos",
	token.Tan:    "tan",
	token.Sec:    "sec",
	token.Csc:    "csc",
	token.Cot:    "cot",
	token.ArcSin: "arcsin",
	token.ArcCos: "arccos",
	token.ArcTan: "arctan",
	token.Sinh:   "sinh",
	token.Cosh:   "cosh",
	token.Tanh:   "tanh",
	token.Sech:   "sech",
	token.Csch:   "csch",
	token.Coth:   "coth",
	token.Exp:    "exp",
	token.Log:    "log",
	token.Ln:     "ln",
	token.Det:    "det",
	token.Dim:    "dim",
	token.Mod:    "mod",
	token.Gcd:    "gcd",
	token.Lcm:    "lcm",
	token.Lub:    "lub",
	token.Glb:    "glb",
	token.Min:    "min",
	token.Max:    "max",
	token.F:      "f",
	token.G:      "g",
}

var mathVariants = [...]string{
	token.FontNone:     "",
	token.Bold:         "bold",
	token.DoubleStruck: "double-struck",
	token.Script:       "script",
	token.Monospace:    "monospace",
	token.Fraktur:      "fraktur",
	token.SansSerif:    "sans-serif",
}

// accentMarks are the characters placed over or under the operand of a
// generic accent.
var accentMarks = map[token.Accent]struct {
	mark  string
	under bool
}{
	token.Hat:        {"^", false},
	token.Overline:   {"¯", false},
	token.Underline:  {"_", true},
	token.Vec:        {"→", false},
	token.Tilde:      {"~", false},
	token.Dot:        {".", false},
	token.DDot:       {"..", false},
	token.OverBrace:  {"⏞", false},
	token.UnderBrace: {"⏟", true},
}

// lookup returns table[i] or the empty string when i is out of range.
func lookup[T ~int](table []string, i T) string {
	if int(i) >= 0 && int(i) < len(table) {
		return table[int(i)]
	}
	return ""
}
