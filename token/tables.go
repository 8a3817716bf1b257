package token

import (
	"github.com/gnolang/asciimath/internal/trie"
)

// Entry maps a set of equivalent spellings to one variant code.
type Entry struct {
	Patterns []string
	Code     int
}

// Map is one priority level of a category table.
type Map []Entry

// Table is the ordered list of maps of one category. A spelling found in
// an earlier map wins over any spelling found in a later one.
type Table []Map

func e[T ~int](code T, patterns ...string) Entry {
	return Entry{Patterns: patterns, Code: int(code)}
}

// priority is the order in which categories are consulted. When spellings
// of different categories match with the same length, the earlier
// category wins.
var priority = [...]Kind{
	KindGrouping,
	KindArrow,
	KindRelation,
	KindOperation,
	KindMisc,
	KindLogical,
	KindAccent,
	KindGreek,
	KindFont,
	KindFunction,
}

// Categories returns the category priority order used by Match.
func Categories() []Kind {
	out := make([]Kind, len(priority))
	copy(out, priority[:])
	return out
}

var tables = map[Kind]Table{
	KindGrouping: {
		{
			e(LAngle, "(:", "<<", "langle"),
			e(RAngle, ":)", ">>", "rangle"),
			e(LXPar, "{:"),
			e(RXPar, ":}"),
		},
		{
			e(LParen, "("),
			e(RParen, ")"),
			e(LBracket, "["),
			e(RBracket, "]"),
			e(LBrace, "{"),
			e(RBrace, "}"),
			e(Abs, "abs"),
			e(Floor, "floor"),
			e(Ceil, "ceil"),
			e(Norm, "norm"),
			e(MSep, ","),
		},
	},
	KindArrow: {
		{
			e(TwoHeadRightArrowTail, ">->>", "twoheadrightarrowtail"),
			e(TwoHeadRightArrow, "->>", "twoheadrightarrow"),
			e(RightArrowTail, ">->", "rightarrowtail"),
		},
		{
			e(UpArrow, "uarr", "uparrow"),
			e(DownArrow, "darr", "downarrow"),
			e(RightArrow, "rarr", "rightarrow"),
			e(To, "->", "to"),
			e(MapsTo, "|->", "mapsto"),
			e(LeftArrow, "larr", "leftarrow"),
			e(LeftRightArrow, "harr", "leftrightarrow"),
			e(BigRightArrow, "rArr", "Rightarrow"),
			e(BigLeftArrow, "lArr", "Leftarrow"),
			e(BigLeftRightArrow, "hArr", "Leftrightarrow"),
		},
	},
	KindRelation: {
		{
			e(SubSetEq, "sube", "subseteq"),
			e(SupSetEq, "supe", "supseteq"),
			e(Le, "<=", "le"),
			e(Ge, ">=", "ge"),
			e(SuccEq, ">-=", "succeq"),
			e(PrecEq, "-<=", "preceq"),
		},
		{
			e(Succ, ">-", "succ"),
		},
		{
			e(Eq, "="),
			e(Ne, "!=", "ne"),
			e(Lt, "<", "lt"),
			e(Gt, ">", "gt"),
			e(Prec, "-<", "prec"),
			e(In, "in"),
			e(NotIn, "!in", "notin"),
			e(SubSet, "sub", "subset"),
			e(SupSet, "sup", "supset"),
			e(Equiv, "-=", "equiv"),
			e(Cong, "~=", "cong"),
			e(Approx, "~~", "approx"),
			e(PropTo, "prop", "propto"),
		},
	},
	KindOperation: {
		{
			e(Star, "***", "star"),
		},
		{
			e(Ast, "**", "ast"),
			e(Bowtie, "|><|", "bowtie"),
			e(Div, "-:", "div"),
			e(BigWedge, "^^^", "bigwedge"),
			e(BigVee, "vvv", "bigvee"),
			e(BigCap, "nnn", "bigcap"),
			e(BigCup, "uuu", "bigcup"),
		},
		{
			e(Plus, "+"),
			e(Minus, "-"),
			e(CDot, "*", "cdot"),
			e(Slash, "//"),
			e(Backslash, "\\\\", "backslash"),
			e(Times, "xx", "times"),
			e(LTimes, "|><", "ltimes"),
			e(RTimes, "><|", "rtimes"),
			e(Circ, "@", "circ"),
			e(OPlus, "o+", "oplus"),
			e(OTimes, "ox", "otimes"),
			e(ODot, "o.", "odot"),
			e(Sum, "sum"),
			e(Prod, "prod"),
			e(Wedge, "^^", "wedge"),
			e(Vee, "vv", "vee"),
			e(Cap, "nn", "cap"),
			e(Cup, "uu", "cup"),
		},
	},
	KindMisc: {
		{
			e(Triangle, "/_\\", "triangle"),
		},
		{
			e(Angle, "/_", "angle"),
		},
		{
			e(AsciiFrac, "/"),
			e(LatexFrac, "frac"),
			e(Pow, "^"),
			e(Sub, "_"),
			e(Sqrt, "sqrt"),
			e(Root, "root"),
			e(Int, "int"),
			e(OInt, "oint"),
			e(Del, "del", "partial"),
			e(Grad, "grad", "nabla"),
			e(PlusMinus, "+-", "pm"),
			e(EmptySet, "O/", "emptyset"),
			e(Infty, "oo", "infty"),
			e(Aleph, "aleph"),
			e(Therefore, ":.", "therefore"),
			e(Because, ":'", "because"),
			e(LDots, "...", "ldots"),
			e(CDots, "cdots"),
			e(VDots, "vdots"),
			e(DDots, "ddots"),
			e(Space, "\\ "),
			e(Quad, "quad"),
			e(QQuad, "qquad"),
			e(Frown, "frown"),
			e(Diamond, "diamond"),
			e(Square, "square"),
			e(LFloor, "|__", "lfloor"),
			e(RFloor, "__|", "rfloor"),
			e(LCeiling, "|~", "lceiling"),
			e(RCeiling, "~|", "rceiling"),
			e(Complex, "CC"),
			e(Natural, "NN"),
			e(Rational, "QQ"),
			e(Real, "RR"),
			e(Integer, "ZZ"),
		},
	},
	KindLogical: {
		{
			e(Iff, "<=>", "iff"),
		},
		{
			e(And, "and"),
			e(Or, "or"),
			e(Not, "not", "neg"),
			e(Implies, "=>", "implies"),
			e(If, "if"),
			e(ForAll, "AA", "forall"),
			e(Exists, "EE", "exists"),
			e(Bot, "_|_", "bot"),
			e(Top, "TT", "top"),
			e(VDash, "|--", "vdash"),
			e(Models, "|==", "models"),
		},
	},
	KindAccent: {
		{
			e(Hat, "hat"),
			e(Overline, "bar", "overline"),
			e(Underline, "ul", "underline"),
			e(Vec, "vec"),
			e(Tilde, "tilde"),
			e(Dot, "dot"),
			e(DDot, "ddot"),
			e(OverSet, "overset"),
			e(UnderSet, "underset"),
			e(UnderBrace, "ubrace", "underbrace"),
			e(OverBrace, "obrace", "overbrace"),
			e(Color, "color"),
			e(Cancel, "cancel"),
		},
	},
	KindGreek: {
		{
			e(Alpha, "alpha"),
			e(Beta, "beta"),
			e(Gamma, "gamma"),
			e(BigGamma, "Gamma"),
			e(Delta, "delta"),
			e(BigDelta, "Delta"),
			e(Epsilon, "epsilon"),
			e(VarEpsilon, "varepsilon"),
			e(Zeta, "zeta"),
			e(Eta, "eta"),
			e(Theta, "theta"),
			e(BigTheta, "Theta"),
			e(VarTheta, "vartheta"),
			e(Iota, "iota"),
			e(Kappa, "kappa"),
			e(Lambda, "lambda"),
			e(BigLambda, "Lambda"),
			e(Mu, "mu"),
			e(Nu, "nu"),
			e(Xi, "xi"),
			e(BigXi, "Xi"),
			e(Pi, "pi"),
			e(BigPi, "Pi"),
			e(Rho, "rho"),
			e(Sigma, "sigma"),
			e(BigSigma, "Sigma"),
			e(Tau, "tau"),
			e(Upsilon, "upsilon"),
			e(Phi, "phi"),
			e(BigPhi, "Phi"),
			e(VarPhi, "varphi"),
			e(Chi, "chi"),
			e(Psi, "psi"),
			e(BigPsi, "Psi"),
			e(Omega, "omega"),
			e(BigOmega, "Omega"),
		},
	},
	KindFont: {
		{
			e(DoubleStruck, "bbb"),
		},
		{
			e(Bold, "bb"),
			e(Script, "cc"),
			e(Monospace, "tt"),
			e(Fraktur, "fr"),
			e(SansSerif, "sf"),
		},
	},
	KindFunction: {
		{
			e(ArcSin, "arcsin"),
			e(ArcCos, "arccos"),
			e(ArcTan, "arctan"),
			e(Sinh, "sinh"),
			e(Cosh, "cosh"),
			e(Tanh, "tanh"),
			e(Sech, "sech"),
			e(Csch, "csch"),
			e(Coth, "coth"),
		},
		{
			e(Sin, "sin"),
			e(Cos, "cos"),
			e(Tan, "tan"),
			e(Sec, "sec"),
			e(Csc, "csc"),
			e(Cot, "cot"),
			e(Exp, "exp"),
			e(Log, "log"),
			e(Ln, "ln"),
			e(Det, "det"),
			e(Dim, "dim"),
			e(Mod, "mod"),
			e(Gcd, "gcd"),
			e(Lcm, "lcm"),
			e(Lub, "lub"),
			e(Glb, "glb"),
			e(Min, "min"),
			e(Max, "max"),
		},
		{
			e(F, "f"),
			e(G, "g"),
		},
	},
}

// candidate is what a compiled trie stores for one spelling.
type candidate struct {
	rank int // index of the map the spelling came from
	code int
}

type index struct {
	trie       *trie.Trie
	candidates []candidate
}

// indexes is built once at package initialisation and only read afterwards.
var indexes = compile(tables)

func compile(tables map[Kind]Table) map[Kind]*index {
	out := make(map[Kind]*index, len(tables))
	for kind, table := range tables {
		idx := &index{trie: trie.New()}
		for rank, m := range table {
			for _, entry := range m {
				for _, pattern := range entry.Patterns {
					if idx.trie.Insert(pattern, len(idx.candidates)) {
						idx.candidates = append(idx.candidates, candidate{rank: rank, code: entry.Code})
					}
				}
			}
		}
		out[kind] = idx
	}
	return out
}

// Lookup finds the spelling of the given category at the start of s.
// The earliest map with a matching spelling wins; inside that map the
// longest spelling wins. n is the byte length of the matched spelling.
func Lookup(kind Kind, s string) (code int, n int, ok bool) {
	idx, exists := indexes[kind]
	if !exists {
		return 0, 0, false
	}

	best := candidate{rank: -1}
	idx.trie.Prefixes(s, func(length, value int) bool {
		c := idx.candidates[value]
		if best.rank == -1 || c.rank < best.rank || (c.rank == best.rank && length > n) {
			best = c
			n = length
		}
		return true
	})
	if best.rank == -1 {
		return 0, 0, false
	}
	return best.code, n, true
}

// Match runs Lookup for every category in priority order and keeps the
// longest spelling; on equal length the earlier category wins.
func Match(s string) (kind Kind, code int, n int, ok bool) {
	for _, k := range priority {
		c, length, found := Lookup(k, s)
		if found && length > n {
			kind, code, n, ok = k, c, length, true
		}
	}
	return kind, code, n, ok
}

// Spellings returns every spelling of the given variant, in table order.
func Spellings(kind Kind, code int) []string {
	var out []string
	for _, m := range tables[kind] {
		for _, entry := range m {
			if entry.Code == code {
				out = append(out, entry.Patterns...)
			}
		}
	}
	return out
}
