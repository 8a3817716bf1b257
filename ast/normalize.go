package ast

// ToNonEnclosed strips one visible delimiter layer from an operand.
// Parentheses, brackets and braces become NonEnclosed around the same
// inner expression; every other element is returned unchanged, so
// applying it twice is the same as applying it once.
func ToNonEnclosed(e Element) Element {
	switch g := e.(type) {
	case Parentheses:
		return NonEnclosed{Inner: g.Inner}
	case Brackets:
		return NonEnclosed{Inner: g.Inner}
	case Braces:
		return NonEnclosed{Inner: g.Inner}
	default:
		return e
	}
}

// Inner returns the expression a delimited group encloses.
func Inner(e Element) (Expression, bool) {
	switch g := e.(type) {
	case Parentheses:
		return g.Inner, true
	case Brackets:
		return g.Inner, true
	case Braces:
		return g.Inner, true
	case Angles:
		return g.Inner, true
	case XGroup:
		return g.Inner, true
	case Abs:
		return g.Inner, true
	case Floor:
		return g.Inner, true
	case Ceil:
		return g.Inner, true
	case Norm:
		return g.Inner, true
	case NonEnclosed:
		return g.Inner, true
	}
	return Expression{}, false
}
