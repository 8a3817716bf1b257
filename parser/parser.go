package parser

import (
	"github.com/gnolang/asciimath/ast"
	"github.com/gnolang/asciimath/token"
)

// Parser builds an expression tree from a token stream.
//
// The cursor always rests on the last token consumed by the element being
// parsed; the expression loop steps past it. A closing delimiter inside a
// group raises closeGroup so every enclosing loop can unwind to the group
// that owns it.
type Parser struct {
	tokens     []token.Token
	current    int
	closeGroup bool
	depth      int // number of open groups around the cursor

	// afterScript is set while parsing the element that directly follows
	// a bound postfix marker.
	afterScript bool
	repairs     []Repair

	// groups caches the element parsed at an opening delimiter. Grids are
	// parsed speculatively, so the same opener may be visited again after
	// a rollback.
	groups map[int]parsedGroup
}

type parsedGroup struct {
	elem    ast.Element
	end     int
	repairs []Repair
}

// NewParser creates a Parser. Whitespace tokens are dropped and the End
// sentinel is appended.
func NewParser(tokens []token.Token) *Parser {
	filtered := make([]token.Token, 0, len(tokens)+1)
	for _, tok := range tokens {
		if tok.IsText(token.Whitespace) {
			continue
		}
		filtered = append(filtered, tok)
	}
	filtered = append(filtered, token.EOF)

	return &Parser{
		tokens: filtered,
		groups: make(map[int]parsedGroup),
	}
}

// Parse builds the expression tree for tokens. It never fails: unknown
// constructs become literals and missing operands become ast.Null.
func Parse(tokens []token.Token) ast.Expression {
	return NewParser(tokens).Parse()
}

// Parse processes all tokens and builds the expression tree.
func (p *Parser) Parse() ast.Expression {
	p.current, p.depth, p.closeGroup, p.afterScript = 0, 0, false, false
	p.repairs = nil
	return p.parseExpression()
}

// Repairs returns the repairs made by the last call to Parse, in the
// order they were made.
func (p *Parser) Repairs() []Repair {
	return p.repairs
}

func (p *Parser) cur() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) peek() token.Token {
	if p.current+1 < len(p.tokens) {
		return p.tokens[p.current+1]
	}
	return token.EOF
}

// step advances the cursor unless it sits on the End sentinel.
func (p *Parser) step() bool {
	if p.current < len(p.tokens)-1 {
		p.current++
		return true
	}
	return false
}

func (p *Parser) endReached() bool {
	return p.current >= len(p.tokens)-1
}

// parseExpression parses elements until the end of the stream or until a
// closing delimiter ends the current group.
func (p *Parser) parseExpression() ast.Expression {
	var (
		expr  ast.Expression
		bound bool
	)

	for !p.endReached() {
		p.afterScript, bound = bound, false
		if elem := p.parseElement(); elem != nil {
			if !p.closeGroup {
				elem, bound = p.parsePostfix(elem)
			}
			expr.Children = append(expr.Children, elem)
		}
		if p.closeGroup {
			break
		}
		p.step()
	}
	p.closeGroup = false

	return expr
}

// parsePostfix binds a following ^, / or _ to prev and reports whether
// it did. Only one marker is bound per element.
func (p *Parser) parsePostfix(prev ast.Element) (ast.Element, bool) {
	next := p.peek()
	if !isPostfixMarker(next) {
		return prev, false
	}
	p.step()
	if _, ok := prev.(ast.MSep); ok {
		p.repair(Repair{Kind: SeparatorBase, Token: next})
	}

	base := ast.ToNonEnclosed(prev)
	operand := ast.ToNonEnclosed(p.operand(next, 0, 1))
	switch next.Misc() {
	case token.Pow:
		return ast.Pow{Base: base, Exp: operand}, true
	case token.AsciiFrac:
		return ast.Frac{Top: base, Bottom: operand}, true
	default:
		return ast.Sub{Base: base, Lower: operand}, true
	}
}

// next moves to the following token and parses it as an operand. It
// yields ast.Null at the end of the stream or when the current group has
// already been closed.
func (p *Parser) next() ast.Element {
	if p.closeGroup || !p.step() {
		return ast.Null{}
	}
	p.afterScript = false
	if elem := p.parseElement(); elem != nil {
		return elem
	}
	return ast.Null{}
}

// operand parses operand n of the arity operands op takes, recording a
// MissingOperand repair when it is absent.
func (p *Parser) operand(op token.Token, n, arity int) ast.Element {
	elem := p.next()
	if _, ok := elem.(ast.Null); ok {
		p.repair(Repair{Kind: MissingOperand, Token: op, Operand: n, Arity: arity})
	}
	return elem
}

// limit parses an optional "_x" or "^x" following a big operator.
func (p *Parser) limit(marker token.Misc) ast.Element {
	if p.closeGroup || !p.peek().IsMisc(marker) {
		return nil
	}
	p.step()
	return ast.ToNonEnclosed(p.operand(p.cur(), 0, 1))
}

// parseElement parses the element starting at the cursor. It returns nil
// for the End sentinel and for a closing delimiter that ends a group.
func (p *Parser) parseElement() ast.Element {
	t := p.cur()

	switch t.Kind {
	case token.KindGreek:
		return ast.Greek{Kind: t.Greek()}
	case token.KindRelation:
		return ast.Relation{Kind: t.Relation()}
	case token.KindFunction:
		return ast.Function{Kind: t.Function()}
	case token.KindLogical:
		return ast.Logical{Kind: t.Logical()}
	case token.KindArrow:
		return ast.Arrow{Kind: t.Arrow()}
	case token.KindText:
		return parseText(t)
	case token.KindFont:
		return p.parseFont(t)
	case token.KindOperation:
		return p.parseOperation(t)
	case token.KindMisc:
		return p.parseMisc(t)
	case token.KindGrouping:
		return p.parseGrouping(t)
	case token.KindAccent:
		return p.parseAccent(t)
	}
	return nil
}

func parseText(t token.Token) ast.Element {
	switch t.Text() {
	case token.Number:
		return ast.Number{Value: t.Value}
	case token.Symbol:
		return ast.Symbol{Value: t.Value}
	case token.Plain:
		return ast.Text{Value: t.Value}
	case token.NewLine:
		return ast.NewLine{}
	}
	return nil
}

// parseFont applies a font command to the quoted text that follows it.
// Without such text the command is kept as a symbol of its spelling.
func (p *Parser) parseFont(t token.Token) ast.Element {
	if p.peek().IsText(token.Plain) {
		p.step()
		return ast.Text{Value: p.cur().Value, Font: t.Font()}
	}
	return ast.Symbol{Value: t.Lit}
}

func (p *Parser) parseOperation(t token.Token) ast.Element {
	switch t.Operation() {
	case token.Sum:
		bottom := p.limit(token.Sub)
		return ast.Sum{Bottom: bottom, Top: p.limit(token.Pow)}
	case token.Prod:
		bottom := p.limit(token.Sub)
		return ast.Prod{Bottom: bottom, Top: p.limit(token.Pow)}
	}
	return ast.Operation{Kind: t.Operation()}
}

func (p *Parser) parseMisc(t token.Token) ast.Element {
	switch t.Misc() {
	case token.Int:
		bottom := p.limit(token.Sub)
		return ast.Integral{Bottom: bottom, Top: p.limit(token.Pow)}
	case token.OInt:
		bottom := p.limit(token.Sub)
		return ast.OIntegral{Bottom: bottom, Top: p.limit(token.Pow)}
	case token.Sqrt:
		return ast.Sqrt{Inner: p.operand(t, 0, 1)}
	case token.Root:
		base := p.operand(t, 0, 2)
		return ast.Root{Base: base, Inner: p.operand(t, 1, 2)}
	case token.LatexFrac:
		top := p.operand(t, 0, 2)
		return ast.Frac{Top: top, Bottom: p.operand(t, 1, 2)}
	case token.Pow, token.Sub, token.AsciiFrac:
		// a marker that reaches here has nothing to bind to
		kind := LiteralMarker
		if p.afterScript {
			kind = ChainedMarker
		}
		p.repair(Repair{Kind: kind, Token: t})
	}
	return ast.Misc{Kind: t.Misc()}
}

func (p *Parser) parseAccent(t token.Token) ast.Element {
	switch t.Accent() {
	case token.OverSet:
		top := ast.ToNonEnclosed(p.operand(t, 0, 2))
		return ast.OverSet{Top: top, Bottom: ast.ToNonEnclosed(p.operand(t, 1, 2))}
	case token.UnderSet:
		bottom := ast.ToNonEnclosed(p.operand(t, 0, 2))
		return ast.UnderSet{Top: ast.ToNonEnclosed(p.operand(t, 1, 2)), Bottom: bottom}
	case token.Color:
		return ast.Color{Color: t.Value, Inner: ast.ToNonEnclosed(p.operand(t, 0, 1))}
	}
	return ast.GenericAccent{Kind: t.Accent(), Inner: ast.ToNonEnclosed(p.operand(t, 0, 1))}
}

func (p *Parser) parseGrouping(t token.Token) ast.Element {
	g := t.Grouping()

	switch {
	case g.IsOpen():
		return p.parseOpen(g)

	case g.IsClose():
		if p.depth > 0 {
			p.closeGroup = true
			return nil
		}
		// nothing to close at the top level
		p.repair(Repair{Kind: StrayCloser, Token: t})
		return ast.Symbol{Value: t.Lit}

	case g == token.MSep:
		return ast.MSep{}
	}

	// abs, floor, ceil and norm are written as a word followed by an
	// opening delimiter, e.g. abs(x)
	if !isOpener(p.peek()) {
		return ast.Symbol{Value: t.Lit}
	}
	p.step()
	inner := p.parseEnclosed()
	switch g {
	case token.Abs:
		return ast.Abs{Inner: inner}
	case token.Floor:
		return ast.Floor{Inner: inner}
	case token.Ceil:
		return ast.Ceil{Inner: inner}
	default:
		return ast.Norm{Inner: inner}
	}
}

// parseOpen parses the group starting at an opening delimiter: a matrix
// for "[", a vector for "(", or an ordinary group.
func (p *Parser) parseOpen(g token.Grouping) ast.Element {
	start := p.current
	if cached, ok := p.groups[start]; ok {
		p.current = cached.end
		p.repairs = append(p.repairs, cached.repairs...)
		return cached.elem
	}
	mark := len(p.repairs)

	var elem ast.Element
	switch g {
	case token.LBracket:
		if rows, ok := p.parseGrid(token.LBracket, token.RBracket); ok {
			elem = ast.Matrix{Rows: rows}
		}
	case token.LParen:
		if rows, ok := p.parseGrid(token.LParen, token.RParen); ok {
			elem = ast.Vector{Rows: rows}
		}
	}

	if elem == nil {
		inner := p.parseEnclosed()
		switch g {
		case token.LParen:
			elem = ast.Parentheses{Inner: inner}
		case token.LBracket:
			elem = ast.Brackets{Inner: inner}
		case token.LBrace:
			elem = ast.Braces{Inner: inner}
		case token.LAngle:
			elem = ast.Angles{Inner: inner}
		default:
			elem = ast.XGroup{Inner: inner}
		}
	}

	p.groups[start] = parsedGroup{
		elem:    elem,
		end:     p.current,
		repairs: append([]Repair(nil), p.repairs[mark:]...),
	}
	return elem
}

// parseEnclosed parses the expression after the opening delimiter under
// the cursor. The cursor ends on the closing delimiter, or on the End
// sentinel when the group is never closed.
func (p *Parser) parseEnclosed() ast.Expression {
	if !p.step() {
		return ast.Expression{}
	}
	p.depth++
	inner := p.parseExpression()
	p.depth--
	return inner
}

func isPostfixMarker(t token.Token) bool {
	return t.IsMisc(token.Pow) || t.IsMisc(token.Sub) || t.IsMisc(token.AsciiFrac)
}

func isOpener(t token.Token) bool {
	return t.Kind == token.KindGrouping && t.Grouping().IsOpen()
}
