package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gnolang/asciimath/token"
)

const (
	quote       = '"'
	decimalMark = '.'
	exponent    = 'e'
)

// textCommand introduces verbatim text, e.g. text(some words).
const textCommand = "text("

// Lexer is responsible for scanning the input string and producing tokens.
type Lexer struct {
	input    string // the entire input plus the terminal newline
	size     int    // length of the original input
	position int    // current reading position in input
	tokens   []token.Token
}

// NewLexer returns a new Lexer with the given input and initializes state.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:    input + "\n",
		size:     len(input),
		position: 0,
		tokens:   make([]token.Token, 0, len(input)/2+1),
	}
}

// Tokenize turns input into tokens. It never fails.
func Tokenize(input string) []token.Token {
	return NewLexer(input).Tokenize()
}

// Tokenize processes the entire input and produces the list of tokens.
// Every character ends up in exactly one token; characters no rule knows
// become one-character Symbol tokens. A trailing whitespace token is
// dropped.
func (l *Lexer) Tokenize() []token.Token {
	for l.position < len(l.input) {
		if l.lexPattern() {
			continue
		}

		switch c := l.input[l.position]; {
		case c == '\\' && l.peekByte(1) == '\n':
			l.addText(token.NewLine, "", l.position, l.position+2)

		case isWhitespace(l.input[l.position:]):
			l.lexWhitespace()

		case c == quote:
			l.lexQuoted()

		case strings.HasPrefix(l.input[l.position:], textCommand):
			l.lexTextCommand()

		case isDigit(c):
			l.lexNumber()

		default:
			_, size := utf8.DecodeRuneInString(l.input[l.position:])
			l.addText(token.Symbol, l.input[l.position:l.position+size], l.position, l.position+size)
		}
	}

	if n := len(l.tokens); n > 0 && l.tokens[n-1].IsText(token.Whitespace) {
		l.tokens = l.tokens[:n-1]
	}
	return l.tokens
}

// lexPattern tries the pattern tables at the current position.
func (l *Lexer) lexPattern() bool {
	kind, code, n, ok := token.Match(l.input[l.position:])
	if !ok {
		return false
	}

	start := l.position
	tok := token.Token{
		Kind: kind,
		Code: code,
		Pos:  start,
		End:  start + n,
	}
	if kind == token.KindAccent && token.Accent(code) == token.Color {
		// color(name) carries its argument inside the token
		if name, end, found := l.parenthesized(start + n); found {
			tok.Value = name
			tok.End = end
		}
	}
	l.add(tok)
	return true
}

// parenthesized reads "(...)" starting at from and returns its content and
// the offset just past the closing parenthesis.
func (l *Lexer) parenthesized(from int) (string, int, bool) {
	if from >= l.size || l.input[from] != '(' {
		return "", from, false
	}
	closing := strings.IndexByte(l.input[from+1:l.size], ')')
	if closing < 0 {
		return "", from, false
	}
	end := from + 1 + closing
	return l.input[from+1 : end], end + 1, true
}

// lexWhitespace scans consecutive whitespace and produces one Whitespace token.
func (l *Lexer) lexWhitespace() {
	start := l.position
	for l.position < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.position:])
		if !unicode.IsSpace(r) {
			break
		}
		l.position += size
	}
	l.addText(token.Whitespace, "", start, l.position)
}

// lexQuoted scans "..." verbatim. An unterminated quote runs to the end
// of the input.
func (l *Lexer) lexQuoted() {
	start := l.position
	closing := strings.IndexByte(l.input[start+1:l.size], quote)
	if closing < 0 {
		l.addText(token.Plain, l.input[start+1:l.size], start, l.size)
		return
	}
	end := start + 1 + closing
	l.addText(token.Plain, l.input[start+1:end], start, end+1)
}

// lexTextCommand scans text(...) verbatim up to the matching parenthesis.
func (l *Lexer) lexTextCommand() {
	start := l.position
	from := start + len(textCommand)
	depth := 1
	for i := from; i < l.size; i++ {
		switch l.input[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				l.addText(token.Plain, l.input[from:i], start, i+1)
				return
			}
		}
	}
	l.addText(token.Plain, l.input[from:l.size], start, l.size)
}

// lexNumber scans a digit run. One decimal mark and one exponent marker
// are accepted when a digit follows them.
func (l *Lexer) lexNumber() {
	start := l.position
	seenMark, seenExponent := false, false
	for l.position < len(l.input) {
		c := l.input[l.position]
		switch {
		case isDigit(c):
			l.position++
			continue
		case c == decimalMark && !seenMark && !seenExponent && isDigit(l.peekByte(1)):
			seenMark = true
		case c == exponent && !seenExponent && isDigit(l.peekByte(1)):
			seenExponent = true
		default:
			l.addText(token.Number, l.input[start:l.position], start, l.position)
			return
		}
		l.position++
	}
	l.addText(token.Number, l.input[start:l.position], start, l.position)
}

func (l *Lexer) peekByte(offset int) byte {
	if l.position+offset < len(l.input) {
		return l.input[l.position+offset]
	}
	return 0
}

// addText appends a Text token and moves the position past it.
func (l *Lexer) addText(variant token.Text, value string, start, end int) {
	l.add(token.Token{
		Kind:  token.KindText,
		Code:  int(variant),
		Value: value,
		Pos:   start,
		End:   end,
	})
}

// add appends tok, records its source text and moves past it. Offsets
// beyond the original input (the terminal newline) are clamped.
func (l *Lexer) add(tok token.Token) {
	l.position = tok.End
	if tok.End > l.size {
		tok.End = l.size
	}
	if tok.Pos > l.size {
		tok.Pos = l.size
	}
	tok.Lit = l.input[tok.Pos:tok.End]
	l.tokens = append(l.tokens, tok)
}

// isWhitespace reports whether s starts with a whitespace rune.
func isWhitespace(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsSpace(r)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
