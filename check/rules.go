package check

import (
	"fmt"
	"strings"

	"github.com/gnolang/asciimath/parser"
	"github.com/gnolang/asciimath/token"
)

// UnbalancedDelimiterRule reports closing delimiters without an opener,
// openers that are never closed and groups closed by the wrong kind of
// delimiter.
type UnbalancedDelimiterRule struct{}

func (r *UnbalancedDelimiterRule) Name() string { return "unbalanced-delimiter" }

func (r *UnbalancedDelimiterRule) Check(f Formula) []Issue {
	var (
		issues []Issue
		open   []token.Token
	)
	for _, rep := range f.Repairs {
		if rep.Kind != parser.StrayCloser {
			continue
		}
		issue := f.issue(r.Name(), SeverityError, rep.Token,
			fmt.Sprintf("closing delimiter %q has no matching opener", rep.Token.Lit))
		issue.Note = "it is rendered as a plain symbol"
		issues = append(issues, issue)
	}

	for _, tok := range f.Tokens {
		if tok.Kind != token.KindGrouping {
			continue
		}
		g := tok.Grouping()
		switch {
		case g.IsOpen():
			open = append(open, tok)
		case g.IsClose():
			if len(open) == 0 {
				// reported from the parser's repairs
				continue
			}
			opener := open[len(open)-1]
			open = open[:len(open)-1]
			if closerOf(opener.Grouping()) != g {
				issue := f.issue(r.Name(), SeverityWarning, tok,
					fmt.Sprintf("%q is closed by %q", opener.Lit, tok.Lit))
				issue.Note = "the group keeps the shape of its opening delimiter"
				issues = append(issues, issue)
			}
		}
	}
	for _, tok := range open {
		issue := f.issue(r.Name(), SeverityError, tok,
			fmt.Sprintf("delimiter %q is never closed", tok.Lit))
		issue.Note = "the group runs to the end of the formula"
		issues = append(issues, issue)
	}
	return issues
}

// closerOf returns the closing delimiter matching an opening one.
func closerOf(g token.Grouping) token.Grouping {
	return g + 1
}

// MissingOperandRule reports operators whose operand is missing, such as
// "x^" or "sqrt)". The parser fills the gap with an empty element. Only
// the first missing operand of an operator is reported.
type MissingOperandRule struct{}

func (r *MissingOperandRule) Name() string { return "missing-operand" }

func (r *MissingOperandRule) Check(f Formula) []Issue {
	var issues []Issue
	reported := make(map[int]bool)
	for _, rep := range f.Repairs {
		if rep.Kind != parser.MissingOperand || reported[rep.Token.Pos] {
			continue
		}
		reported[rep.Token.Pos] = true
		issue := f.issue(r.Name(), SeverityError, rep.Token,
			fmt.Sprintf("%q is missing its %s operand", rep.Token.Lit, ordinal(rep.Operand, rep.Arity)))
		issues = append(issues, issue)
	}
	return issues
}

func ordinal(n, arity int) string {
	if arity == 1 {
		return "only"
	}
	if n == 0 {
		return "first"
	}
	return "second"
}

// DanglingMarkerRule reports "^", "_" and "/" markers that have nothing to
// attach to. A marker is dangling at the start of a group, after a comma,
// and when it follows another marker's operand: only one marker binds to
// an element, so "a^b^c" is read as a^b followed by a literal "^".
type DanglingMarkerRule struct{}

func (r *DanglingMarkerRule) Name() string { return "dangling-marker" }

func (r *DanglingMarkerRule) Check(f Formula) []Issue {
	var issues []Issue
	for _, rep := range f.Repairs {
		tok := rep.Token
		switch rep.Kind {
		case parser.LiteralMarker:
			issue := f.issue(r.Name(), SeverityWarning, tok,
				fmt.Sprintf("%q has no base", tok.Lit))
			issue.Note = "it is rendered as a plain symbol"
			issues = append(issues, issue)
		case parser.SeparatorBase:
			issue := f.issue(r.Name(), SeverityWarning, tok,
				fmt.Sprintf("%q has no base", tok.Lit))
			issue.Note = "it binds to the comma before it"
			issues = append(issues, issue)
		case parser.ChainedMarker:
			issue := f.issue(r.Name(), SeverityWarning, tok,
				fmt.Sprintf("%q follows another script and is not attached", tok.Lit))
			issue.Note = "only one script binds to an element; write x_i^2 as (x_i)^2"
			issues = append(issues, issue)
		}
	}
	return issues
}

// FontWithoutTextRule reports font commands that are not followed by
// quoted text. Such a command is rendered as its own spelling.
type FontWithoutTextRule struct{}

func (r *FontWithoutTextRule) Name() string { return "font-without-text" }

func (r *FontWithoutTextRule) Check(f Formula) []Issue {
	var issues []Issue
	for i, tok := range f.Tokens {
		if tok.Kind != token.KindFont {
			continue
		}
		if i+1 < len(f.Tokens) && f.Tokens[i+1].IsText(token.Plain) {
			continue
		}
		issue := f.issue(r.Name(), SeverityWarning, tok,
			fmt.Sprintf("font command %q is not followed by quoted text", tok.Lit))
		issue.Note = fmt.Sprintf(`write it as %s "text"`, tok.Lit)
		issues = append(issues, issue)
	}
	return issues
}

// UnterminatedTextRule reports quoted text and text(...) that run to the
// end of the formula.
type UnterminatedTextRule struct{}

func (r *UnterminatedTextRule) Name() string { return "unterminated-text" }

func (r *UnterminatedTextRule) Check(f Formula) []Issue {
	var issues []Issue
	for _, tok := range f.Tokens {
		if !tok.IsText(token.Plain) {
			continue
		}
		var closed bool
		switch {
		case strings.HasPrefix(tok.Lit, `"`):
			closed = len(tok.Lit) >= 2 && strings.HasSuffix(tok.Lit, `"`)
		case strings.HasPrefix(tok.Lit, "text("):
			closed = strings.HasSuffix(tok.Lit, ")")
		default:
			closed = true
		}
		if closed {
			continue
		}
		issue := f.issue(r.Name(), SeverityError, tok, "text is never terminated")
		issue.Note = "everything up to the end of the formula is read as text"
		issues = append(issues, issue)
	}
	return issues
}
