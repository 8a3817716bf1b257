// Package check reports constructs the parser had to repair: unbalanced
// delimiters, operators without operands and similar slips. Parsing still
// succeeds for every input; these issues point at places where the
// rendered formula is probably not what the author meant.
package check

import (
	"sort"

	"github.com/gnolang/asciimath"
	"github.com/gnolang/asciimath/lexer"
	"github.com/gnolang/asciimath/parser"
	"github.com/gnolang/asciimath/token"
)

// Severity is how serious an issue is.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	case SeverityInfo:
		return "INFO"
	default:
		return "UNKNOWN"
	}
}

// Position is a 1-based line and column (in bytes) in a source file.
type Position struct {
	Line   int
	Column int
}

// Issue represents a problem found in a formula.
type Issue struct {
	Rule     string
	Filename string
	Severity Severity
	Message  string
	Note     string
	Start    Position
	End      Position // inclusive
}

// Formula is the input of a rule: one formula with its tokens and the
// repairs the parser made to build its tree. Whitespace tokens are
// removed.
type Formula struct {
	asciimath.Formula
	Filename string
	Tokens   []token.Token
	Repairs  []parser.Repair
}

// issue builds an Issue spanning tok.
func (f Formula) issue(rule string, sev Severity, tok token.Token, message string) Issue {
	startLine, startCol := f.Position(tok.Pos)
	end := tok.End - 1
	if end < tok.Pos {
		end = tok.Pos
	}
	endLine, endCol := f.Position(end)
	return Issue{
		Rule:     rule,
		Filename: f.Filename,
		Severity: sev,
		Message:  message,
		Start:    Position{Line: startLine, Column: startCol},
		End:      Position{Line: endLine, Column: endCol},
	}
}

// Rule defines the interface for all checks.
type Rule interface {
	// Check runs the rule on one formula.
	Check(f Formula) []Issue

	// Name returns the name of the rule.
	Name() string
}

// DefaultRules returns every rule of this package.
func DefaultRules() []Rule {
	return []Rule{
		&UnbalancedDelimiterRule{},
		&MissingOperandRule{},
		&DanglingMarkerRule{},
		&FontWithoutTextRule{},
		&UnterminatedTextRule{},
	}
}

// Checker runs a set of rules over source files.
type Checker struct {
	rules []Rule
}

// New returns a Checker running rules, or DefaultRules when none are given.
func New(rules ...Rule) *Checker {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Checker{rules: rules}
}

// Rules returns the names of the rules the checker runs.
func (c *Checker) Rules() []string {
	names := make([]string, len(c.rules))
	for i, r := range c.rules {
		names[i] = r.Name()
	}
	return names
}

// Source checks every formula of src. Issues are ordered by position.
func (c *Checker) Source(filename string, src *asciimath.SourceCode) []Issue {
	var issues []Issue
	for _, f := range src.Formulas() {
		issues = append(issues, c.Formula(filename, f)...)
	}
	sortIssues(issues)
	return issues
}

// Formula checks a single formula.
func (c *Checker) Formula(filename string, f asciimath.Formula) []Issue {
	tokens := lexer.Tokenize(f.Text)
	p := parser.NewParser(tokens)
	p.Parse()

	input := Formula{
		Formula:  f,
		Filename: filename,
		Tokens:   withoutWhitespace(tokens),
		Repairs:  p.Repairs(),
	}

	var issues []Issue
	for _, rule := range c.rules {
		issues = append(issues, rule.Check(input)...)
	}
	sortIssues(issues)
	return issues
}

func withoutWhitespace(tokens []token.Token) []token.Token {
	out := tokens[:0:0]
	for _, tok := range tokens {
		if !tok.IsText(token.Whitespace) {
			out = append(out, tok)
		}
	}
	return out
}

func sortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		a, b := issues[i].Start, issues[j].Start
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
}
