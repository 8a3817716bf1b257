package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"unicode"

	"github.com/fatih/color"

	"github.com/gnolang/asciimath"
	"github.com/gnolang/asciimath/check"
)

const tabWidth = 8

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	warningStyle = color.New(color.FgHiYellow, color.Bold)
	infoStyle    = color.New(color.FgHiGreen, color.Bold)
	ruleStyle    = color.New(color.FgYellow, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	messageStyle = color.New(color.FgRed, color.Bold)
	noteStyle    = color.New(color.FgGreen, color.Bold)
)

// issueTemplate renders one issue:
//
//	error: missing-operand
//	 --> doc.am:4:2
//	  |
//	4 | b^
//	  |  ~
//	  = "^" is missing its only operand
const issueTemplate = `{{header .Rule .Severity .LineNumWidth .Filename .StartLine .StartColumn}}
{{snippet .Lines .StartLine .EndLine .LineNumWidth .Indent .Padding -}}
{{underline .Message .Padding .StartLine .EndLine .StartColumn .EndColumn .Lines .Indent}}
{{- if .Note }}
{{note .Note}}
{{- end }}
`

var issueTmpl = template.Must(template.New("issue").Funcs(template.FuncMap{
	"header":    header,
	"snippet":   snippet,
	"underline": underline,
	"note":      note,
}).Parse(issueTemplate))

// issueData is the input of issueTemplate.
type issueData struct {
	Rule         string
	Severity     string
	Filename     string
	Message      string
	Note         string
	StartLine    int
	StartColumn  int
	EndLine      int
	EndColumn    int
	LineNumWidth int
	Padding      string
	Indent       string
	Lines        []string
}

// FormatIssues renders issues found in src as annotated source snippets.
func FormatIssues(issues []check.Issue, src *asciimath.SourceCode) string {
	var b strings.Builder
	for _, issue := range issues {
		b.WriteString(formatIssue(issue, src))
	}
	return b.String()
}

func formatIssue(issue check.Issue, src *asciimath.SourceCode) string {
	width := len(fmt.Sprint(issue.End.Line))

	var indent string
	if isValidLineRange(issue.Start.Line, issue.End.Line, src.Lines) {
		indent = findCommonIndent(src.Lines[issue.Start.Line-1 : issue.End.Line])
	}

	data := issueData{
		Rule:         issue.Rule,
		Severity:     issue.Severity.String(),
		Filename:     issue.Filename,
		Message:      issue.Message,
		Note:         issue.Note,
		StartLine:    issue.Start.Line,
		StartColumn:  issue.Start.Column,
		EndLine:      issue.End.Line,
		EndColumn:    issue.End.Column,
		LineNumWidth: width,
		Padding:      strings.Repeat(" ", width+1),
		Indent:       indent,
		Lines:        src.Lines,
	}

	var buf bytes.Buffer
	if err := issueTmpl.Execute(&buf, data); err != nil {
		return fmt.Sprintf("error formatting issue: %v\n", err)
	}
	return buf.String()
}

func header(rule, severity string, width int, filename string, line, column int) string {
	var out string
	switch severity {
	case "ERROR":
		out = errorStyle.Sprint("error: ")
	case "WARNING":
		out = warningStyle.Sprint("warning: ")
	default:
		out = infoStyle.Sprint("info: ")
	}
	out += ruleStyle.Sprintln(rule)
	out += lineStyle.Sprintf("%s--> ", strings.Repeat(" ", width))
	out += fileStyle.Sprintf("%s:%d:%d", filename, line, column)
	return out
}

func snippet(lines []string, start, end, width int, indent, padding string) string {
	out := lineStyle.Sprintf("%s|\n", padding)
	for i := start; i <= end; i++ {
		if i < 1 || i > len(lines) {
			continue
		}
		text := strings.TrimPrefix(lines[i-1], indent)
		out += lineStyle.Sprintf("%*d | ", width, i) + text + "\n"
	}
	return out
}

func underline(message, padding string, start, end, startColumn, endColumn int, lines []string, indent string) string {
	out := lineStyle.Sprintf("%s| ", padding)
	if !isValidLineRange(start, end, lines) {
		return out + messageStyle.Sprintln(message)
	}

	indentWidth := visualColumn(indent, len(indent)+1)
	from := visualColumn(lines[start-1], startColumn) - indentWidth
	if from < 0 {
		from = 0
	}
	to := visualColumn(lines[end-1], endColumn) - indentWidth
	length := to - from + 1
	if length < 1 {
		length = 1
	}

	out += strings.Repeat(" ", from)
	out += messageStyle.Sprintln(strings.Repeat("~", length))
	out += lineStyle.Sprintf("%s= ", padding)
	out += messageStyle.Sprintln(message)
	return out
}

func note(text string) string {
	return noteStyle.Sprint("note: ") + text + "\n"
}

func isValidLineRange(start, end int, lines []string) bool {
	return start > 0 && start <= end && end <= len(lines)
}

// visualColumn returns the display width of line before the 1-based byte
// column, expanding tabs.
func visualColumn(line string, column int) int {
	width := 0
	for i, r := range line {
		if i+1 >= column {
			break
		}
		if r == '\t' {
			width += tabWidth - width%tabWidth
			continue
		}
		width++
	}
	return width
}

// findCommonIndent returns the leading whitespace shared by all non-blank
// lines.
func findCommonIndent(lines []string) string {
	var (
		common string
		found  bool
	)
	for _, line := range lines {
		trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
		if trimmed == "" {
			continue
		}
		indent := line[:len(line)-len(trimmed)]
		if !found {
			common, found = indent, true
			continue
		}
		n := 0
		for n < len(common) && n < len(indent) && common[n] == indent[n] {
			n++
		}
		common = common[:n]
	}
	return common
}
