package asciimath

import (
	"fmt"
	"os"
	"strings"
)

// SourceCode stores the content of an AsciiMath file.
type SourceCode struct {
	Lines []string
}

// ReadSourceCode reads the content of a file and returns it as a SourceCode.
func ReadSourceCode(filename string) (*SourceCode, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filename, err)
	}
	return NewSourceCode(string(content)), nil
}

// NewSourceCode splits content into lines.
func NewSourceCode(content string) *SourceCode {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return &SourceCode{Lines: strings.Split(content, "\n")}
}

// Formula is one formula of a source file. A line ending in a backslash
// continues on the next line, so Text may span several lines; it keeps
// the backslash and the line break, which the lexer reads as a NewLine.
type Formula struct {
	Line int // 1-based line the formula starts on
	Text string
}

// Formulas returns the formulas of the file, one per non-blank line.
func (s *SourceCode) Formulas() []Formula {
	var (
		formulas []Formula
		pending  []string
		start    int
	)
	for i, line := range s.Lines {
		if len(pending) == 0 {
			if strings.TrimSpace(line) == "" {
				continue
			}
			start = i + 1
		}
		pending = append(pending, line)
		if strings.HasSuffix(line, "\\") && i < len(s.Lines)-1 {
			continue
		}
		formulas = append(formulas, Formula{Line: start, Text: strings.Join(pending, "\n")})
		pending = nil
	}
	return formulas
}

// Position converts a byte offset in Text into a 1-based line and column
// of the source file.
func (f Formula) Position(offset int) (line, column int) {
	if offset > len(f.Text) {
		offset = len(f.Text)
	}
	if offset < 0 {
		offset = 0
	}
	before := f.Text[:offset]
	line = f.Line + strings.Count(before, "\n")
	column = offset - (strings.LastIndexByte(before, '\n') + 1) + 1
	return line, column
}
