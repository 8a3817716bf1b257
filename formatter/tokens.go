package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/gnolang/asciimath/token"
)

var kindStyles = map[token.Kind]*color.Color{
	token.KindOperation: color.New(color.FgYellow),
	token.KindMisc:      color.New(color.FgMagenta),
	token.KindRelation:  color.New(color.FgYellow),
	token.KindLogical:   color.New(color.FgYellow),
	token.KindGrouping:  color.New(color.FgHiBlue, color.Bold),
	token.KindArrow:     color.New(color.FgYellow),
	token.KindAccent:    color.New(color.FgCyan),
	token.KindGreek:     color.New(color.FgGreen),
	token.KindFont:      color.New(color.FgCyan),
	token.KindFunction:  color.New(color.FgGreen),
	token.KindText:      color.New(color.FgWhite),
	token.KindEnd:       color.New(color.FgHiBlack),
}

// FormatTokens lists tokens one per line with their byte range and the
// source text they were read from:
//
//	0:3    Operation(Sum)           "sum"
//	3:4    Misc(Sub)                "_"
func FormatTokens(tokens []token.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		style, ok := kindStyles[tok.Kind]
		if !ok {
			style = color.New(color.Reset)
		}
		fmt.Fprintf(&b, "%-6s %s %q\n",
			fmt.Sprintf("%d:%d", tok.Pos, tok.End),
			style.Sprintf("%-24s", tok.String()),
			tok.Lit)
	}
	return b.String()
}
