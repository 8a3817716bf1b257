package parser

import (
	"github.com/gnolang/asciimath/ast"
	"github.com/gnolang/asciimath/token"
)

// parseGrid tries to read the opener under the cursor as a grid of rows
// such as [[a,b],[c,d]] (opener "[") or ((a,b),(c,d)) (opener "(").
// Rows may be separated by commas and must be closed by their matching
// delimiter; the grid is accepted only if it is rectangular and has more
// than one cell. On failure the cursor is restored and ok is false.
func (p *Parser) parseGrid(opener, closer token.Grouping) (rows [][]ast.Expression, ok bool) {
	start, depth, mark := p.current, p.depth, len(p.repairs)
	defer func() {
		if !ok {
			p.current, p.depth, p.closeGroup = start, depth, false
			p.repairs = p.repairs[:mark]
		}
	}()

	var lines []ast.Expression
	for p.peek().IsGrouping(opener) {
		p.step()
		line := p.parseEnclosed()
		if !p.cur().IsGrouping(closer) {
			return nil, false
		}
		lines = append(lines, line)

		p.step()
		switch cur := p.cur(); {
		case cur.IsGrouping(closer):
			rows = splitRows(lines)
			return rows, validGrid(rows)
		case cur.IsGrouping(token.MSep):
			continue
		default:
			return nil, false
		}
	}
	return nil, false
}

// splitRows cuts every row at its MSep elements.
func splitRows(lines []ast.Expression) [][]ast.Expression {
	rows := make([][]ast.Expression, 0, len(lines))
	for _, line := range lines {
		var (
			row  []ast.Expression
			cell []ast.Element
		)
		for _, child := range line.Children {
			if _, isSep := child.(ast.MSep); isSep {
				row = append(row, ast.Expression{Children: cell})
				cell = nil
				continue
			}
			cell = append(cell, child)
		}
		row = append(row, ast.Expression{Children: cell})
		rows = append(rows, row)
	}
	return rows
}

// validGrid reports whether rows has at least one row, rows of equal
// length and more than one cell.
func validGrid(rows [][]ast.Expression) bool {
	if len(rows) == 0 {
		return false
	}
	cols := len(rows[0])
	if len(rows)*cols <= 1 {
		return false
	}
	for _, row := range rows {
		if len(row) != cols {
			return false
		}
	}
	return true
}
