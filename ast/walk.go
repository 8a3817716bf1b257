package ast

import "strconv"

// Operand is a named child of a node. Children of an Expression have no
// name; matrix cells are named by their row and column.
type Operand struct {
	Name string
	Node Node
}

// Operands returns the children of n in reading order. Absent optional
// limits are left out.
func Operands(n Node) []Operand {
	switch e := n.(type) {
	case Expression:
		out := make([]Operand, len(e.Children))
		for i, child := range e.Children {
			out[i] = Operand{Node: child}
		}
		return out

	case Sum:
		return limitOperands(e.Bottom, e.Top)
	case Prod:
		return limitOperands(e.Bottom, e.Top)
	case Integral:
		return limitOperands(e.Bottom, e.Top)
	case OIntegral:
		return limitOperands(e.Bottom, e.Top)
	case Frac:
		return []Operand{{"top", e.Top}, {"bottom", e.Bottom}}
	case Pow:
		return []Operand{{"base", e.Base}, {"exp", e.Exp}}
	case Sub:
		return []Operand{{"base", e.Base}, {"lower", e.Lower}}
	case Sqrt:
		return []Operand{{"inner", e.Inner}}
	case Root:
		return []Operand{{"base", e.Base}, {"inner", e.Inner}}

	case Matrix:
		return gridOperands(e.Rows)
	case Vector:
		return gridOperands(e.Rows)

	case GenericAccent:
		return []Operand{{"inner", e.Inner}}
	case OverSet:
		return []Operand{{"top", e.Top}, {"bottom", e.Bottom}}
	case UnderSet:
		return []Operand{{"top", e.Top}, {"bottom", e.Bottom}}
	case Color:
		return []Operand{{"inner", e.Inner}}
	}

	if elem, ok := n.(Element); ok {
		if inner, ok := Inner(elem); ok {
			return []Operand{{"inner", inner}}
		}
	}
	return nil
}

func limitOperands(bottom, top Element) []Operand {
	var out []Operand
	if bottom != nil {
		out = append(out, Operand{"bottom", bottom})
	}
	if top != nil {
		out = append(out, Operand{"top", top})
	}
	return out
}

func gridOperands(rows [][]Expression) []Operand {
	var out []Operand
	for i, row := range rows {
		for j, cell := range row {
			name := "[" + strconv.Itoa(i) + "][" + strconv.Itoa(j) + "]"
			out = append(out, Operand{name, cell})
		}
	}
	return out
}

// Walk traverses the tree rooted at n depth first. fn is called for every
// node before its operands; returning false skips the operands.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, op := range Operands(n) {
		Walk(op.Node, fn)
	}
}
