package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		kind  Kind
		input string
		code  int
		n     int
		ok    bool
	}{
		{"earlier map beats longer spelling", KindOperation, "|><|", int(Bowtie), 4, true},
		{"longest inside map", KindRelation, "subseteq", int(SubSetEq), 8, true},
		{"short alias", KindRelation, "sube x", int(SubSetEq), 4, true},
		{"prefix of longer spelling", KindRelation, "sub x", int(SubSet), 3, true},
		{"font double struck", KindFont, "bbb", int(DoubleStruck), 3, true},
		{"font bold", KindFont, "bb x", int(Bold), 2, true},
		{"hyperbolic before plain", KindFunction, "sinh x", int(Sinh), 4, true},
		{"single letter function", KindFunction, "f(x)", int(F), 1, true},
		{"no match", KindGreek, "xyz", 0, 0, false},
		{"text has no table", KindText, "abc", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			code, n, ok := Lookup(tt.kind, tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.n, n)
		})
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		kind  Kind
		code  int
		n     int
	}{
		{"int", KindMisc, int(Int), 3},
		{"in", KindRelation, int(In), 2},
		{"+-", KindMisc, int(PlusMinus), 2},
		{"<=>", KindLogical, int(Iff), 3},
		{"=>", KindLogical, int(Implies), 2},
		{"delta", KindGreek, int(Delta), 5},
		{"top", KindLogical, int(Top), 3},
		{"ltimes", KindOperation, int(LTimes), 6},
		{"->", KindArrow, int(To), 2},
		{"//", KindOperation, int(Slash), 2},
		{"/", KindMisc, int(AsciiFrac), 1},
		{",", KindGrouping, int(MSep), 1},
		{"color", KindAccent, int(Color), 5},
		{"frac", KindMisc, int(LatexFrac), 4},
		{"<<", KindGrouping, int(LAngle), 2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			kind, code, n, ok := Match(tt.input)
			assert.True(t, ok)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.n, n)
		})
	}
}

func TestMatchNone(t *testing.T) {
	t.Parallel()
	_, _, _, ok := Match("€")
	assert.False(t, ok)
	_, _, _, ok = Match("")
	assert.False(t, ok)
}

func TestCategories(t *testing.T) {
	t.Parallel()
	cats := Categories()
	assert.Equal(t, []Kind{
		KindGrouping, KindArrow, KindRelation, KindOperation, KindMisc,
		KindLogical, KindAccent, KindGreek, KindFont, KindFunction,
	}, cats)

	cats[0] = KindText
	assert.Equal(t, KindGrouping, Categories()[0])
}

func TestSpellings(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"(:", "<<", "langle"}, Spellings(KindGrouping, int(LAngle)))
	assert.Equal(t, []string{"del", "partial"}, Spellings(KindMisc, int(Del)))
	assert.Nil(t, Spellings(KindText, int(Number)))
}

func TestTokenString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		tok      Token
		expected string
	}{
		{EOF, "End"},
		{Token{Kind: KindText, Code: int(Number), Value: "5"}, `Number("5")`},
		{Token{Kind: KindText, Code: int(Whitespace)}, "Whitespace"},
		{Token{Kind: KindText, Code: int(NewLine)}, "NewLine"},
		{Token{Kind: KindAccent, Code: int(Color), Value: "red"}, `Accent(Color "red")`},
		{Token{Kind: KindAccent, Code: int(Hat)}, "Accent(Hat)"},
		{Token{Kind: KindOperation, Code: int(Sum)}, "Operation(Sum)"},
		{Token{Kind: KindOperation, Code: 999}, "Operation(Operation(999))"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.tok.String())
		})
	}
}

func TestGroupingOpenClose(t *testing.T) {
	t.Parallel()
	for _, g := range []Grouping{LParen, LBracket, LBrace, LAngle, LXPar} {
		assert.True(t, g.IsOpen(), g.String())
		assert.False(t, g.IsClose(), g.String())
	}
	for _, g := range []Grouping{RParen, RBracket, RBrace, RAngle, RXPar} {
		assert.True(t, g.IsClose(), g.String())
		assert.False(t, g.IsOpen(), g.String())
	}
	for _, g := range []Grouping{Abs, Floor, Ceil, Norm, MSep} {
		assert.False(t, g.IsOpen(), g.String())
		assert.False(t, g.IsClose(), g.String())
	}
}
