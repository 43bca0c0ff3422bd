package tokens

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zesterer/ir/colors"
	"github.com/zesterer/ir/internal/source"
)

func TestClassOf(t *testing.T) {
	tests := []struct {
		kind     TOKEN
		expected Class
	}{
		{IDENTIFIER_TOKEN, Identifier},
		{STRING_TOKEN, String},
		{INTEGER_TOKEN, Integer},
		{FLOAT_TOKEN, Float},
		{BLOCK_TOKEN, Keyword},
		{I32_TOKEN, Keyword},
		{ADD_TOKEN, Keyword},
		{OPEN_PAREN, Symbol},
		{COMMA_TOKEN, Symbol},
		{EQUALS_TOKEN, Operator},
		{EOL_TOKEN, EndOfLine},
		{EOF_TOKEN, EndOfInput},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassOf(tt.kind))
		})
	}
}

func TestClassOfUnknownKind(t *testing.T) {
	assert.Equal(t, Unknown, ClassOf(TOKEN("bogus")))
	assert.Equal(t, "unknown", Unknown.String())

	tok := NewToken(TOKEN("bogus"), "??", source.NewRange(source.Start()))
	assert.NotPanics(t, func() { tok.Describe() })
	assert.Equal(t, `unknown token "??"`, tok.Describe())
}

func TestKeywordTables(t *testing.T) {
	assert.True(t, IsKeyword("BLOCK"))
	assert.True(t, IsKeyword("Bool"))
	assert.False(t, IsKeyword("block"))
	assert.False(t, IsKeyword("foo"))

	assert.True(t, IsBranch(IF_TOKEN))
	assert.True(t, IsBranch(END_TOKEN))
	assert.False(t, IsBranch(CALL_TOKEN))

	assert.True(t, IsType(PRODUCT_TOKEN))
	assert.False(t, IsType(IDENTIFIER_TOKEN))

	assert.True(t, IsBinaryOp(GEQ_TOKEN))
	assert.False(t, IsBinaryOp(NEG_TOKEN))
	assert.True(t, IsUnaryOp(NOT_TOKEN))

	kind, ok := LookupSymbol('(')
	assert.True(t, ok)
	assert.Equal(t, OPEN_PAREN, kind)
	_, ok = LookupSymbol('=')
	assert.False(t, ok)
}

func TestOperatorsLongestFirst(t *testing.T) {
	for i := 1; i < len(Operators); i++ {
		assert.GreaterOrEqual(t, len(Operators[i-1]), len(Operators[i]))
	}
}

func TestTokenDescribe(t *testing.T) {
	r := source.NewRange(source.Start())

	assert.Equal(t, `identifier "foo"`, NewToken(IDENTIFIER_TOKEN, "foo", r).Describe())
	assert.Equal(t, `"("`, NewToken(OPEN_PAREN, "(", r).Describe())
	assert.Equal(t, `"BLOCK"`, NewToken(BLOCK_TOKEN, "BLOCK", r).Describe())
	assert.Equal(t, "end of input", NewToken(EOF_TOKEN, "", r).Describe())
	assert.Equal(t, "end of line", NewToken(EOL_TOKEN, "\n", r).Describe())
}

func TestTokenIs(t *testing.T) {
	tok := NewToken(COMMA_TOKEN, ",", source.NewRange(source.Start()))
	assert.True(t, tok.Is(CLOSE_PAREN, COMMA_TOKEN))
	assert.False(t, tok.Is(OPEN_PAREN))
}

func TestTokenDebug(t *testing.T) {
	colors.Configure(colors.Never, nil)

	var buf bytes.Buffer
	r := source.Range{Start: source.Position{Line: 2, Column: 3}, Length: 3, Width: 3}

	NewToken(IDENTIFIER_TOKEN, "foo", r).Debug(&buf, "a.ir")
	NewToken(BLOCK_TOKEN, "BLOCK", r).Debug(&buf, "a.ir")

	assert.Equal(t, "a.ir:2:3 \"foo\" ('identifier')\na.ir:2:3 \"BLOCK\"\n", buf.String())
}
