package parser

import "github.com/zesterer/ir/internal/tokens"

// Cursor is a read position over an immutable token slice.
// Copying a Cursor is O(1) and yields an independent position.
type Cursor struct {
	tokens []tokens.Token
	index  int
}

func NewCursor(toks []tokens.Token) Cursor {
	return Cursor{tokens: toks}
}

// Advance consumes and returns the next token. It reports false once the
// cursor has moved past the last token.
func (c *Cursor) Advance() (tokens.Token, bool) {
	tok, ok := c.Peek(0)
	if ok {
		c.index++
	}
	return tok, ok
}

// Peek returns the token k positions ahead without consuming anything;
// Peek(0) is the next unconsumed token.
func (c Cursor) Peek(k int) (tokens.Token, bool) {
	i := c.index + k
	if k < 0 || i >= len(c.tokens) {
		return tokens.Token{}, false
	}
	return c.tokens[i], true
}

// Index is the number of tokens consumed so far.
func (c Cursor) Index() int {
	return c.index
}

// Remaining is the number of unconsumed tokens.
func (c Cursor) Remaining() int {
	return len(c.tokens) - c.index
}
