package parser

import (
	"github.com/zesterer/ir/internal/diagnostics"
	"github.com/zesterer/ir/internal/frontend/ast"
	"github.com/zesterer/ir/internal/tokens"
)

// paramState is what the parameter list has seen last.
type paramState int

const (
	paramStart paramState = iota
	paramName
	paramComma
	paramType
)

// parseParams parses the parameter list after its opening parenthesis.
// Names are buffered until a type follows, so "a, b I32" binds both to I32.
func (p *Parser) parseParams(open tokens.Token) ([]ast.Binding, error) {
	bindings := make([]ast.Binding, 0)
	var pending []tokens.Token
	state := paramStart

	for {
		tok, ok := p.cursor.Peek(0)
		if !ok {
			return nil, diagnostics.NewSyntaxError(diagnostics.ExpectedCloseParen).WithRelated(open.Range)
		}

		switch {
		case tok.Kind == tokens.IDENTIFIER_TOKEN:
			if state != paramStart && state != paramComma {
				return nil, unexpected(diagnostics.InvalidParameter, tok)
			}
			p.cursor.Advance()
			pending = append(pending, tok)
			state = paramName

		case tok.Kind == tokens.COMMA_TOKEN:
			if state != paramName && state != paramType {
				return nil, unexpected(diagnostics.InvalidParameter, tok)
			}
			p.cursor.Advance()
			state = paramComma

		case tokens.IsType(tok.Kind):
			if state != paramName {
				return nil, unexpected(diagnostics.InvalidParameter, tok)
			}
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			for _, name := range pending {
				bindings = append(bindings, ast.Binding{Name: name.Value, Type: typ, Location: name.Range})
			}
			pending = pending[:0]
			state = paramType

		case tok.Kind == tokens.CLOSE_PAREN:
			if len(pending) > 0 {
				return nil, unexpected(diagnostics.ExpectedType, tok)
			}
			p.cursor.Advance()
			return bindings, nil

		case tok.Is(tokens.EOL_TOKEN, tokens.EOF_TOKEN):
			return nil, unexpected(diagnostics.ExpectedCloseParen, tok).WithRelated(open.Range)

		default:
			return nil, unexpected(diagnostics.InvalidParameter, tok)
		}
	}
}
