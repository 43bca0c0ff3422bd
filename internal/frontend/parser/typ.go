package parser

import (
	"github.com/zesterer/ir/internal/diagnostics"
	"github.com/zesterer/ir/internal/frontend/ast"
	"github.com/zesterer/ir/internal/tokens"
)

// parseType: I32 | Bool | Product(T, ...) | Sum(T, ...)
func (p *Parser) parseType() (ast.Type, error) {
	tok, err := p.peek(diagnostics.ExpectedType)
	if err != nil {
		return nil, err
	}
	if !tokens.IsType(tok.Kind) {
		return nil, unexpected(diagnostics.ExpectedType, tok)
	}
	p.cursor.Advance()

	switch tok.Kind {
	case tokens.I32_TOKEN:
		return ast.I32Type{}, nil
	case tokens.BOOL_TOKEN:
		return ast.BoolType{}, nil
	case tokens.PRODUCT_TOKEN:
		elems, err := p.parseTypeList()
		if err != nil {
			return nil, err
		}
		return &ast.ProductType{Elems: elems}, nil
	case tokens.SUM_TOKEN:
		variants, err := p.parseTypeList()
		if err != nil {
			return nil, err
		}
		return &ast.SumType{Variants: variants}, nil
	default:
		return nil, unexpected(diagnostics.ExpectedType, tok)
	}
}

// parseTypeList: ( [T {, T} [,]] )
func (p *Parser) parseTypeList() ([]ast.Type, error) {
	open, err := p.expect(tokens.OPEN_PAREN, diagnostics.ExpectedOpenParen)
	if err != nil {
		return nil, err
	}

	types := make([]ast.Type, 0)
	for !p.match(tokens.CLOSE_PAREN) {
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		types = append(types, t)

		if !p.match(tokens.COMMA_TOKEN) {
			break
		}
		p.cursor.Advance()
	}

	if _, err := p.expectClose(open); err != nil {
		return nil, err
	}
	return types, nil
}
