package parser

import (
	"github.com/zesterer/ir/internal/diagnostics"
	"github.com/zesterer/ir/internal/frontend/ast"
	"github.com/zesterer/ir/internal/tokens"
)

// parseBranch parses a block terminator. Target block names are recorded as
// written; whether they exist is for later passes to decide.
func (p *Parser) parseBranch(sc *scope) (ast.Branch, error) {
	keyword, err := p.peek(diagnostics.ExpectedBranch)
	if err != nil {
		return nil, err
	}
	p.cursor.Advance()

	switch keyword.Kind {
	case tokens.ALWAYS_TOKEN:
		target, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		return &ast.Always{Target: target, Location: keyword.Range}, nil

	case tokens.IF_TOKEN:
		return p.parseIf(sc, keyword)

	case tokens.RETURN_TOKEN:
		values, err := p.parseReturnValues(sc)
		if err != nil {
			return nil, err
		}
		return &ast.Return{Values: values, Location: keyword.Range}, nil

	case tokens.END_TOKEN:
		return &ast.End{Location: keyword.Range}, nil

	default:
		return nil, unexpected(diagnostics.ExpectedBranch, keyword)
	}
}

// parseIf: IF predicate, then, else
func (p *Parser) parseIf(sc *scope, keyword tokens.Token) (ast.Branch, error) {
	pred, err := p.parseOperand(sc)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokens.COMMA_TOKEN, diagnostics.ExpectedComma); err != nil {
		return nil, err
	}
	then, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokens.COMMA_TOKEN, diagnostics.ExpectedComma); err != nil {
		return nil, err
	}
	els, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	return &ast.If{Predicate: pred, Then: then, Else: els, Location: keyword.Range}, nil
}

// parseReturnValues: [a {, a}] up to the end of the line
func (p *Parser) parseReturnValues(sc *scope) ([]ast.Operand, error) {
	values := make([]ast.Operand, 0)
	if p.atLineEnd() {
		return values, nil
	}

	for {
		v, err := p.parseOperand(sc)
		if err != nil {
			return nil, err
		}
		values = append(values, v)

		if !p.match(tokens.COMMA_TOKEN) {
			return values, nil
		}
		p.cursor.Advance()
	}
}

func (p *Parser) atLineEnd() bool {
	tok, ok := p.cursor.Peek(0)
	return !ok || tok.Is(tokens.EOL_TOKEN, tokens.EOF_TOKEN)
}
