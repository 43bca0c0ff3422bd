package parser

import (
	"github.com/pkg/errors"

	"github.com/zesterer/ir/internal/diagnostics"
	"github.com/zesterer/ir/internal/frontend/ast"
	"github.com/zesterer/ir/internal/tokens"
)

type operationParser func(p *Parser, sc *scope) (ast.Operation, error)

// operation alternatives, tried in order
var operationParsers = []operationParser{
	(*Parser).parseBinaryOp,
	(*Parser).parseUnaryOp,
	(*Parser).parseExternCall,
	(*Parser).parseCall,
}

// parseOperation tries each alternative on its own copy of the cursor.
func (p *Parser) parseOperation(sc *scope) (ast.Operation, error) {
	for _, alt := range operationParsers {
		op, err := speculate(p, func(trial *Parser) (ast.Operation, error) {
			return alt(trial, sc)
		})
		if errors.Is(err, errNoMatch) {
			continue
		}
		return op, err
	}

	tok, err := p.peek(diagnostics.ExpectedOperation)
	if err != nil {
		return nil, err
	}
	return nil, unexpected(diagnostics.ExpectedOperation, tok)
}

// parseBinaryOp: OP a, b
func (p *Parser) parseBinaryOp(sc *scope) (ast.Operation, error) {
	tok, ok := p.cursor.Peek(0)
	if !ok {
		return nil, errNoMatch
	}
	op, ok := ast.BinaryOperatorFor(tok.Kind)
	if !ok {
		return nil, errNoMatch
	}
	p.cursor.Advance()

	left, err := p.parseOperand(sc)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokens.COMMA_TOKEN, diagnostics.ExpectedComma); err != nil {
		return nil, err
	}
	right, err := p.parseOperand(sc)
	if err != nil {
		return nil, err
	}

	return &ast.BinaryOp{Op: op, Left: left, Right: right, Location: tok.Range}, nil
}

// parseUnaryOp: OP a
func (p *Parser) parseUnaryOp(sc *scope) (ast.Operation, error) {
	tok, ok := p.cursor.Peek(0)
	if !ok {
		return nil, errNoMatch
	}
	op, ok := ast.UnaryOperatorFor(tok.Kind)
	if !ok {
		return nil, errNoMatch
	}
	p.cursor.Advance()

	operand, err := p.parseOperand(sc)
	if err != nil {
		return nil, err
	}
	return &ast.UnaryOp{Op: op, Operand: operand, Location: tok.Range}, nil
}

// parseExternCall: EXTERN name(args) or EXTERN "name"(args)
func (p *Parser) parseExternCall(sc *scope) (ast.Operation, error) {
	if !p.match(tokens.EXTERN_TOKEN) {
		return nil, errNoMatch
	}
	keyword, _ := p.cursor.Advance()

	tok, err := p.peek(diagnostics.ExpectedIdentifier)
	if err != nil {
		return nil, err
	}
	if !tok.Is(tokens.IDENTIFIER_TOKEN, tokens.STRING_TOKEN) {
		return nil, unexpected(diagnostics.ExpectedIdentifier, tok)
	}
	p.cursor.Advance()

	args, err := p.parseArgs(sc)
	if err != nil {
		return nil, err
	}
	return &ast.ExternCall{Name: identFrom(tok), Args: args, Location: keyword.Range}, nil
}

// parseCall: CALL name(args)
func (p *Parser) parseCall(sc *scope) (ast.Operation, error) {
	if !p.match(tokens.CALL_TOKEN) {
		return nil, errNoMatch
	}
	keyword, _ := p.cursor.Advance()

	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	args, err := p.parseArgs(sc)
	if err != nil {
		return nil, err
	}
	return &ast.Call{Name: name, Args: args, Location: keyword.Range}, nil
}

// parseArgs: ( [a {, a} [,]] )
func (p *Parser) parseArgs(sc *scope) ([]ast.Operand, error) {
	open, err := p.expect(tokens.OPEN_PAREN, diagnostics.ExpectedOpenParen)
	if err != nil {
		return nil, err
	}

	args := make([]ast.Operand, 0)
	for !p.match(tokens.CLOSE_PAREN) {
		arg, err := p.parseOperand(sc)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if !p.match(tokens.COMMA_TOKEN) {
			break
		}
		p.cursor.Advance()
	}

	if _, err := p.expectClose(open); err != nil {
		return nil, err
	}
	return args, nil
}

// parseOperand resolves an identifier against the bindings in scope.
func (p *Parser) parseOperand(sc *scope) (ast.Operand, error) {
	tok, err := p.expect(tokens.IDENTIFIER_TOKEN, diagnostics.ExpectedIdentifier)
	if err != nil {
		return ast.Operand{}, err
	}
	return sc.resolve(tok)
}
