package parser

import (
	"github.com/pkg/errors"

	"github.com/zesterer/ir/internal/diagnostics"
	"github.com/zesterer/ir/internal/frontend/ast"
	"github.com/zesterer/ir/internal/table"
	"github.com/zesterer/ir/internal/tokens"
)

// scope holds the bindings visible in a block: its inputs and the results
// of the operations parsed so far.
type scope struct {
	symbols *table.SymbolTable
}

func newScope() *scope {
	return &scope{symbols: table.NewSymbolTable()}
}

func (s *scope) declare(b ast.Binding, kind table.SymbolKind) error {
	if prev, ok := s.symbols.Declare(&table.Symbol{Binding: b, Kind: kind}); !ok {
		return diagnostics.NewSyntaxError(diagnostics.DuplicateBinding).
			At(b.Location).
			WithRelated(prev.Binding.Location).
			WithText(b.Name)
	}
	return nil
}

// resolve turns an identifier token into an operand.
func (s *scope) resolve(tok tokens.Token) (ast.Operand, error) {
	sym, ok := s.symbols.Lookup(tok.Value)
	if !ok {
		err := diagnostics.NewSyntaxError(diagnostics.UnresolvedBinding).At(tok.Range).WithText(tok.Value)
		if suggestion, found := s.symbols.Closest(tok.Value); found {
			err.WithSuggestion(suggestion)
		}
		return ast.Operand{}, err
	}
	return ast.Operand{Binding: sym.Binding, Use: tok.Range}, nil
}

// parseBlock: BLOCK [(tags)] name(params) followed by a body and a terminator
func (p *Parser) parseBlock() (*ast.Block, error) {
	keyword, err := p.expect(tokens.BLOCK_TOKEN, diagnostics.ExpectedBlock)
	if err != nil {
		return nil, err
	}

	block := &ast.Block{Location: keyword.Range}

	if p.match(tokens.OPEN_PAREN) {
		if block.Tags, err = p.parseTags(); err != nil {
			return nil, err
		}
	}

	if block.Name, err = p.expectIdent(); err != nil {
		return nil, err
	}

	open, err := p.expect(tokens.OPEN_PAREN, diagnostics.ExpectedOpenParen)
	if err != nil {
		return nil, err
	}
	if block.Inputs, err = p.parseParams(open); err != nil {
		return nil, err
	}
	if err := p.expectLineEnd(); err != nil {
		return nil, err
	}

	sc := newScope()
	for _, in := range block.Inputs {
		if err := sc.declare(in, table.SymbolInput); err != nil {
			return nil, err
		}
	}

	if err := p.parseBody(block, sc); err != nil {
		return nil, err
	}
	return block, nil
}

// parseTags: ( ident* )
func (p *Parser) parseTags() ([]ast.Ident, error) {
	open, _ := p.cursor.Advance()

	tags := make([]ast.Ident, 0)
	for p.match(tokens.IDENTIFIER_TOKEN) {
		tok, _ := p.cursor.Advance()
		tags = append(tags, identFrom(tok))
	}

	if _, err := p.expectClose(open); err != nil {
		return nil, err
	}
	return tags, nil
}

// parseBody parses statements until a terminator has been parsed.
func (p *Parser) parseBody(block *ast.Block, sc *scope) error {
	for {
		p.skipLineBreaks()

		tok, err := p.peek(diagnostics.ExpectedBranch)
		if err != nil {
			return err
		}

		if tokens.IsBranch(tok.Kind) {
			exit, err := p.parseBranch(sc)
			if err != nil {
				return err
			}
			block.Exit = exit
			return p.expectLineEnd()
		}

		stmt, err := speculate(p, func(trial *Parser) (ast.Statement, error) {
			return trial.parseStatement(sc)
		})
		if errors.Is(err, errNoMatch) {
			return unexpected(diagnostics.ExpectedBranch, tok)
		}
		if err != nil {
			return err
		}

		if err := sc.declare(stmt.Result, table.SymbolResult); err != nil {
			return err
		}
		block.Ops = append(block.Ops, stmt)
	}
}

// parseStatement: name Type = operation
func (p *Parser) parseStatement(sc *scope) (ast.Statement, error) {
	if !p.match(tokens.IDENTIFIER_TOKEN) {
		return ast.Statement{}, errNoMatch
	}
	name, _ := p.cursor.Advance()

	typ, err := p.parseType()
	if err != nil {
		return ast.Statement{}, err
	}

	if _, err := p.expect(tokens.EQUALS_TOKEN, diagnostics.ExpectedEquals); err != nil {
		return ast.Statement{}, err
	}

	op, err := p.parseOperation(sc)
	if err != nil {
		return ast.Statement{}, err
	}

	if err := p.expectLineEnd(); err != nil {
		return ast.Statement{}, err
	}

	return ast.Statement{
		Result: ast.Binding{Name: name.Value, Type: typ, Location: name.Range},
		Op:     op,
	}, nil
}
