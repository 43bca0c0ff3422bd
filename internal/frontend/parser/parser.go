package parser

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/zesterer/ir/internal/diagnostics"
	"github.com/zesterer/ir/internal/frontend/ast"
	"github.com/zesterer/ir/internal/tokens"
)

// errNoMatch tells the caller of a speculative attempt to try the next
// alternative. Any other error is final.
var errNoMatch = errors.New("no match")

// Parser holds temporary state during parsing of a single token stream.
type Parser struct {
	cursor Cursor
	depth  int // speculation nesting, for logging
}

func New(toks []tokens.Token) *Parser {
	return &Parser{cursor: NewCursor(toks)}
}

// Parse builds a Program from a token stream produced by the lexer.
// Parsing stops at the first error.
func Parse(toks []tokens.Token) (*ast.Program, error) {
	return New(toks).ParseProgram()
}

// ParseProgram parses block definitions until the end of input.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := ast.NewProgram()

	for {
		p.skipLineBreaks()

		tok, ok := p.cursor.Peek(0)
		if !ok || tok.Kind == tokens.EOF_TOKEN {
			break
		}
		if tok.Kind != tokens.BLOCK_TOKEN {
			return nil, unexpected(diagnostics.ExpectedBlock, tok)
		}

		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		if err := program.Add(block); err != nil {
			return nil, err
		}
		glog.V(3).Infof("parser: block %s with %d inputs and %d operations", block.Name.Name, len(block.Inputs), len(block.Ops))
	}

	return program, nil
}

// speculate runs fn on a copy of the parser. The caller's cursor moves to
// the copy's position only when fn succeeds.
func speculate[T any](p *Parser, fn func(*Parser) (T, error)) (T, error) {
	trial := *p
	trial.depth++

	v, err := fn(&trial)
	if err != nil {
		if glog.V(5) {
			glog.Infof("parser: speculation at token %d (depth %d) discarded: %v", p.cursor.Index(), trial.depth, err)
		}
		var zero T
		return zero, err
	}

	p.cursor = trial.cursor
	return v, nil
}

// peek returns the next token, or an error without a range when the input is exhausted.
func (p *Parser) peek(kind diagnostics.ErrorKind) (tokens.Token, error) {
	tok, ok := p.cursor.Peek(0)
	if !ok {
		return tok, diagnostics.NewSyntaxError(kind)
	}
	return tok, nil
}

func (p *Parser) match(kinds ...tokens.TOKEN) bool {
	tok, ok := p.cursor.Peek(0)
	return ok && tok.Is(kinds...)
}

// expect consumes a token of the given kind or fails with errKind at the offending token.
func (p *Parser) expect(kind tokens.TOKEN, errKind diagnostics.ErrorKind) (tokens.Token, error) {
	tok, err := p.peek(errKind)
	if err != nil {
		return tok, err
	}
	if tok.Kind != kind {
		return tok, unexpected(errKind, tok)
	}
	p.cursor.Advance()
	return tok, nil
}

func (p *Parser) expectIdent() (ast.Ident, error) {
	tok, err := p.expect(tokens.IDENTIFIER_TOKEN, diagnostics.ExpectedIdentifier)
	if err != nil {
		return ast.Ident{}, err
	}
	return identFrom(tok), nil
}

// expectClose consumes the ')' matching open.
func (p *Parser) expectClose(open tokens.Token) (tokens.Token, error) {
	tok, err := p.expect(tokens.CLOSE_PAREN, diagnostics.ExpectedCloseParen)
	if err != nil {
		var syntaxErr *diagnostics.SyntaxError
		if errors.As(err, &syntaxErr) {
			syntaxErr.WithRelated(open.Range)
		}
		return tok, err
	}
	return tok, nil
}

// expectLineEnd consumes the line break ending a header, statement or
// terminator. The end of input also ends a line but is left in place.
func (p *Parser) expectLineEnd() error {
	tok, ok := p.cursor.Peek(0)
	if !ok || tok.Kind == tokens.EOF_TOKEN {
		return nil
	}
	if tok.Kind != tokens.EOL_TOKEN {
		return unexpected(diagnostics.ExpectedEndOfLine, tok)
	}
	p.cursor.Advance()
	return nil
}

func (p *Parser) skipLineBreaks() {
	for p.match(tokens.EOL_TOKEN) {
		p.cursor.Advance()
	}
}

// unexpected builds an error of the given kind located at tok.
func unexpected(kind diagnostics.ErrorKind, tok tokens.Token) *diagnostics.SyntaxError {
	return diagnostics.NewSyntaxError(kind).At(tok.Range).WithText(tok.Describe())
}

func identFrom(tok tokens.Token) ast.Ident {
	return ast.Ident{Name: tok.Value, Location: tok.Range}
}
