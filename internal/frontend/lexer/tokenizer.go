package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/golang/glog"

	"github.com/zesterer/ir/internal/diagnostics"
	"github.com/zesterer/ir/internal/source"
	"github.com/zesterer/ir/internal/tokens"
)

// scanHandler consumes one lexeme starting at the current position.
type scanHandler func(lex *Lexer, ch rune) error

type scanRule struct {
	match   func(lex *Lexer, ch rune) bool
	handler scanHandler
}

type Lexer struct {
	Tokens     []tokens.Token
	Position   source.Position
	sourceCode string
	rules      []scanRule
}

// rules in priority order; the first match wins
var defaultRules = []scanRule{
	{isChar(tokens.LineBreak), lineBreakHandler},
	{isChar(tokens.CommentStart), commentHandler},
	{isSymbol, symbolHandler},
	{isOperator, operatorHandler},
	{isSpace, skipHandler},
	{isDigitRule, numberHandler},
	{isIdentStart, identifierHandler},
	{isChar(tokens.Quote), stringHandler},
}

func New(content string) *Lexer {
	return &Lexer{
		sourceCode: content,
		Tokens:     make([]tokens.Token, 0),
		Position:   source.Start(),
		rules:      defaultRules,
	}
}

// Tokenize lexes content in one pass.
func Tokenize(content string) ([]tokens.Token, error) {
	return New(content).Tokenize()
}

// Tokenize runs the lexer to the end of input. The returned slice always ends
// with a single EOF_TOKEN of length 0; on error no tokens are returned.
func (lex *Lexer) Tokenize() ([]tokens.Token, error) {
	for !lex.atEOF() {
		ch, err := lex.peek()
		if err != nil {
			return nil, err
		}

		handled := false
		for _, rule := range lex.rules {
			if rule.match(lex, ch) {
				if err := rule.handler(lex, ch); err != nil {
					glog.V(3).Infof("lexer: %v", err)
					return nil, err
				}
				handled = true
				break
			}
		}

		if !handled {
			return nil, lex.errorHere(diagnostics.UnexpectedChar, ch)
		}
	}

	lex.push(tokens.EOF_TOKEN, source.NewRange(lex.Position))
	glog.V(3).Infof("lexer: %d tokens", len(lex.Tokens))
	return lex.Tokens, nil
}

func (lex *Lexer) atEOF() bool {
	return lex.Position.Index >= len(lex.sourceCode)
}

func (lex *Lexer) remainder() string {
	return lex.sourceCode[lex.Position.Index:]
}

// peek decodes the character at the current position without consuming it.
// Source text must be valid UTF-8.
func (lex *Lexer) peek() (rune, error) {
	ch, width := utf8.DecodeRuneInString(lex.remainder())
	if ch == utf8.RuneError && width <= 1 {
		return ch, diagnostics.NewSyntaxError(diagnostics.UnexpectedChar).
			At(source.Range{Start: lex.Position, Length: 1, Width: 1}).
			WithText(fmt.Sprintf(`\x%02X`, lex.sourceCode[lex.Position.Index]))
	}
	return ch, nil
}

// advance consumes ch, growing r when it is non-nil.
func (lex *Lexer) advance(ch rune, r *source.Range) {
	lex.Position.Advance(ch)
	if r != nil {
		r.Grow(ch)
	}
}

// advanceWhile consumes characters while cond holds.
func (lex *Lexer) advanceWhile(r *source.Range, cond func(rune) bool) error {
	for !lex.atEOF() {
		ch, err := lex.peek()
		if err != nil {
			return err
		}
		if !cond(ch) {
			return nil
		}
		lex.advance(ch, r)
	}
	return nil
}

func (lex *Lexer) push(kind tokens.TOKEN, r source.Range) {
	lex.Tokens = append(lex.Tokens, tokens.NewToken(kind, r.Text(lex.sourceCode), r))
}

func (lex *Lexer) errorHere(kind diagnostics.ErrorKind, ch rune) error {
	r := source.NewRange(lex.Position)
	r.Grow(ch)
	return diagnostics.NewSyntaxError(kind).At(r).WithText(string(ch))
}

func isChar(want rune) func(*Lexer, rune) bool {
	return func(_ *Lexer, ch rune) bool { return ch == want }
}

func isSymbol(_ *Lexer, ch rune) bool {
	_, ok := tokens.LookupSymbol(ch)
	return ok
}

func isOperator(lex *Lexer, _ rune) bool {
	_, ok := lex.matchOperator()
	return ok
}

func isSpace(_ *Lexer, ch rune) bool {
	return unicode.IsSpace(ch)
}

func isDigitRule(_ *Lexer, ch rune) bool {
	return isDigit(ch)
}

func isIdentStart(_ *Lexer, ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// isIdentPart accepts digits as well, so names like n1 lex as one identifier.
// Only the first character must be a letter or '_'.
func isIdentPart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_' || isDigit(ch)
}

// matchOperator finds the longest operator at the current position.
func (lex *Lexer) matchOperator() (tokens.TOKEN, bool) {
	rest := lex.remainder()
	for _, op := range tokens.Operators {
		if strings.HasPrefix(rest, string(op)) {
			return op, true
		}
	}
	return "", false
}

func lineBreakHandler(lex *Lexer, ch rune) error {
	r := source.NewRange(lex.Position)
	r.Grow(ch)
	lex.push(tokens.EOL_TOKEN, r)
	lex.advance(ch, nil)
	return nil
}

func commentHandler(lex *Lexer, _ rune) error {
	return lex.advanceWhile(nil, func(ch rune) bool { return ch != tokens.LineBreak })
}

func symbolHandler(lex *Lexer, ch rune) error {
	kind, _ := tokens.LookupSymbol(ch)
	r := source.NewRange(lex.Position)
	lex.advance(ch, &r)
	lex.push(kind, r)
	return nil
}

func operatorHandler(lex *Lexer, _ rune) error {
	op, _ := lex.matchOperator()
	r := source.NewRange(lex.Position)
	for _, ch := range string(op) {
		lex.advance(ch, &r)
	}
	lex.push(op, r)
	return nil
}

func skipHandler(lex *Lexer, ch rune) error {
	lex.advance(ch, nil)
	return nil
}

func numberHandler(lex *Lexer, _ rune) error {
	r := source.NewRange(lex.Position)
	kind := tokens.INTEGER_TOKEN

	for !lex.atEOF() {
		ch, err := lex.peek()
		if err != nil {
			return err
		}
		if ch == tokens.DecimalPoint {
			if kind == tokens.FLOAT_TOKEN {
				return lex.errorHere(diagnostics.UnexpectedChar, ch)
			}
			kind = tokens.FLOAT_TOKEN
		} else if !isDigit(ch) {
			break
		}
		lex.advance(ch, &r)
	}

	lex.push(kind, r)
	return nil
}

func identifierHandler(lex *Lexer, _ rune) error {
	r := source.NewRange(lex.Position)
	if err := lex.advanceWhile(&r, isIdentPart); err != nil {
		return err
	}

	identifier := r.Text(lex.sourceCode)
	switch {
	case identifier == tokens.Reserved:
		return diagnostics.NewSyntaxError(diagnostics.UnsupportedConstruct).At(r).WithText(identifier)
	case tokens.IsKeyword(identifier):
		lex.push(tokens.TOKEN(identifier), r)
	default:
		lex.push(tokens.IDENTIFIER_TOKEN, r)
	}
	return nil
}

// stringHandler lexes a single-line string literal. The token's range covers
// the quotes, its value does not.
func stringHandler(lex *Lexer, quote rune) error {
	r := source.NewRange(lex.Position)
	lex.advance(quote, &r)

	if err := lex.advanceWhile(&r, func(ch rune) bool {
		return ch != tokens.Quote && ch != tokens.LineBreak
	}); err != nil {
		return err
	}

	if lex.atEOF() {
		return diagnostics.NewSyntaxError(diagnostics.UnterminatedString).At(r)
	}
	if ch, _ := lex.peek(); ch != tokens.Quote {
		return diagnostics.NewSyntaxError(diagnostics.UnterminatedString).At(r)
	}
	lex.advance(tokens.Quote, &r)

	text := r.Text(lex.sourceCode)
	lex.Tokens = append(lex.Tokens, tokens.NewToken(tokens.STRING_TOKEN, text[1:len(text)-1], r))
	return nil
}
