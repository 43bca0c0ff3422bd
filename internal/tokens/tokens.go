package tokens

import (
	"fmt"
	"io"

	"github.com/zesterer/ir/colors"
	"github.com/zesterer/ir/internal/source"
)

type TOKEN string

const (
	//block structure
	BLOCK_TOKEN TOKEN = "BLOCK"
	//branches
	ALWAYS_TOKEN TOKEN = "ALWAYS"
	IF_TOKEN     TOKEN = "IF"
	RETURN_TOKEN TOKEN = "RETURN"
	END_TOKEN    TOKEN = "END"
	//calls
	CALL_TOKEN   TOKEN = "CALL"
	EXTERN_TOKEN TOKEN = "EXTERN"
	//binary operations
	ADD_TOKEN TOKEN = "ADD"
	SUB_TOKEN TOKEN = "SUB"
	MUL_TOKEN TOKEN = "MUL"
	DIV_TOKEN TOKEN = "DIV"
	EQ_TOKEN  TOKEN = "EQ"
	NEQ_TOKEN TOKEN = "NEQ"
	GEQ_TOKEN TOKEN = "GEQ"
	LEQ_TOKEN TOKEN = "LEQ"
	//unary operations
	NEG_TOKEN TOKEN = "NEG"
	NOT_TOKEN TOKEN = "NOT"
	//types
	I32_TOKEN     TOKEN = "I32"
	BOOL_TOKEN    TOKEN = "Bool"
	PRODUCT_TOKEN TOKEN = "Product"
	SUM_TOKEN     TOKEN = "Sum"

	//literals
	IDENTIFIER_TOKEN TOKEN = "identifier"
	STRING_TOKEN     TOKEN = "string literal"
	INTEGER_TOKEN    TOKEN = "integer literal"
	FLOAT_TOKEN      TOKEN = "float literal"

	//delimiters
	OPEN_PAREN  TOKEN = "("
	CLOSE_PAREN TOKEN = ")"
	COLON_TOKEN TOKEN = ":"
	COMMA_TOKEN TOKEN = ","
	//operators
	EQUALS_TOKEN TOKEN = "="

	EOL_TOKEN TOKEN = "end of line"
	EOF_TOKEN TOKEN = "end of input"
)

// Lexical markers that are not tokens themselves.
const (
	CommentStart = ';'
	LineBreak    = '\n'
	Quote        = '"'
	DecimalPoint = '.'
	Reserved     = "_"
)

// Class is the closed set of lexeme categories.
type Class int

const (
	Identifier Class = iota
	String
	Integer
	Float
	Keyword
	Symbol
	Operator
	EndOfLine
	EndOfInput
	// kinds the lexer never produces
	Unknown
)

func (c Class) String() string {
	switch c {
	case Identifier:
		return "identifier"
	case String:
		return "string"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Keyword:
		return "keyword"
	case Symbol:
		return "symbol"
	case Operator:
		return "operator"
	case EndOfLine:
		return "end of line"
	case EndOfInput:
		return "end of input"
	case Unknown:
		return "unknown"
	default:
		return "unknown"
	}
}

var keyWordsMap map[TOKEN]bool = map[TOKEN]bool{
	BLOCK_TOKEN:   true,
	ALWAYS_TOKEN:  true,
	IF_TOKEN:      true,
	RETURN_TOKEN:  true,
	END_TOKEN:     true,
	CALL_TOKEN:    true,
	EXTERN_TOKEN:  true,
	ADD_TOKEN:     true,
	SUB_TOKEN:     true,
	MUL_TOKEN:     true,
	DIV_TOKEN:     true,
	EQ_TOKEN:      true,
	NEQ_TOKEN:     true,
	GEQ_TOKEN:     true,
	LEQ_TOKEN:     true,
	NEG_TOKEN:     true,
	NOT_TOKEN:     true,
	I32_TOKEN:     true,
	BOOL_TOKEN:    true,
	PRODUCT_TOKEN: true,
	SUM_TOKEN:     true,
}

var symbols = map[rune]TOKEN{
	'(': OPEN_PAREN,
	')': CLOSE_PAREN,
	':': COLON_TOKEN,
	',': COMMA_TOKEN,
}

// Operators ordered longest first, so two-character operators win over
// their one-character prefixes once they are added.
var Operators = []TOKEN{
	EQUALS_TOKEN,
}

var branchKeywords = map[TOKEN]bool{
	ALWAYS_TOKEN: true,
	IF_TOKEN:     true,
	RETURN_TOKEN: true,
	END_TOKEN:    true,
}

var typeKeywords = map[TOKEN]bool{
	I32_TOKEN:     true,
	BOOL_TOKEN:    true,
	PRODUCT_TOKEN: true,
	SUM_TOKEN:     true,
}

var binaryKeywords = map[TOKEN]bool{
	ADD_TOKEN: true,
	SUB_TOKEN: true,
	MUL_TOKEN: true,
	DIV_TOKEN: true,
	EQ_TOKEN:  true,
	NEQ_TOKEN: true,
	GEQ_TOKEN: true,
	LEQ_TOKEN: true,
}

var unaryKeywords = map[TOKEN]bool{
	NEG_TOKEN: true,
	NOT_TOKEN: true,
}

func IsKeyword(token string) bool {
	_, ok := keyWordsMap[TOKEN(token)]
	return ok
}

// LookupSymbol returns the symbol token for a single character.
func LookupSymbol(ch rune) (TOKEN, bool) {
	kind, ok := symbols[ch]
	return kind, ok
}

// IsBranch reports whether kind introduces a block terminator.
func IsBranch(kind TOKEN) bool {
	return branchKeywords[kind]
}

// IsType reports whether kind denotes a type.
func IsType(kind TOKEN) bool {
	return typeKeywords[kind]
}

func IsBinaryOp(kind TOKEN) bool {
	return binaryKeywords[kind]
}

func IsUnaryOp(kind TOKEN) bool {
	return unaryKeywords[kind]
}

// ClassOf returns the lexeme class of a token kind.
func ClassOf(kind TOKEN) Class {
	switch kind {
	case IDENTIFIER_TOKEN:
		return Identifier
	case STRING_TOKEN:
		return String
	case INTEGER_TOKEN:
		return Integer
	case FLOAT_TOKEN:
		return Float
	case OPEN_PAREN, CLOSE_PAREN, COLON_TOKEN, COMMA_TOKEN:
		return Symbol
	case EQUALS_TOKEN:
		return Operator
	case EOL_TOKEN:
		return EndOfLine
	case EOF_TOKEN:
		return EndOfInput
	}
	if keyWordsMap[kind] {
		return Keyword
	}
	return Unknown
}

type Token struct {
	Kind  TOKEN
	Value string
	Range source.Range
}

// Class returns the lexeme class of the token.
func (t Token) Class() Class {
	return ClassOf(t.Kind)
}

// Is reports whether the token has one of the given kinds.
func (t Token) Is(kinds ...TOKEN) bool {
	for _, kind := range kinds {
		if t.Kind == kind {
			return true
		}
	}
	return false
}

// Describe renders the token for error messages.
func (t Token) Describe() string {
	switch t.Class() {
	case EndOfLine, EndOfInput:
		return string(t.Kind)
	case Identifier, String, Integer, Float:
		return fmt.Sprintf("%s %q", t.Kind, t.Value)
	case Unknown:
		return fmt.Sprintf("unknown token %q", t.Value)
	default:
		return fmt.Sprintf("%q", t.Value)
	}
}

func (t Token) Debug(w io.Writer, filename string) {
	colors.GREY.Fprintf(w, "%s:%d:%d ", filename, t.Range.Start.Line, t.Range.Start.Column)
	if t.Value == string(t.Kind) {
		fmt.Fprintf(w, "%q\n", t.Value)
	} else {
		fmt.Fprintf(w, "%q ('%v')\n", t.Value, t.Kind)
	}
}

func NewToken(kind TOKEN, value string, r source.Range) Token {
	return Token{
		Kind:  kind,
		Value: value,
		Range: r,
	}
}
