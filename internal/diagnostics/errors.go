package diagnostics

import (
	"fmt"

	"github.com/zesterer/ir/internal/source"
)

// ErrorKind is the closed taxonomy of lexing and parsing failures.
type ErrorKind int

const (
	// Lexing
	UnexpectedChar ErrorKind = iota
	UnsupportedConstruct
	UnterminatedString

	// Parsing
	ExpectedBlock
	ExpectedIdentifier
	ExpectedOpenParen
	ExpectedCloseParen
	ExpectedType
	ExpectedEquals
	ExpectedOperation
	ExpectedBranch
	ExpectedEndOfLine
	ExpectedComma
	InvalidParameter
	DuplicateBlock
	DuplicateBinding
	UnresolvedBinding
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedChar:
		return "unexpected character"
	case UnsupportedConstruct:
		return "unsupported construct"
	case UnterminatedString:
		return "unterminated string literal"
	case ExpectedBlock:
		return "expected block"
	case ExpectedIdentifier:
		return "expected identifier"
	case ExpectedOpenParen:
		return "expected '('"
	case ExpectedCloseParen:
		return "expected ')'"
	case ExpectedType:
		return "expected type"
	case ExpectedEquals:
		return "expected '='"
	case ExpectedOperation:
		return "expected operation"
	case ExpectedBranch:
		return "expected statement or branch"
	case ExpectedEndOfLine:
		return "expected end of line"
	case ExpectedComma:
		return "expected ','"
	case InvalidParameter:
		return "invalid token in parameter list"
	case DuplicateBlock:
		return "duplicate block name"
	case DuplicateBinding:
		return "duplicate binding name"
	case UnresolvedBinding:
		return "unresolved binding"
	default:
		return "unknown error"
	}
}

// Code returns the stable diagnostic code of the kind.
func (k ErrorKind) Code() string {
	switch k {
	case UnexpectedChar:
		return ErrUnexpectedCharacter
	case UnsupportedConstruct:
		return ErrUnsupportedConstruct
	case UnterminatedString:
		return ErrUnterminatedString
	case ExpectedBlock:
		return ErrExpectedBlock
	case ExpectedIdentifier:
		return ErrMissingIdentifier
	case ExpectedOpenParen:
		return ErrMissingOpenParen
	case ExpectedCloseParen:
		return ErrUnterminatedList
	case ExpectedType:
		return ErrMissingType
	case ExpectedEquals:
		return ErrMissingEquals
	case ExpectedOperation:
		return ErrExpectedOperation
	case ExpectedBranch:
		return ErrExpectedBranch
	case ExpectedEndOfLine:
		return ErrMissingLineBreak
	case ExpectedComma:
		return ErrMissingComma
	case InvalidParameter:
		return ErrUnexpectedToken
	case DuplicateBlock:
		return ErrDuplicateBlock
	case DuplicateBinding:
		return ErrDuplicateBinding
	case UnresolvedBinding:
		return ErrUnresolvedBinding
	default:
		return ""
	}
}

// IsLexical reports whether the kind is raised by the lexer.
func (k ErrorKind) IsLexical() bool {
	return k <= UnterminatedString
}

// SyntaxError is a located lexing or parsing failure.
// Range is nil when the input ended before the error could be attributed to a token.
type SyntaxError struct {
	Kind    ErrorKind
	Range   *source.Range
	Related *source.Range // opening parenthesis, or the earlier definition
	Text    string        // offending character, name or token description

	Suggestion string // a similar name that is in scope
}

// NewSyntaxError creates an error without position information.
func NewSyntaxError(kind ErrorKind) *SyntaxError {
	return &SyntaxError{Kind: kind}
}

// At attaches the offending range.
func (e *SyntaxError) At(r source.Range) *SyntaxError {
	e.Range = r.Ptr()
	return e
}

// WithText records the offending text.
func (e *SyntaxError) WithText(text string) *SyntaxError {
	e.Text = text
	return e
}

// WithRelated records a second range the error refers to.
func (e *SyntaxError) WithRelated(r source.Range) *SyntaxError {
	e.Related = r.Ptr()
	return e
}

// WithSuggestion records a name the user may have meant.
func (e *SyntaxError) WithSuggestion(name string) *SyntaxError {
	e.Suggestion = name
	return e
}

// Message renders the error without its position.
func (e *SyntaxError) Message() string {
	if e.Text == "" {
		return e.Kind.String()
	}
	switch e.Kind {
	case UnexpectedChar, UnsupportedConstruct:
		return fmt.Sprintf("%s '%s'", e.Kind, e.Text)
	case DuplicateBlock, DuplicateBinding, UnresolvedBinding:
		return fmt.Sprintf("%s %q", e.Kind, e.Text)
	default:
		return fmt.Sprintf("%s, found %s", e.Kind, e.Text)
	}
}

func (e *SyntaxError) Error() string {
	if e.Range == nil {
		return e.Message()
	}
	return fmt.Sprintf("%s: %s", e.Range, e.Message())
}

// Diagnostic converts the error into a renderable diagnostic for the given file.
func (e *SyntaxError) Diagnostic(filepath string) *Diagnostic {
	diag := NewError(e.Message()).WithCode(e.Kind.Code()).WithFile(filepath)
	if e.Range == nil {
		return diag.WithNote("the input ended unexpectedly")
	}

	diag.WithPrimaryLabel(e.Range, primaryLabel(e.Kind))
	if e.Related != nil {
		diag.WithSecondaryLabel(e.Related, relatedLabel(e.Kind))
	}
	if e.Suggestion != "" {
		diag.WithHelp(fmt.Sprintf("did you mean %q?", e.Suggestion))
	} else if help := helpFor(e.Kind); help != "" {
		diag.WithHelp(help)
	}
	return diag
}

func primaryLabel(kind ErrorKind) string {
	switch kind {
	case DuplicateBlock, DuplicateBinding:
		return "redeclared here"
	case UnresolvedBinding:
		return "not found in this block"
	case ExpectedCloseParen:
		return "list is not closed"
	default:
		return ""
	}
}

func relatedLabel(kind ErrorKind) string {
	switch kind {
	case ExpectedCloseParen:
		return "opened here"
	case DuplicateBlock, DuplicateBinding:
		return "previously declared here"
	default:
		return ""
	}
}

func helpFor(kind ErrorKind) string {
	switch kind {
	case UnsupportedConstruct:
		return "'_' is reserved; use a named binding"
	case ExpectedBlock:
		return "programs consist of BLOCK definitions only"
	case ExpectedType:
		return "every parameter group ends with a type: I32, Bool, Product(...) or Sum(...)"
	case ExpectedBranch:
		return "end the block with ALWAYS, IF, RETURN or END"
	case UnresolvedBinding:
		return "operands must be block inputs or results of earlier operations"
	case DuplicateBlock, DuplicateBinding:
		return "use a different name or remove one of the declarations"
	default:
		return ""
	}
}
