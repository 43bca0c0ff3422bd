package diagnostics

// Error codes for the IR front end
const (
	// Lexer errors (L prefix)
	ErrUnexpectedCharacter  = "L0001"
	ErrUnterminatedString   = "L0002"
	ErrUnsupportedConstruct = "L0003"

	// Parser errors (P prefix)
	ErrUnexpectedToken   = "P0001"
	ErrExpectedBlock     = "P0002"
	ErrMissingIdentifier = "P0003"
	ErrMissingOpenParen  = "P0004"
	ErrUnterminatedList  = "P0005"
	ErrMissingType       = "P0006"
	ErrMissingEquals     = "P0007"
	ErrExpectedOperation = "P0008"
	ErrExpectedBranch    = "P0009"
	ErrMissingLineBreak  = "P0010"
	ErrDuplicateBlock    = "P0011"
	ErrDuplicateBinding  = "P0012"
	ErrUnresolvedBinding = "P0013"
	ErrMissingComma      = "P0014"

	// Warnings (W prefix)
	WarnFileSkipped = "W0001"

	// Driver errors (D prefix)
	ErrIO     = "D0001"
	ErrConfig = "D0002"
)
