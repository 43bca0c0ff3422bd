package diagnostics

import (
	"github.com/pkg/errors"
)

// FromError converts any front end failure into a diagnostic for filepath.
// Syntax errors keep their ranges; anything else is reported as an I/O error.
func FromError(filepath string, err error) *Diagnostic {
	var syntaxErr *SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr.Diagnostic(filepath)
	}
	return IOError(filepath, err)
}

// IOError creates a diagnostic for a file that could not be processed at all
func IOError(filepath string, err error) *Diagnostic {
	return NewError(errors.Cause(err).Error()).
		WithCode(ErrIO).
		WithFile(filepath).
		WithNote(err.Error())
}

// ConfigError creates a diagnostic for an unusable configuration file
func ConfigError(filepath string, err error) *Diagnostic {
	return NewError("invalid configuration").
		WithCode(ErrConfig).
		WithFile(filepath).
		WithNote(err.Error()).
		WithHelp("see `ir --help` for the supported settings")
}

// SkippedFile creates a warning for a file a cancelled run never checked
func SkippedFile(filepath string, cause error) *Diagnostic {
	return NewWarning("file was not checked").
		WithCode(WarnFileSkipped).
		WithFile(filepath).
		WithNote(cause.Error())
}
