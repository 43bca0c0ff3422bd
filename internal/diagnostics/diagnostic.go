package diagnostics

import (
	"github.com/zesterer/ir/internal/source"
)

// Severity represents the severity level of a diagnostic
type Severity int

const (
	Error Severity = iota
	Warning
	Info
	Hint
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	case Hint:
		return "hint"
	default:
		return "unknown"
	}
}

// Label represents a labeled section of code in a diagnostic
type Label struct {
	Range   *source.Range
	Message string
	Style   LabelStyle
}

type LabelStyle int

const (
	Primary   LabelStyle = iota // The main error location (uses ^^^)
	Secondary                   // Additional context (uses ---)
)

// Note represents additional information attached to a diagnostic
type Note struct {
	Message string
}

// Diagnostic represents a front end diagnostic (error, warning, etc.)
type Diagnostic struct {
	Severity Severity
	Message  string
	Code     string // Error code like "P0001"
	FilePath string // Source file for this diagnostic
	Labels   []Label
	Notes    []Note
	Help     string // Suggestion for fixing the error
}

func newDiagnostic(severity Severity, message string) *Diagnostic {
	return &Diagnostic{
		Severity: severity,
		Message:  message,
		Labels:   make([]Label, 0),
		Notes:    make([]Note, 0),
	}
}

// NewError creates a new error diagnostic
func NewError(message string) *Diagnostic {
	return newDiagnostic(Error, message)
}

// NewWarning creates a new warning diagnostic
func NewWarning(message string) *Diagnostic {
	return newDiagnostic(Warning, message)
}

// WithCode sets the error code
func (d *Diagnostic) WithCode(code string) *Diagnostic {
	d.Code = code
	return d
}

// WithFile sets the source file the labels point into
func (d *Diagnostic) WithFile(filepath string) *Diagnostic {
	d.FilePath = filepath
	return d
}

// WithLabel adds a labeled range to the diagnostic
func (d *Diagnostic) WithLabel(r *source.Range, message string, style LabelStyle) *Diagnostic {
	d.Labels = append(d.Labels, Label{
		Range:   r,
		Message: message,
		Style:   style,
	})
	return d
}

// PrimaryLabel returns the primary label, if any
func (d *Diagnostic) PrimaryLabel() (Label, bool) {
	for _, label := range d.Labels {
		if label.Style == Primary {
			return label, true
		}
	}
	return Label{}, false
}

// WithPrimaryLabel adds the primary labeled range.
// A diagnostic has at most one; it is always kept first.
func (d *Diagnostic) WithPrimaryLabel(r *source.Range, message string) *Diagnostic {
	if _, ok := d.PrimaryLabel(); ok {
		return d
	}
	d.Labels = append([]Label{{
		Range:   r,
		Message: message,
		Style:   Primary,
	}}, d.Labels...)
	return d
}

// WithSecondaryLabel adds a secondary labeled range.
// Primary label must exist before adding secondary labels
func (d *Diagnostic) WithSecondaryLabel(r *source.Range, message string) *Diagnostic {
	if _, ok := d.PrimaryLabel(); !ok {
		panic("Cannot add secondary label without primary label. Call WithPrimaryLabel first.")
	}
	return d.WithLabel(r, message, Secondary)
}

// WithNote adds a note to the diagnostic
func (d *Diagnostic) WithNote(message string) *Diagnostic {
	d.Notes = append(d.Notes, Note{Message: message})
	return d
}

// WithHelp sets helpful suggestion for fixing the error
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}
