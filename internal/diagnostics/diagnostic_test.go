package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		expected string
	}{
		{Error, "error"},
		{Warning, "warning"},
		{Info, "info"},
		{Hint, "hint"},
		{Severity(999), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.severity.String())
	}
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, Error, NewError("e").Severity)
	assert.Equal(t, Warning, NewWarning("w").Severity)

	diag := NewError("test error message")
	assert.Equal(t, "test error message", diag.Message)
	assert.NotNil(t, diag.Labels)
	assert.NotNil(t, diag.Notes)
}

func TestPrimaryLabelIsUniqueAndFirst(t *testing.T) {
	first := rangeAt(1, 1, 1)
	second := rangeAt(2, 1, 1)

	diag := NewError("x").
		WithLabel(second.Ptr(), "context", Secondary).
		WithPrimaryLabel(first.Ptr(), "here").
		WithPrimaryLabel(second.Ptr(), "ignored")

	require.Len(t, diag.Labels, 2)
	assert.Equal(t, Primary, diag.Labels[0].Style)
	assert.Equal(t, "here", diag.Labels[0].Message)

	label, ok := diag.PrimaryLabel()
	assert.True(t, ok)
	assert.Equal(t, 1, label.Range.Start.Line)
}

func TestSecondaryLabelRequiresPrimary(t *testing.T) {
	r := rangeAt(1, 1, 1)
	assert.Panics(t, func() {
		NewError("x").WithSecondaryLabel(r.Ptr(), "context")
	})
}

func TestBuilderChain(t *testing.T) {
	diag := NewWarning("w").
		WithCode("P0001").
		WithFile("a.ir").
		WithNote("first").
		WithNote("second").
		WithHelp("try this")

	assert.Equal(t, "P0001", diag.Code)
	assert.Equal(t, "a.ir", diag.FilePath)
	assert.Len(t, diag.Notes, 2)
	assert.Equal(t, "try this", diag.Help)
}
