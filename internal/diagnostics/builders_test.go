package diagnostics

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/zesterer/ir/colors"
)

func TestConfigError(t *testing.T) {
	colors.Configure(colors.Never, nil)

	diag := ConfigError("ir.toml", errors.New(`unknown key "colour"`))
	assert.Equal(t, Error, diag.Severity)
	assert.Equal(t, ErrConfig, diag.Code)
	assert.Equal(t, "ir.toml", diag.FilePath)
	assert.Empty(t, diag.Labels)

	var buf bytes.Buffer
	NewEmitter(&buf).Emit(diag)
	assert.Equal(t, "error[D0002]: invalid configuration\n"+
		" = note: unknown key \"colour\"\n"+
		" = help: see `ir --help` for the supported settings\n\n", buf.String())
}

func TestSkippedFile(t *testing.T) {
	diag := SkippedFile("a.ir", errors.New("context canceled"))
	assert.Equal(t, Warning, diag.Severity)
	assert.Equal(t, WarnFileSkipped, diag.Code)
	assert.Equal(t, "a.ir", diag.FilePath)
	assert.Equal(t, []Note{{Message: "context canceled"}}, diag.Notes)
}
