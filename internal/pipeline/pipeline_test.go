package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zesterer/ir/colors"
	"github.com/zesterer/ir/internal/diagnostics"
	"github.com/zesterer/ir/internal/phase"
	"github.com/zesterer/ir/internal/source"
)

const valid = `BLOCK (entry) main(a, b I32)
    s I32 = ADD a, b
    RETURN s

BLOCK other()
    END
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestPipelineBasic(t *testing.T) {
	path := writeFile(t, t.TempDir(), "main.ir", valid)

	p := New(Options{Jobs: 2})
	units, err := p.Run(context.Background(), []string{path})
	require.NoError(t, err)
	require.Len(t, units, 1)

	u := units[0]
	assert.Equal(t, phase.PhaseParsed, u.Phase())
	assert.False(t, u.Failed())
	assert.Equal(t, []string{"main", "other"}, u.Program.Names())
	assert.NotEmpty(t, u.Tokens)
	assert.False(t, p.Diagnostics.HasErrors())
}

func TestPipelineMixedResults(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.ir", valid)
	badLex := writeFile(t, dir, "lex.ir", "BLOCK a()\n  #\n")
	badParse := writeFile(t, dir, "parse.ir", "BLOCK a()\n  x I32 = ADD y, z\n  END\n")
	missing := filepath.Join(dir, "missing.ir")

	p := New(Options{Jobs: 3})
	units, err := p.Run(context.Background(), []string{good, badLex, badParse, missing})
	require.Error(t, err)
	require.Len(t, units, 4)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 3)

	// Units keep the input order
	assert.Equal(t, phase.PhaseParsed, units[0].Phase())
	assert.Equal(t, phase.PhaseLoaded, units[1].Phase())
	assert.Equal(t, phase.PhaseLexed, units[2].Phase())
	assert.Equal(t, phase.PhaseNotStarted, units[3].Phase())

	var syntaxErr *diagnostics.SyntaxError
	require.True(t, errors.As(units[1].Err, &syntaxErr))
	assert.Equal(t, diagnostics.UnexpectedChar, syntaxErr.Kind)
	require.True(t, errors.As(units[2].Err, &syntaxErr))
	assert.Equal(t, diagnostics.UnresolvedBinding, syntaxErr.Kind)
	assert.False(t, errors.As(units[3].Err, &syntaxErr))

	assert.Equal(t, 3, p.Diagnostics.ErrorCount())

	codes := make(map[string]string)
	for _, diag := range p.Diagnostics.Diagnostics() {
		codes[diag.FilePath] = diag.Code
	}
	assert.Equal(t, diagnostics.ErrUnexpectedCharacter, codes[badLex])
	assert.Equal(t, diagnostics.ErrUnresolvedBinding, codes[badParse])
	assert.Equal(t, diagnostics.ErrIO, codes[missing])
}

func TestPipelineSchedulesPathsOnce(t *testing.T) {
	path := writeFile(t, t.TempDir(), "main.ir", "BLOCK a()\n  #\n")

	p := New(Options{})
	units, err := p.Run(context.Background(), []string{path, path, path})
	require.Error(t, err)
	assert.Len(t, units, 1)
	assert.Equal(t, 1, p.Diagnostics.ErrorCount())
}

func TestPipelineCancelled(t *testing.T) {
	path := writeFile(t, t.TempDir(), "main.ir", valid)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New(Options{Jobs: 1})
	units, err := p.Run(ctx, []string{path})
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, units, 1)
	assert.Equal(t, phase.PhaseNotStarted, units[0].Phase())
	assert.True(t, units[0].Skipped())
	assert.False(t, units[0].Failed())

	assert.False(t, p.Diagnostics.HasErrors())
	assert.Equal(t, 1, p.Diagnostics.WarningCount())
	diags := p.Diagnostics.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, path, diags[0].FilePath)

	var buf bytes.Buffer
	p.PrintSummary(&buf, units)
	assert.Contains(t, buf.String(), " - "+path+" (NotStarted, skipped)")
}

func TestPipelineSourcesRenderDiagnostics(t *testing.T) {
	colors.Configure(colors.Never, nil)

	p := New(Options{Jobs: 4})
	units, err := p.RunSources(context.Background(),
		source.NewFile("ok.ir", valid),
		source.NewFile("bad.ir", "BLOCK a()\n  x I32 = ADD y, z\n  END\n"),
	)
	require.Error(t, err)
	require.Len(t, units, 2)
	assert.Contains(t, err.Error(), "bad.ir: 2:15:")

	out := p.Diagnostics.EmitAllToString()
	assert.Contains(t, out, "error[P0013]")
	assert.Contains(t, out, "--> bad.ir:2:15")
	assert.Contains(t, out, "x I32 = ADD y, z")
	assert.Contains(t, out, "Failed with 1 error(s)")
}

func TestRunSourcesPhases(t *testing.T) {
	p := New(Options{})

	units, err := p.RunSources(context.Background(),
		source.NewFile("inline.ir", valid),
		source.NewFile("broken.ir", "BLOCK"),
	)
	require.Error(t, err)
	require.Len(t, units, 2)

	inline, broken := units[0], units[1]
	require.NoError(t, inline.Err)
	assert.Equal(t, phase.PhaseParsed, inline.Phase())
	assert.Equal(t, 2, inline.Program.Len())

	require.Error(t, broken.Err)
	assert.Equal(t, phase.PhaseLexed, broken.Phase())
	assert.Nil(t, broken.Program)
	assert.False(t, broken.Skipped())
	assert.Equal(t, 1, p.Diagnostics.ErrorCount())
}

func TestPrintSummary(t *testing.T) {
	colors.Configure(colors.Never, nil)

	p := New(Options{})
	units, _ := p.RunSources(context.Background(),
		source.NewFile("b.ir", valid),
		source.NewFile("a.ir", "BLOCK a(\n"),
	)

	var buf bytes.Buffer
	p.PrintSummary(&buf, units)
	out := buf.String()

	assert.Contains(t, out, "Total Files: 2")
	assert.Contains(t, out, "Total Size: 95 B")
	assert.Contains(t, out, " - a.ir (Lexed, failed)")
	assert.Contains(t, out, " - b.ir (Parsed, 2 block(s))")
	assert.Less(t, strings.Index(out, "a.ir"), strings.Index(out, "b.ir"))
}

func TestAdvancePhaseIsSequential(t *testing.T) {
	u := newUnit("x.ir")
	assert.False(t, u.advancePhase(phase.PhaseLexed))
	assert.True(t, u.advancePhase(phase.PhaseLoaded))
	assert.True(t, u.advancePhase(phase.PhaseLexed))
	assert.False(t, u.advancePhase(phase.PhaseLexed))
	assert.Equal(t, phase.PhaseLexed, u.Phase())
}
