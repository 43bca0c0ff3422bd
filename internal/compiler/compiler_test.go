package compiler

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zesterer/ir/colors"
	"github.com/zesterer/ir/internal/phase"
)

func init() {
	colors.Configure(colors.Never, nil)
}

func TestCheck_InMemorySimpleCode(t *testing.T) {
	result := Check(context.Background(), &Options{
		Code:      "BLOCK main(a I32)\n  RETURN a\n",
		LogFormat: ANSI,
	})

	assert.True(t, result.Success)
	assert.Equal(t, "BLOCK main(a I32)\n    RETURN a\n", result.Output)
	require.Len(t, result.Units, 1)
	assert.Equal(t, phase.PhaseParsed, result.Units[0].Phase())
}

func TestCheck_InMemoryWithSyntaxError(t *testing.T) {
	result := Check(context.Background(), &Options{
		Code:      "BLOCK main(a I32)\n  x I32 = ADD a\n  END\n",
		LogFormat: ANSI,
	})

	assert.False(t, result.Success)
	assert.Contains(t, result.Output, "error[P0014]")
	assert.Contains(t, result.Output, "--> playground.ir:2:")
	assert.Contains(t, result.Output, "Failed with 1 error(s)")
}

func TestCheck_EmptyCode(t *testing.T) {
	result := Check(context.Background(), &Options{})
	assert.True(t, result.Success)
	assert.Empty(t, result.Output)
}

func TestCheck_HTMLFormat(t *testing.T) {
	result := Check(context.Background(), &Options{
		Code:      "BLOCK <x>()\n",
		LogFormat: HTML,
	})

	assert.False(t, result.Success)
	assert.Contains(t, result.Output, "&lt;")
	assert.NotContains(t, result.Output, "<x>")
}

func TestCheck_Files(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.ir")
	bad := filepath.Join(dir, "bad.ir")
	require.NoError(t, os.WriteFile(good, []byte("BLOCK a()\n  END\n"), 0644))
	require.NoError(t, os.WriteFile(bad, []byte("BLOCK a()\n  ALWAYS\n"), 0644))

	result := Check(context.Background(), &Options{Files: []string{good}, Summary: true})
	assert.True(t, result.Success)
	assert.Contains(t, result.Output, "Total Files: 1")

	result = Check(context.Background(), &Options{Files: []string{good, bad}, Jobs: 2})
	assert.False(t, result.Success)
	assert.Len(t, result.Units, 2)
	assert.Contains(t, result.Output, "error[P0003]")
	assert.Contains(t, result.Output, bad)
}

func TestCheck_CancelledWithSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.ir")
	require.NoError(t, os.WriteFile(path, []byte("BLOCK a()\n  END\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var result Result
	require.NotPanics(t, func() {
		result = Check(ctx, &Options{Files: []string{path}, Summary: true})
	})

	assert.False(t, result.Success)
	require.Len(t, result.Units, 1)
	assert.True(t, result.Units[0].Skipped())
	assert.Contains(t, result.Output, "warning[W0001]: file was not checked")
	assert.Contains(t, result.Output, " - "+path+" (NotStarted, skipped)")
	assert.Contains(t, result.Output, "context canceled")
}

func TestCheck_CancelledInMemory(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := Check(ctx, &Options{Code: "BLOCK a()\n  END\n", Summary: true})
	assert.False(t, result.Success)
	assert.Contains(t, result.Output, "playground.ir (NotStarted, skipped)")
}
