package compiler

import (
	"context"
	"io"
	"strings"

	"github.com/zesterer/ir/colors"
	"github.com/zesterer/ir/internal/dump"
	"github.com/zesterer/ir/internal/pipeline"
	"github.com/zesterer/ir/internal/source"
)

type FORMAT int

const (
	ANSI FORMAT = iota
	HTML
)

// playgroundPath names in-memory code in diagnostics
const playgroundPath = "playground.ir"

// Options for a check run
type Options struct {
	// For file-based checking
	Files []string
	// For in-memory checking (WASM)
	Code string
	// Concurrency limit for Files; 0 means one per CPU
	Jobs int
	// Append the per-file phase summary
	Summary bool
	// Output format: "ansi" or "html"
	LogFormat FORMAT
}

// Result of a check run
type Result struct {
	Success bool
	Output  string
	Units   []*pipeline.Unit
}

// Check lexes and parses every input. Output holds the rendered diagnostics;
// for in-memory code that parsed cleanly it holds the formatted program.
func Check(ctx context.Context, opts *Options) Result {
	p := pipeline.New(pipeline.Options{Jobs: opts.Jobs})

	var units []*pipeline.Unit
	var runErr error
	if opts.Code != "" || len(opts.Files) == 0 {
		units, runErr = p.RunSources(ctx, source.NewFile(playgroundPath, opts.Code))
	} else {
		units, runErr = p.Run(ctx, opts.Files)
	}

	var out strings.Builder
	if p.Diagnostics.HasErrors() || p.Diagnostics.WarningCount() > 0 {
		p.Diagnostics.EmitAll(&out)
	} else if opts.Code != "" && units[0].Program != nil {
		out.WriteString(dump.FormatProgram(units[0].Program))
	}
	if opts.Summary {
		p.PrintSummary(&out, units)
	}
	if runErr != nil && !p.Diagnostics.HasErrors() {
		// cancelled before any file failed
		io.WriteString(&out, runErr.Error()+"\n")
	}

	output := out.String()
	if opts.LogFormat == HTML {
		output = colors.ConvertANSIToHTML(output)
	}

	return Result{
		Success: runErr == nil && !p.Diagnostics.HasErrors(),
		Output:  output,
		Units:   units,
	}
}
