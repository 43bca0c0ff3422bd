//go:build !js && !wasm

package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/zesterer/ir/internal/dump"
	"github.com/zesterer/ir/internal/frontend/lexer"
	"github.com/zesterer/ir/internal/frontend/parser"
	"github.com/zesterer/ir/internal/source"
)

var fmtDiff bool

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Print a file in canonical layout",
	Long: `Parse a file and print it back with blocks in name order, parameters
written one type each and four-space indentation. Comments are not kept.`,
	Args: cobra.ExactArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().BoolVar(&fmtDiff, "diff", false, "Show a diff against the file instead of the formatted text")
}

func runFmt(cmd *cobra.Command, args []string) error {
	path := args[0]
	file, err := source.ReadFile(path)
	if err != nil {
		return report(cmd, path, nil, err)
	}

	toks, err := lexer.Tokenize(file.Content)
	if err != nil {
		return report(cmd, path, file, err)
	}
	program, err := parser.Parse(toks)
	if err != nil {
		return report(cmd, path, file, err)
	}

	formatted := dump.FormatProgram(program)
	if fmtDiff {
		_, err := dump.Diff(cmd.OutOrStdout(), path, file.Content, formatted)
		return err
	}
	_, err = io.WriteString(cmd.OutOrStdout(), formatted)
	return err
}
