//go:build !js && !wasm

package main

import (
	"github.com/spf13/cobra"

	"github.com/zesterer/ir/internal/dump"
	"github.com/zesterer/ir/internal/frontend/lexer"
	"github.com/zesterer/ir/internal/frontend/parser"
	"github.com/zesterer/ir/internal/source"
)

var astFormat string

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "Print the parsed program of a file",
	Long:  "Parse a file and print its blocks in name order, as source text or as structured data",
	Args:  cobra.ExactArgs(1),
	RunE:  runAST,
}

func init() {
	astCmd.Flags().StringVar(&astFormat, "format", "", "Output format: text, json, yaml")
}

func runAST(cmd *cobra.Command, args []string) error {
	format, err := dumpFormat(astFormat)
	if err != nil {
		return err
	}
	if format == dump.Table {
		format = dump.Text
	}

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
	return dump.Program(cmd.OutOrStdout(), program, format)
}
