//go:build !js && !wasm

package main

import (
	"github.com/spf13/cobra"

	"github.com/zesterer/ir/internal/dump"
	"github.com/zesterer/ir/internal/frontend/lexer"
	"github.com/zesterer/ir/internal/source"
)

var tokensFormat string

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Print the token stream of a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	tokensCmd.Flags().StringVar(&tokensFormat, "format", "", "Output format: text, table, json, yaml")
}

func runTokens(cmd *cobra.Command, args []string) error {
	format, err := dumpFormat(tokensFormat)
	if err != nil {
		return err
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
	return dump.Tokens(cmd.OutOrStdout(), path, toks, format)
}
