//go:build !js && !wasm

package main

import (
	"github.com/spf13/cobra"

	"github.com/zesterer/ir/internal/diagnostics"
	"github.com/zesterer/ir/internal/dump"
	"github.com/zesterer/ir/internal/source"
)

// dumpFormat returns the --format flag when given, the configured format otherwise
func dumpFormat(flag string) (dump.Format, error) {
	if flag == "" {
		return cfg.Format, nil
	}
	return dump.ParseFormat(flag)
}

// report renders err as a diagnostic for file and returns errCheckFailed
func report(cmd *cobra.Command, path string, file *source.File, err error) error {
	bag := diagnostics.NewDiagnosticBag()
	if file != nil {
		bag.AddFile(file)
	}
	bag.AddError(path, err)
	bag.EmitAll(cmd.ErrOrStderr())
	return errCheckFailed
}
