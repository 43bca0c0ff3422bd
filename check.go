//go:build !js && !wasm

package main

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/zesterer/ir/internal/compiler"
)

var checkSummary bool

var checkCmd = &cobra.Command{
	Use:   "check <file|dir>...",
	Short: "Parse files and report syntax errors",
	Long: `Parse every given file concurrently and report all syntax errors.
Directories are searched recursively for files with the configured extension.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkSummary, "summary", false, "Print the phase every file reached")
}

func runCheck(cmd *cobra.Command, args []string) error {
	files, err := expandPaths(args, cfg.Extension)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.Errorf("no %s files found", cfg.Extension)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result := compiler.Check(ctx, &compiler.Options{
		Files:     files,
		Jobs:      cfg.Jobs,
		Summary:   checkSummary || cfg.Summary,
		LogFormat: compiler.ANSI,
	})

	if _, err := io.WriteString(cmd.ErrOrStderr(), result.Output); err != nil {
		return err
	}
	if !result.Success {
		return errCheckFailed
	}
	return nil
}

// expandPaths replaces each directory with the files below it that have
// the given extension. Files named explicitly are kept whatever their extension.
func expandPaths(args []string, ext string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			// missing files are reported by the pipeline
			files = append(files, arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && filepath.Ext(path) == ext {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "walking %s", arg)
		}
	}
	return files, nil
}
