//go:build !js && !wasm

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/zesterer/ir/colors"
	"github.com/zesterer/ir/internal/config"
	"github.com/zesterer/ir/internal/diagnostics"
)

// errCheckFailed is returned once diagnostics for a failed run have been written
var errCheckFailed = errors.New("check failed")

var (
	configPath string
	colorFlag  string
	verbosity  int
	jobs       int

	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "ir",
	Short: "ir - lexer and parser for a block-based IR",
	Long: `ir reads programs written in a small block-based intermediate representation.
It can print the token stream or the parsed program of a file and check many
files at once, reporting syntax errors with source snippets.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ir.toml or ir.yaml in the working directory)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "Colour output: auto, always, never")
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbose", "v", 0, "Log verbosity level")
	rootCmd.PersistentFlags().IntVarP(&jobs, "jobs", "j", 0, "Files processed at once (default: one per CPU)")

	// Add subcommands
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(astCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads the configuration, applies flag overrides and initialises
// colours and logging.
func setup(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "getting working directory")
	}

	loaded, path, err := config.Discover(configPath, wd)
	if err == nil {
		err = applyFlags(cmd, loaded)
	}
	if err != nil {
		diagnostics.NewEmitter(cmd.ErrOrStderr()).Emit(diagnostics.ConfigError(path, err))
		return errCheckFailed
	}
	cfg = loaded

	colors.Configure(cfg.Color, os.Stderr)
	initLogging(true, cfg.Verbosity)
	return nil
}

// applyFlags overrides file settings with flags given on the command line
func applyFlags(cmd *cobra.Command, c *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("color") {
		c.Color = colors.Mode(colorFlag)
	}
	if flags.Changed("verbose") {
		c.Verbosity = verbosity
	}
	if flags.Changed("jobs") {
		c.Jobs = jobs
	}
	return c.Validate()
}

// Execute runs the root command. An interrupt stops scheduling further files.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
