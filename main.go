//go:build !js && !wasm

package main

import (
	"os"

	"github.com/pkg/errors"

	"github.com/zesterer/ir/colors"
)

func main() {
	if err := Execute(); err != nil {
		// failures already rendered as diagnostics
		if !errors.Is(err, errCheckFailed) {
			colors.RED.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}
