//go:build js && wasm

package main

import (
	"context"
	"syscall/js"

	"github.com/zesterer/ir/colors"
	"github.com/zesterer/ir/internal/compiler"
)

func main() {
	colors.Configure(colors.Always, nil)
	js.Global().Set("irParse", js.FuncOf(parse))
	js.Global().Set("irWasmVersion", "0.1.0")
	println("ir WASM parser ready")
	<-make(chan struct{})
}

func parse(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return map[string]any{
			"success": false,
			"output":  "Invalid arguments: expected (code: string)",
		}
	}

	result := compiler.Check(context.Background(), &compiler.Options{
		Code:      args[0].String(),
		LogFormat: compiler.HTML,
	})

	return map[string]any{
		"success": result.Success,
		"output":  result.Output,
	}
}
