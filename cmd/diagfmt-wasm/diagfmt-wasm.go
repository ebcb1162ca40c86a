//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/diagfmt/compiler/internal/diagnostic"
	"github.com/diagfmt/compiler/internal/handler"
	"github.com/diagfmt/compiler/internal/printer"
	wasm_utils "github.com/diagfmt/compiler/internal_wasm/utils"
)

func main() {
	js.Global().Set("__diagfmt_format", js.FuncOf(Format))
	<-make(chan bool)
}

// Format renders the diagnostics JSON in args[0]. args[1] may hold an
// options object.
func Format(this js.Value, args []js.Value) interface{} {
	h := handler.NewHandler("input")
	if len(args) == 0 {
		return wasm_utils.ErrorToJSError(h, diagnostic.ErrEmptyInput)
	}
	options := js.Undefined()
	if len(args) > 1 {
		options = args[1]
	}
	opts, err := wasm_utils.GetOptions(options)
	if err != nil {
		return wasm_utils.ErrorToJSError(h, err)
	}

	diagnostics, err := diagnostic.Decode([]byte(wasm_utils.JSString(args[0])), h)
	if err != nil {
		return wasm_utils.ErrorToJSError(h, err)
	}

	results := make([]printer.Result, 0, len(diagnostics))
	formatted := make([]wasm_utils.FormattedDiagnostic, 0, len(diagnostics))
	for _, d := range diagnostics {
		r := printer.NewResult(d, opts)
		results = append(results, r)
		formatted = append(formatted, wasm_utils.FormattedDiagnostic{
			Code:     r.Code,
			Severity: r.Severity,
			HTML:     r.HTML,
		})
	}

	return wasm_utils.FormatResult{
		HTML:        string(printer.PrintToHTML(results).Output),
		Diagnostics: formatted,
		Warnings:    h.Warnings(),
	}.Value()
}
