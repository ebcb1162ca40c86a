//go:build js && wasm

package wasm_utils

import (
	"runtime/debug"
	"strings"
	"syscall/js"

	"github.com/diagfmt/compiler/internal/config"
	"github.com/diagfmt/compiler/internal/handler"
	"github.com/diagfmt/compiler/internal/loc"
	"github.com/diagfmt/compiler/internal/rewrite"
	"github.com/norunners/vert"
)

func JSString(j js.Value) string {
	if j.IsUndefined() || j.IsNull() {
		return ""
	}
	return j.String()
}

func jsBool(j js.Value, fallback bool) bool {
	if j.Type() != js.TypeBoolean {
		return fallback
	}
	return j.Bool()
}

// GetOptions reads formatter options from a JavaScript object. Missing
// fields keep their defaults.
func GetOptions(options js.Value) (*config.Options, error) {
	opts := config.Default()
	if options.Type() != js.TypeObject {
		return opts, nil
	}
	locale, err := rewrite.ParseLocale(JSString(options.Get("locale")))
	if err != nil {
		return nil, err
	}
	opts.Locale = locale
	opts.Translate = jsBool(options.Get("translate"), opts.Translate)
	opts.SymbolLinks = jsBool(options.Get("symbolLinks"), opts.SymbolLinks)
	opts.Indent = jsBool(options.Get("indent"), opts.Indent)
	opts.Prettify = jsBool(options.Get("prettify"), opts.Prettify)
	return opts, nil
}

type FormattedDiagnostic struct {
	Code     string `js:"code"`
	Severity string `js:"severity"`
	HTML     string `js:"html"`
}

type FormatResult struct {
	HTML        string                `js:"html"`
	Diagnostics []FormattedDiagnostic `js:"diagnostics"`
	Warnings    []loc.Message         `js:"warnings"`
}

func (r FormatResult) Value() js.Value {
	return vert.ValueOf(r).Value
}

type JSError struct {
	Message string `js:"message"`
	Stack   string `js:"stack"`
}

type errorResult struct {
	Error    JSError       `js:"error"`
	Warnings []loc.Message `js:"warnings"`
}

func ErrorToJSError(h *handler.Handler, err error) js.Value {
	stack := string(debug.Stack())
	message := strings.TrimSpace(err.Error())
	warnings := make([]loc.Message, 0)
	if h != nil {
		warnings = h.Diagnostics()
	}
	return vert.ValueOf(errorResult{
		Error:    JSError{Message: message, Stack: stack},
		Warnings: warnings,
	}).Value
}
