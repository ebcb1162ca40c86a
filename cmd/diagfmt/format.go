package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/fatih/color"
	"github.com/pkg/diff"
	"github.com/sourcegraph/conc/iter"
	"github.com/spf13/cobra"

	"github.com/diagfmt/compiler/internal/config"
	"github.com/diagfmt/compiler/internal/diagnostic"
	"github.com/diagfmt/compiler/internal/handler"
	"github.com/diagfmt/compiler/internal/loc"
	"github.com/diagfmt/compiler/internal/printer"
	"github.com/diagfmt/compiler/internal/rewrite"
)

var formatCmd = newFormatCmd()

var (
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

func newFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Format diagnostics JSON from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runFormat,
	}
	cmd.Flags().String("config", "", "path to a "+config.FileName+" file")
	cmd.Flags().String("locale", "", "rewrite pipeline (auto|en|zh)")
	cmd.Flags().Bool("no-translate", false, "keep messages in their original language")
	cmd.Flags().Bool("no-links", false, "do not link symbols to their declarations")
	cmd.Flags().Bool("diff", false, "print a diff of each raw message against its HTML")
	cmd.Flags().String("output", "html", "output format (html|json)")
	return cmd
}

func runFormat(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	showDiff, err := cmd.Flags().GetBool("diff")
	if err != nil {
		return err
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if output != "html" && output != "json" {
		return fmt.Errorf("format: unsupported output format %q", output)
	}

	name, data, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	h := handler.NewHandler(name)
	diagnostics, err := diagnostic.Decode(data, h)
	report(cmd.ErrOrStderr(), name, h)
	if err != nil {
		// already reported
		cmd.SilenceErrors = true
		return fmt.Errorf("format: %s: %w", name, err)
	}

	mapper := iter.Mapper[diagnostic.Diagnostic, printer.Result]{MaxGoroutines: runtime.GOMAXPROCS(0)}
	results := mapper.Map(diagnostics, func(d *diagnostic.Diagnostic) printer.Result {
		return printer.NewResult(*d, opts)
	})

	out := cmd.OutOrStdout()
	if showDiff {
		return printDiffs(out, results)
	}
	var res printer.PrintResult
	if output == "json" {
		if res, err = printer.PrintToJSON(results); err != nil {
			return err
		}
	} else {
		res = printer.PrintToHTML(results)
	}
	_, err = out.Write(res.Output)
	return err
}

// loadOptions reads the config file and applies flags set on the command
// line over it.
func loadOptions(cmd *cobra.Command) (*config.Options, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	opts, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("locale") {
		value, _ := cmd.Flags().GetString("locale")
		if opts.Locale, err = rewrite.ParseLocale(value); err != nil {
			return nil, err
		}
	}
	if noTranslate, _ := cmd.Flags().GetBool("no-translate"); noTranslate {
		opts.Translate = false
	}
	if noLinks, _ := cmd.Flags().GetBool("no-links"); noLinks {
		opts.SymbolLinks = false
	}
	return opts, nil
}

func readInput(cmd *cobra.Command, args []string) (string, []byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", nil, fmt.Errorf("format: reading stdin: %w", err)
		}
		return "<stdin>", data, nil
	}
	data, err := os.ReadFile(args[0]) // #nosec G304 -- the path is the user's argument
	if err != nil {
		return "", nil, fmt.Errorf("format: %w", err)
	}
	return args[0], data, nil
}

// report prints the handler's errors in red and its warnings in yellow.
func report(w io.Writer, name string, h *handler.Handler) {
	if h.HasErrors() {
		for _, msg := range h.Errors() {
			printMessage(w, errorColor, name, msg)
		}
	}
	if h.HasWarnings() {
		for _, msg := range h.Warnings() {
			printMessage(w, warningColor, name, msg)
		}
	}
}

func printMessage(w io.Writer, c *color.Color, name string, msg loc.Message) {
	if msg.Location != nil {
		c.Fprintf(w, "%s: entry %d: %s\n", name, msg.Location.Index, msg.Text)
		return
	}
	c.Fprintf(w, "%s: %s\n", name, msg.Text)
}

func printDiffs(w io.Writer, results []printer.Result) error {
	for i, r := range results {
		label := r.Code
		if label == "" {
			label = fmt.Sprintf("#%d", i)
		}
		if err := diff.Text(label+" message", label+" html", r.Message+"\n", r.HTML+"\n", w); err != nil {
			return fmt.Errorf("format: diff %s: %w", label, err)
		}
	}
	return nil
}
