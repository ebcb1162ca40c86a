package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:   "diagfmt",
	Short: "Render compiler diagnostics as HTML",
	Long:  `diagfmt turns language server diagnostics into HTML with highlighted code, declaration links and Chinese translations.`,
}

func main() {
	rootCmd.Version = version
	rootCmd.AddCommand(formatCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
