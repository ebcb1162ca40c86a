// Package config loads formatter options from a .diagfmt.yaml file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/diagfmt/compiler/internal/rewrite"
	"gopkg.in/yaml.v3"
)

const FileName = ".diagfmt.yaml"

type Options struct {
	// Locale forces the rewrite pipeline; auto picks it from the message.
	Locale rewrite.Locale `yaml:"locale"`
	// Translate applies the per-code Chinese translation table.
	Translate   bool `yaml:"translate"`
	SymbolLinks bool `yaml:"symbolLinks"`
	// Indent turns leading whitespace of nested sentences into indent icons.
	Indent   bool `yaml:"indent"`
	Prettify bool `yaml:"prettify"`
}

func Default() *Options {
	return &Options{
		Locale:      rewrite.Auto,
		Translate:   true,
		SymbolLinks: true,
		Indent:      true,
		Prettify:    true,
	}
}

// Load reads options from path over the defaults. An empty path searches
// the working directory and its parents for FileName; finding nothing is
// not an error.
func Load(path string) (*Options, error) {
	opts := Default()
	if path == "" {
		path = findConfigFile()
		if path == "" {
			return opts, nil
		}
	}
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the user or findConfigFile
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	locale, err := rewrite.ParseLocale(string(opts.Locale))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	opts.Locale = locale
	return opts, nil
}

func findConfigFile() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
