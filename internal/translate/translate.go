// Package translate localizes formatted diagnostic messages into Chinese
// with fixed replacement tables keyed by diagnostic code.
package translate

import (
	"github.com/diagfmt/compiler/internal/segment"
	"github.com/dlclark/regexp2"
)

// A Rule rewrites the formatted message. Pattern rules replace the first
// match, or every match when Global is set, with a literal Replacement.
// A rule with Func set transforms the whole message instead.
type Rule struct {
	Pattern     *regexp2.Regexp
	Replacement string
	Global      bool
	Func        func(html string) string
}

func (r Rule) Apply(html string) string {
	if r.Func != nil {
		return r.Func(html)
	}
	count := 1
	if r.Global {
		count = -1
	}
	out, err := r.Pattern.ReplaceFunc(html, func(regexp2.Match) string {
		return r.Replacement
	}, -1, count)
	if err != nil {
		return html
	}
	return out
}

// Translate rewrites html, the formatted message of a diagnostic with the
// given code key (TS2304, ...). Codes without an entry come back unchanged.
// Table rules see code span contents as opaque placeholders, so a path such
// as "./config.tsx" never loses its period.
func Translate(html string, code string) string {
	if code == "" {
		return html
	}
	if handle, ok := specialHandlers[code]; ok {
		if out, ok := handle(html); ok {
			return out
		}
	}
	rules := table[code]
	if len(rules) == 0 {
		return html
	}
	masked := segment.Mask(html)
	out := masked.HTML
	for _, r := range rules {
		out = r.Apply(out)
	}
	return masked.Unmask(out)
}

// Has reports whether code has a translation.
func Has(code string) bool {
	_, special := specialHandlers[code]
	return special || len(table[code]) > 0
}

func first(pattern, replacement string) Rule {
	return Rule{Pattern: regexp2.MustCompile(pattern, regexp2.None), Replacement: replacement}
}

func all(pattern, replacement string) Rule {
	return Rule{Pattern: regexp2.MustCompile(pattern, regexp2.None), Replacement: replacement, Global: true}
}

func mustCompileSingleline(pattern string) *regexp2.Regexp {
	return regexp2.MustCompile(pattern, regexp2.Singleline)
}
