// Package link points symbols in a diagnostic message at their declaration.
package link

import (
	"fmt"

	"github.com/diagfmt/compiler/internal/diagnostic"
	"github.com/diagfmt/compiler/internal/markup"
	"github.com/dlclark/regexp2"
)

var (
	declaredHere = regexp2.MustCompile(`(?:is declared here|was declared here|在此(?:处)?.*?(?:声明|定义))`, regexp2.IgnoreCase)

	quotedSymbol = regexp2.MustCompile(`['"‘“「『]([^'"‘’“”「」『』]+)['"’”」』]`, regexp2.None)

	bareSymbol = []*regexp2.Regexp{
		regexp2.MustCompile(`(?<![A-Za-z0-9_$])([A-Za-z_$#][A-Za-z0-9_$]*)\s+(?:is|was) declared here`, regexp2.IgnoreCase),
		regexp2.MustCompile(`在此处?(?:声明|定义)了?\s*([A-Za-z_$#][A-Za-z0-9_$]*)`, regexp2.None),
		regexp2.MustCompile(`(?<![A-Za-z0-9_$])([A-Za-z_$#][A-Za-z0-9_$]*)\s*在此`, regexp2.None),
	}
)

const (
	openQuotes  = `['"‘“「『]`
	closeQuotes = `['"’”」』]`
	identChar   = `[A-Za-z0-9_$]`
)

// symbol is what a related message names: the literal as it was quoted, and
// the bare name inside the quotes.
type symbol struct {
	literal string
	name    string
	bare    bool
}

// EmbedSymbolLinks appends a go-to-file icon after the first occurrence of a
// symbol whose declaration site is given in the related information. The
// diagnostic is returned unchanged when nothing can be linked.
func EmbedSymbolLinks(d diagnostic.Diagnostic) diagnostic.Diagnostic {
	for _, related := range d.RelatedInformation {
		if ok, _ := declaredHere.MatchString(related.Message); !ok {
			continue
		}
		sym, ok := extractSymbol(related.Message)
		if !ok {
			continue
		}
		end, ok := findOccurrence(d.Message, sym)
		if !ok {
			continue
		}
		runes := []rune(d.Message)
		linked := string(runes[:end]) + " " + markup.LinkIcon(Href(related)) + string(runes[end:])
		return d.WithMessage(linked)
	}
	return d
}

// Href is the editor link for a related location: the file path followed
// by the 1-based line and column.
func Href(related diagnostic.RelatedInfo) string {
	line, col := related.Location.Range.Start.OneBased()
	return fmt.Sprintf("%s#%d,%d", diagnostic.URIToPath(related.Location.URI), line, col)
}

func extractSymbol(msg string) (symbol, bool) {
	if m, _ := quotedSymbol.FindStringMatch(msg); m != nil {
		return symbol{literal: m.String(), name: m.GroupByNumber(1).String()}, true
	}
	for _, re := range bareSymbol {
		if m, _ := re.FindStringMatch(msg); m != nil {
			name := m.GroupByNumber(1).String()
			return symbol{literal: name, name: name, bare: true}, true
		}
	}
	return symbol{}, false
}

// findOccurrence returns the rune offset just past the first place msg
// mentions sym. msg is escaped HTML text and sym comes from a raw related
// message, so the symbol is escaped the same way before matching.
func findOccurrence(msg string, sym symbol) (int, bool) {
	literal := regexp2.Escape(markup.Escape(sym.literal))
	name := regexp2.Escape(markup.Escape(sym.name))
	patterns := make([]string, 0, 3)
	if !sym.bare {
		patterns = append(patterns, literal)
	}
	patterns = append(patterns, openQuotes+name+closeQuotes)
	if sym.bare {
		// a bare word, but not part of a longer name or an object key
		patterns = append(patterns, `(?<!`+identChar+`)`+name+`(?!`+identChar+`)(?!\??\s*:)`)
	}
	for _, p := range patterns {
		re, err := regexp2.Compile(p, regexp2.None)
		if err != nil {
			continue
		}
		if m, _ := re.FindStringMatch(msg); m != nil {
			return m.Index + m.Length, true
		}
	}
	return 0, false
}
