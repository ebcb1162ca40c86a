package rewrite

import (
	"strings"
	"unicode"

	"github.com/diagfmt/compiler/internal/markup"
	"github.com/diagfmt/compiler/internal/prettify"
	"github.com/tdewolff/parse/v2/js"
)

var primitiveTypes = map[string]bool{
	"void":      true,
	"null":      true,
	"undefined": true,
	"any":       true,
	"boolean":   true,
	"string":    true,
	"number":    true,
	"bigint":    true,
	"symbol":    true,
	"unknown":   true,
	"never":     true,
	"object":    true,
}

// typeBlock renders typ as a type code span. A non-empty prefix is the word
// that introduced the type ("type", "module", ...).
func typeBlock(prefix, typ string, format prettify.Formatter) string {
	var block string
	switch {
	case typ == "[]" || typ == "{}":
		block = markup.Unstyled(typ)
	case primitiveTypes[typ]:
		block = markup.InlineType(typ)
	default:
		pretty := prettify.Type(typ, format)
		if strings.Contains(pretty, "\n") {
			if prefix == "" {
				return markup.MultilineType(pretty)
			}
			return prefix + ": " + markup.MultilineType(pretty)
		}
		block = markup.InlineType(pretty)
	}
	if prefix == "" {
		return block
	}
	return prefix + " " + block
}

// literalClass is the token class of a keyword-like literal: numbers are
// numbers, everything else is a keyword.
func literalClass(word string) markup.TokenClass {
	if word != "" && strings.IndexFunc(word, func(r rune) bool { return r < '0' || r > '9' }) < 0 {
		return markup.Number
	}
	return markup.Keyword
}

// quotedBlock renders the content of a full-width or corner quoted span.
// Structural type expressions and identifiers become type blocks, bare
// punctuation becomes a keyword, anything else is a string literal and keeps
// its quotes.
func quotedBlock(content string, format prettify.Formatter) string {
	switch {
	case strings.ContainsAny(content, "{}[]|<>()") || strings.IndexFunc(content, unicode.IsSpace) >= 0:
		return typeBlock("", content, format)
	case isQualifiedIdentifier(content) && !hasSourceExtension(content):
		return typeBlock("", content, format)
	case strings.IndexFunc(content, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }) < 0:
		return markup.Code(markup.Keyword, content)
	}
	return markup.Code(markup.String, `"`+content+`"`)
}

var sourceExtensions = []string{".ts", ".tsx", ".mts", ".cts", ".js", ".jsx", ".mjs", ".cjs", ".json", ".vue", ".svelte", ".astro"}

// hasSourceExtension reports whether s looks like a file name such as
// index.tsx rather than a namespace member.
func hasSourceExtension(s string) bool {
	for _, ext := range sourceExtensions {
		if strings.HasSuffix(s, ext) {
			return true
		}
	}
	return false
}

// isQualifiedIdentifier accepts foo, Foo.Bar and #private.
func isQualifiedIdentifier(s string) bool {
	s = strings.TrimPrefix(s, "#")
	if s == "" {
		return false
	}
	for _, part := range strings.Split(s, ".") {
		if !isIdentifier(part) {
			return false
		}
	}
	return true
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		b := []byte(string(r))
		if i == 0 {
			if !js.IsIdentifierStart(b) {
				return false
			}
		} else if !js.IsIdentifierContinue(b) {
			return false
		}
	}
	return true
}
