package rewrite

import (
	"strings"

	"github.com/diagfmt/compiler/internal/markup"
	"github.com/diagfmt/compiler/internal/prettify"
	"github.com/dlclark/regexp2"
)

const keywordLiterals = `import|export|require|in|continue|break|let|false|true|const|new|throw|await|for await|[0-9]+`

// englishRules run in order; each sees the output of the previous ones.
var englishRules = []rule{
	{
		// '"./module"' is a string literal type wrapped in quotes
		name:    "nested quotes",
		pattern: mustCompile(`(^|\s)'"(.*?)(?<!\\)"'(?=\s|:|\.|,|$)`, regexp2.None),
		replace: func(m regexp2.Match, format prettify.Formatter) string {
			return group(m, 1) + typeBlock("", `"`+code(m, 2)+`"`, format)
		},
	},
	{
		name:    "declare module",
		pattern: mustCompile(`['“](declare module )['”](.*)['“];['”]`, regexp2.None),
		replace: func(m regexp2.Match, _ prettify.Formatter) string {
			return markup.Code(markup.Keyword, code(m, 1)+`"`+code(m, 2)+`";`)
		},
	},
	{
		name:    "missing properties",
		pattern: mustCompile(`(is missing the following properties from type\s?)'(.*)': ((?:#?\w+, )*(?:(?!and)\w+)?)`, regexp2.None),
		replace: func(m regexp2.Match, format prettify.Formatter) string {
			props := make([]string, 0)
			for _, prop := range strings.Split(code(m, 3), ", ") {
				if prop != "" {
					props = append(props, prop)
				}
			}
			return group(m, 1) + typeBlock("", code(m, 2), format) + ": " + markup.List(props)
		},
	},
	{
		name:    "type pairs",
		pattern: mustCompile(`(types) ['“](.*?)['”] and ['“](.*?)['”][.]?`, regexp2.IgnoreCase),
		replace: func(m regexp2.Match, format prettify.Formatter) string {
			return typeBlock(group(m, 1), code(m, 2), format) + " and " + typeBlock("", code(m, 3), format)
		},
	},
	{
		name:    "type annotation options",
		pattern: mustCompile(`(type annotation must be) ['“](.*?)['”] or ['“](.*?)['”][.]?`, regexp2.IgnoreCase),
		replace: func(m regexp2.Match, format prettify.Formatter) string {
			return typeBlock(group(m, 1), code(m, 2), format) + " or " + typeBlock("", code(m, 3), format)
		},
	},
	{
		name:    "overload",
		pattern: mustCompile(`(Overload \d+ of \d+), ['“](.*?)['”], `, regexp2.IgnoreCase),
		replace: func(m regexp2.Match, format prettify.Formatter) string {
			return group(m, 1) + ", " + typeBlock("", code(m, 2), format) + ", "
		},
	},
	{
		name:    "simple string",
		pattern: mustCompile(`^["“]("[^"]*")["”]$`, regexp2.None),
		replace: func(m regexp2.Match, _ prettify.Formatter) string {
			return markup.Code(markup.String, code(m, 1))
		},
	},
	{
		// module 'x' -> module "x", as printed for TS2307
		name:    "module quotes",
		pattern: mustCompile(`(module )'([^"]*?)'`, regexp2.IgnoreCase),
		replace: func(m regexp2.Match, _ prettify.Formatter) string {
			return group(m, 1) + `"` + group(m, 2) + `"`
		},
	},
	{
		name:    "string types",
		pattern: mustCompile(`(module|file|file name|imported via) ['"“](.*?)['"”](?=[\s(.|,]|$)`, regexp2.IgnoreCase),
		replace: func(m regexp2.Match, format prettify.Formatter) string {
			return typeBlock(group(m, 1), `"`+code(m, 2)+`"`, format)
		},
	},
	{
		name:    "types",
		pattern: mustCompile(`(type|type alias|interface|module|file|file name|class|method's|subtype of constraint) ['“](.*?)['”](?=[\s(.|,)]|$)`, regexp2.IgnoreCase),
		replace: func(m regexp2.Match, format prettify.Formatter) string {
			return typeBlock(group(m, 1), code(m, 2), format)
		},
	},
	{
		name:    "reversed types",
		pattern: mustCompile(`(.*)['“]([^>]*)['”] (type|interface|return type|file|module|is (not )?assignable)`, regexp2.IgnoreCase),
		replace: func(m regexp2.Match, format prettify.Formatter) string {
			return group(m, 1) + typeBlock("", code(m, 2), format) + " " + group(m, 3)
		},
	},
	{
		name:    "simple types",
		pattern: mustCompile(`['“]((void|null|undefined|any|boolean|string|number|bigint|symbol)(\[\])?)['”]`, regexp2.None),
		replace: func(m regexp2.Match, _ prettify.Formatter) string {
			return markup.InlineType(code(m, 1))
		},
	},
	{
		name:    "keywords",
		pattern: mustCompile(`['“](`+keywordLiterals+`)(?![A-Za-z0-9_$])( ?.*?)['”]`, regexp2.None),
		replace: func(m regexp2.Match, _ prettify.Formatter) string {
			return markup.Code(literalClass(code(m, 1)), code(m, 1)+code(m, 2))
		},
	},
	{
		name:    "return values",
		pattern: mustCompile(`(return|operator) ['“](.*?)['”]`, regexp2.IgnoreCase),
		replace: func(m regexp2.Match, _ prettify.Formatter) string {
			return group(m, 1) + " " + markup.Code(markup.Keyword, code(m, 2))
		},
	},
	{
		name:    "code blocks",
		pattern: mustCompile(`(?<![A-Za-z0-9_])'((?:(?!["]).)*?)'(?![A-Za-z0-9_])`, regexp2.None),
		replace: func(m regexp2.Match, _ prettify.Formatter) string {
			return " " + markup.Unstyled(code(m, 1)) + " "
		},
	},
}
