package rewrite

import (
	"strings"

	"github.com/diagfmt/compiler/internal/markup"
	"github.com/diagfmt/compiler/internal/prettify"
	"github.com/dlclark/regexp2"
	"golang.org/x/text/width"
)

// Localized messages keep English code fragments in ASCII or full-width
// quotes, so these rules key on quote shapes rather than on wording.
var chineseRules = []rule{
	{
		name:    "nested quotes",
		pattern: mustCompile(`[“‘']"([^"\n]*)"[”’']`, regexp2.None),
		replace: func(m regexp2.Match, _ prettify.Formatter) string {
			return " " + markup.Code(markup.String, `"`+code(m, 1)+`"`) + " "
		},
	},
	{
		name:    "keywords",
		pattern: mustCompile(`['“](`+keywordLiterals+`)(?![A-Za-z0-9_$])( ?[^'”]*?)['”]`, regexp2.None),
		replace: func(m regexp2.Match, _ prettify.Formatter) string {
			return " " + markup.Code(literalClass(code(m, 1)), code(m, 1)+code(m, 2)) + " "
		},
	},
	{
		name:    "full-width quotes",
		pattern: mustCompile(`“([^”]+)”`, regexp2.None),
		replace: func(m regexp2.Match, format prettify.Formatter) string {
			return " " + quotedBlock(code(m, 1), format) + " "
		},
	},
	{
		name:    "corner quotes",
		pattern: mustCompile(`[「『]([^」』]+)[」』]`, regexp2.None),
		replace: func(m regexp2.Match, format prettify.Formatter) string {
			return " " + quotedBlock(code(m, 1), format) + " "
		},
	},
	{
		name:    "missing properties",
		pattern: mustCompile(`(以下属性)\s*[:：]\s*([#A-Za-z0-9_$]+(?:\s*[,，、]\s*[#A-Za-z0-9_$]+)*)`, regexp2.None),
		replace: func(m regexp2.Match, _ prettify.Formatter) string {
			return group(m, 1) + "： " + markup.List(splitProperties(code(m, 2)))
		},
	},
	{
		name:    "write property",
		pattern: mustCompile(`(是否要写入)\s*([^\s?？。，<"'“”]+)\s*(?=[?？]|$)`, regexp2.None),
		replace: func(m regexp2.Match, _ prettify.Formatter) string {
			return group(m, 1) + " " + markup.Code(markup.Property, code(m, 2))
		},
	},
	{
		name:    "word order",
		pattern: mustCompile(`中不存在类型`, regexp2.None),
		replace: func(regexp2.Match, prettify.Formatter) string {
			return "不存在于类型"
		},
	},
	{
		name:    "double quotes",
		pattern: mustCompile(`"([^"\n]+)"`, regexp2.None),
		replace: func(m regexp2.Match, format prettify.Formatter) string {
			return " " + typeBlock("", code(m, 1), format) + " "
		},
	},
	{
		name:    "single quotes",
		pattern: mustCompile(`'([^'\n]+)'`, regexp2.None),
		replace: func(m regexp2.Match, _ prettify.Formatter) string {
			return " " + markup.Unstyled(code(m, 1)) + " "
		},
	},
	{
		name:    "double spaces",
		pattern: mustCompile(` {2,}`, regexp2.None),
		replace: func(regexp2.Match, prettify.Formatter) string {
			return " "
		},
	},
	{
		name:    "space before punctuation",
		pattern: mustCompile(` +(?=[，。：；！？、）])`, regexp2.None),
		replace: func(regexp2.Match, prettify.Formatter) string {
			return ""
		},
	},
	{
		name:    "space after punctuation",
		pattern: mustCompile(`(?<=[，。；！？、（]) +`, regexp2.None),
		replace: func(regexp2.Match, prettify.Formatter) string {
			return ""
		},
	},
}

// splitProperties splits a property list on ASCII or full-width commas and
// the ideographic enumeration comma (narrowed to U+FF64).
func splitProperties(list string) []string {
	list = width.Narrow.String(list)
	props := make([]string, 0)
	for _, p := range strings.FieldsFunc(list, func(r rune) bool { return r == ',' || r == '、' || r == '､' }) {
		if p = strings.TrimSpace(p); p != "" {
			props = append(props, p)
		}
	}
	return props
}
