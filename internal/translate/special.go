package translate

import (
	"github.com/diagfmt/compiler/internal/markup"
	"github.com/dlclark/regexp2"
)

// Messages whose word order differs too much from Chinese are rebuilt from
// their code spans. A handler that does not match falls back to the table.
var specialHandlers = map[string]func(html string) (string, bool){
	"TS1484": typeOnlyImport,
	"TS4023": exportedVariableName,
}

var typeOnlyImportRe = regexp2.MustCompile(
	`<code[^>]*>(.+?)</code>\s*is a type and must be imported using a type-only import when\s*<code[^>]*>verbatimModuleSyntax</code>\s*is enabled`,
	regexp2.None,
)

// 'X' is a type and must be imported using a type-only import when
// 'verbatimModuleSyntax' is enabled.
func typeOnlyImport(html string) (string, bool) {
	m, _ := typeOnlyImportRe.FindStringMatch(html)
	if m == nil {
		return html, false
	}
	name := m.GroupByNumber(1).String()
	return markup.RawCode(markup.Class, name) + " 是一种类型，在启用 " +
		markup.Code(markup.Property, "verbatimModuleSyntax") + " 时必须使用 " +
		markup.RawCode(markup.Variable, "type "+name) + " 进行导入。", true
}

var exportedVariableNameRe = regexp2.MustCompile(
	`Exported variable\s*<code[^>]*>(.+?)</code>\s*has or is using name\s*<code[^>]*>(.+?)</code>\s*from external module\s*(.*?)\s*but cannot be named`,
	regexp2.Singleline,
)

// Exported variable 'x' has or is using name 'T' from external module "m"
// but cannot be named.
func exportedVariableName(html string) (string, bool) {
	m, _ := exportedVariableNameRe.FindStringMatch(html)
	if m == nil {
		return html, false
	}
	variable := m.GroupByNumber(1).String()
	typ := markup.RawCode(markup.Class, m.GroupByNumber(2).String())
	module := m.GroupByNumber(3).String()
	return "导出的变量 " + markup.RawCode(markup.Variable, variable) +
		" 具有或正在使用外部模块 " + module + " 中的名称 " + typ +
		"，你需要导出 " + module + " 中的 " + typ + "。", true
}
