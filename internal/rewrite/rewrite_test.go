package rewrite

import (
	"strings"
	"testing"

	"github.com/diagfmt/compiler/internal/markup"
	"github.com/diagfmt/compiler/internal/prettify"
	"github.com/diagfmt/compiler/internal/test_utils"
	"gotest.tools/v3/assert"
)

type testcase struct {
	name string
	msg  string
	want string
}

func runCases(t *testing.T, locale Locale, tests []testcase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MessageFor(locale, markup.Escape(tt.msg), prettify.Format)
			if diff := test_utils.ANSIDiff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEnglish(t *testing.T) {
	tests := []testcase{
		{
			name: "special characters in object keys",
			msg:  `Type 'string' is not assignable to type '{ "abc*bc": string }'.`,
			want: `Type <code alt="type">string</code> is not assignable to type <code alt="type">{ "abc*bc": string }</code>.`,
		},
		{
			name: "dash in object keys",
			msg:  `Type '{ person: { "first-name": string; }; }' is not assignable to type 'string'.`,
			want: `Type <code alt="type">{ person: { "first-name": string; }; }</code> is not assignable to type <code alt="type">string</code>.`,
		},
		{
			name: "no quotes",
			msg:  "Expression expected.",
			want: "Expression expected.",
		},
		{
			name: "nested quotes",
			msg:  `Module '"./config.tsx"' has no exported member 'Config'.`,
			want: `Module <code alt="type">"./config.tsx"</code> has no exported member  <code>Config</code> .`,
		},
		{
			name: "missing properties",
			msg:  `Type '{ name: string; }' is missing the following properties from type 'Person': age, email`,
			want: `Type <code alt="type">{ name: string; }</code> is missing the following properties from type <code alt="type">Person</code>: <ul><li>age</li><li>email</li></ul>`,
		},
		{
			name: "reversed type",
			msg:  `Parameter 'x' implicitly has an 'any' type.`,
			want: `Parameter  <code>x</code>  implicitly has an <code alt="type">any</code> type.`,
		},
		{
			name: "keyword",
			msg:  `'await' expressions are only allowed within async functions.`,
			want: `<code alt="keyword">await</code> expressions are only allowed within async functions.`,
		},
		{
			name: "keyword prefix is not a keyword",
			msg:  `'letter' is declared but its value is never read.`,
			want: ` <code>letter</code>  is declared but its value is never read.`,
		},
		{
			name: "type-only import",
			msg:  `'TreeSelectProps' is a type and must be imported using a type-only import when 'verbatimModuleSyntax' is enabled.`,
			want: ` <code>TreeSelectProps</code>  is a type and must be imported using a type-only import when  <code>verbatimModuleSyntax</code>  is enabled.`,
		},
		{
			name: "module quotes",
			msg:  `Cannot find module 'events' or its corresponding type declarations.`,
			want: `Cannot find module <code alt="type">"events"</code> or its corresponding type declarations.`,
		},
		{
			name: "type pairs",
			msg:  `This comparison appears to be unintentional because the types 'string' and 'number' have no overlap.`,
			want: `This comparison appears to be unintentional because the types <code alt="type">string</code> and <code alt="type">number</code> have no overlap.`,
		},
		{
			name: "markup inside a string literal type",
			msg:  `Type '"<img src=x onerror=alert(1)>"' is not assignable to type 'number'.`,
			want: `Type <code alt="type">"&lt;img src=x onerror=alert(1)&gt;"</code> is not assignable to type <code alt="type">number</code>.`,
		},
		{
			name: "type argument named like a tag",
			msg:  `Type 'Foo<a>' is not assignable to type 'Bar'.`,
			want: `Type <code alt="type">Foo&lt;a&gt;</code> is not assignable to type <code alt="type">Bar</code>.`,
		},
		{
			name: "intersection",
			msg:  `Type 'A & B' is not assignable to type 'C'.`,
			want: `Type <code alt="type">A &amp; B</code> is not assignable to type <code alt="type">C</code>.`,
		},
		{
			name: "angle brackets in code",
			msg:  `Type 'Promise<string>' is not assignable to type 'string'.`,
			want: `Type <code alt="type">Promise&lt;string&gt;</code> is not assignable to type <code alt="type">string</code>.`,
		},
	}
	runCases(t, English, tests)
}

func TestChinese(t *testing.T) {
	tests := []testcase{
		{
			name: "cannot find module",
			msg:  `找不到模块“events”或其相应的类型声明。`,
			want: `找不到模块 <code alt="type">events</code> 或其相应的类型声明。`,
		},
		{
			name: "type not assignable",
			msg:  `不能将类型“string”分配给类型“number”。`,
			want: `不能将类型 <code alt="type">string</code> 分配给类型 <code alt="type">number</code>。`,
		},
		{
			name: "nested quotes",
			msg:  `模块“"./config.tsx"”没有导出的成员“Config”。`,
			want: `模块 <code alt="string">"./config.tsx"</code> 没有导出的成员 <code alt="type">Config</code>。`,
		},
		{
			name: "file name is a string",
			msg:  `无法编译“create.tsx”。`,
			want: `无法编译 <code alt="string">"create.tsx"</code>。`,
		},
		{
			name: "number literal",
			msg:  `应有“2”个参数。`,
			want: `应有 <code alt="number">2</code> 个参数。`,
		},
		{
			name: "punctuation",
			msg:  `应为“,”。`,
			want: `应为 <code alt="keyword">,</code>。`,
		},
		{
			name: "corner quotes",
			msg:  `类型「{ a: string }」上不存在属性「b」。`,
			want: `类型 <code alt="type">{ a: string }</code> 上不存在属性 <code alt="type">b</code>。`,
		},
		{
			name: "missing properties",
			msg:  `类型缺少以下属性: age，email、name`,
			want: `类型缺少以下属性： <ul><li>age</li><li>email</li><li>name</li></ul>`,
		},
		{
			name: "write property",
			msg:  `对象字面量只能指定已知属性。是否要写入 firstName?`,
			want: `对象字面量只能指定已知属性。是否要写入 <code alt="property">firstName</code>?`,
		},
		{
			name: "word order",
			msg:  `属性“b”在类型“A”中不存在类型。`,
			want: `属性 <code alt="type">b</code> 在类型 <code alt="type">A</code> 不存在于类型。`,
		},
		{
			name: "ascii double quotes",
			msg:  `必须在启用 "verbatimModuleSyntax" 时导入。`,
			want: `必须在启用 <code alt="type">verbatimModuleSyntax</code> 时导入。`,
		},
		{
			name: "ascii single quotes",
			msg:  `变量 'foo' 已声明。`,
			want: `变量 <code>foo</code> 已声明。`,
		},
	}
	runCases(t, Chinese, tests)
}

func TestDetect(t *testing.T) {
	assert.Equal(t, Detect("Cannot find name 'x'."), English)
	assert.Equal(t, Detect("找不到名称“x”。"), Chinese)
	assert.Equal(t, Detect(""), English)
}

func TestAutoLocale(t *testing.T) {
	msg := `不能将类型“string”分配给类型“number”。`
	assert.Equal(t, Message(msg, prettify.Format), MessageFor(Chinese, msg, prettify.Format))
}

func TestParseLocale(t *testing.T) {
	for in, want := range map[string]Locale{"": Auto, "auto": Auto, "en": English, "zh": Chinese} {
		got, err := ParseLocale(in)
		assert.NilError(t, err)
		assert.Equal(t, got, want)
	}
	_, err := ParseLocale("fr")
	assert.ErrorContains(t, err, `unknown locale "fr"`)
}

func TestExistingMarkupIsNotRewritten(t *testing.T) {
	msg := `Type <code alt="type">'a'</code> is not assignable to type 'string'.`
	got := MessageFor(English, msg, prettify.Format)
	assert.Assert(t, strings.HasPrefix(got, `Type <code alt="type">'a'</code>`), got)
}

func TestPanickingFormatter(t *testing.T) {
	boom := func(string) string { panic("boom") }
	got := MessageFor(English, `Type '{ a: 1 }' is not assignable to type 'B'.`, boom)
	assert.Equal(t, got, `Type <code alt="type">{ a: 1 }</code> is not assignable to type <code alt="type">B</code>.`)
}
