package link

import (
	"testing"

	"github.com/diagfmt/compiler/internal/diagnostic"
	"github.com/diagfmt/compiler/internal/loc"
	"github.com/diagfmt/compiler/internal/test_utils"
	"gotest.tools/v3/assert"
)

func related(msg string) diagnostic.RelatedInfo {
	return diagnostic.RelatedInfo{
		Message: msg,
		Location: loc.Location{
			URI: "file:///home/dev/app/src/user.ts",
			Range: loc.Range{
				Start: loc.Position{Line: 9, Character: 4},
				End:   loc.Position{Line: 9, Character: 8},
			},
		},
	}
}

const icon = ` <a href="/home/dev/app/src/user.ts#10,5"><span class="codicon codicon-go-to-file"></span></a>&nbsp;`

func TestEmbedSymbolLinks(t *testing.T) {
	tests := []struct {
		name    string
		message string
		related []diagnostic.RelatedInfo
		want    string
	}{
		{
			name:    "quoted symbol",
			message: `Property 'name' is missing in type '{}' but required in type 'User'.`,
			related: []diagnostic.RelatedInfo{related(`'name' is declared here.`)},
			want:    `Property 'name'` + icon + ` is missing in type '{}' but required in type 'User'.`,
		},
		{
			name:    "first occurrence only",
			message: `Type 'id' is not 'id'.`,
			related: []diagnostic.RelatedInfo{related(`'id' is declared here.`)},
			want:    `Type 'id'` + icon + ` is not 'id'.`,
		},
		{
			name:    "chinese marker with full-width quotes",
			message: `类型“{}”中缺少属性“name”，但类型“User”中需要该属性。`,
			related: []diagnostic.RelatedInfo{related(`在此处声明了 “name”。`)},
			want:    `类型“{}”中缺少属性“name”` + icon + `，但类型“User”中需要该属性。`,
		},
		{
			name:    "quote style differs",
			message: `Property “age” is missing.`,
			related: []diagnostic.RelatedInfo{related(`'age' is declared here.`)},
			want:    `Property “age”` + icon + ` is missing.`,
		},
		{
			name:    "bare symbol",
			message: `Cannot assign to count because it is a constant.`,
			related: []diagnostic.RelatedInfo{related(`count was declared here.`)},
			want:    `Cannot assign to count` + icon + ` because it is a constant.`,
		},
		{
			name:    "bare symbol skips partial words",
			message: `Property accountId of account is wrong.`,
			related: []diagnostic.RelatedInfo{related(`account is declared here.`)},
			want:    `Property accountId of account` + icon + ` is wrong.`,
		},
		{
			name:    "bare symbol skips object keys",
			message: `Type '{ type: string; age: number; }' is missing properties.`,
			related: []diagnostic.RelatedInfo{related(`age is declared here.`)},
			want:    `Type '{ type: string; age: number; }' is missing properties.`,
		},
		{
			name:    "quoted symbol skips object keys",
			message: `Object literal '{ type: string; age: number; }' is not assignable to type 'Person'.`,
			related: []diagnostic.RelatedInfo{{
				Message: `"type" 在此声明。`,
				Location: loc.Location{URI: "file:///tmp/a.ts"},
			}},
			want: `Object literal '{ type: string; age: number; }' is not assignable to type 'Person'.`,
		},
		{
			name:    "escaped message",
			message: `Type 'Box&lt;T&gt;' is not generic.`,
			related: []diagnostic.RelatedInfo{related(`'Box<T>' is declared here.`)},
			want:    `Type 'Box&lt;T&gt;'` + icon + ` is not generic.`,
		},
		{
			name:    "no marker",
			message: `Type 'x' is wrong.`,
			related: []diagnostic.RelatedInfo{related(`The expected type comes from here.`)},
			want:    `Type 'x' is wrong.`,
		},
		{
			name:    "no occurrence",
			message: `Type 'x' is wrong.`,
			related: []diagnostic.RelatedInfo{related(`'y' is declared here.`)},
			want:    `Type 'x' is wrong.`,
		},
		{
			name:    "later related info",
			message: `Type 'x' is wrong.`,
			related: []diagnostic.RelatedInfo{
				related(`Did you mean this?`),
				related(`'x' is declared here.`),
			},
			want: `Type 'x'` + icon + ` is wrong.`,
		},
		{
			name:    "no related info",
			message: `Type 'x' is wrong.`,
			want:    `Type 'x' is wrong.`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := diagnostic.Diagnostic{Message: tt.message, RelatedInformation: tt.related}
			got := EmbedSymbolLinks(d)
			if diff := test_utils.ANSIDiff(tt.want, got.Message); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEmbedSymbolLinksKeepsInput(t *testing.T) {
	d := diagnostic.Diagnostic{
		Message:            `Type 'x' is wrong.`,
		RelatedInformation: []diagnostic.RelatedInfo{related(`'x' is declared here.`)},
	}
	_ = EmbedSymbolLinks(d)
	assert.Equal(t, d.Message, `Type 'x' is wrong.`)
}

func TestHref(t *testing.T) {
	assert.Equal(t, Href(related("")), "/home/dev/app/src/user.ts#10,5")
}
