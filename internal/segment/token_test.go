package segment

import (
	"reflect"
	"testing"
)

func TestTokenizer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []TokenType
	}{
		{
			"text",
			`Cannot find name`,
			[]TokenType{TextToken},
		},
		{
			"start tag",
			`<code alt="type">`,
			[]TokenType{StartTagToken},
		},
		{
			"end tag",
			`</code>`,
			[]TokenType{EndTagToken},
		},
		{
			"self-closing tag",
			`<br/>`,
			[]TokenType{SelfClosingTagToken},
		},
		{
			"generic is text",
			`Promise<T>`,
			[]TokenType{TextToken},
		},
		{
			"upper case is text",
			`Component<P>`,
			[]TokenType{TextToken},
		},
		{
			"unknown tag is text",
			`<foo>bar</foo>`,
			[]TokenType{TextToken},
		},
		{
			"attribute with angle bracket",
			`<span title="a > b">x</span>`,
			[]TokenType{StartTagToken, TextToken, EndTagToken},
		},
		{
			"mixed",
			`Type <code alt="type">string</code> is not assignable to <b>x</b>.`,
			[]TokenType{TextToken, StartTagToken, TextToken, EndTagToken, TextToken, StartTagToken, TextToken, EndTagToken, TextToken},
		},
		{
			"unterminated tag is text",
			`a <code alt="type" b`,
			[]TokenType{TextToken},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := make([]TokenType, 0)
			z := NewTokenizer(tt.input)
			for {
				next := z.Next()
				if next == ErrorToken {
					break
				}
				tokens = append(tokens, next)
			}
			if !reflect.DeepEqual(tokens, tt.want) {
				t.Errorf("NewTokenizer() = %v, want %v", tokens, tt.want)
			}
		})
	}
}
