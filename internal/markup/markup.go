// Package markup renders the HTML snippets the formatter emits. Every tag
// written here must be in the segmenter's whitelist.
package markup

import (
	"html"
	"strings"
)

// TokenClass is written to the alt attribute of a <code> element so the
// host can colour it.
type TokenClass string

const (
	Plain     TokenClass = ""
	Type      TokenClass = "type"
	Variable  TokenClass = "variable"
	Property  TokenClass = "property"
	Class     TokenClass = "class"
	Keyword   TokenClass = "keyword"
	String    TokenClass = "string"
	Number    TokenClass = "number"
	Function  TokenClass = "function"
	Parameter TokenClass = "parameter"
)

// Quotes stay literal so "./config.tsx" reads as written.
var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Escape makes plain text safe to place between tags. Diagnostic messages
// go through it before any pass, so only the formatter's own tags remain.
func Escape(text string) string {
	return escaper.Replace(text)
}

// Unescape turns text taken from an escaped message back into plain text.
func Unescape(text string) string {
	return html.UnescapeString(text)
}

// Code renders an inline code span of the given class.
func Code(class TokenClass, code string) string {
	return RawCode(class, Escape(code))
}

// RawCode is Code for content that is already HTML.
func RawCode(class TokenClass, html string) string {
	if class == Plain {
		return "<code>" + html + "</code>"
	}
	return `<code alt="` + string(class) + `">` + html + "</code>"
}

func InlineType(code string) string {
	return Code(Type, code)
}

// Unstyled renders a code span without a token class.
func Unstyled(code string) string {
	return Code(Plain, code)
}

// MultilineType renders a type that spans several lines.
func MultilineType(code string) string {
	return `<pre><code alt="type">` + Escape(code) + "</code></pre>"
}

// List renders items as an unordered list. Items are text, not markup.
func List(items []string) string {
	var sb strings.Builder
	sb.WriteString("<ul>")
	for _, item := range items {
		sb.WriteString("<li>")
		sb.WriteString(Escape(item))
		sb.WriteString("</li>")
	}
	sb.WriteString("</ul>")
	return sb.String()
}

const LinkIconClass = "codicon codicon-go-to-file"

// LinkIcon renders the go-to-file anchor placed after a linked symbol.
func LinkIcon(href string) string {
	return `<a href="` + html.EscapeString(href) + `"><span class="` + LinkIconClass + `"></span></a>&nbsp;`
}
