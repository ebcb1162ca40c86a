// Package rewrite turns a diagnostic message into HTML by running an ordered
// list of pattern rewrites over the text between previously emitted tags.
package rewrite

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/diagfmt/compiler/internal/markup"
	"github.com/diagfmt/compiler/internal/prettify"
	"github.com/diagfmt/compiler/internal/segment"
	"github.com/dlclark/regexp2"
)

type Locale string

const (
	Auto    Locale = "auto"
	English Locale = "en"
	Chinese Locale = "zh"
)

func ParseLocale(s string) (Locale, error) {
	switch Locale(s) {
	case "", Auto:
		return Auto, nil
	case English, Chinese:
		return Locale(s), nil
	}
	return Auto, fmt.Errorf("unknown locale %q (want auto, en or zh)", s)
}

// HasCJK reports whether s contains a Han ideograph.
func HasCJK(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}

// Detect picks the pipeline for msg.
func Detect(msg string) Locale {
	if HasCJK(msg) {
		return Chinese
	}
	return English
}

// Message formats msg with the pipeline matching its language.
func Message(msg string, format prettify.Formatter) string {
	return MessageFor(Auto, msg, format)
}

// MessageFor formats msg with the pipeline for locale; Auto detects it.
// msg is HTML: plain text must already be escaped with markup.Escape.
// Unrecognized shapes pass through unchanged.
func MessageFor(locale Locale, msg string, format prettify.Formatter) string {
	if locale == Auto || locale == "" {
		locale = Detect(msg)
	}
	rules := englishRules
	if locale == Chinese {
		rules = chineseRules
	}
	for _, r := range rules {
		msg = r.apply(msg, format)
	}
	if locale == Chinese {
		// quoted spans are padded on both sides
		msg = strings.TrimSpace(msg)
	}
	return msg
}

// A rule rewrites every match of pattern in unprotected text.
type rule struct {
	name    string
	pattern *regexp2.Regexp
	replace func(m regexp2.Match, format prettify.Formatter) string
}

func (r rule) apply(msg string, format prettify.Formatter) string {
	return segment.ReplaceText(msg, r.pattern, func(m regexp2.Match) string {
		return r.replace(m, format)
	})
}

func mustCompile(pattern string, opts regexp2.RegexOptions) *regexp2.Regexp {
	return regexp2.MustCompile(pattern, opts)
}

// group returns capture n as it appears in the message, still escaped.
func group(m regexp2.Match, n int) string {
	g := m.GroupByNumber(n)
	if g == nil {
		return ""
	}
	return g.String()
}

// code returns capture n as plain text, ready to be rendered as code.
func code(m regexp2.Match, n int) string {
	return markup.Unescape(group(m, n))
}
