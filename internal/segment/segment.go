package segment

import (
	"strings"

	"github.com/dlclark/regexp2"
	"golang.org/x/net/html/atom"
)

// A Segment is either one whitelisted tag or a run of text. Text inside a
// <code> or <pre> element is Protected: it was produced by an earlier pass.
type Segment struct {
	Tag       bool
	Protected bool
	Data      string
}

// Split tokenizes html into alternating tag and text segments. Joining the
// Data of every segment reproduces html exactly.
func Split(html string) []Segment {
	segments := make([]Segment, 0)
	z := NewTokenizer(html)
	depth := 0
	for {
		tt := z.Next()
		if tt == ErrorToken {
			break
		}
		tok := z.Token()
		switch tt {
		case TextToken:
			segments = append(segments, Segment{Data: tok.Data, Protected: depth > 0})
		case StartTagToken:
			if isVerbatim(tok.DataAtom) {
				depth++
			}
			segments = append(segments, Segment{Tag: true, Data: tok.Data})
		case EndTagToken:
			if isVerbatim(tok.DataAtom) && depth > 0 {
				depth--
			}
			segments = append(segments, Segment{Tag: true, Data: tok.Data})
		default:
			segments = append(segments, Segment{Tag: true, Data: tok.Data})
		}
	}
	return segments
}

func Join(segments []Segment) string {
	var sb strings.Builder
	for _, s := range segments {
		sb.WriteString(s.Data)
	}
	return sb.String()
}

func isVerbatim(a atom.Atom) bool {
	return a == atom.Code || a == atom.Pre
}

// MapText applies fn to every unprotected text segment of html.
func MapText(html string, fn func(text string) string) string {
	segments := Split(html)
	for i, s := range segments {
		if s.Tag || s.Protected {
			continue
		}
		segments[i].Data = fn(s.Data)
	}
	return Join(segments)
}

// ReplaceText replaces every match of re in the unprotected text of html
// with the result of evaluator. Tags and code contents pass through.
func ReplaceText(html string, re *regexp2.Regexp, evaluator regexp2.MatchEvaluator) string {
	return MapText(html, func(text string) string {
		out, err := re.ReplaceFunc(text, evaluator, -1, -1)
		if err != nil {
			return text
		}
		return out
	})
}

// Entities such as &nbsp; are already in the text, so '&' is left alone.
var textEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// EscapeText escapes angle brackets in unprotected text, leaving the
// formatter's own tags intact.
func EscapeText(html string) string {
	return MapText(html, func(text string) string {
		return textEscaper.Replace(text)
	})
}

// Placeholders come from supplementary private use plane 15.
const (
	maskBase = 0xF0000
	maskLast = 0xFFFFD
)

func isMaskRune(r rune) bool {
	return r >= maskBase && r <= maskLast
}

// Masked is html with the text of every protected segment replaced by a
// single placeholder rune, so whole-message patterns can run over the
// markup and plain text without reaching into code spans.
type Masked struct {
	HTML  string
	saved []string
}

// Mask hides protected text in html. Runes already in the placeholder range
// are hidden too, so Unmask always restores the input.
func Mask(html string) *Masked {
	m := &Masked{}
	hide := func(s string) string {
		if maskBase+len(m.saved) > maskLast {
			return s
		}
		r := rune(maskBase + len(m.saved))
		m.saved = append(m.saved, s)
		return string(r)
	}
	var sb strings.Builder
	for _, s := range Split(html) {
		switch {
		case s.Tag:
			sb.WriteString(s.Data)
		case s.Protected && s.Data != "":
			sb.WriteString(hide(s.Data))
		default:
			for _, r := range s.Data {
				if isMaskRune(r) {
					sb.WriteString(hide(string(r)))
					continue
				}
				sb.WriteRune(r)
			}
		}
	}
	m.HTML = sb.String()
	return m
}

// Unmask puts the hidden text back into s, a rewrite of m.HTML.
func (m *Masked) Unmask(s string) string {
	if len(m.saved) == 0 {
		return s
	}
	var sb strings.Builder
	for _, r := range s {
		if i := int(r) - maskBase; isMaskRune(r) && i < len(m.saved) {
			sb.WriteString(m.saved[i])
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
