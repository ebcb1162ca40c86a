package printer

import (
	"fmt"
	"strings"

	"github.com/diagfmt/compiler/internal/config"
	"github.com/diagfmt/compiler/internal/diagnostic"
	"github.com/diagfmt/compiler/internal/link"
	"github.com/diagfmt/compiler/internal/markup"
	"github.com/diagfmt/compiler/internal/prettify"
	"github.com/diagfmt/compiler/internal/rewrite"
	"github.com/diagfmt/compiler/internal/translate"
	"github.com/lithammer/dedent"
)

// Result is one rendered diagnostic.
type Result struct {
	Code     string `json:"code,omitempty"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	HTML     string `json:"html"`
}

// NewResult renders d with opts, keeping the raw message alongside.
func NewResult(d diagnostic.Diagnostic, opts *config.Options) Result {
	return Result{
		Code:     d.Code.Key(),
		Severity: d.Severity.String(),
		Message:  d.Message,
		HTML:     FormatDiagnostic(d, opts),
	}
}

// FormatDiagnostic runs the whole pipeline: escaping, symbol links, sentence
// indentation, message rewriting, translation, then the title and layout.
// A nil opts means config.Default().
func FormatDiagnostic(d diagnostic.Diagnostic, opts *config.Options) string {
	if opts == nil {
		opts = config.Default()
	}
	d = d.WithMessage(markup.Escape(d.Message))
	if opts.SymbolLinks {
		d = link.EmbedSymbolLinks(d)
	}
	msg := d.Message
	if opts.Indent {
		msg = IndentSentences(msg)
	}
	var format prettify.Formatter
	if opts.Prettify {
		format = prettify.Format
	}
	msg = rewrite.MessageFor(opts.Locale, msg, format)
	if opts.Translate {
		msg = translate.Translate(msg, d.Code.Key())
	}
	return Render(Title(d), msg)
}

const indentIcon = `<span class="codicon codicon-indent"></span>`

// IndentSentences turns the leading whitespace of nested lines into
// non-breaking spaces followed by an indent icon. Each nested line starts a
// new <span> inside the one opened by Render.
func IndentSentences(msg string) string {
	lines := strings.Split(msg, "\n")
	for i, line := range lines {
		text := strings.TrimLeft(line, " \t")
		n := len(line) - len(text)
		if n == 0 || text == "" {
			lines[i] = text
			continue
		}
		lines[i] = "</span><span>" + strings.Repeat("&nbsp;", n-1) + indentIcon + text
	}
	return strings.Join(lines, "\n")
}

var layout = strings.TrimSpace(dedent.Dedent(`
	%s
	<span>
	%s
	</span>
`))

// Render wraps a formatted message under its title.
func Render(title, body string) string {
	return fmt.Sprintf(layout, title, body)
}

// Title is the heading line: the severity and, when known, the code with a
// link to its explanation.
func Title(d diagnostic.Diagnostic) string {
	var sb strings.Builder
	sb.WriteString(`<span class="severity-`)
	sb.WriteString(d.Severity.String())
	sb.WriteString(`">`)
	sb.WriteString(severityIcon(d.Severity))
	sb.WriteString(" ")
	sb.WriteString(severityLabel(d.Severity))
	sb.WriteString("</span>")
	if key := d.Code.Key(); key != "" {
		sb.WriteString(` <span class="code">(`)
		sb.WriteString(key)
		sb.WriteString(")")
		if url := explanationURL(d.Code); url != "" {
			sb.WriteString(` <a href="`)
			sb.WriteString(url)
			sb.WriteString(`"><span class="codicon codicon-link-external"></span></a>`)
		}
		sb.WriteString("</span>")
	}
	sb.WriteString("<br>")
	return sb.String()
}
