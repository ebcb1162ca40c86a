package prettify

import (
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
)

// Formatter turns a type expression into its display form.
type Formatter func(typ string) string

// InlineWidth is the longest type kept on a single line.
const InlineWidth = 72

const truncationMarker = "..."

// Type prepares a type reported by the compiler for format. Truncated types
// are closed first. A panicking formatter leaves the type as it was.
func Type(typ string, format Formatter) (out string) {
	if format == nil {
		return typ
	}
	defer func() {
		if r := recover(); r != nil {
			out = typ
		}
	}()
	valid := typ
	if strings.HasSuffix(valid, truncationMarker) && !strings.Contains(valid, "\n") {
		valid = AddMissingParentheses(strings.TrimSuffix(valid, truncationMarker))
	}
	return format(valid)
}

type token struct {
	data  string
	space bool
}

// Format collapses whitespace in a type expression and, when the result is
// wider than InlineWidth, puts each object member on its own line.
func Format(typ string) string {
	tokens, ok := lex(typ)
	if !ok || len(tokens) == 0 {
		return typ
	}
	compact := joinTokens(tokens)
	if len(compact) <= InlineWidth {
		return compact
	}
	return breakMembers(tokens)
}

func lex(src string) ([]token, bool) {
	l := js.NewLexer(parse.NewInputString(src))
	tokens := make([]token, 0)
	space := false
	for {
		tt, data := l.Next()
		if tt == js.ErrorToken {
			if l.Err() != io.EOF {
				return nil, false
			}
			return tokens, true
		}
		if tt == js.WhitespaceToken || tt == js.LineTerminatorToken {
			space = true
			continue
		}
		tokens = append(tokens, token{data: string(data), space: space && len(tokens) > 0})
		space = false
	}
}

func joinTokens(tokens []token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		if tok.space {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok.data)
	}
	return sb.String()
}

func breakMembers(tokens []token) string {
	var (
		sb      strings.Builder
		stack   = make([]byte, 0)
		indent  = 0
		pending = false
	)
	write := func(tok token) {
		if pending {
			sb.WriteByte('\n')
			sb.WriteString(strings.Repeat("  ", indent))
			pending = false
		} else if tok.space {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok.data)
	}
	top := func() byte {
		if len(stack) == 0 {
			return 0
		}
		return stack[len(stack)-1]
	}
	pop := func(open byte) {
		if top() == open {
			stack = stack[:len(stack)-1]
		}
	}

	for i, tok := range tokens {
		switch {
		case tok.data == "{":
			write(tok)
			stack = append(stack, '{')
			indent++
			if i+1 < len(tokens) && tokens[i+1].data != "}" {
				pending = true
			}
		case tok.data == "}":
			if top() == '{' {
				indent--
				// an empty object stays on one line
				pending = i > 0 && tokens[i-1].data != "{"
			}
			pop('{')
			write(tok)
		case tok.data == "(" || tok.data == "[" || tok.data == "<":
			write(tok)
			stack = append(stack, tok.data[0])
		case tok.data == ")":
			write(tok)
			pop('(')
		case tok.data == "]":
			write(tok)
			pop('[')
		case strings.Trim(tok.data, ">") == "":
			write(tok)
			for range tok.data {
				pop('<')
			}
		case tok.data == ";" || tok.data == ",":
			write(tok)
			if top() == '{' && i+1 < len(tokens) && tokens[i+1].data != "}" {
				pending = true
			}
		default:
			write(tok)
		}
	}
	return sb.String()
}
