package segment

import (
	"strconv"
	"strings"

	"github.com/diagfmt/compiler/internal/loc"
	"golang.org/x/net/html/atom"
)

// A TokenType is the type of a Token.
type TokenType uint32

const (
	// ErrorToken means the end of the input was reached.
	ErrorToken TokenType = iota
	// TextToken means a text node.
	TextToken
	// A StartTagToken looks like <code>.
	StartTagToken
	// An EndTagToken looks like </code>.
	EndTagToken
	// A SelfClosingTagToken tag looks like <br/>.
	SelfClosingTagToken
)

func (t TokenType) String() string {
	switch t {
	case ErrorToken:
		return "Error"
	case TextToken:
		return "Text"
	case StartTagToken:
		return "StartTag"
	case EndTagToken:
		return "EndTag"
	case SelfClosingTagToken:
		return "SelfClosingTag"
	}
	return "Invalid(" + strconv.Itoa(int(t)) + ")"
}

// emittedTags are the only elements the formatter ever writes. Anything else
// that looks like a tag (Promise<T>, Array<string>) is text.
var emittedTags = map[atom.Atom]bool{
	atom.A:          true,
	atom.B:          true,
	atom.Blockquote: true,
	atom.Br:         true,
	atom.Code:       true,
	atom.Div:        true,
	atom.Em:         true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
	atom.Hr:         true,
	atom.I:          true,
	atom.Img:        true,
	atom.Li:         true,
	atom.Ol:         true,
	atom.P:          true,
	atom.Pre:        true,
	atom.Small:      true,
	atom.Span:       true,
	atom.Strong:     true,
	atom.Sub:        true,
	atom.Sup:        true,
	atom.Table:      true,
	atom.Tbody:      true,
	atom.Td:         true,
	atom.Th:         true,
	atom.Thead:      true,
	atom.Tr:         true,
	atom.U:          true,
	atom.Ul:         true,
}

// A Token is one tag or one run of text. Data holds the raw bytes of the
// token exactly as they appeared in the input.
type Token struct {
	Type     TokenType
	DataAtom atom.Atom
	Data     string
	Loc      loc.Span
}

// A Tokenizer returns a stream of tag and text Tokens for a formatter-emitted
// HTML fragment. It is not a general HTML tokenizer.
type Tokenizer struct {
	buf string
	// tt is the TokenType of the current token.
	tt TokenType
	// buf[raw.Start:raw.End] holds the raw bytes of the current token.
	raw loc.Span
	// dataAtom is the tag of the current tag token.
	dataAtom atom.Atom
}

func NewTokenizer(s string) *Tokenizer {
	return &Tokenizer{buf: s}
}

// Next scans the next token and returns its type.
func (z *Tokenizer) Next() TokenType {
	z.raw.Start = z.raw.End
	z.dataAtom = 0
	if z.raw.Start >= len(z.buf) {
		z.tt = ErrorToken
		return z.tt
	}

	if tt, end, a := z.readTag(z.raw.Start); tt != ErrorToken {
		z.raw.End = end
		z.dataAtom = a
		z.tt = tt
		return z.tt
	}

	// Accumulate text up to the next '<' that opens a known tag.
	i := z.raw.Start + 1
	for i < len(z.buf) {
		j := strings.IndexByte(z.buf[i:], '<')
		if j < 0 {
			i = len(z.buf)
			break
		}
		i += j
		if tt, _, _ := z.readTag(i); tt != ErrorToken {
			break
		}
		i++
	}
	z.raw.End = i
	z.tt = TextToken
	return z.tt
}

// readTag reports whether buf[start:] begins with a whitelisted tag, and
// where that tag ends. Quoted attribute values may contain '>'.
func (z *Tokenizer) readTag(start int) (TokenType, int, atom.Atom) {
	s := z.buf
	if start >= len(s) || s[start] != '<' {
		return ErrorToken, 0, 0
	}
	i := start + 1
	tt := StartTagToken
	if i < len(s) && s[i] == '/' {
		tt = EndTagToken
		i++
	}
	nameStart := i
	for i < len(s) && isTagNameByte(s[i]) {
		i++
	}
	if i == nameStart {
		return ErrorToken, 0, 0
	}
	a := atom.Lookup([]byte(s[nameStart:i]))
	if !emittedTags[a] {
		return ErrorToken, 0, 0
	}
	if i < len(s) && s[i] != '>' && s[i] != '/' && !isSpace(s[i]) {
		return ErrorToken, 0, 0
	}

	var quote byte
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '>':
			if tt == StartTagToken && i > start && s[i-1] == '/' {
				tt = SelfClosingTagToken
			}
			return tt, i + 1, a
		}
	}
	return ErrorToken, 0, 0
}

// Raw returns the unmodified text of the current token.
func (z *Tokenizer) Raw() string {
	return z.buf[z.raw.Start:z.raw.End]
}

// Token returns the current Token.
func (z *Tokenizer) Token() Token {
	return Token{
		Type:     z.tt,
		DataAtom: z.dataAtom,
		Data:     z.Raw(),
		Loc:      z.raw,
	}
}

// Tag names are matched in lower case only: <P> in Promise<P> is a type
// parameter, never a paragraph.
func isTagNameByte(c byte) bool {
	return ('a' <= c && c <= 'z') || ('0' <= c && c <= '9')
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\t' || c == '\r' || c == '\f'
}
