package loc

// Position is a 0-based line/character pair, as reported by language servers.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// OneBased returns the position the way editors display it.
func (p Position) OneBased() (line int, column int) {
	return p.Line + 1, p.Character + 1
}

type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

type Location struct {
	URI   string `json:"uri"`
	Range Range  `json:"range"`
}

// span is a range of bytes in a Tokenizer's buffer. The start is inclusive,
// the end is exclusive.
type Span struct {
	Start, End int
}

type Message struct {
	Location *MessageLocation `js:"location"`
	Text     string           `js:"text"`
	Severity int              `js:"severity"`
}

type MessageLocation struct {
	File   string `js:"file"`
	Index  int    `js:"index"`
	Line   int    `js:"line"`
	Column int    `js:"column"`
}
