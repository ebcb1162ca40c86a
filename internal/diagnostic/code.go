package diagnostic

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-json-experiment/json"
)

type codeKind uint8

const (
	codeAbsent codeKind = iota
	codeNumber
	codeString
)

// Code is a diagnostic code as sent by a language server: a number, a
// string, or nothing at all.
type Code struct {
	kind   codeKind
	number int
	text   string
}

func NumberCode(n int) Code {
	return Code{kind: codeNumber, number: n}
}

func StringCode(s string) Code {
	return Code{kind: codeString, text: s}
}

func (c Code) IsAbsent() bool {
	return c.kind == codeAbsent
}

func (c Code) IsNumber() bool {
	return c.kind == codeNumber
}

// Key returns the translation table key: numbers get the "TS" prefix,
// strings are used verbatim and an absent code yields "".
func (c Code) Key() string {
	switch c.kind {
	case codeNumber:
		return "TS" + strconv.Itoa(c.number)
	case codeString:
		return c.text
	}
	return ""
}

func (c Code) String() string {
	switch c.kind {
	case codeNumber:
		return strconv.Itoa(c.number)
	case codeString:
		return c.text
	}
	return ""
}

func (c Code) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case codeNumber:
		return []byte(strconv.Itoa(c.number)), nil
	case codeString:
		return json.Marshal(c.text)
	}
	return []byte("null"), nil
}

func (c *Code) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*c = Code{}
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("diagnostic code: %w", err)
		}
		*c = StringCode(s)
	default:
		n, err := strconv.Atoi(string(data))
		if err != nil {
			return fmt.Errorf("diagnostic code %s: %w", data, err)
		}
		*c = NumberCode(n)
	}
	return nil
}
