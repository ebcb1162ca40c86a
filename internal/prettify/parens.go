package prettify

import "strings"

const (
	openParentheses    = "({["
	closingParentheses = ")}]"
)

// AddMissingParentheses closes every bracket left open in a truncated type,
// after a "..." marker on its own line.
func AddMissingParentheses(typ string) string {
	stack := make([]byte, 0)
	for i := 0; i < len(typ); i++ {
		c := typ[i]
		if strings.IndexByte(openParentheses, c) >= 0 {
			stack = append(stack, c)
		} else if strings.IndexByte(closingParentheses, c) >= 0 && len(stack) > 0 {
			stack = stack[:len(stack)-1]
		}
	}

	var missing strings.Builder
	for i := len(stack) - 1; i >= 0; i-- {
		missing.WriteByte(closingParentheses[strings.IndexByte(openParentheses, stack[i])])
	}
	return typ + "\n..." + missing.String()
}
