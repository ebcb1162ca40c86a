package printer

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// PrintToJSON encodes rendered diagnostics as an indented JSON array.
func PrintToJSON(results []Result) (PrintResult, error) {
	if results == nil {
		results = []Result{}
	}
	out, err := json.Marshal(results, jsontext.WithIndent("  "))
	if err != nil {
		return PrintResult{}, fmt.Errorf("encoding results: %w", err)
	}
	p := &printer{}
	p.println(string(out))
	return PrintResult{Output: p.output}, nil
}
