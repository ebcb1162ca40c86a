package diagnostic

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/diagfmt/compiler/internal/handler"
	"github.com/diagfmt/compiler/internal/loc"
)

// publishParams is the payload of textDocument/publishDiagnostics.
type publishParams struct {
	URI         string           `json:"uri"`
	Diagnostics []jsontext.Value `json:"diagnostics"`
}

var ErrEmptyInput = errors.New("no diagnostics in input")

// Decode reads a single diagnostic, an array of diagnostics, or a
// publishDiagnostics params object. Entries that fail to decode are
// reported as warnings on h and skipped; input that cannot be read at all
// is reported as an error on h and returned.
func Decode(data []byte, h *handler.Handler) ([]Diagnostic, error) {
	diagnostics, err := decode(data, h)
	if err != nil && h != nil {
		h.AppendError(err)
	}
	return diagnostics, err
}

func decode(data []byte, h *handler.Handler) ([]Diagnostic, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	var entries []jsontext.Value
	switch data[0] {
	case '[':
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("decode diagnostics: %w", err)
		}
	case '{':
		var probe map[string]jsontext.Value
		if err := json.Unmarshal(data, &probe); err != nil {
			return nil, fmt.Errorf("decode diagnostics: %w", err)
		}
		if _, ok := probe["diagnostics"]; ok {
			var params publishParams
			if err := json.Unmarshal(data, &params); err != nil {
				return nil, fmt.Errorf("decode publishDiagnostics params: %w", err)
			}
			entries = params.Diagnostics
		} else {
			entries = []jsontext.Value{jsontext.Value(data)}
		}
	default:
		return nil, fmt.Errorf("decode diagnostics: unexpected %q at start of input", data[0])
	}

	diagnostics := make([]Diagnostic, 0, len(entries))
	for i, entry := range entries {
		var d Diagnostic
		if err := json.Unmarshal(entry, &d); err != nil {
			if h == nil {
				return nil, fmt.Errorf("decode diagnostic %d: %w", i, err)
			}
			h.AppendWarning(&loc.ErrorWithIndex{Index: i, Text: fmt.Sprintf("skipping diagnostic: %v", err)})
			continue
		}
		diagnostics = append(diagnostics, d)
	}
	if len(diagnostics) == 0 && len(entries) > 0 {
		return nil, fmt.Errorf("decode diagnostics: %w", ErrEmptyInput)
	}
	return diagnostics, nil
}
