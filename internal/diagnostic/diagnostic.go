package diagnostic

import (
	"github.com/diagfmt/compiler/internal/loc"
)

// RelatedInfo is a secondary location attached to a diagnostic, for
// example the declaration site of a symbol.
type RelatedInfo struct {
	Message  string       `json:"message"`
	Location loc.Location `json:"location"`
}

type Diagnostic struct {
	Range              loc.Range     `json:"range"`
	Severity           loc.Severity  `json:"severity,omitzero"`
	Code               Code          `json:"code"`
	Source             string        `json:"source,omitempty"`
	Message            string        `json:"message"`
	RelatedInformation []RelatedInfo `json:"relatedInformation,omitempty"`
}

// WithMessage returns a copy of d carrying msg. The related information
// slice is shared; transforms never mutate it.
func (d Diagnostic) WithMessage(msg string) Diagnostic {
	d.Message = msg
	return d
}
