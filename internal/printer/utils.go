package printer

import (
	"strings"

	"github.com/diagfmt/compiler/internal/diagnostic"
	"github.com/diagfmt/compiler/internal/loc"
	"github.com/iancoleman/strcase"
)

func severityLabel(s loc.Severity) string {
	return strcase.ToCamel(s.String())
}

func severityIcon(s loc.Severity) string {
	switch s {
	case loc.WarningType:
		return "⚠"
	case loc.InformationType, loc.HintType:
		return "ℹ"
	}
	return "✖"
}

const explanationBase = "https://typescript.tv/errors/#"

// explanationURL links numeric compiler codes to their explanation page.
func explanationURL(code diagnostic.Code) string {
	if !code.IsNumber() {
		return ""
	}
	return explanationBase + strings.ToLower(code.Key())
}
