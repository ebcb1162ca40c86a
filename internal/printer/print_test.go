package printer

import (
	"testing"

	"github.com/diagfmt/compiler/internal/diagnostic"
	"github.com/diagfmt/compiler/internal/loc"
	"gotest.tools/v3/assert"
)

func TestPrintToHTML(t *testing.T) {
	results := []Result{{HTML: "<span>a</span>"}, {HTML: "<span>b</span>"}}
	assert.Equal(t, string(PrintToHTML(results).Output), "<span>a</span>\n<hr>\n<span>b</span>\n")
	assert.Equal(t, string(PrintToHTML(nil).Output), "")
}

func TestPrintToJSON(t *testing.T) {
	r := NewResult(diagnostic.Diagnostic{
		Code:     diagnostic.NumberCode(2304),
		Severity: loc.ErrorType,
		Message:  "Cannot find name 'foo'.",
	}, nil)
	assert.Equal(t, r.Code, "TS2304")
	assert.Equal(t, r.Severity, "error")

	res, err := PrintToJSON([]Result{{Code: "TS1", Severity: "error", Message: "m", HTML: "<b>h</b>"}})
	assert.NilError(t, err)
	want := `[
  {
    "code": "TS1",
    "severity": "error",
    "message": "m",
    "html": "<b>h</b>"
  }
]
`
	assert.Equal(t, string(res.Output), want)

	res, err = PrintToJSON(nil)
	assert.NilError(t, err)
	assert.Equal(t, string(res.Output), "[]\n")
}
