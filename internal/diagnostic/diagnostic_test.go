package diagnostic

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/diagfmt/compiler/internal/handler"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestCodeKey(t *testing.T) {
	tests := []struct {
		name string
		json string
		key  string
		str  string
	}{
		{name: "number", json: `2304`, key: "TS2304", str: "2304"},
		{name: "string", json: `"no-unused-vars"`, key: "no-unused-vars", str: "no-unused-vars"},
		{name: "prefixed string", json: `"TS2304"`, key: "TS2304", str: "TS2304"},
		{name: "null", json: `null`, key: "", str: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Code
			assert.NilError(t, c.UnmarshalJSON([]byte(tt.json)))
			assert.Equal(t, c.Key(), tt.key)
			assert.Equal(t, c.String(), tt.str)
			assert.Equal(t, c.IsAbsent(), tt.key == "")
		})
	}
}

func TestCodeInvalid(t *testing.T) {
	var c Code
	assert.ErrorContains(t, c.UnmarshalJSON([]byte(`true`)), "diagnostic code")
}

func TestDecodeShapes(t *testing.T) {
	single := `{
		"code": 2304,
		"message": "Cannot find name 'foo'.",
		"range": {"start": {"line": 1, "character": 2}, "end": {"line": 1, "character": 5}},
		"relatedInformation": [{
			"message": "'foo' is declared here.",
			"location": {"uri": "file:///tmp/a.ts", "range": {"start": {"line": 4, "character": 6}, "end": {"line": 4, "character": 9}}}
		}]
	}`

	t.Run("single", func(t *testing.T) {
		h := handler.NewHandler("stdin")
		diagnostics, err := Decode([]byte(single), h)
		assert.NilError(t, err)
		assert.Equal(t, len(diagnostics), 1)
		d := diagnostics[0]
		assert.Equal(t, d.Code.Key(), "TS2304")
		assert.Equal(t, d.Message, "Cannot find name 'foo'.")
		assert.Equal(t, d.Range.Start.Character, 2)
		assert.Equal(t, len(d.RelatedInformation), 1)
		assert.Equal(t, d.RelatedInformation[0].Location.Range.Start.Line, 4)
	})

	t.Run("array", func(t *testing.T) {
		h := handler.NewHandler("stdin")
		diagnostics, err := Decode([]byte(`[`+single+`, {"code": "TS2322", "message": "x"}]`), h)
		assert.NilError(t, err)
		assert.Equal(t, len(diagnostics), 2)
		assert.Equal(t, diagnostics[1].Code.Key(), "TS2322")
		assert.Assert(t, !h.HasWarnings())
	})

	t.Run("publish params", func(t *testing.T) {
		h := handler.NewHandler("stdin")
		diagnostics, err := Decode([]byte(`{"uri": "file:///tmp/a.ts", "diagnostics": [{"message": "no code"}]}`), h)
		assert.NilError(t, err)
		assert.Equal(t, len(diagnostics), 1)
		assert.Assert(t, diagnostics[0].Code.IsAbsent())
	})

	t.Run("bad entry is skipped", func(t *testing.T) {
		h := handler.NewHandler("stdin")
		diagnostics, err := Decode([]byte(`[{"message": "ok"}, {"message": 12}]`), h)
		assert.NilError(t, err)
		assert.Equal(t, len(diagnostics), 1)
		warnings := h.Warnings()
		assert.Equal(t, len(warnings), 1)
		assert.Equal(t, warnings[0].Location.Index, 1)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Decode([]byte("  "), handler.NewHandler("stdin"))
		assert.Assert(t, errors.Is(err, ErrEmptyInput))
	})

	t.Run("garbage", func(t *testing.T) {
		h := handler.NewHandler("stdin")
		_, err := Decode([]byte("Cannot find name"), h)
		assert.Assert(t, is.ErrorContains(err, "unexpected"))
		assert.Assert(t, h.HasErrors())
		errs := h.Errors()
		assert.Equal(t, len(errs), 1)
		assert.Equal(t, errs[0].Text, err.Error())
	})

	t.Run("truncated array", func(t *testing.T) {
		h := handler.NewHandler("stdin")
		_, err := Decode([]byte(`[{"message": "ok"}`), h)
		assert.Assert(t, err != nil)
		assert.Assert(t, h.HasErrors())
		assert.Assert(t, !h.HasWarnings())
	})
}

func TestWithMessageCopies(t *testing.T) {
	d := Diagnostic{Message: "before", Code: NumberCode(2304)}
	e := d.WithMessage("after")
	assert.Equal(t, d.Message, "before")
	assert.Equal(t, e.Message, "after")
	assert.Equal(t, e.Code.Key(), "TS2304")
}

func TestURIToPath(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{uri: "file:///tmp/a.ts", want: filepath.FromSlash("/tmp/a.ts")},
		{uri: "file:///tmp/with%20space.ts", want: filepath.FromSlash("/tmp/with space.ts")},
		{uri: "file:///tmp/a%2525b.ts", want: filepath.FromSlash("/tmp/a%25b.ts")},
		{uri: "file:///c:/src/a.ts", want: filepath.FromSlash("c:/src/a.ts")},
		{uri: "untitled:Untitled-1", want: "untitled:Untitled-1"},
		{uri: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			assert.Equal(t, URIToPath(tt.uri), tt.want)
		})
	}
}
