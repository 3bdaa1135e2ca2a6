package parse

import (
	"bytes"
	"testing"

	"github.com/jx-format/go-jx/encode"
	"github.com/jx-format/go-jx/ir"
)

func FuzzParse(f *testing.F) {
	// Seed with various valid inputs
	seeds := []string{
		// Primitives
		`null`,
		`true`,
		`false`,
		`42`,
		`-0`,
		`3.14`,
		`-1e10`,
		`1234567890123456789`,
		`""`,
		`"hello"`,

		// Strings with special chars
		`"with\nnewline"`,
		`"with\ttab"`,
		`"with \"quotes\""`,
		`"Aé "`,
		`"💩"`,
		`"\ud83d"`,

		// Arrays
		`[]`,
		`[1, 2, 3]`,
		`[[nested], [arrays]]`,
		`[true, null, "x", 0.5]`,

		// Objects
		`{}`,
		`{"a": 1, "b": 2}`,
		`{"nested": {"object": "value"}}`,
		`{"dup": 1, "dup": 2}`,
		`{"users": [{"name": "alice"}, {"name": "bob"}]}`,

		// Edge cases
		`01`,
		`1 2`,
		`{`,
		`"unterminated`,
	}

	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		// Primary target: parse should not panic
		v, err := Parse(data)
		if err != nil {
			return // parse errors are expected for random input
		}

		// Secondary: if parse succeeds, encode should not panic
		var buf bytes.Buffer
		if err := encode.Encode(v, &buf); err != nil {
			t.Fatalf("encode of parsed value: %v", err)
		}

		// Tertiary: the canonical form must reparse to an equal value
		v2, err := Parse(buf.Bytes())
		if err != nil {
			t.Fatalf("reparse of %q: %v", buf.Bytes(), err)
		}
		if !ir.Equal(v, v2) {
			t.Fatalf("round trip changed value: %q", buf.Bytes())
		}
	})
}
