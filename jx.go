// Package jx is a small JSON value library: an in-memory tagged value
// type (ir.Value), a parser, a canonical serializer, structural
// comparison and one-level shape validation. This package re-exports
// the common entry points; the ir, parse, encode, shape, gomap and
// query packages carry the full API.
package jx

import (
	"github.com/jx-format/go-jx/ir"
	"github.com/jx-format/go-jx/parse"
)

// Parse parses a single JSON document.
func Parse(d []byte, opts ...parse.ParseOption) (*ir.Value, error) {
	return parse.Parse(d, opts...)
}

// ParseString parses a single JSON document from a string.
func ParseString(s string, opts ...parse.ParseOption) (*ir.Value, error) {
	return parse.ParseString(s, opts...)
}

// ParseMulti parses a sequence of whitespace-separated JSON documents.
func ParseMulti(d []byte, opts ...parse.ParseOption) ([]*ir.Value, error) {
	return parse.ParseMulti(d, opts...)
}

// MustParse parses s and panics on error; intended for literals in
// tests and examples.
func MustParse(s string) *ir.Value {
	v, err := parse.ParseString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Equal reports structural equality of two values, with Integer/Number
// cross-tag numeric equality.
func Equal(a, b *ir.Value) bool {
	return ir.Equal(a, b)
}

// Compare returns an integer comparing two values in the total order
// defined by ir.Compare.
func Compare(a, b *ir.Value) int {
	return ir.Compare(a, b)
}
