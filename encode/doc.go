// Package encode encodes ir values to canonical JSON text.
//
// # Usage
//
//	v := ir.FromMap(map[string]*ir.Value{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	err := encode.Encode(v, os.Stdout)
//	s := encode.MustString(v) // {"age": 30, "name": "alice"}
//
// Output is a single line with object members in sorted key order.
// String escaping covers the short JSON escapes, \u00XX for remaining
// control bytes, and \u2028/\u2029 so output can be embedded in
// script-language string literals.
//
// # Related Packages
//
//   - github.com/jx-format/go-jx/ir - value representation
//   - github.com/jx-format/go-jx/parse - parse text to values
package encode
