// Package ir provides the in-memory representation of JSON values.
//
// # Value Structure
//
// A Value is a tagged union over the JSON types: null, integer, number,
// bool, string, array and object. The Type field selects the active
// variant; the payload fields are only meaningful for their own tag.
// The zero Value is null.
//
// Integers and floating point numbers carry distinct tags (IntegerType,
// NumberType) but form one numeric class: equality and ordering between
// them compare the numeric value, so FromInt(42) equals FromFloat(42).
//
// Object fields are held sorted by key. That order is an invariant
// callers may rely on: iteration over ObjectValue() and the encoded
// text both list members in sorted key order, independent of insertion
// order. Inserting a duplicate key overwrites the previous value.
//
// # Creating Values
//
// Use the constructor functions:
//
//	v := ir.FromString("hello")
//	n := ir.FromInt(42)
//	obj := ir.FromMap(map[string]*ir.Value{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Value{ir.FromInt(1), ir.FromInt(2)})
//
// or build incrementally through vivification: Set on a null value
// promotes it to an empty object, Append promotes it to an array:
//
//	v := ir.Null()
//	v.Set("name", ir.FromString("alice"))
//	list := ir.Null()
//	list.Append(ir.FromInt(1))
//
// # Reading Values
//
// Accessors never fail; they return the zero default when the value has
// another type, and they tolerate nil receivers, so navigation chains
// without intermediate checks:
//
//	port := cfg.Get("server").Get("port").IntValue()
//
// Get and At return nil for absent keys and out-of-range indices, which
// conflates "absent" with "present and null"; Lookup reports presence
// explicitly.
//
// # Ownership
//
// A Value owns its payload. Clone deep-copies; Take transfers the
// payload to a new Value and leaves the source null. Values are not
// safe for concurrent mutation; concurrent reads of an unshared,
// unmutated tree are.
//
// # Related Packages
//
//   - github.com/jx-format/go-jx/parse - Parses text into values
//   - github.com/jx-format/go-jx/encode - Encodes values to text
//   - github.com/jx-format/go-jx/shape - One-level shape validation
//   - github.com/jx-format/go-jx/gomap - Conversion to/from Go values
package ir
