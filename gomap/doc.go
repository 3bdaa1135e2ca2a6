// Package gomap converts between native Go values and ir values.
//
// ToIR accepts the standard map and sequence shapes (string-keyed maps,
// slices, arrays) plus scalars, and any type implementing Valuer; it is
// the bulk-construction entry point for building documents from Go
// data. FromIR goes the other way, producing the map[string]any/[]any
// shape most Go libraries consume.
package gomap
