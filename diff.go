package jx

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/jx-format/go-jx/encode"
	"github.com/jx-format/go-jx/ir"
)

// Diff returns a character-level diff of the canonical encodings of
// from and to, with insertions and deletions marked, or "" when the two
// encode identically. Because encoding normalizes object key order, the
// diff reflects structural differences only.
func Diff(from, to *ir.Value) string {
	a := encode.MustString(from)
	b := encode.MustString(to)
	if a == b {
		return ""
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffPrettyText(diffs)
}
