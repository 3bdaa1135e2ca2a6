package jx

import (
	jsonpatch "github.com/evanphx/json-patch"

	"github.com/jx-format/go-jx/debug"
	"github.com/jx-format/go-jx/encode"
	"github.com/jx-format/go-jx/ir"
	"github.com/jx-format/go-jx/parse"
)

// ApplyPatch applies an RFC 6902 patch document (an array of
// operations) to doc and returns the patched value. Neither input is
// mutated.
func ApplyPatch(doc, patchDoc *ir.Value) (*ir.Value, error) {
	p, err := jsonpatch.DecodePatch(encode.Append(nil, patchDoc))
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("patch %v applied to %v\n", patchDoc, doc)
	}
	out, err := p.Apply(encode.Append(nil, doc))
	if err != nil {
		return nil, err
	}
	return parse.Parse(out)
}

// MergePatch applies an RFC 7386 merge patch to doc and returns the
// patched value. Neither input is mutated.
func MergePatch(doc, patchDoc *ir.Value) (*ir.Value, error) {
	out, err := jsonpatch.MergePatch(
		encode.Append(nil, doc),
		encode.Append(nil, patchDoc))
	if err != nil {
		return nil, err
	}
	return parse.Parse(out)
}
