// Package shape provides one-level structural validation of object
// values: each named field must exist and carry an exact type tag.
package shape

import (
	"errors"
	"fmt"

	"github.com/jx-format/go-jx/encode"
	"github.com/jx-format/go-jx/ir"
)

var ErrShape = errors.New("shape error")

// Field names a required object member and its expected type tag.
type Field struct {
	Name string
	Type ir.Type
}

// Shape is an ordered list of required fields. Order only affects which
// mismatch is reported first.
type Shape []Field

// Check verifies that v is an object and that each field in s exists
// directly under it with exactly the expected tag. The match is on the
// tag, not the numeric class: a field parsed as Number does not satisfy
// an IntegerType requirement, so callers must ask for the tag the
// parser actually produces for that field.
func Check(v *ir.Value, s Shape) error {
	if !v.IsObject() {
		return fmt.Errorf("%w: expected JSON object, got %s",
			ErrShape, encode.MustString(v))
	}
	for _, f := range s {
		got, ok := v.Lookup(f.Name)
		if !ok {
			return fmt.Errorf("%w: missing field %q in %s",
				ErrShape, f.Name, encode.MustString(v))
		}
		t := ir.NullType
		if got != nil {
			t = got.Type
		}
		if t != f.Type {
			return fmt.Errorf("%w: bad type for %q: got %s, want %s in %s",
				ErrShape, f.Name, t, f.Type, encode.MustString(v))
		}
	}
	return nil
}
