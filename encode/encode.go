package encode

import (
	"io"
	"strconv"

	"github.com/jx-format/go-jx/ir"
	"github.com/jx-format/go-jx/token"
)

type EncState struct {
	colorType ir.Type
	Color     func(ir.Type, ColorAttr, string) string
}

// Encode writes the canonical text form of v to w: one line, object
// members in sorted key order, ", " between items and ": " after keys.
// There is no indented mode.
//
// Numbers encode in their shortest round-trip decimal form, so a
// Number holding an integral value (42.0) encodes as "42" and reparses
// as an Integer; cross-tag numeric equality keeps round-trips equal.
func Encode(v *ir.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(v, w, es)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func encode(v *ir.Value, w io.Writer, es *EncState) error {
	if v == nil {
		v = ir.Null()
	}
	es.colorType = v.Type

	switch v.Type {
	case ir.ObjectType:
		return encodeObject(v, w, es)
	case ir.ArrayType:
		return encodeArray(v, w, es)
	case ir.StringType:
		return writeString(w, applyColor(es, ir.StringType, ValueColor, token.Quote(v.Str)))
	case ir.IntegerType:
		return writeString(w, applyColor(es, ir.IntegerType, ValueColor,
			strconv.FormatInt(v.Int64, 10)))
	case ir.NumberType:
		return writeString(w, applyColor(es, ir.NumberType, ValueColor,
			strconv.FormatFloat(v.Float64, 'g', -1, 64)))
	case ir.BoolType:
		s := "false"
		if v.Bool {
			s = "true"
		}
		return writeString(w, applyColor(es, ir.BoolType, ValueColor, s))
	case ir.NullType:
		return writeString(w, applyColor(es, ir.NullType, ValueColor, "null"))
	default:
		panic("type")
	}
}

func encodeArray(v *ir.Value, w io.Writer, es *EncState) error {
	if err := writeString(w, applyColor(es, ir.ArrayType, SepColor, "[")); err != nil {
		return err
	}
	for i, e := range v.Elems {
		if i > 0 {
			if err := writeString(w, applyColor(es, ir.ArrayType, SepColor, ", ")); err != nil {
				return err
			}
		}
		if err := encode(e, w, es); err != nil {
			return err
		}
	}
	return writeString(w, applyColor(es, ir.ArrayType, SepColor, "]"))
}

func encodeObject(v *ir.Value, w io.Writer, es *EncState) error {
	if err := writeString(w, applyColor(es, ir.ObjectType, SepColor, "{")); err != nil {
		return err
	}
	for i := range v.Fields {
		f := &v.Fields[i]
		if i > 0 {
			if err := writeString(w, applyColor(es, ir.ObjectType, SepColor, ", ")); err != nil {
				return err
			}
		}
		if err := writeString(w, applyColor(es, ir.ObjectType, FieldColor, token.Quote(f.Key))); err != nil {
			return err
		}
		if err := writeString(w, applyColor(es, ir.ObjectType, SepColor, ": ")); err != nil {
			return err
		}
		if err := encode(f.Val, w, es); err != nil {
			return err
		}
	}
	return writeString(w, applyColor(es, ir.ObjectType, SepColor, "}"))
}

func applyColor(es *EncState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}
