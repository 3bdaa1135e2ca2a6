package gomap

import "github.com/jx-format/go-jx/ir"

// FromIR converts a Value to the corresponding native Go shape: nil,
// int64, float64, bool, string, []any or map[string]any. Object keys
// keep their sorted order only in the encoded form; the returned map is
// an ordinary Go map.
func FromIR(v *ir.Value) any {
	if v == nil {
		return nil
	}
	switch v.Type {
	case ir.NullType:
		return nil
	case ir.IntegerType:
		return v.Int64
	case ir.NumberType:
		return v.Float64
	case ir.BoolType:
		return v.Bool
	case ir.StringType:
		return v.Str
	case ir.ArrayType:
		res := make([]any, len(v.Elems))
		for i, e := range v.Elems {
			res[i] = FromIR(e)
		}
		return res
	case ir.ObjectType:
		res := make(map[string]any, len(v.Fields))
		for _, f := range v.Fields {
			res[f.Key] = FromIR(f.Val)
		}
		return res
	default:
		panic("type")
	}
}
