package gomap

import (
	"fmt"
	"math"
	"reflect"

	"github.com/jx-format/go-jx/ir"
)

// Valuer is the capability interface for types that convert themselves
// to a Value. It replaces duck-typed conversion: external aggregate
// types opt in explicitly and the conversion is resolved at the call
// site.
type Valuer interface {
	JSONValue() (*ir.Value, error)
}

// ToIR converts a native Go value to a Value. It handles nil, bools,
// integers, floats, strings, any slice or array whose element type is
// convertible, any map whose keys are strings and whose values are
// convertible, *ir.Value passthrough, and any type implementing Valuer.
func ToIR(v any) (*ir.Value, error) {
	if v == nil {
		return ir.Null(), nil
	}
	switch x := v.(type) {
	case *ir.Value:
		return x, nil
	case Valuer:
		return x.JSONValue()
	}
	return toIRReflect(reflect.ValueOf(v), "$")
}

func toIRReflect(val reflect.Value, path string) (*ir.Value, error) {
	for val.Kind() == reflect.Interface || val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return ir.Null(), nil
		}
		if vr, ok := val.Interface().(Valuer); ok {
			return vr.JSONValue()
		}
		val = val.Elem()
	}
	if vr, ok := val.Interface().(Valuer); ok {
		return vr.JSONValue()
	}

	switch val.Kind() {
	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := val.Uint()
		if u > math.MaxInt64 {
			return nil, &MarshalError{
				FieldPath: path,
				Message:   fmt.Sprintf("uint value %d overflows int64", u),
			}
		}
		return ir.FromInt(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(val.Float()), nil
	case reflect.String:
		return ir.FromString(val.String()), nil
	case reflect.Slice, reflect.Array:
		n := val.Len()
		elems := make([]*ir.Value, n)
		for i := 0; i < n; i++ {
			e, err := toIRReflect(val.Index(i), fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			elems[i] = e
		}
		return ir.FromSlice(elems), nil
	case reflect.Map:
		if val.Type().Key().Kind() != reflect.String {
			return nil, &MarshalError{
				FieldPath: path,
				Message:   fmt.Sprintf("unsupported map key type %s", val.Type().Key()),
			}
		}
		m := make(map[string]*ir.Value, val.Len())
		iter := val.MapRange()
		for iter.Next() {
			key := iter.Key().String()
			e, err := toIRReflect(iter.Value(), path+"."+key)
			if err != nil {
				return nil, err
			}
			m[key] = e
		}
		return ir.FromMap(m), nil
	default:
		return nil, &MarshalError{
			FieldPath: path,
			Message:   fmt.Sprintf("unsupported type %s", val.Type()),
		}
	}
}
