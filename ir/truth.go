package ir

// Truth reports the truthiness of a value: non-empty containers and
// strings, non-zero numbers and true are truthy.
func Truth(v *Value) bool {
	if v == nil {
		return false
	}
	switch v.Type {
	case ObjectType:
		return len(v.Fields) != 0
	case ArrayType:
		return len(v.Elems) != 0
	case StringType:
		return v.Str != ""
	case IntegerType:
		return v.Int64 != 0
	case NumberType:
		return v.Float64 != 0.0
	case BoolType:
		return v.Bool
	case NullType:
		return false
	default:
		panic("type")
	}
}
