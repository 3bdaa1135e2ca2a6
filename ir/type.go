package ir

import "fmt"

// Type tags a Value with its active variant. The declaration order is
// also the sorting rank used by Compare, except that IntegerType and
// NumberType share a single numeric rank.
type Type int

const (
	NullType Type = iota
	IntegerType
	NumberType
	BoolType
	StringType
	ArrayType
	ObjectType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:    "Null",
		IntegerType: "Integer",
		NumberType:  "Number",
		BoolType:    "Bool",
		StringType:  "String",
		ArrayType:   "Array",
		ObjectType:  "Object",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":    NullType,
		"Integer": IntegerType,
		"Number":  NumberType,
		"Bool":    BoolType,
		"String":  StringType,
		"Array":   ArrayType,
		"Object":  ObjectType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		IntegerType,
		NumberType,
		BoolType,
		StringType,
		ArrayType,
		ObjectType,
	}
}

// IsNumeric reports whether t is IntegerType or NumberType. The two are
// distinct tags but form a single class for equality and ordering.
func (t Type) IsNumeric() bool {
	return t == IntegerType || t == NumberType
}

func (t Type) IsLeaf() bool {
	switch t {
	case ArrayType, ObjectType:
		return false
	default:
		return true
	}
}
