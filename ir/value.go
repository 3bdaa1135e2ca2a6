package ir

import (
	"maps"
	"slices"
	"sort"
)

// Value is a JSON value: a tagged union over null, integer, number,
// bool, string, array and object. The zero Value is null.
//
// Exactly one payload field is meaningful at a time, selected by Type.
// Array elements live in Elems; object members live in Fields, kept
// sorted by key at all times so iteration and encoding order is the
// sorted key order, not insertion order.
type Value struct {
	Type Type

	Bool    bool
	Int64   int64
	Float64 float64
	Str     string
	Elems   []*Value
	Fields  []Field
}

// Field is one object member. Fields of a Value are sorted by Key.
type Field struct {
	Key string
	Val *Value
}

// Null returns a new null value.
func Null() *Value {
	return &Value{Type: NullType}
}

func FromInt(v int64) *Value {
	return &Value{Type: IntegerType, Int64: v}
}

func FromFloat(f float64) *Value {
	return &Value{Type: NumberType, Float64: f}
}

func FromBool(v bool) *Value {
	return &Value{Type: BoolType, Bool: v}
}

func FromString(v string) *Value {
	return &Value{Type: StringType, Str: v}
}

// FromSlice builds an array value. The elements are owned by the result
// and are not cloned.
func FromSlice(vs []*Value) *Value {
	res := &Value{Type: ArrayType}
	res.Elems = make([]*Value, len(vs))
	copy(res.Elems, vs)
	return res
}

// FromMap builds an object value with fields in sorted key order.
func FromMap(m map[string]*Value) *Value {
	res := &Value{Type: ObjectType}
	res.Fields = make([]Field, 0, len(m))
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Fields = append(res.Fields, Field{Key: key, Val: m[key]})
	}
	return res
}

// FromKeyVals builds an object value from key/value pairs in any order.
// Later duplicates overwrite earlier ones.
func FromKeyVals(kvs []Field) *Value {
	res := &Value{Type: ObjectType}
	res.Fields = make([]Field, 0, len(kvs))
	for i := range kvs {
		res.insert(kvs[i].Key, kvs[i].Val)
	}
	return res
}

// Clone returns a deep copy of v.
func (v *Value) Clone() *Value {
	if v == nil {
		return Null()
	}
	res := &Value{}
	v.CloneTo(res)
	return res
}

func (v *Value) CloneTo(dst *Value) *Value {
	dst.Type = v.Type
	dst.Bool = v.Bool
	dst.Int64 = v.Int64
	dst.Float64 = v.Float64
	dst.Str = v.Str
	dst.Elems = nil
	dst.Fields = nil
	if v.Elems != nil {
		dst.Elems = make([]*Value, len(v.Elems))
		for i, e := range v.Elems {
			dst.Elems[i] = e.Clone()
		}
	}
	if v.Fields != nil {
		dst.Fields = make([]Field, len(v.Fields))
		for i, f := range v.Fields {
			dst.Fields[i] = Field{Key: f.Key, Val: f.Val.Clone()}
		}
	}
	return dst
}

// Take moves the payload out of v, returning a value that owns it and
// leaving v null.
func (v *Value) Take() *Value {
	res := &Value{
		Type:    v.Type,
		Bool:    v.Bool,
		Int64:   v.Int64,
		Float64: v.Float64,
		Str:     v.Str,
		Elems:   v.Elems,
		Fields:  v.Fields,
	}
	*v = Value{}
	return res
}

// Accessors. All of them are nil-receiver safe and return the zero
// default when the value is not of the requested type, so lookups can
// be chained without checking: v.Get("a").At(0).IntValue().

func (v *Value) IsNull() bool   { return v == nil || v.Type == NullType }
func (v *Value) IsNumber() bool { return v != nil && v.Type.IsNumeric() }
func (v *Value) IsBool() bool   { return v != nil && v.Type == BoolType }
func (v *Value) IsString() bool { return v != nil && v.Type == StringType }
func (v *Value) IsArray() bool  { return v != nil && v.Type == ArrayType }
func (v *Value) IsObject() bool { return v != nil && v.Type == ObjectType }

// NumberValue returns the numeric value of an Integer or Number, 0
// otherwise.
func (v *Value) NumberValue() float64 {
	if v == nil {
		return 0
	}
	switch v.Type {
	case IntegerType:
		return float64(v.Int64)
	case NumberType:
		return v.Float64
	}
	return 0
}

// IntValue returns the numeric value truncated to int64, 0 when not
// numeric.
func (v *Value) IntValue() int64 {
	if v == nil {
		return 0
	}
	switch v.Type {
	case IntegerType:
		return v.Int64
	case NumberType:
		return int64(v.Float64)
	}
	return 0
}

func (v *Value) BoolValue() bool {
	if v == nil || v.Type != BoolType {
		return false
	}
	return v.Bool
}

func (v *Value) StringValue() string {
	if v == nil || v.Type != StringType {
		return ""
	}
	return v.Str
}

// ArrayValue returns the elements of an array, nil otherwise.
func (v *Value) ArrayValue() []*Value {
	if v == nil || v.Type != ArrayType {
		return nil
	}
	return v.Elems
}

// ObjectValue returns the fields of an object in sorted key order, nil
// otherwise.
func (v *Value) ObjectValue() []Field {
	if v == nil || v.Type != ObjectType {
		return nil
	}
	return v.Fields
}

// Len returns the number of elements of an array, 0 otherwise.
func (v *Value) Len() int {
	if v == nil || v.Type != ArrayType {
		return 0
	}
	return len(v.Elems)
}

// At returns the i'th array element, or nil when v is not an array or i
// is out of range.
func (v *Value) At(i int) *Value {
	if v == nil || v.Type != ArrayType || i < 0 || i >= len(v.Elems) {
		return nil
	}
	return v.Elems[i]
}

// Get returns the value of the named field, or nil when v is not an
// object or the field is absent. A nil result conflates "absent" with
// "present and null"; use Lookup to distinguish.
func (v *Value) Get(key string) *Value {
	res, _ := v.Lookup(key)
	return res
}

// Lookup returns the value of the named field and whether it exists.
func (v *Value) Lookup(key string) (*Value, bool) {
	if v == nil || v.Type != ObjectType {
		return nil, false
	}
	i, ok := v.search(key)
	if !ok {
		return nil, false
	}
	return v.Fields[i].Val, true
}

func (v *Value) search(key string) (int, bool) {
	i := sort.Search(len(v.Fields), func(i int) bool {
		return v.Fields[i].Key >= key
	})
	return i, i < len(v.Fields) && v.Fields[i].Key == key
}

func (v *Value) insert(key string, val *Value) {
	i, ok := v.search(key)
	if ok {
		v.Fields[i].Val = val
		return
	}
	v.Fields = slices.Insert(v.Fields, i, Field{Key: key, Val: val})
}

// Set inserts or overwrites the named field. A null receiver is
// promoted in place to an empty object first; any other non-object
// receiver is rejected.
func (v *Value) Set(key string, val *Value) error {
	if v == nil {
		return ErrNotObject
	}
	switch v.Type {
	case NullType:
		*v = Value{Type: ObjectType}
	case ObjectType:
	default:
		return ErrNotObject
	}
	if val == nil {
		val = Null()
	}
	v.insert(key, val)
	return nil
}

// Append adds an element to an array. A null receiver is promoted in
// place to an empty array first. It reports whether the element was
// appended: any other non-array receiver is left unchanged and false is
// returned.
func (v *Value) Append(e *Value) bool {
	if v == nil {
		return false
	}
	switch v.Type {
	case NullType:
		*v = Value{Type: ArrayType}
	case ArrayType:
	default:
		return false
	}
	if e == nil {
		e = Null()
	}
	v.Elems = append(v.Elems, e)
	return true
}
