package ir

import (
	"testing"
)

func TestZeroValueIsNull(t *testing.T) {
	var v Value
	if !v.IsNull() {
		t.Errorf("zero Value is not null")
	}
	if Null().Type != NullType {
		t.Errorf("Null() type %s", Null().Type)
	}
}

func TestAccessorDefaults(t *testing.T) {
	vals := []*Value{
		nil,
		Null(),
		FromInt(3),
		FromFloat(3.5),
		FromBool(true),
		FromString("x"),
		FromSlice([]*Value{FromInt(1)}),
		FromMap(map[string]*Value{"a": FromInt(1)}),
	}
	for _, v := range vals {
		// chaining through the wrong type must not panic and must
		// bottom out at zero defaults
		if got := v.Get("nope").At(3).IntValue(); got != 0 {
			t.Errorf("%v: chained access got %d", v, got)
		}
	}
	if FromBool(true).IntValue() != 0 {
		t.Errorf("bool has an int value")
	}
	if FromInt(7).StringValue() != "" {
		t.Errorf("int has a string value")
	}
	if FromFloat(2.5).IntValue() != 2 {
		t.Errorf("float int value not truncated")
	}
	if FromInt(7).NumberValue() != 7 {
		t.Errorf("integer not in the numeric class")
	}
}

func TestObjectSortedAndLastWins(t *testing.T) {
	obj := FromKeyVals([]Field{
		{Key: "z", Val: FromInt(1)},
		{Key: "a", Val: FromInt(2)},
		{Key: "m", Val: FromInt(3)},
		{Key: "a", Val: FromInt(4)},
	})
	fields := obj.ObjectValue()
	if len(fields) != 3 {
		t.Fatalf("got %d fields", len(fields))
	}
	for i, want := range []string{"a", "m", "z"} {
		if fields[i].Key != want {
			t.Errorf("field %d key %q, want %q", i, fields[i].Key, want)
		}
	}
	if got := obj.Get("a").IntValue(); got != 4 {
		t.Errorf("duplicate key kept first value: %d", got)
	}
}

func TestLookupDistinguishesAbsent(t *testing.T) {
	obj := FromMap(map[string]*Value{"present": Null()})
	if v, ok := obj.Lookup("present"); !ok || !v.IsNull() {
		t.Errorf("present null field: %v %v", v, ok)
	}
	if _, ok := obj.Lookup("absent"); ok {
		t.Errorf("absent field reported present")
	}
	if obj.Get("present") != obj.Get("absent") {
		// both are null-ish to Get; only Lookup tells them apart
		if obj.Get("absent") != nil {
			t.Errorf("absent field Get not nil")
		}
	}
}

func TestSetVivifiesNull(t *testing.T) {
	v := Null()
	if err := v.Set("a", FromInt(1)); err != nil {
		t.Fatalf("set on null: %v", err)
	}
	if !v.IsObject() || v.Get("a").IntValue() != 1 {
		t.Errorf("null not promoted to object: %v", v)
	}
	if err := v.Set("a", FromInt(2)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if v.Get("a").IntValue() != 2 {
		t.Errorf("overwrite lost")
	}
	if err := FromInt(3).Set("a", FromInt(1)); err != ErrNotObject {
		t.Errorf("set on integer: %v", err)
	}
}

func TestAppendVivifiesNull(t *testing.T) {
	v := Null()
	if !v.Append(FromInt(1)) || !v.Append(FromInt(2)) {
		t.Fatalf("append on null rejected")
	}
	if !v.IsArray() || v.Len() != 2 || v.At(1).IntValue() != 2 {
		t.Errorf("null not promoted to array: %v", v)
	}
	if FromString("x").Append(FromInt(1)) {
		t.Errorf("append on string accepted")
	}
	var nilv *Value
	if nilv.Append(FromInt(1)) {
		t.Errorf("append on nil accepted")
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := FromMap(map[string]*Value{
		"xs": FromSlice([]*Value{FromInt(1), FromInt(2)}),
	})
	cp := orig.Clone()
	if !Equal(orig, cp) {
		t.Fatalf("clone not equal")
	}
	cp.Get("xs").Elems[0] = FromInt(99)
	if orig.Get("xs").At(0).IntValue() != 1 {
		t.Errorf("clone shares element storage")
	}
}

func TestTake(t *testing.T) {
	v := FromSlice([]*Value{FromInt(1)})
	w := v.Take()
	if !v.IsNull() {
		t.Errorf("source of Take not null: %v", v)
	}
	if !w.IsArray() || w.At(0).IntValue() != 1 {
		t.Errorf("Take lost payload: %v", w)
	}
}

func TestAtBounds(t *testing.T) {
	arr := FromSlice([]*Value{FromInt(1)})
	if arr.At(-1) != nil || arr.At(1) != nil {
		t.Errorf("out of range At not nil")
	}
	if arr.At(0).IntValue() != 1 {
		t.Errorf("At(0) wrong")
	}
}
