package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Integers and numbers form a single ordering class compared by numeric
// value, so Compare(FromInt(42), FromFloat(42)) == 0. Otherwise values
// order by type rank (Null < numeric < Bool < String < Array < Object)
// and then by payload.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		a = Null()
	}
	if b == nil {
		b = Null()
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case IntegerType, NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.Str, b.Str)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	case NullType:
		return 0
	}
	return 0
}

// Equal reports whether a and b are structurally equal, with numeric
// cross-tag equality: Integer(42) equals Number(42.0).
func Equal(a, b *Value) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Null < Integer/Number < Bool < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case IntegerType, NumberType:
		return 1
	case BoolType:
		return 2
	case StringType:
		return 3
	case ArrayType:
		return 4
	case ObjectType:
		return 5
	}
	return 100
}

func compareNumbers(a, b *Value) int {
	if a.Type == IntegerType && b.Type == IntegerType {
		return cmp.Compare(a.Int64, b.Int64)
	}
	return cmp.Compare(a.NumberValue(), b.NumberValue())
}

func compareArrays(a, b *Value) int {
	lenA := len(a.Elems)
	lenB := len(b.Elems)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Elems[i], b.Elems[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareObjects(a, b *Value) int {
	// Fields are sorted by key, so the pair sequences compare
	// lexicographically: key first, then value.
	lenA := len(a.Fields)
	lenB := len(b.Fields)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.Fields[i].Key, b.Fields[i].Key); c != 0 {
			return c
		}
		if c := Compare(a.Fields[i].Val, b.Fields[i].Val); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
