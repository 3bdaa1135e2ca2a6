package gomap

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jx-format/go-jx/encode"
	"github.com/jx-format/go-jx/ir"
)

func TestToIRNatives(t *testing.T) {
	toTests := []struct {
		in   any
		want string
	}{
		{nil, `null`},
		{true, `true`},
		{42, `42`},
		{int8(-3), `-3`},
		{uint16(9), `9`},
		{uint64(1 << 40), `1099511627776`},
		{1.5, `1.5`},
		{float32(0.25), `0.25`},
		{"hi", `"hi"`},
		{[]any{1, "two", nil}, `[1, "two", null]`},
		{[3]int{1, 2, 3}, `[1, 2, 3]`},
		{map[string]any{"b": 2, "a": 1}, `{"a": 1, "b": 2}`},
		{map[string]int{"x": 7}, `{"x": 7}`},
		{
			map[string]any{"xs": []string{"a", "b"}},
			`{"xs": ["a", "b"]}`,
		},
	}
	for _, tt := range toTests {
		v, err := ToIR(tt.in)
		if err != nil {
			t.Errorf("ToIR(%#v): %v", tt.in, err)
			continue
		}
		if got := encode.MustString(v); got != tt.want {
			t.Errorf("ToIR(%#v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestToIRErrors(t *testing.T) {
	badTests := []struct {
		in   any
		path string
	}{
		{make(chan int), ""},
		{map[int]string{1: "x"}, ""},
		{map[string]any{"f": func() {}}, "f"},
		{[]any{1, map[string]any{"deep": make(chan int)}}, "[1].deep"},
		{uint64(1) << 63, ""},
	}
	for _, tt := range badTests {
		_, err := ToIR(tt.in)
		if err == nil {
			t.Errorf("ToIR(%#v) accepted", tt.in)
			continue
		}
		var me *MarshalError
		if !errors.As(err, &me) {
			t.Errorf("ToIR(%#v) error type %T", tt.in, err)
			continue
		}
		if tt.path != "" && !strings.Contains(me.FieldPath, tt.path) {
			t.Errorf("ToIR(%#v) path %q, want %q", tt.in, me.FieldPath, tt.path)
		}
	}
}

type endpoint struct {
	Host string
	Port int
}

func (e endpoint) JSONValue() (*ir.Value, error) {
	return ir.FromKeyVals([]ir.Field{
		{Key: "host", Val: ir.FromString(e.Host)},
		{Key: "port", Val: ir.FromInt(int64(e.Port))},
	}), nil
}

func TestToIRValuer(t *testing.T) {
	v, err := ToIR(endpoint{Host: "h", Port: 80})
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(v); got != `{"host": "h", "port": 80}` {
		t.Errorf("got %s", got)
	}
	// values inside containers go through the same hook
	v, err = ToIR([]any{endpoint{Host: "x", Port: 1}})
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(v); got != `[{"host": "x", "port": 1}]` {
		t.Errorf("got %s", got)
	}
}

func TestToIRPassthrough(t *testing.T) {
	orig := ir.FromInt(9)
	v, err := ToIR(orig)
	if err != nil {
		t.Fatal(err)
	}
	if v != orig {
		t.Errorf("ir value not passed through")
	}
}

func TestFromIR(t *testing.T) {
	v := ir.FromKeyVals([]ir.Field{
		{Key: "n", Val: ir.FromInt(3)},
		{Key: "f", Val: ir.FromFloat(1.5)},
		{Key: "s", Val: ir.FromString("x")},
		{Key: "b", Val: ir.FromBool(true)},
		{Key: "z", Val: ir.Null()},
		{Key: "xs", Val: ir.FromSlice([]*ir.Value{ir.FromInt(1), ir.FromString("2")})},
	})
	want := map[string]any{
		"n":  int64(3),
		"f":  1.5,
		"s":  "x",
		"b":  true,
		"z":  nil,
		"xs": []any{int64(1), "2"},
	}
	got := FromIR(v)
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("FromIR (-want +got):\n%s", d)
	}
	if FromIR(nil) != nil {
		t.Errorf("FromIR(nil) = %v", FromIR(nil))
	}
}

func TestRoundTrip(t *testing.T) {
	in := map[string]any{
		"a": []any{int64(1), "x", false},
		"m": map[string]any{"k": nil},
	}
	v, err := ToIR(in)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(in, FromIR(v)); d != "" {
		t.Errorf("round trip (-in +out):\n%s", d)
	}
}
