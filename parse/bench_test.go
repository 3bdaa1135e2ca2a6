package parse

import (
	"fmt"
	"testing"

	"github.com/jx-format/go-jx/encode"
	"github.com/jx-format/go-jx/ir"
)

func benchDoc() *ir.Value {
	arr := &ir.Value{Type: ir.ArrayType}
	for i := 0; i < 100; i++ {
		obj := ir.FromKeyVals([]ir.Field{
			{Key: "id", Val: ir.FromInt(int64(i))},
			{Key: "name", Val: ir.FromString(fmt.Sprintf("item-%d", i))},
			{Key: "score", Val: ir.FromFloat(float64(i) / 3)},
			{Key: "active", Val: ir.FromBool(i%2 == 0)},
			{Key: "tags", Val: ir.FromSlice([]*ir.Value{
				ir.FromString("x"), ir.FromString("y"),
			})},
		})
		arr.Append(obj)
	}
	return arr
}

func BenchmarkEncode(b *testing.B) {
	doc := benchDoc()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		encode.Append(nil, doc)
	}
}

func BenchmarkParse(b *testing.B) {
	d := encode.Append(nil, benchDoc())
	b.SetBytes(int64(len(d)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(d); err != nil {
			b.Fatal(err)
		}
	}
}
