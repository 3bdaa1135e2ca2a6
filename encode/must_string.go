package encode

import (
	"bytes"

	"github.com/jx-format/go-jx/ir"
)

// String returns the canonical text form of v.
func String(v *ir.Value) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func MustString(v *ir.Value) string {
	s, err := String(v)
	if err != nil {
		panic(err)
	}
	return s
}

// Append appends the canonical text form of v to dst.
func Append(dst []byte, v *ir.Value) []byte {
	buf := bytes.NewBuffer(dst)
	if err := Encode(v, buf); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
