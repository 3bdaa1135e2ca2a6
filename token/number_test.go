package token

import (
	"errors"
	"strings"
	"testing"
)

func TestScanNumber(t *testing.T) {
	numTests := []struct {
		in    string
		end   int
		isInt bool
		err   error
	}{
		{in: "0", end: 1, isInt: true},
		{in: "-0", end: 2, isInt: true},
		{in: "42", end: 2, isInt: true},
		{in: "-7", end: 2, isInt: true},
		{in: "42,", end: 2, isInt: true},
		{in: "123456789012345678", end: 18, isInt: true},
		// 19 characters exceed the int64-safe budget: still a valid
		// number token, but not on the integer fast path
		{in: "1234567890123456789", end: 19, isInt: false},
		{in: "-123456789012345678", end: 19, isInt: false},
		{in: "3.14", end: 4, isInt: false},
		{in: "0.5", end: 3, isInt: false},
		{in: "1e14", end: 4, isInt: false},
		{in: "1E+2", end: 4, isInt: false},
		{in: "2.5e-3", end: 6, isInt: false},
		{in: "01", err: ErrNumberLeadingZero},
		{in: "-01", err: ErrNumberLeadingZero},
		{in: "-", err: ErrNumber},
		{in: ".5", err: ErrNumber},
		{in: "1.", err: ErrNumber},
		{in: "1e", err: ErrNumber},
		{in: "1e+", err: ErrNumber},
	}
	for _, nt := range numTests {
		end, isInt, err := ScanNumber([]byte(nt.in), 0)
		if nt.err != nil {
			if !errors.Is(err, nt.err) {
				t.Errorf("ScanNumber(%q) error %v, want %v", nt.in, err, nt.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ScanNumber(%q): %v", nt.in, err)
			continue
		}
		if end != nt.end || isInt != nt.isInt {
			t.Errorf("ScanNumber(%q) = (%d, %v), want (%d, %v)",
				nt.in, end, isInt, nt.end, nt.isInt)
		}
	}
}

func TestScanNumberOffset(t *testing.T) {
	d := []byte(`{"a": 17}`)
	i := strings.Index(string(d), "17")
	end, isInt, err := ScanNumber(d, i)
	if err != nil || !isInt || end != i+2 {
		t.Errorf("ScanNumber at offset: end=%d isInt=%v err=%v", end, isInt, err)
	}
}
