package token

import (
	"strings"
	"testing"
)

func TestPosLineCol(t *testing.T) {
	d := []byte("ab\ncd\n\nef")
	doc := NewPosDoc(d)
	posTests := []struct {
		off, line, col int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{2, 0, 2},
		{3, 1, 0},
		{4, 1, 1},
		{6, 2, 0},
		{7, 3, 0},
		{8, 3, 1},
	}
	for _, pt := range posTests {
		l, c := doc.LineCol(pt.off)
		if l != pt.line || c != pt.col {
			t.Errorf("LineCol(%d) = (%d, %d), want (%d, %d)",
				pt.off, l, c, pt.line, pt.col)
		}
	}
}

func TestPosString(t *testing.T) {
	doc := NewPosDoc([]byte(`{"key": bad}`))
	s := doc.Pos(8).String()
	if !strings.Contains(s, "offset 8") || !strings.Contains(s, "line=0") {
		t.Errorf("Pos.String() = %s", s)
	}
}
