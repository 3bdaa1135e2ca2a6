// Package parse parses JSON text into ir values.
package parse

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jx-format/go-jx/debug"
	"github.com/jx-format/go-jx/ir"
	"github.com/jx-format/go-jx/token"
)

// Parse parses d as a single JSON document. Non-whitespace content
// after the document is an error. On failure the value is nil and the
// error records the kind of failure and the input position; callers
// must check the error, not the value, to tell "parsed to null" from
// "failed to parse".
func Parse(d []byte, opts ...ParseOption) (*ir.Value, error) {
	p := newParser(d, opts...)
	res, err := p.value(0)
	if err != nil {
		return nil, err
	}
	p.ws()
	if p.i != len(p.d) {
		return nil, fmt.Errorf("%w: %s %s", ErrTrailing, esc(p.d[p.i]), p.pos())
	}
	if debug.Parse() {
		debug.Logf("parsed %d bytes -> %v\n", len(d), res)
	}
	return res, nil
}

// ParseString parses a single JSON document from a string.
func ParseString(s string, opts ...ParseOption) (*ir.Value, error) {
	return Parse([]byte(s), opts...)
}

// ParseMulti parses a sequence of JSON documents, each optionally
// preceded by whitespace, until the input is exhausted. No separator
// between documents is required. On failure it returns the documents
// parsed before the failing one along with the error. Empty input
// yields an empty sequence.
func ParseMulti(d []byte, opts ...ParseOption) ([]*ir.Value, error) {
	p := newParser(d, opts...)
	vals := []*ir.Value{}
	p.ws()
	for p.i != len(p.d) {
		v, err := p.value(0)
		if err != nil {
			return vals, err
		}
		vals = append(vals, v)
		p.ws()
	}
	return vals, nil
}

// parser tracks all state of an in-progress parse: the input and a
// single forward cursor. Errors propagate out of each production, so
// the first failure unwinds to the top-level call untouched.
type parser struct {
	d        []byte
	i        int
	maxDepth int
	doc      *token.PosDoc
}

func newParser(d []byte, opts ...ParseOption) *parser {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	return &parser{
		d:        d,
		maxDepth: pOpts.maxDepth,
		doc:      token.NewPosDoc(d),
	}
}

func (p *parser) pos() *token.Pos {
	return p.doc.Pos(p.i)
}

// ws advances the cursor past whitespace.
func (p *parser) ws() {
	for p.i < len(p.d) {
		switch p.d[p.i] {
		case ' ', '\r', '\n', '\t':
			p.i++
		default:
			return
		}
	}
}

// next returns the next non-whitespace byte, consuming it.
func (p *parser) next() (byte, error) {
	p.ws()
	if p.i == len(p.d) {
		return 0, fmt.Errorf("%w %s", ErrUnexpectedEOF, p.pos())
	}
	ch := p.d[p.i]
	p.i++
	return ch, nil
}

func (p *parser) value(depth int) (*ir.Value, error) {
	if depth > p.maxDepth {
		return nil, fmt.Errorf("%w %s", ErrDepth, p.pos())
	}

	ch, err := p.next()
	if err != nil {
		return nil, err
	}

	switch {
	case ch == '-' || (ch >= '0' && ch <= '9'):
		p.i--
		return p.number()
	case ch == 't':
		return p.expect("true", ir.FromBool(true))
	case ch == 'f':
		return p.expect("false", ir.FromBool(false))
	case ch == 'n':
		return p.expect("null", ir.Null())
	case ch == '"':
		s, err := p.string_()
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	case ch == '{':
		return p.object(depth)
	case ch == '[':
		return p.array(depth)
	}
	return nil, fmt.Errorf("%w: expected value, got %s %s", ErrParse, esc(ch), p.pos())
}

// expect matches lit starting at the byte just consumed.
func (p *parser) expect(lit string, res *ir.Value) (*ir.Value, error) {
	p.i--
	if bytes.HasPrefix(p.d[p.i:], []byte(lit)) {
		p.i += len(lit)
		return res, nil
	}
	got := p.d[p.i:min(p.i+len(lit), len(p.d))]
	return nil, fmt.Errorf("%w: expected %s, got %q %s", ErrParse, lit, got, p.pos())
}

func (p *parser) number() (*ir.Value, error) {
	start := p.i
	end, isInt, err := token.ScanNumber(p.d, p.i)
	if err != nil {
		p.i = end
		return nil, fmt.Errorf("%w: %w %s", ErrParse, err, p.pos())
	}
	p.i = end
	text := string(p.d[start:end])
	if isInt {
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %w %s", ErrParse, err, p.pos())
		}
		return ir.FromInt(v), nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %w %s", ErrParse, err, p.pos())
	}
	return ir.FromFloat(f), nil
}

// string_ decodes a string body; the opening quote has been consumed.
//
// \uXXXX escapes forming a high/low surrogate pair are combined into
// one code point per the UTF-16 algorithm. An unpaired surrogate is
// encoded as its own three-byte sequence rather than rejected; this
// leniency is long-standing behavior that callers depend on.
func (p *parser) string_() (string, error) {
	var out []byte
	lastEscaped := rune(-1)
	for {
		if p.i == len(p.d) {
			return "", fmt.Errorf("%w in string %s", ErrUnexpectedEOF, p.pos())
		}
		ch := p.d[p.i]
		p.i++

		if ch == '"' {
			out = token.AppendCodepoint(out, lastEscaped)
			return string(out), nil
		}

		if ch <= 0x1f {
			return "", fmt.Errorf("%w: %s in string %s", ErrControl, esc(ch), p.pos())
		}

		if ch != '\\' {
			out = token.AppendCodepoint(out, lastEscaped)
			lastEscaped = -1
			out = append(out, ch)
			continue
		}

		if p.i == len(p.d) {
			return "", fmt.Errorf("%w in string %s", ErrUnexpectedEOF, p.pos())
		}
		ch = p.d[p.i]
		p.i++

		if ch == 'u' {
			cp, err := p.hex4()
			if err != nil {
				return "", err
			}
			if lastEscaped >= 0xD800 && lastEscaped <= 0xDBFF &&
				cp >= 0xDC00 && cp <= 0xDFFF {
				// reassemble the surrogate pair into one
				// astral-plane code point
				out = token.AppendCodepoint(out,
					((lastEscaped-0xD800)<<10|(cp-0xDC00))+0x10000)
				lastEscaped = -1
			} else {
				out = token.AppendCodepoint(out, lastEscaped)
				lastEscaped = cp
			}
			continue
		}

		out = token.AppendCodepoint(out, lastEscaped)
		lastEscaped = -1

		switch ch {
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case '"', '\\', '/':
			out = append(out, ch)
		default:
			return "", fmt.Errorf("%w: %w: invalid escape character %s %s",
				ErrParse, token.ErrBadEscape, esc(ch), p.pos())
		}
	}
}

// hex4 reads the 4 hex digits of a \u escape.
func (p *parser) hex4() (rune, error) {
	if p.i+4 > len(p.d) {
		return 0, fmt.Errorf("%w: %w: bad \\u escape %q %s",
			ErrParse, token.ErrBadUnicode, p.d[p.i:], p.pos())
	}
	cp := rune(0)
	for j := 0; j < 4; j++ {
		h := token.HexVal(p.d[p.i+j])
		if h < 0 {
			return 0, fmt.Errorf("%w: %w: bad \\u escape %q %s",
				ErrParse, token.ErrBadUnicode, p.d[p.i:p.i+4], p.pos())
		}
		cp = cp<<4 | rune(h)
	}
	p.i += 4
	return cp, nil
}

// object parses the members of an object; the opening brace has been
// consumed. Duplicate keys overwrite: last write wins.
func (p *parser) object(depth int) (*ir.Value, error) {
	obj := &ir.Value{Type: ir.ObjectType}
	ch, err := p.next()
	if err != nil {
		return nil, err
	}
	if ch == '}' {
		return obj, nil
	}
	for {
		if ch != '"' {
			return nil, fmt.Errorf("%w: expected '\"' in object, got %s %s",
				ErrParse, esc(ch), p.pos())
		}
		key, err := p.string_()
		if err != nil {
			return nil, err
		}
		ch, err = p.next()
		if err != nil {
			return nil, err
		}
		if ch != ':' {
			return nil, fmt.Errorf("%w: expected ':' in object, got %s %s",
				ErrParse, esc(ch), p.pos())
		}
		val, err := p.value(depth + 1)
		if err != nil {
			return nil, err
		}
		if err := obj.Set(key, val); err != nil {
			return nil, err
		}
		ch, err = p.next()
		if err != nil {
			return nil, err
		}
		if ch == '}' {
			break
		}
		if ch != ',' {
			return nil, fmt.Errorf("%w: expected ',' in object, got %s %s",
				ErrParse, esc(ch), p.pos())
		}
		ch, err = p.next()
		if err != nil {
			return nil, err
		}
	}
	return obj, nil
}

// array parses the elements of an array; the opening bracket has been
// consumed.
func (p *parser) array(depth int) (*ir.Value, error) {
	arr := &ir.Value{Type: ir.ArrayType}
	ch, err := p.next()
	if err != nil {
		return nil, err
	}
	if ch == ']' {
		return arr, nil
	}
	for {
		p.i--
		elt, err := p.value(depth + 1)
		if err != nil {
			return nil, err
		}
		arr.Elems = append(arr.Elems, elt)
		ch, err = p.next()
		if err != nil {
			return nil, err
		}
		if ch == ']' {
			break
		}
		if ch != ',' {
			return nil, fmt.Errorf("%w: expected ',' in array, got %s %s",
				ErrParse, esc(ch), p.pos())
		}
		ch, err = p.next()
		if err != nil {
			return nil, err
		}
	}
	return arr, nil
}

// esc formats a byte for an error message.
func esc(c byte) string {
	if c >= 0x20 && c <= 0x7f {
		return fmt.Sprintf("'%c' (%d)", c, c)
	}
	return fmt.Sprintf("(%d)", c)
}
