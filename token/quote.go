package token

const hexDigits = "0123456789abcdef"

// AppendCodepoint appends the UTF-8 encoding of cp to dst. Unlike
// utf8.AppendRune it also encodes surrogate code points as their own
// three-byte sequence; the parser relies on this for its lenient
// handling of unpaired \uXXXX escapes. Negative code points append
// nothing.
func AppendCodepoint(dst []byte, cp rune) []byte {
	switch {
	case cp < 0:
		return dst
	case cp < 0x80:
		return append(dst, byte(cp))
	case cp < 0x800:
		return append(dst,
			byte(cp>>6)|0xC0,
			byte(cp&0x3F)|0x80)
	case cp < 0x10000:
		return append(dst,
			byte(cp>>12)|0xE0,
			byte(cp>>6&0x3F)|0x80,
			byte(cp&0x3F)|0x80)
	default:
		return append(dst,
			byte(cp>>18)|0xF0,
			byte(cp>>12&0x3F)|0x80,
			byte(cp>>6&0x3F)|0x80,
			byte(cp&0x3F)|0x80)
	}
}

// AppendQuote appends the quoted, escaped form of s to dst. Control
// bytes below 0x20 without a short escape become \u00XX. U+2028 and
// U+2029 are escaped even though they are valid UTF-8, so the output
// stays safe to embed in script-language string literals.
func AppendQuote(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '\\':
			dst = append(dst, '\\', '\\')
		case ch == '"':
			dst = append(dst, '\\', '"')
		case ch == '\b':
			dst = append(dst, '\\', 'b')
		case ch == '\f':
			dst = append(dst, '\\', 'f')
		case ch == '\n':
			dst = append(dst, '\\', 'n')
		case ch == '\r':
			dst = append(dst, '\\', 'r')
		case ch == '\t':
			dst = append(dst, '\\', 't')
		case ch <= 0x1f:
			dst = append(dst, '\\', 'u', '0', '0',
				hexDigits[ch>>4], hexDigits[ch&0xf])
		case ch == 0xe2 && i+2 < len(s) && s[i+1] == 0x80 && s[i+2] == 0xa8:
			dst = append(dst, '\\', 'u', '2', '0', '2', '8')
			i += 2
		case ch == 0xe2 && i+2 < len(s) && s[i+1] == 0x80 && s[i+2] == 0xa9:
			dst = append(dst, '\\', 'u', '2', '0', '2', '9')
			i += 2
		default:
			dst = append(dst, ch)
		}
	}
	return append(dst, '"')
}

// Quote returns the quoted, escaped form of s.
func Quote(s string) string {
	return string(AppendQuote(make([]byte, 0, len(s)+2), s))
}

// HexVal returns the value of an ASCII hex digit, or -1.
func HexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}
